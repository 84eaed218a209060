package logger

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestInitLoggerWritesStructuredEntries(t *testing.T) {
	defer os.Remove("finances_test.log")

	cfg := &Config{
		Level:      "DEBUG",
		Filename:   "finances_test.log",
		MaxSize:    1,
		MaxBackups: 1,
		MaxAge:     1,
		Compress:   false,
	}

	err := InitLogger(cfg)
	assert.NoError(t, err)
	assert.NotNil(t, Log)

	Log.Info("request served",
		zap.String("path", "/api/v1/transactions"),
		zap.Int("status", 200),
	)
	Sync()

	// the buffered file syncer must have flushed the entry as JSON
	data, err := os.ReadFile("finances_test.log")
	assert.NoError(t, err)
	assert.Contains(t, string(data), "request served")
	assert.Contains(t, string(data), `"path":"/api/v1/transactions"`)
	assert.Contains(t, string(data), `"status":200`)
}

func TestInitLoggerRespectsLevel(t *testing.T) {
	defer os.Remove("finances_level_test.log")

	cfg := &Config{
		Level:    "WARN",
		Filename: "finances_level_test.log",
		MaxSize:  1,
	}
	assert.NoError(t, InitLogger(cfg))

	Log.Info("below threshold")
	Log.Warn("at threshold")
	Sync()

	data, err := os.ReadFile("finances_level_test.log")
	assert.NoError(t, err)
	assert.NotContains(t, string(data), "below threshold")
	assert.Contains(t, string(data), "at threshold")
}

func TestInitLoggerInvalidLevel(t *testing.T) {
	cfg := &Config{
		Level:    "SHOUTING",
		Filename: "finances_invalid_test.log",
	}

	assert.Error(t, InitLogger(cfg))
}
