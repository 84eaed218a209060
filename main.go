package main

import (
	"log"

	"go.uber.org/zap"

	"github.com/lighty7/Finances-backend/config"
	"github.com/lighty7/Finances-backend/internal/api"
	"github.com/lighty7/Finances-backend/internal/database"
	"github.com/lighty7/Finances-backend/internal/mail"
	"github.com/lighty7/Finances-backend/internal/models"
	"github.com/lighty7/Finances-backend/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	err = logger.InitLogger(&logger.Config{
		Level:      cfg.LogLevel,
		Filename:   cfg.LogFilename,
		MaxSize:    cfg.LogMaxSize,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAge,
		Compress:   cfg.LogCompress,
	})
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	router, err := api.NewRouter(cfg)
	if err != nil {
		logger.Log.Fatal("failed to create router", zap.Error(err))
	}

	err = database.DB.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.Configuration{},
		&models.Transaction{},
	)
	if err != nil {
		logger.Log.Fatal("failed to migrate database", zap.Error(err))
	}

	// Startup probe only; a broken SMTP setup must not stop the service.
	if cfg.EmailEnabled {
		if err := mail.NewMailer(cfg).VerifyConnection(); err != nil {
			logger.Log.Warn("smtp connection not verified", zap.Error(err))
		} else {
			logger.Log.Info("smtp connection verified")
		}
	}

	logger.Log.Info("server starting", zap.String("port", cfg.Port), zap.String("env", cfg.Env))
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Log.Fatal("failed to run server", zap.Error(err))
	}
}
