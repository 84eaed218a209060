package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// DeviceInfo is the structured device fingerprint captured at login and
// stored as a JSONB column on the session row.
type DeviceInfo struct {
	UserAgent string `json:"userAgent"`
	Platform  string `json:"platform"`
	Browser   string `json:"browser"`
}

// Value implements the driver.Valuer interface
func (d DeviceInfo) Value() (driver.Value, error) {
	return json.Marshal(d)
}

// Scan implements the sql.Scanner interface
func (d *DeviceInfo) Scan(value interface{}) error {
	bytes, err := jsonBytes(value)
	if err != nil || len(bytes) == 0 {
		*d = DeviceInfo{}
		return err
	}
	return json.Unmarshal(bytes, d)
}

// Value implements the driver.Valuer interface
func (l LoanList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	return json.Marshal(l)
}

// Scan implements the sql.Scanner interface
func (l *LoanList) Scan(value interface{}) error {
	bytes, err := jsonBytes(value)
	if err != nil {
		return err
	}
	if len(bytes) == 0 {
		*l = nil
		return nil
	}
	var result []LoanRecord
	if err := json.Unmarshal(bytes, &result); err != nil {
		return err
	}
	*l = LoanList(result)
	return nil
}

func jsonBytes(value interface{}) ([]byte, error) {
	if value == nil {
		return nil, nil
	}
	switch v := value.(type) {
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, errors.New(fmt.Sprint("failed to unmarshal JSON value:", value))
	}
}
