package models

import "time"

// Session is one (user, device) authentication instance. The partial unique
// index on (user_id, device_id) over active rows is what makes login's
// find-or-create safe under concurrency: two racing logins for the same
// device cannot both insert. Logged-out rows fall outside the index, so a
// device may accumulate any number of terminated sessions. Revocation flips
// IsActive and stamps LoggedOutAt; rows are never deleted so the history
// stays auditable.
type Session struct {
	ID           uint `gorm:"primarykey"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	UserID       uint       `gorm:"index;not null;index:idx_sessions_user_device_active,unique,where:is_active"`
	DeviceID     string     `gorm:"not null;index:idx_sessions_user_device_active,unique"`
	IPAddress    string     `gorm:"not null"`
	UserAgent    string     `gorm:"type:text"`
	DeviceInfo   DeviceInfo `gorm:"type:jsonb"`
	Token        string     `gorm:"type:text;uniqueIndex;not null"`
	IsActive     bool       `gorm:"not null;default:true;index"`
	LastActivity time.Time  `gorm:"not null"`
	LoggedOutAt  *time.Time
}
