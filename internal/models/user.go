package models

import "time"

// User is an account holder. Password always stores a bcrypt hash; the raw
// secret never reaches the model layer. Verification happens exactly once:
// a matching, non-expired VerificationToken flips IsVerified and both token
// fields are cleared.
type User struct {
	ID                      uint `gorm:"primarykey"`
	CreatedAt               time.Time
	UpdatedAt               time.Time
	UserName                string     `gorm:"not null"`
	EmailID                 string     `gorm:"column:email_id;uniqueIndex;not null"`
	Password                string     `gorm:"not null"`
	IsVerified              bool       `gorm:"not null;default:false"`
	VerificationToken       *string    `gorm:"uniqueIndex"`
	VerificationTokenExpiry *time.Time
}
