package auth

import (
	"time"

	"github.com/lighty7/Finances-backend/internal/models"
)

type LoginInput struct {
	EmailID  string `json:"emailId" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	DeviceID string `json:"deviceId"`
}

// SessionResponse is a session row with the token withheld: the bearer
// token is only ever returned by login itself.
type SessionResponse struct {
	ID           uint              `json:"id"`
	DeviceID     string            `json:"deviceId"`
	IPAddress    string            `json:"ipAddress"`
	UserAgent    string            `json:"userAgent,omitempty"`
	DeviceInfo   models.DeviceInfo `json:"deviceInfo"`
	IsActive     bool              `json:"isActive"`
	LastActivity time.Time         `json:"lastActivity"`
	LoggedOutAt  *time.Time        `json:"loggedOutAt,omitempty"`
}

type LoginResponse struct {
	Token    string          `json:"token"`
	User     UserSummary     `json:"user"`
	DeviceID string          `json:"deviceId"`
	Session  SessionResponse `json:"session"`
}

type UserSummary struct {
	ID       uint   `json:"id"`
	UserName string `json:"userName"`
	EmailID  string `json:"emailId"`
}

func toSessionResponse(s models.Session) SessionResponse {
	return SessionResponse{
		ID:           s.ID,
		DeviceID:     s.DeviceID,
		IPAddress:    s.IPAddress,
		UserAgent:    s.UserAgent,
		DeviceInfo:   s.DeviceInfo,
		IsActive:     s.IsActive,
		LastActivity: s.LastActivity,
		LoggedOutAt:  s.LoggedOutAt,
	}
}

func toSessionResponses(sessions []models.Session) []SessionResponse {
	out := make([]SessionResponse, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, toSessionResponse(s))
	}
	return out
}
