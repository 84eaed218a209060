package user

import (
	"time"

	"github.com/lighty7/Finances-backend/internal/models"
)

type RegisterInput struct {
	UserName string `json:"userName" binding:"required,min=3,max=50"`
	EmailID  string `json:"emailId" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6,max=100"`
}

type VerifyEmailInput struct {
	Token string `json:"token" binding:"required"`
}

type ResendVerificationInput struct {
	EmailID string `json:"emailId" binding:"required,email"`
}

type UpdateInput struct {
	UserName *string `json:"userName" binding:"omitempty,min=3,max=50"`
	EmailID  *string `json:"emailId" binding:"omitempty,email"`
	Password *string `json:"password" binding:"omitempty,min=6,max=100"`
}

// UserResponse is the public shape of a user: the password hash and
// verification token never leave the service.
type UserResponse struct {
	ID         uint      `json:"id"`
	UserName   string    `json:"userName"`
	EmailID    string    `json:"emailId"`
	IsVerified bool      `json:"isVerified"`
	CreatedAt  time.Time `json:"createdAt"`
}

func toUserResponse(u models.User) UserResponse {
	return UserResponse{
		ID:         u.ID,
		UserName:   u.UserName,
		EmailID:    u.EmailID,
		IsVerified: u.IsVerified,
		CreatedAt:  u.CreatedAt,
	}
}
