package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/lighty7/Finances-backend/config"
)

var (
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenMalformed = errors.New("token is malformed or invalid")
)

// SessionClaims is the payload embedded in every session token. The
// (UserID, DeviceID) pair is what the authenticator later reconciles
// against the session store; the token alone is never sufficient.
type SessionClaims struct {
	UserID   uint   `json:"userId"`
	EmailID  string `json:"emailId"`
	DeviceID string `json:"deviceId"`
	jwt.RegisteredClaims
}

func GenerateToken(cfg *config.Config, userID uint, emailID, deviceID string) (string, error) {
	claims := SessionClaims{
		UserID:   userID,
		EmailID:  emailID,
		DeviceID: deviceID,
		RegisteredClaims: jwt.RegisteredClaims{
			// A unique jti keeps tokens distinct even when two logins land
			// in the same second; re-login must supersede the old token.
			ID:        uuid.New().String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(cfg.JWTExpiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWTSecret))
}

func ValidateToken(cfg *config.Config, tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenMalformed
	}

	if !token.Valid {
		return nil, ErrTokenMalformed
	}
	return claims, nil
}

func ExtractToken(c *gin.Context) (string, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", fmt.Errorf("authorization header is required")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return "", fmt.Errorf("bearer token not found")
	}

	return strings.TrimPrefix(authHeader, bearerPrefix), nil
}
