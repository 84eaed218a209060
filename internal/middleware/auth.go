package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lighty7/Finances-backend/config"
	"github.com/lighty7/Finances-backend/internal/services"
	"github.com/lighty7/Finances-backend/internal/utils"
)

// Context keys set by the auth middlewares.
const (
	ContextUser    = "user"
	ContextSession = "session"
	ContextToken   = "token"
)

// AuthMiddleware gates protected routes. A request passes only when it
// carries a bearer token that verifies cryptographically AND still maps to
// an active session row; a logged-out session rejects an otherwise valid
// token. The resolved user (password stripped) and session are stored in
// the gin context.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := utils.ExtractToken(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, err.Error()))
			c.Abort()
			return
		}

		user, session, err := services.AuthenticateToken(cfg, tokenString)
		if err != nil {
			status, message := authFailure(err)
			c.JSON(status, utils.NewErrorResponse(status, message))
			c.Abort()
			return
		}

		c.Set(ContextUser, user)
		c.Set(ContextSession, session)
		c.Set(ContextToken, tokenString)
		c.Next()
	}
}

// OptionalAuthMiddleware resolves the caller when a valid token is
// presented but never rejects the request: a missing, expired, or revoked
// token simply leaves the context keys unset and the handler proceeds
// unauthenticated. Mounted on routes that accept both states, like logout.
func OptionalAuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := utils.ExtractToken(c)
		if err != nil {
			c.Next()
			return
		}

		user, session, err := services.AuthenticateToken(cfg, tokenString)
		if err == nil {
			c.Set(ContextUser, user)
			c.Set(ContextSession, session)
			c.Set(ContextToken, tokenString)
		}
		c.Next()
	}
}

func authFailure(err error) (int, string) {
	switch {
	case errors.Is(err, utils.ErrTokenExpired):
		return http.StatusUnauthorized, "Token has expired, please login again"
	case errors.Is(err, utils.ErrTokenMalformed):
		return http.StatusUnauthorized, "Token is malformed or invalid"
	case errors.Is(err, services.ErrInvalidSession):
		return http.StatusUnauthorized, "Session not found or has been logged out"
	case errors.Is(err, services.ErrUserNotFound):
		return http.StatusUnauthorized, "User associated with this token no longer exists"
	default:
		return http.StatusInternalServerError, "An error occurred during authentication"
	}
}
