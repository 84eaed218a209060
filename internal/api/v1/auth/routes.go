package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/lighty7/Finances-backend/config"
	"github.com/lighty7/Finances-backend/internal/mail"
	"github.com/lighty7/Finances-backend/internal/middleware"
)

func RegisterRoutes(router *gin.RouterGroup, cfg *config.Config, mailer *mail.Mailer) {
	h := &Handler{cfg: cfg, mailer: mailer}

	auth := router.Group("/auth")
	auth.POST("/login", h.Login)
	// Logout matches on the raw token string; the optional gate attaches
	// the caller when the token is still live but never blocks the request,
	// so clients can retire tokens that already expired. See Handler.Logout.
	auth.POST("/logout", middleware.OptionalAuthMiddleware(cfg), h.Logout)

	protected := auth.Group("/")
	protected.Use(middleware.AuthMiddleware(cfg))
	protected.GET("/verify", h.Verify)
	protected.GET("/session", h.Session)
	protected.GET("/sessions", h.Sessions)
	protected.POST("/logout-all", h.LogoutAll)
}
