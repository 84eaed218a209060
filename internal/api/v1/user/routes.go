package user

import (
	"github.com/gin-gonic/gin"

	"github.com/lighty7/Finances-backend/config"
	"github.com/lighty7/Finances-backend/internal/mail"
	"github.com/lighty7/Finances-backend/internal/middleware"
)

func RegisterRoutes(router *gin.RouterGroup, cfg *config.Config, mailer *mail.Mailer) {
	h := &Handler{cfg: cfg, mailer: mailer}

	users := router.Group("/users")
	users.POST("", h.Register)
	users.POST("/verify-email", h.VerifyEmail)
	users.POST("/resend-verification", h.ResendVerification)

	protected := users.Group("/")
	protected.Use(middleware.AuthMiddleware(cfg))
	protected.GET("/:id", h.Get)
	protected.PUT("/:id", h.Update)
	protected.DELETE("/:id", h.Delete)
}
