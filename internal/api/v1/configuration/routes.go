package configuration

import (
	"github.com/gin-gonic/gin"

	"github.com/lighty7/Finances-backend/config"
	"github.com/lighty7/Finances-backend/internal/middleware"
)

func RegisterRoutes(router *gin.RouterGroup, cfg *config.Config) {
	h := &Handler{cfg: cfg}

	group := router.Group("/configuration")
	group.Use(middleware.AuthMiddleware(cfg))
	group.GET("", h.Get)
	group.GET("/status", h.Status)
	group.GET("/loan-summary", h.LoanSummary)
	group.POST("", h.Upsert)
	group.PUT("", h.Upsert)
}
