package transaction

import (
	"github.com/gin-gonic/gin"

	"github.com/lighty7/Finances-backend/config"
	"github.com/lighty7/Finances-backend/internal/middleware"
)

func RegisterRoutes(router *gin.RouterGroup, cfg *config.Config) {
	h := &Handler{cfg: cfg}

	group := router.Group("/transactions")
	group.Use(middleware.AuthMiddleware(cfg))
	group.GET("", h.List)
	group.POST("", h.Create)
	group.PUT("/:id", h.Update)
}
