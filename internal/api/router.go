package api

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/lighty7/Finances-backend/config"
	"github.com/lighty7/Finances-backend/internal/api/v1/auth"
	"github.com/lighty7/Finances-backend/internal/api/v1/configuration"
	"github.com/lighty7/Finances-backend/internal/api/v1/transaction"
	"github.com/lighty7/Finances-backend/internal/api/v1/user"
	"github.com/lighty7/Finances-backend/internal/database"
	"github.com/lighty7/Finances-backend/internal/mail"
	"github.com/lighty7/Finances-backend/internal/middleware"
)

// NewRouter connects the stores and assembles the gin engine with every
// route group mounted under /api/v1.
func NewRouter(cfg *config.Config) (*gin.Engine, error) {
	if _, err := database.Connect(cfg.DSN()); err != nil {
		return nil, err
	}

	if err := database.ConnectRedis(cfg); err != nil {
		return nil, err
	}

	mailer := mail.NewMailer(cfg)

	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.Logger(), gin.Recovery())

	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           5 * time.Minute,
	}
	if cfg.IsDevelopment() {
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowCredentials = false
	} else {
		corsConfig.AllowOrigins = []string{cfg.FrontendURL}
	}
	router.Use(cors.New(corsConfig))

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message":     "Budget Tracker API",
			"version":     "1.0.0",
			"status":      "running",
			"environment": cfg.Env,
		})
	})
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK", "timestamp": time.Now().UTC()})
	})

	v1 := router.Group("/api/v1")
	{
		auth.RegisterRoutes(v1, cfg, mailer)
		user.RegisterRoutes(v1, cfg, mailer)
		configuration.RegisterRoutes(v1, cfg)
		transaction.RegisterRoutes(v1, cfg)
	}

	return router, nil
}
