package handler

import (
	"net/http"
	"time"

	"eventflow/config"
	"eventflow/internal/service"
	"eventflow/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Services 由 main 組好後交給 router
type Services struct {
	Events        service.EventService
	Registrations service.RegistrationService
	Accounts      service.AccountService
	Profiles      service.ProfileService
}

func NewRouter(cfg config.ServerConfig, services Services) *gin.Engine {
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery(), logger.GinMiddleware(), cors.New(corsConfig(cfg.AllowedOrigins)))

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	auth := NewAuthMiddleware(services.Accounts)
	api := r.Group("/api/v1")
	NewEventHandler(services.Events, services.Registrations).RegisterRoutes(api, auth)
	NewRegistrationHandler(services.Registrations).RegisterRoutes(api, auth)
	NewAccountHandler(services.Accounts).RegisterRoutes(api, auth)
	NewProfileHandler(services.Profiles, services.Events, services.Registrations).RegisterRoutes(api, auth)

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	cfg.ExposeHeaders = []string{"Content-Disposition"}
	cfg.MaxAge = 12 * time.Hour
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
