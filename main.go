package main

import (
	"strings"
	"time"

	"film-catalog/config"
	"film-catalog/database"
	routes "film-catalog/internal/app/http"
	"film-catalog/internal/domain/users"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	config.LoadEnv()
	database.InitDB()

	if err := users.EnsureAdmin(database.DB, config.ADMIN_USERNAME, config.ADMIN_EMAIL, config.ADMIN_PASSWORD); err != nil {
		log.Fatal().Err(err).Msg("Failed to bootstrap admin account")
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(config.CORS_ORIGIN, ","),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: config.CORS_ORIGIN != "*",
		MaxAge:           12 * time.Hour,
	}))

	r.Static("/media", config.MEDIA_ROOT)
	routes.RegisterRoutes(r)

	log.Info().Str("port", config.PORT).Msg("Film catalog listening")
	if err := r.Run(":" + config.PORT); err != nil {
		log.Fatal().Err(err).Msg("Server stopped")
	}
}
