package main

import (
	"log"
	"time"

	"arte-cultura-backend/config"
	"arte-cultura-backend/database"
	artistsapi "arte-cultura-backend/internal/api/artists"
	authapi "arte-cultura-backend/internal/api/auth"
	columnsapi "arte-cultura-backend/internal/api/columns"
	sectionsapi "arte-cultura-backend/internal/api/sections"
	subsapi "arte-cultura-backend/internal/api/subscriptions"
	routes "arte-cultura-backend/internal/app/http"
	"arte-cultura-backend/internal/auth"
	"arte-cultura-backend/internal/infra/storage"
	"arte-cultura-backend/internal/repository"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	config.LoadEnv()
	db := database.Init()

	store, err := storage.NewLocal(config.UPLOAD_DIR, config.PUBLIC_BASE_URL)
	if err != nil {
		log.Fatal("❌ Failed to prepare upload storage:", err)
	}

	repo := repository.NewContent(db, store)
	verifier := auth.NewVerifier(config.JWT_SECRET)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.CORS_ORIGIN},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Uploaded content images are served straight from disk.
	r.Static("/uploads", config.UPLOAD_DIR)

	routes.RegisterRoutes(r, routes.Handlers{
		Auth:          authapi.NewHandler(db, verifier),
		Columns:       columnsapi.NewHandler(repo),
		Artists:       artistsapi.NewHandler(repo),
		Subscriptions: subsapi.NewHandler(repo),
		Sections:      sectionsapi.NewHandler(repo),
		Verifier:      verifier,
	})

	r.Run(":" + config.PORT)
}
