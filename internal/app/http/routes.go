package routes

import (
	"arte-cultura-backend/config"
	artistsapi "arte-cultura-backend/internal/api/artists"
	authapi "arte-cultura-backend/internal/api/auth"
	columnsapi "arte-cultura-backend/internal/api/columns"
	sectionsapi "arte-cultura-backend/internal/api/sections"
	subsapi "arte-cultura-backend/internal/api/subscriptions"
	"arte-cultura-backend/internal/app/http/middleware"
	"arte-cultura-backend/internal/auth"

	"github.com/gin-gonic/gin"
)

// Handlers bundles the dependency-injected API handlers built in main.
type Handlers struct {
	Auth          *authapi.Handler
	Columns       *columnsapi.Handler
	Artists       *artistsapi.Handler
	Subscriptions *subsapi.Handler
	Sections      *sectionsapi.Handler
	Verifier      *auth.Verifier
}

func RegisterRoutes(r *gin.Engine, h Handlers) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Public content reads — each section page fetches its own data.
	r.GET("/secciones", h.Sections.ListSections)
	r.GET("/opinion", h.Sections.ListOpinion)
	r.GET("/opinion/:id", h.Sections.GetOpinion)
	r.GET("/artistas", h.Sections.ListArtists)
	r.GET("/artistas/:id", h.Sections.GetArtist)

	// Public writes get input sanitization.
	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())
	public.POST("/register", h.Auth.Register)
	public.POST("/login", h.Auth.Login)
	public.POST("/suscripciones", h.Subscriptions.Subscribe)

	if config.GoogleEnabled() {
		r.GET("/auth/google", h.Auth.GoogleStart)
		r.GET("/auth/google/callback", h.Auth.GoogleCallback)
	}

	// Authenticated
	authed := r.Group("/")
	authed.Use(middleware.AuthMiddleware(h.Verifier))
	authed.POST("/logout", h.Auth.Logout)
	authed.POST("/change-password", h.Auth.ChangePassword)

	// Admin dashboard
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(h.Verifier), middleware.RequireRole("admin"))

	admin.GET("/columnas", h.Columns.List)
	admin.POST("/columnas", h.Columns.Create)
	admin.PUT("/columnas/:id", h.Columns.Update)
	admin.DELETE("/columnas/:id", h.Columns.Delete)

	admin.GET("/artistas", h.Artists.List)
	admin.POST("/artistas", h.Artists.Create)
	admin.PUT("/artistas/:id", h.Artists.Update)
	admin.DELETE("/artistas/:id", h.Artists.Delete)

	admin.GET("/suscripciones", h.Subscriptions.List)
	admin.GET("/suscripciones/export.csv", h.Subscriptions.ExportCSV)
	admin.DELETE("/suscripciones/:id", h.Subscriptions.Delete)
}
