package main

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jolin0223/vibefolio/pkg/vibefolio/auth"
	"github.com/jolin0223/vibefolio/pkg/vibefolio/catalog"
	"github.com/jolin0223/vibefolio/pkg/vibefolio/config"
	"github.com/jolin0223/vibefolio/pkg/vibefolio/store"
	"github.com/jolin0223/vibefolio/pkg/vibefolio/uploads"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/jolin0223/vibefolio/api/swagger"
)

// @title Vibefolio API
// @version 1.0
// @description A portfolio showcase backend: public project gallery with view counters and a password-gated admin dashboard.

// @contact.name Vibefolio
// @contact.url https://github.com/jolin0223/vibefolio

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Admin session JWT. Format: "Bearer {token}". Also accepted as the auth_token cookie.

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Fall back to the development credential when no hash is configured
	passwordHash, err := ensureAdminCredential(cfg)
	if err != nil {
		log.Fatalf("Failed to prepare admin credential: %v", err)
	}

	// Make sure the upload directory exists before serving it statically
	if err := os.MkdirAll(cfg.Storage.UploadDir, 0o755); err != nil {
		log.Fatalf("Failed to create upload directory: %v", err)
	}

	catalogStore := store.New(cfg.Storage.DataFile)

	// Set up Gin router
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":  "ok",
				"service": "vibefolio",
			})
		})

		// Auth routes (public)
		authHandler := auth.NewHandler(cfg.Admin.Username, passwordHash)
		authHandler.RegisterRoutes(api.Group("/auth"))

		// Catalog routes: gallery reads and view tracking are public,
		// everything that mutates the catalog sits behind the admin gate
		catalogHandler := catalog.NewHandler(catalog.NewService(catalogStore))
		catalogHandler.RegisterRoutes(api)

		admin := api.Group("", auth.AdminRequired())
		catalogHandler.RegisterAdminRoutes(admin)

		// Upload routes (admin only)
		uploadHandler := uploads.NewHandler(cfg.Storage.UploadDir)
		uploadHandler.RegisterRoutes(admin)
	}

	// Uploaded files are served statically under /uploads
	r.Static(uploads.URLPrefix, cfg.Storage.UploadDir)

	// Serve the static frontend build if web/dist exists
	webDistPath := "./web/dist"
	if _, err := os.Stat(webDistPath); err == nil {
		r.Static("/assets", filepath.Join(webDistPath, "assets"))
		r.StaticFile("/favicon.ico", filepath.Join(webDistPath, "favicon.ico"))
		r.StaticFile("/background.png", filepath.Join(webDistPath, "background.png"))

		// SPA fallback - serve index.html for frontend routes
		indexHTML := filepath.Join(webDistPath, "index.html")
		spaRoutes := []string{"/", "/admin", "/admin/login", "/admin/dashboard"}
		for _, route := range spaRoutes {
			r.GET(route, func(c *gin.Context) {
				c.File(indexHTML)
			})
		}

		log.Println("Serving frontend from ./web/dist")
	} else {
		log.Println("No frontend build found at ./web/dist - API only mode")
	}

	log.Printf("Starting vibefolio server on :%s (%s)", cfg.Server.Port, cfg.Server.BaseURL)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// ensureAdminCredential returns the configured bcrypt hash, or hashes the
// development fallback password when ADMIN_PASSWORD_HASH is unset.
func ensureAdminCredential(cfg *config.Config) (string, error) {
	if cfg.Admin.PasswordHash != "" {
		return cfg.Admin.PasswordHash, nil
	}

	hash, err := auth.HashPassword("fighting2026")
	if err != nil {
		return "", err
	}

	log.Printf("ADMIN_PASSWORD_HASH not set - using the development password for user %s", cfg.Admin.Username)
	return hash, nil
}
