package handlers

import (
	"recipebox/models"

	fiber "github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/encryptcookie"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
)

// Config carries everything the handlers need beyond the store: the owner
// credentials, the upload area, and the cookie encryption key. It is built
// once at startup and passed in explicitly.
type Config struct {
	Owner            *models.OwnerCredentials
	UploadsDirectory string
	CookieKey        string
	Port             string
}

var appConfig Config

// Initialize configures middleware and routes, then starts the server
func Initialize(app *fiber.App, cfg Config) {
	log.Info("Initializing application routes and middleware")

	appConfig = cfg

	// ========================================
	// Middleware Configuration
	// ========================================
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(encryptcookie.New(encryptcookie.Config{
		Key: cfg.CookieKey,
	}))
	app.Use(MetricsMiddleware())
	app.Use(OptionalAuthMiddleware())
	app.Use(healthcheck.New())

	// ========================================
	// Public Routes
	// ========================================
	app.Get("/", HandleHome)
	app.Get("/login", HandleLoginPage)
	app.Post("/login", HandleLogin)
	app.Get("/folder/:id", HandleFolder)
	app.Get("/metrics", HandleMetrics)
	app.Static("/uploads", cfg.UploadsDirectory)

	// ========================================
	// Protected Routes
	// ========================================
	app.Get("/logout", AuthMiddleware(), HandleLogout)

	recipes := app.Group("/recipe", AuthMiddleware())
	recipes.Get("/new", HandleNewRecipe)
	recipes.Post("/new", HandleCreateRecipe)
	recipes.Get("/edit/:id", HandleEditRecipe)
	recipes.Post("/edit/:id", HandleUpdateRecipe)
	recipes.Get("/delete/:id", HandleDeleteRecipe)

	app.Get("/folders", AuthMiddleware(), HandleFolders)
	app.Post("/folders", AuthMiddleware(), HandleCreateFolder)
	app.Get("/folder/delete/:id", AuthMiddleware(), HandleDeleteFolder)

	// ========================================
	// Fallback Route
	// ========================================
	app.Use(func(c *fiber.Ctx) error {
		return sendNotFound(c, "Page not found")
	})

	// ========================================
	// Start Server
	// ========================================
	port := cfg.Port
	if port == "" {
		port = "3000"
	}

	log.Debugf("Starting server on port %s", port)
	log.Fatal(app.Listen(":" + port))
}
