package main

import (
	"embed"
	"flag"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"

	"recipebox/cmd"
	"recipebox/handlers"
	"recipebox/models"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/template/html/v2"
)

var Version = "develop"

//go:embed views/*
var viewsfs embed.FS

//go:embed assets/*
var assetsfs embed.FS

var dataDirectory string
var logLevel string
var port string

// Insecure development defaults. Override all three in any real deployment.
const (
	defaultUsername = "mama"
	defaultPassword = "secret"
	// base64 of a fixed 32-byte development key
	defaultCookieKey = "cmVjaXBlYm94LWluc2VjdXJlLWRldi1rZXktMzJieSE="
)

func init() {
	flag.StringVar(&logLevel, "log-level", os.Getenv("LOG_LEVEL"), "Set the log level (debug, info, warn, error)")
	flag.StringVar(&port, "port", os.Getenv("PORT"), "Port to run the server on")

	defaultDataDirectory := os.Getenv("RECIPEBOX_DATA_DIR")
	if defaultDataDirectory == "" {
		defaultDataDirectory = filepath.Join(os.Getenv("HOME"), "recipebox")
	}
	flag.StringVar(&dataDirectory, "data-directory", defaultDataDirectory, "Path to the data directory")

	flag.Parse()

	if logLevel == "" {
		logLevel = "info"
	}
	switch logLevel {
	case "debug":
		log.SetLevel(log.LevelDebug)
	case "warn":
		log.SetLevel(log.LevelWarn)
	case "error":
		log.SetLevel(log.LevelError)
	default:
		log.SetLevel(log.LevelInfo)
	}
}

func main() {
	if args := flag.Args(); len(args) > 0 {
		cmd.Execute(Version, &dataDirectory, args)
		return
	}

	log.Info("Starting Recipebox!")

	uploadsDirectory := filepath.Join(dataDirectory, "uploads")
	if err := os.MkdirAll(uploadsDirectory, os.ModePerm); err != nil {
		log.Errorf("Failed to create uploads directory: %s", err)
		return
	}

	log.Debugf("Using '%s/recipebox.db,-shm,-wal' as the database location", dataDirectory)
	log.Debugf("Using '%s' as the upload location", uploadsDirectory)

	if err := models.Initialize(dataDirectory); err != nil {
		log.Errorf("Failed to connect to database: %v", err)
		return
	}
	defer func() {
		if err := models.Close(); err != nil {
			log.Errorf("Failed to close database: %v", err)
		}
	}()

	// Expired sessions from previous runs serve no purpose
	if err := models.DeleteExpiredSessions(); err != nil {
		log.Warnf("Failed to delete expired sessions: %v", err)
	}

	username := os.Getenv("RECIPEBOX_USERNAME")
	if username == "" {
		username = defaultUsername
	}
	password := os.Getenv("RECIPEBOX_PASSWORD")
	if password == "" {
		password = defaultPassword
		log.Warn("RECIPEBOX_PASSWORD not set, using the insecure default")
	}
	cookieKey := os.Getenv("RECIPEBOX_SECRET")
	if cookieKey == "" {
		cookieKey = defaultCookieKey
		log.Warn("RECIPEBOX_SECRET not set, using the insecure default")
	}

	owner, err := models.NewOwnerCredentials(username, password)
	if err != nil {
		log.Errorf("Failed to prepare owner credentials: %v", err)
		return
	}

	views, err := fs.Sub(viewsfs, "views")
	if err != nil {
		log.Errorf("Failed to load views: %v", err)
		return
	}
	engine := html.NewFileSystem(http.FS(views), ".html")

	app := fiber.New(fiber.Config{
		CaseSensitive: true,
		StrictRouting: true,
		ServerHeader:  "Recipebox",
		AppName:       fmt.Sprintf("Recipebox %s", Version),
		Views:         engine,
		ViewsLayout:   "base",
	})

	assets, err := fs.Sub(assetsfs, "assets")
	if err != nil {
		log.Errorf("Failed to load assets: %v", err)
		return
	}
	app.Use("/assets", filesystem.New(filesystem.Config{
		Root: http.FS(assets),
	}))

	handlers.Initialize(app, handlers.Config{
		Owner:            owner,
		UploadsDirectory: uploadsDirectory,
		CookieKey:        cookieKey,
		Port:             port,
	})
}
