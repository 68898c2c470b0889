package main

import (
	"log"
	"os"
	"path/filepath"

	"cms/config"
	"cms/controllers/authControllers"
	"cms/controllers/consentControllers"
	"cms/controllers/memberControllers"
	"cms/controllers/reportControllers"
	"cms/database"
	authRoutes "cms/routers/authRoutes"
	consentRoutes "cms/routers/consentRoutes"
	memberRoutes "cms/routers/memberRoutes"
	reportRoutes "cms/routers/reportRoutes"
	"cms/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	cfg := config.LoadConfig()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	if err := database.SeedAdmin(db, cfg); err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}

	// Create upload directories if they don't exist
	for _, dir := range []string{filepath.Join(cfg.UploadDir, "cvs"), "public"} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Fatalf("Failed to create directory %s: %v", dir, err)
		}
	}

	app := fiber.New(fiber.Config{
		BodyLimit: cfg.MaxUploadSizeMB * 1024 * 1024,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve static files and uploaded CVs
	app.Static("/", "./public")
	app.Static("/uploads", cfg.UploadDir)

	memberRoutes.SetupMemberRoutes(app, memberControllers.New(db, cfg))
	consentRoutes.SetupConsentRoutes(app, consentControllers.New(db))
	reportRoutes.SetupReportRoutes(app, reportControllers.New(db), cfg.JWTKey)
	authRoutes.SetupAuthRoutes(app, authControllers.New(db, cfg))

	sweeper := utils.StartCVSweeper(db, cfg.UploadDir)
	defer sweeper.Stop()

	log.Printf("Server is running on port %s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
