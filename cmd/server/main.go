package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/joho/godotenv"

	"github.com/jobtrackd/jobtrackd/internal/auth"
	"github.com/jobtrackd/jobtrackd/internal/config"
	"github.com/jobtrackd/jobtrackd/internal/database"
	"github.com/jobtrackd/jobtrackd/internal/server"
)

// @title JobTrackd API
// @version 1.0.0
// @description Personal job application tracker with session-based authentication

// @contact.name API Support
// @contact.url https://github.com/jobtrackd/jobtrackd

// @host localhost:3000
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name session_id

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	if err := database.Seed(db); err != nil {
		log.Fatalf("Failed to seed reference data: %v", err)
	}

	store := session.New(session.Config{
		KeyLookup:      "cookie:" + cfg.SessionCookie,
		Expiration:     cfg.SessionExpiration,
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	})

	app := server.New(cfg, db, auth.NewSessions(store))

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	log.Printf("Starting server on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	log.Println("Server stopped")
}
