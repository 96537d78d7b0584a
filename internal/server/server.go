package server

import (
	"errors"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"

	"github.com/jobtrackd/jobtrackd/internal/auth"
	"github.com/jobtrackd/jobtrackd/internal/config"
	"github.com/jobtrackd/jobtrackd/internal/handlers"
	"github.com/jobtrackd/jobtrackd/internal/middleware"
	"github.com/jobtrackd/jobtrackd/internal/repository"
	"github.com/jobtrackd/jobtrackd/internal/services"
	"github.com/jobtrackd/jobtrackd/internal/types"

	_ "github.com/jobtrackd/jobtrackd/docs/api" // Swagger docs
)

// New assembles the Fiber app: global middleware, metrics, swagger, and the
// full route table over the given database and session store.
func New(cfg *config.Config, db *gorm.DB, sessions *auth.Sessions) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler:          errorHandler,
		DisableStartupMessage: true,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	// Prometheus metrics. A fresh registry keeps repeated app construction
	// (one per test) from tripping duplicate collector registration.
	prom := fiberprometheus.NewWithRegistry(prometheus.NewRegistry(), "jobtrackd", "http", "", nil)
	prom.RegisterAt(app, "/metrics")
	app.Use(prom.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Use(middleware.VersionMiddleware())

	// Repositories and services
	users := repository.NewUsers(db)
	jobs := repository.NewJobs(db)
	contacts := repository.NewContacts(db)
	reminders := repository.NewReminders(db)

	authHandler := &handlers.AuthHandler{Service: services.NewAuthService(users), Sessions: sessions}
	jobsHandler := &handlers.JobsHandler{Service: services.NewJobService(jobs)}
	contactsHandler := &handlers.ContactsHandler{Service: services.NewContactService(contacts)}
	remindersHandler := &handlers.RemindersHandler{Service: services.NewReminderService(reminders)}
	healthHandler := &handlers.HealthHandler{Config: cfg, DB: db}

	// Public routes
	app.Post("/register", authHandler.Register)
	app.Post("/login", authHandler.Login)
	app.Delete("/logout", authHandler.Logout)
	app.Get("/health", healthHandler.GetHealth)

	// Protected routes (all require an authenticated session)
	requireUser := middleware.RequireUser(sessions)
	app.Post("/jobs", requireUser, jobsHandler.SubmitJob)
	app.Delete("/jobs", requireUser, jobsHandler.DeleteJob)
	app.Get("/jobs", requireUser, jobsHandler.GetJobs)
	app.Get("/jobs/detail", requireUser, jobsHandler.GetJobDetail)
	app.Post("/contacts", requireUser, contactsHandler.SubmitContact)
	app.Delete("/contacts", requireUser, contactsHandler.DeleteContact)
	app.Get("/contacts", requireUser, contactsHandler.GetContacts)
	app.Post("/reminders", requireUser, remindersHandler.PostReminder)
	app.Delete("/reminders", requireUser, remindersHandler.DeleteReminder)
	app.Get("/reminders", requireUser, remindersHandler.GetReminders)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status":    fiber.StatusNotFound,
			"message":   "[404] Resource Not Found",
			"ok":        false,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"url":       c.OriginalURL(),
		})
	})

	return app
}

// errorHandler handles errors globally
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()
	errorType := "unknown"

	var custom *types.CustomError
	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &custom):
		code = custom.Code
		message = custom.Message
		errorType = custom.Type
	case errors.As(err, &fiberErr):
		code = fiberErr.Code
		message = fiberErr.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"status":    code,
		"message":   message,
		"ok":        false,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
		"type":      errorType,
	})
}
