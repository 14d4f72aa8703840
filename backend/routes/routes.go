package routes

import (
	"studytracker/backend/config"
	"studytracker/backend/controllers"
	"studytracker/backend/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Auth routes
	authController := controllers.NewAuthController(db, cfg)
	app.Post("/api/auth/register", authController.Register)
	app.Post("/api/auth/login", authController.Login)

	authMiddleware := middleware.AuthMiddleware(cfg)
	app.Get("/api/user/profile", authMiddleware, authController.Profile)

	// Records routes. The stats routes must be registered before /:id so
	// "stats" is not captured as a record id.
	recordsController := controllers.NewRecordsController(db, cfg)
	records := app.Group("/api/records", authMiddleware)
	records.Get("/", recordsController.List)
	records.Post("/", recordsController.Create)
	records.Get("/stats/summary", recordsController.StatsSummary)
	records.Get("/stats/calendar", recordsController.CalendarData)
	records.Get("/:id", recordsController.Get)
	records.Put("/:id", recordsController.Update)
	records.Delete("/:id", recordsController.Delete)

	// Goals routes
	goalsController := controllers.NewGoalsController(db, cfg)
	goals := app.Group("/api/goals", authMiddleware)
	goals.Get("/", goalsController.List)
	goals.Post("/", goalsController.Create)
	goals.Get("/:id", goalsController.Get)
	goals.Get("/:id/progress", goalsController.Progress)
	goals.Put("/:id", goalsController.Update)
	goals.Delete("/:id", goalsController.Delete)
}
