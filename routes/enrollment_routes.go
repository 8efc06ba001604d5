package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/heyyguru/enrollment_backend/handlers"
)

func EnrollmentRoutes(app *fiber.App, h *handlers.EnrollmentHandler) {
	api := app.Group("/api")

	api.Post("/enroll", h.Enroll)
}
