package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/heyyguru/enrollment_backend/handlers"
)

func CourseRoutes(app *fiber.App, h *handlers.CourseHandler) {
	api := app.Group("/api")

	api.Get("/courses", h.GetAllCourses)
	api.Get("/courses/class/:classLevel", h.GetCoursesByClass)
	api.Get("/courses/:id", h.GetCourse)
}
