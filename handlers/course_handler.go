package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/heyyguru/enrollment_backend/store"
	"gorm.io/gorm"
)

type CourseHandler struct {
	store *store.Store
}

func NewCourseHandler(st *store.Store) *CourseHandler {
	return &CourseHandler{store: st}
}

func (h *CourseHandler) GetAllCourses(c *fiber.Ctx) error {
	courses, err := h.store.GetAllCourses()
	if err != nil {
		log.Printf("Error fetching courses: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to fetch courses"})
	}
	return c.JSON(courses)
}

func (h *CourseHandler) GetCoursesByClass(c *fiber.Ctx) error {
	classLevel := c.Params("classLevel")
	courses, err := h.store.GetCoursesByClass(classLevel)
	if err != nil {
		log.Printf("Error fetching courses for class %s: %v", classLevel, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to fetch courses for class"})
	}
	return c.JSON(courses)
}

func (h *CourseHandler) GetCourse(c *fiber.Ctx) error {
	course, err := h.store.GetCourse(c.Params("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Course not found"})
		}
		log.Printf("Error fetching course: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to fetch course"})
	}
	return c.JSON(course)
}
