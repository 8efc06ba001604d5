package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	config "github.com/heyyguru/enrollment_backend/configs"
	"github.com/heyyguru/enrollment_backend/database"
	"github.com/heyyguru/enrollment_backend/handlers"
	"github.com/heyyguru/enrollment_backend/payments"
	"github.com/heyyguru/enrollment_backend/routes"
	"github.com/heyyguru/enrollment_backend/services"
	"github.com/heyyguru/enrollment_backend/store"
)

func main() {
	cfg := config.Load()

	db, err := database.ConnectDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("🔥 %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("🔥 %v", err)
	}

	// Seed shortly after boot so startup never blocks on catalog inserts.
	go func() {
		time.Sleep(1 * time.Second)
		if err := database.SeedCourses(db); err != nil {
			log.Printf("Failed to seed default courses: %v", err)
		}
	}()

	st := store.New(db)
	gateway := payments.NewRazorpayService(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)
	enrollmentService := services.NewEnrollmentService(st, gateway, cfg.RazorpayKeySecret)

	courseHandler := handlers.NewCourseHandler(st)
	enrollmentHandler := handlers.NewEnrollmentHandler(enrollmentService)
	paymentHandler := handlers.NewPaymentHandler(enrollmentService, cfg.RazorpayKeyID)

	app := fiber.New(fiber.Config{
		AppName:       "HeyyGuru Enrollment API",
		CaseSensitive: true,
		ReadTimeout:   15 * time.Second,
		WriteTimeout:  15 * time.Second,
		IdleTimeout:   60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			log.Printf("[ERROR] %v | Path: %s | Method: %s", err, c.Path(), c.Method())
			return c.Status(code).JSON(fiber.Map{"message": err.Error()})
		},
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "success",
			"message": "Welcome to HeyyGuru Enrollment API",
		})
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	routes.CourseRoutes(app, courseHandler)
	routes.EnrollmentRoutes(app, enrollmentHandler)
	routes.PaymentRoutes(app, paymentHandler)

	log.Printf("✅ Server is running on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("🔥 Server failed to start: %v", err)
	}
}
