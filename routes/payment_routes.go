package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/heyyguru/enrollment_backend/handlers"
)

func PaymentRoutes(app *fiber.App, h *handlers.PaymentHandler) {
	api := app.Group("/api")

	api.Post("/verify-payment", h.VerifyPayment)
	api.Get("/razorpay-key", h.GetRazorpayKey)
}
