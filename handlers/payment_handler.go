package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/heyyguru/enrollment_backend/services"
)

type PaymentHandler struct {
	service       *services.EnrollmentService
	razorpayKeyID string
}

func NewPaymentHandler(service *services.EnrollmentService, razorpayKeyID string) *PaymentHandler {
	return &PaymentHandler{service: service, razorpayKeyID: razorpayKeyID}
}

type verifyPaymentRequest struct {
	PaymentID         string `json:"paymentId"`
	RazorpayPaymentID string `json:"razorpayPaymentId"`
	RazorpayOrderID   string `json:"razorpayOrderId"`
	RazorpaySignature string `json:"razorpaySignature"`
}

func (h *PaymentHandler) VerifyPayment(c *fiber.Ctx) error {
	var req verifyPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Cannot parse JSON"})
	}

	err := h.service.VerifyPayment(req.PaymentID, req.RazorpayPaymentID, req.RazorpayOrderID, req.RazorpaySignature)
	if err != nil {
		var verr *services.ValidationError
		switch {
		case errors.As(err, &verr):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Missing required payment data",
				"errors":  verr.Fields,
			})
		case errors.Is(err, services.ErrInvalidSignature):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid payment signature"})
		case errors.Is(err, services.ErrPaymentNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Payment not found"})
		default:
			log.Printf("Payment verification error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to verify payment"})
		}
	}

	return c.JSON(fiber.Map{
		"message": "Payment verified successfully",
		"status":  "completed",
	})
}

// GetRazorpayKey hands the public key id to the checkout front-end. The
// secret never leaves the server.
func (h *PaymentHandler) GetRazorpayKey(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"key": h.razorpayKeyID})
}
