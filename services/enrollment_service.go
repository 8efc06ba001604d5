package services

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/heyyguru/enrollment_backend/models"
	"github.com/heyyguru/enrollment_backend/payments"
	"github.com/heyyguru/enrollment_backend/store"
	"gorm.io/gorm"
)

var validate = validator.New()

func init() {
	// Report validation problems under the JSON field names clients sent.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

type EnrollRequest struct {
	Name        string  `json:"name" validate:"required"`
	Class       string  `json:"class" validate:"required"`
	Board       string  `json:"board" validate:"required"`
	ParentName  string  `json:"parentName" validate:"required"`
	ParentPhone string  `json:"parentPhone" validate:"required"`
	Email       *string `json:"email" validate:"omitempty,email"`
	CourseID    string  `json:"courseId" validate:"required"`
}

type EnrollResponse struct {
	OrderID      string `json:"orderId"`
	Amount       int    `json:"amount"`
	Currency     string `json:"currency"`
	StudentID    string `json:"studentId"`
	EnrollmentID string `json:"enrollmentId"`
	PaymentID    string `json:"paymentId"`
	CourseName   string `json:"courseName"`
}

// EnrollmentService orchestrates the catalog, the student/enrollment/payment
// records and the payment gateway. All collaborators are injected.
type EnrollmentService struct {
	store         *store.Store
	gateway       payments.Gateway
	gatewaySecret string
}

func NewEnrollmentService(st *store.Store, gateway payments.Gateway, gatewaySecret string) *EnrollmentService {
	return &EnrollmentService{
		store:         st,
		gateway:       gateway,
		gatewaySecret: gatewaySecret,
	}
}

// Enroll runs the enrollment sequence: resolve course, create student,
// create pending enrollment, create a gateway order, record the pending
// payment. Steps already committed are NOT rolled back when a later step
// fails; reconciliation of orphaned rows happens out of band.
func (s *EnrollmentService) Enroll(req EnrollRequest) (*EnrollResponse, error) {
	if err := validate.Struct(req); err != nil {
		return nil, asValidationError(err)
	}

	course, err := s.store.GetCourse(req.CourseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, fmt.Errorf("failed to fetch course: %w", err)
	}

	student := models.Student{
		Name:        req.Name,
		Class:       req.Class,
		Board:       req.Board,
		ParentName:  req.ParentName,
		ParentPhone: req.ParentPhone,
		Email:       req.Email,
	}
	if err := s.store.CreateStudent(&student); err != nil {
		return nil, fmt.Errorf("failed to create student: %w", err)
	}

	enrollment := models.Enrollment{
		StudentID: student.ID,
		CourseID:  course.ID,
		Amount:    course.Price,
		Status:    models.EnrollmentStatusPending,
	}
	if err := s.store.CreateEnrollment(&enrollment); err != nil {
		return nil, fmt.Errorf("failed to create enrollment: %w", err)
	}

	// The gateway bills in the currency's minor unit (paise).
	orderAmount := course.Price * 100
	receipt := fmt.Sprintf("enroll_%d", time.Now().UnixMilli())

	order, err := s.gateway.CreateOrder(orderAmount, "INR", receipt, true)
	if err != nil {
		return nil, &GatewayError{Err: err}
	}

	payment := models.Payment{
		EnrollmentID:    enrollment.ID,
		RazorpayOrderID: order.ID,
		Amount:          course.Price,
		Currency:        "INR",
		Status:          models.PaymentStatusPending,
	}
	if err := s.store.CreatePayment(&payment); err != nil {
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}

	return &EnrollResponse{
		OrderID:      order.ID,
		Amount:       orderAmount,
		Currency:     "INR",
		StudentID:    student.ID,
		EnrollmentID: enrollment.ID,
		PaymentID:    payment.ID,
		CourseName:   course.Name,
	}, nil
}

// VerifyPayment checks the gateway signature and, only then, completes the
// payment and its enrollment. The signature check runs before any lookup or
// write so an attacker-supplied request can never touch state.
func (s *EnrollmentService) VerifyPayment(paymentID, razorpayPaymentID, razorpayOrderID, signature string) error {
	fields := map[string]string{}
	if paymentID == "" {
		fields["paymentId"] = "paymentId is required"
	}
	if razorpayPaymentID == "" {
		fields["razorpayPaymentId"] = "razorpayPaymentId is required"
	}
	if razorpayOrderID == "" {
		fields["razorpayOrderId"] = "razorpayOrderId is required"
	}
	if signature == "" {
		fields["razorpaySignature"] = "razorpaySignature is required"
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}

	if !payments.VerifySignature(razorpayOrderID, razorpayPaymentID, signature, s.gatewaySecret) {
		return ErrInvalidSignature
	}

	payment, err := s.store.GetPayment(paymentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPaymentNotFound
		}
		return fmt.Errorf("failed to fetch payment: %w", err)
	}

	if err := s.store.UpdatePaymentStatus(payment.ID, models.PaymentStatusCompleted, razorpayPaymentID); err != nil {
		return fmt.Errorf("failed to update payment: %w", err)
	}
	if err := s.store.UpdateEnrollmentStatus(payment.EnrollmentID, models.EnrollmentStatusCompleted); err != nil {
		return fmt.Errorf("failed to update enrollment: %w", err)
	}

	return nil
}

func asValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fmt.Sprintf("failed on the '%s' rule", fe.Tag())
	}
	return &ValidationError{Fields: fields}
}
