package handlers_test

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/heyyguru/enrollment_backend/database"
	"github.com/heyyguru/enrollment_backend/handlers"
	"github.com/heyyguru/enrollment_backend/models"
	"github.com/heyyguru/enrollment_backend/payments"
	"github.com/heyyguru/enrollment_backend/routes"
	"github.com/heyyguru/enrollment_backend/services"
	"github.com/heyyguru/enrollment_backend/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const (
	testKeyID  = "rzp_test_default"
	testSecret = "secret_default"
)

type stubGateway struct {
	nextOrderID string
	err         error
}

func (g *stubGateway) CreateOrder(amountMinorUnits int, currency, receipt string, autoCapture bool) (*payments.Order, error) {
	if g.err != nil {
		return nil, g.err
	}
	return &payments.Order{ID: g.nextOrderID, Amount: amountMinorUnits, Currency: currency, Receipt: receipt, Status: "created"}, nil
}

func newTestApp(t *testing.T) (*fiber.App, *store.Store) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	require.NoError(t, database.SeedCourses(db))

	st := store.New(db)
	gateway := &stubGateway{nextOrderID: "order_stub_1"}
	svc := services.NewEnrollmentService(st, gateway, testSecret)

	app := fiber.New()
	routes.CourseRoutes(app, handlers.NewCourseHandler(st))
	routes.EnrollmentRoutes(app, handlers.NewEnrollmentHandler(svc))
	routes.PaymentRoutes(app, handlers.NewPaymentHandler(svc, testKeyID))

	return app, st
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	return resp.StatusCode, result
}

func enrollBody(courseID string) map[string]interface{} {
	return map[string]interface{}{
		"name":        "Asha Verma",
		"class":       "6",
		"board":       "CBSE",
		"parentName":  "Ravi Verma",
		"parentPhone": "9876543210",
		"email":       "asha@example.com",
		"courseId":    courseID,
	}
}

func sign(orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(testSecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestGetCourses(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest("GET", "/api/courses", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var courses []models.Course
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&courses))
	require.Len(t, courses, 3)

	types := []string{courses[0].Type, courses[1].Type, courses[2].Type}
	assert.ElementsMatch(t, []string{"aarambh", "atal", "atal-premium"}, types)
}

// The class filter is a documented no-op: any class level returns the full
// catalog.
func TestGetCoursesByClassReturnsAll(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest("GET", "/api/courses/class/8", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var courses []models.Course
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&courses))
	assert.Len(t, courses, 3)
}

func TestGetCourse(t *testing.T) {
	app, st := newTestApp(t)

	all, err := st.GetAllCourses()
	require.NoError(t, err)

	status, result := doJSON(t, app, "GET", "/api/courses/"+all[0].ID, nil)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, all[0].Name, result["name"])

	status, result = doJSON(t, app, "GET", "/api/courses/"+uuid.NewString(), nil)
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "Course not found", result["message"])
}

func TestEnrollEndpoint(t *testing.T) {
	app, st := newTestApp(t)

	course, err := st.GetAllCourses()
	require.NoError(t, err)
	aarambh := course[0]
	for _, c := range course {
		if c.Type == models.CourseTypeAarambh {
			aarambh = c
		}
	}

	status, result := doJSON(t, app, "POST", "/api/enroll", enrollBody(aarambh.ID))
	require.Equal(t, fiber.StatusOK, status)

	assert.Equal(t, "order_stub_1", result["orderId"])
	assert.Equal(t, float64(900), result["amount"]) // 9 rupees in paise
	assert.Equal(t, "INR", result["currency"])
	assert.Equal(t, "Aarambh Course", result["courseName"])
	assert.NotEmpty(t, result["studentId"])
	assert.NotEmpty(t, result["enrollmentId"])
	assert.NotEmpty(t, result["paymentId"])
}

func TestEnrollValidationError(t *testing.T) {
	app, _ := newTestApp(t)

	body := enrollBody("")
	delete(body, "name")
	body["courseId"] = ""

	status, result := doJSON(t, app, "POST", "/api/enroll", body)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Validation error", result["message"])

	errs, ok := result["errors"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "courseId")
}

func TestEnrollUnknownCourse(t *testing.T) {
	app, _ := newTestApp(t)

	status, result := doJSON(t, app, "POST", "/api/enroll", enrollBody(uuid.NewString()))
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "Course not found", result["message"])
}

func TestVerifyPaymentEndpoint(t *testing.T) {
	app, st := newTestApp(t)

	courses, err := st.GetAllCourses()
	require.NoError(t, err)

	status, enrollResult := doJSON(t, app, "POST", "/api/enroll", enrollBody(courses[0].ID))
	require.Equal(t, fiber.StatusOK, status)

	orderID := enrollResult["orderId"].(string)
	paymentID := enrollResult["paymentId"].(string)
	extPaymentID := "pay_live_001"

	status, result := doJSON(t, app, "POST", "/api/verify-payment", map[string]interface{}{
		"paymentId":         paymentID,
		"razorpayPaymentId": extPaymentID,
		"razorpayOrderId":   orderID,
		"razorpaySignature": sign(orderID, extPaymentID),
	})
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Payment verified successfully", result["message"])
	assert.Equal(t, "completed", result["status"])

	payment, err := st.GetPayment(paymentID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusCompleted, payment.Status)

	enrollment, err := st.GetEnrollment(payment.EnrollmentID)
	require.NoError(t, err)
	assert.Equal(t, models.EnrollmentStatusCompleted, enrollment.Status)
}

func TestVerifyPaymentBadSignature(t *testing.T) {
	app, st := newTestApp(t)

	courses, err := st.GetAllCourses()
	require.NoError(t, err)

	status, enrollResult := doJSON(t, app, "POST", "/api/enroll", enrollBody(courses[0].ID))
	require.Equal(t, fiber.StatusOK, status)
	paymentID := enrollResult["paymentId"].(string)

	status, result := doJSON(t, app, "POST", "/api/verify-payment", map[string]interface{}{
		"paymentId":         paymentID,
		"razorpayPaymentId": "pay_live_001",
		"razorpayOrderId":   enrollResult["orderId"],
		"razorpaySignature": "deadbeef",
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Invalid payment signature", result["message"])

	payment, err := st.GetPayment(paymentID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPending, payment.Status)
}

func TestVerifyPaymentMissingFields(t *testing.T) {
	app, _ := newTestApp(t)

	status, result := doJSON(t, app, "POST", "/api/verify-payment", map[string]interface{}{
		"paymentId": "some-id",
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Missing required payment data", result["message"])
}

func TestVerifyPaymentUnknownPayment(t *testing.T) {
	app, _ := newTestApp(t)

	extPaymentID := "pay_live_001"
	orderID := "order_stub_1"
	status, result := doJSON(t, app, "POST", "/api/verify-payment", map[string]interface{}{
		"paymentId":         uuid.NewString(),
		"razorpayPaymentId": extPaymentID,
		"razorpayOrderId":   orderID,
		"razorpaySignature": sign(orderID, extPaymentID),
	})
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "Payment not found", result["message"])
}

func TestGetRazorpayKey(t *testing.T) {
	app, _ := newTestApp(t)

	status, result := doJSON(t, app, "GET", "/api/razorpay-key", nil)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, testKeyID, result["key"])
}
