package payments

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/go-resty/resty/v2"
)

const razorpayAPIBase = "https://api.razorpay.com/v1"

// Order is the subset of the Razorpay order object the service needs.
type Order struct {
	ID       string `json:"id"`
	Amount   int    `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

// Gateway is the payment-provider contract the enrollment workflow depends
// on. Amounts are in the currency's minor unit (paise for INR).
type Gateway interface {
	CreateOrder(amountMinorUnits int, currency, receipt string, autoCapture bool) (*Order, error)
}

type RazorpayService struct {
	client    *resty.Client
	keyID     string
	keySecret string
}

func NewRazorpayService(keyID, keySecret string) *RazorpayService {
	client := resty.New().
		SetBaseURL(razorpayAPIBase).
		SetBasicAuth(keyID, keySecret)
	return &RazorpayService{client: client, keyID: keyID, keySecret: keySecret}
}

// SetBaseURL points the client at a different API host. Used by tests.
func (r *RazorpayService) SetBaseURL(baseURL string) {
	r.client.SetBaseURL(baseURL)
}

func (r *RazorpayService) CreateOrder(amountMinorUnits int, currency, receipt string, autoCapture bool) (*Order, error) {
	capture := 0
	if autoCapture {
		capture = 1
	}

	var order Order
	resp, err := r.client.R().
		SetBody(map[string]interface{}{
			"amount":          amountMinorUnits,
			"currency":        currency,
			"receipt":         receipt,
			"payment_capture": capture,
		}).
		SetResult(&order).
		Post("/orders")
	if err != nil {
		return nil, fmt.Errorf("razorpay create order: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("razorpay create order failed with status %d: %s", resp.StatusCode(), resp.String())
	}
	if order.ID == "" {
		return nil, fmt.Errorf("razorpay create order: response missing order id")
	}

	return &order, nil
}

// VerifySignature checks that signature is the hex HMAC-SHA256 of
// "<orderID>|<paymentID>" under secret. This is the trust boundary of the
// whole payment flow: only the gateway and this server hold the secret.
func VerifySignature(orderID, paymentID, signature, secret string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
