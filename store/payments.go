package store

import "github.com/heyyguru/enrollment_backend/models"

func (s *Store) CreatePayment(payment *models.Payment) error {
	return s.db.Create(payment).Error
}

func (s *Store) GetPayment(id string) (*models.Payment, error) {
	var payment models.Payment
	if err := s.db.Where("id = ?", id).First(&payment).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

// UpdatePaymentStatus sets the status and, when razorpayPaymentID is
// non-empty, records the gateway's payment id alongside it.
func (s *Store) UpdatePaymentStatus(id, status, razorpayPaymentID string) error {
	updates := map[string]interface{}{"status": status}
	if razorpayPaymentID != "" {
		updates["razorpay_payment_id"] = razorpayPaymentID
	}
	return s.db.Model(&models.Payment{}).
		Where("id = ?", id).
		Updates(updates).Error
}
