package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
)

type Payment struct {
	ID              string `gorm:"type:uuid;primary_key" json:"id"`
	EnrollmentID    string `gorm:"type:uuid;not null" json:"enrollmentId"`
	RazorpayOrderID string `gorm:"size:255;not null" json:"razorpayOrderId"`
	// Set only when the payment completes.
	RazorpayPaymentID *string `gorm:"size:255" json:"razorpayPaymentId,omitempty"`
	Amount            int     `gorm:"not null" json:"amount"`
	Currency          string  `gorm:"size:3;not null" json:"currency"`
	Status            string  `gorm:"size:20;not null;default:'pending'" json:"status"`

	Enrollment Enrollment `gorm:"foreignkey:EnrollmentID" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
