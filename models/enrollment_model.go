package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	EnrollmentStatusPending   = "pending"
	EnrollmentStatusCompleted = "completed"
)

type Enrollment struct {
	ID        string `gorm:"type:uuid;primary_key" json:"id"`
	StudentID string `gorm:"type:uuid;not null" json:"studentId"`
	CourseID  string `gorm:"type:uuid;not null" json:"courseId"`
	// Copied from the course price at creation; never recomputed.
	Amount int    `gorm:"not null" json:"amount"`
	Status string `gorm:"size:20;not null;default:'pending'" json:"status"`

	Student Student `gorm:"foreignkey:StudentID" json:"-"`
	Course  Course  `gorm:"foreignkey:CourseID" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (e *Enrollment) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
