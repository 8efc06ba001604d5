package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Student is created fresh on every enrollment attempt; there is no account
// or dedup concept.
type Student struct {
	ID          string  `gorm:"type:uuid;primary_key" json:"id"`
	Name        string  `gorm:"size:255;not null" json:"name"`
	Class       string  `gorm:"size:50;not null" json:"class"`
	Board       string  `gorm:"size:100;not null" json:"board"`
	ParentName  string  `gorm:"size:255;not null" json:"parentName"`
	ParentPhone string  `gorm:"size:20;not null" json:"parentPhone"`
	Email       *string `gorm:"size:255" json:"email,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (s *Student) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
