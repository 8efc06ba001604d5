package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	CourseTypeAarambh     = "aarambh"
	CourseTypeAtal        = "atal"
	CourseTypeAtalPremium = "atal-premium"
)

type Course struct {
	ID       string   `gorm:"type:uuid;primary_key" json:"id"`
	Name     string   `gorm:"size:255;not null" json:"name"`
	Tagline  string   `gorm:"size:255" json:"tagline"`
	Duration string   `gorm:"size:100" json:"duration"`
	Mode     string   `gorm:"size:100" json:"mode"`
	Price    int      `gorm:"not null" json:"price"`
	Subjects []string `gorm:"serializer:json" json:"subjects"`
	Features []string `gorm:"serializer:json" json:"features"`
	Benefits []string `gorm:"serializer:json" json:"benefits"`
	// Unique so a second seed run conflicts instead of duplicating rows.
	Type string `gorm:"size:50;not null;uniqueIndex" json:"type"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (c *Course) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
