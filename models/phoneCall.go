package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PhoneCall struct {
	ID       string      `gorm:"type:uuid;primaryKey" json:"id"`
	CallTime string      `json:"call_time"`
	Duration int         `json:"duration"`
	Outcome  CallOutcome `json:"outcome"`
	PersonID string      `gorm:"type:uuid" json:"primary_person_id"`
	Notes    string      `json:"notes"`
	Branch   string      `gorm:"not null;index" json:"branch"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *PhoneCall) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
