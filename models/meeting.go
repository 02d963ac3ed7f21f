package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Meeting struct {
	ID           string `gorm:"type:uuid;primaryKey" json:"id"`
	MeetingTitle string `gorm:"not null" json:"meeting_title"`
	ScheduledAt  string `json:"scheduled_at"`
	Location     string `json:"location"`

	// AttendeeIDs is a JSON array of person ids.
	AttendeeIDs datatypes.JSON `json:"attendee_ids"`

	Notes     string    `json:"notes"`
	Branch    string    `gorm:"not null;index" json:"branch"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (m *Meeting) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
