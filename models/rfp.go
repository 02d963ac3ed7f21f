package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RFP is a request-for-proposal record, optionally carrying an uploaded
// attachment stored in the object store.
type RFP struct {
	ID       string    `gorm:"type:uuid;primaryKey" json:"id"`
	RFPTitle string    `gorm:"not null" json:"rfp_title"`
	Status   RFPStatus `gorm:"not null" json:"status"`
	DueDate  string    `gorm:"type:date" json:"due_date"`
	PersonID string    `gorm:"type:uuid" json:"primary_person_id"`

	AttachmentName string `json:"attachment_name"`
	AttachmentURL  string `json:"attachment_url"`

	Branch    string    `gorm:"not null;index" json:"branch"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (RFP) TableName() string { return "rfps" }

func (r *RFP) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
