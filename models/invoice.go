package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Invoice struct {
	ID           string        `gorm:"type:uuid;primaryKey" json:"id"`
	InvoiceTitle string        `gorm:"not null" json:"invoice_title"`
	Status       InvoiceStatus `gorm:"not null" json:"status"`
	Amount       float64       `json:"amount"`
	PersonID     string        `gorm:"type:uuid" json:"primary_person_id"`

	AttachmentName string `json:"attachment_name"`
	AttachmentURL  string `json:"attachment_url"`

	Branch    string    `gorm:"not null;index" json:"branch"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (i *Invoice) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
