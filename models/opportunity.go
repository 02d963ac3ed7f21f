package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Opportunity struct {
	ID              string           `gorm:"type:uuid;primaryKey" json:"id"`
	OpportunityName string           `gorm:"not null" json:"opportunity_name"`
	Stage           OpportunityStage `gorm:"not null" json:"stage"`
	Value           float64          `json:"value"`
	OwnerUserID     string           `json:"owner_user_id"`
	PersonID        string           `gorm:"type:uuid" json:"primary_person_id"`
	Branch          string           `gorm:"not null;index" json:"branch"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

func (Opportunity) TableName() string { return "opportunities" }

func (o *Opportunity) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}
