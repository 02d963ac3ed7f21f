package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Household is the economic unit behind a person. At most one household
// exists per (branch, person); writes go through an upsert.
type Household struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	HouseholdName string `gorm:"not null" json:"household_name"`

	// PersonID references the owning person, one-to-one.
	PersonID string `gorm:"type:uuid;not null;index" json:"primary_person_id"`

	PrimaryEarningSource EarningSource      `json:"primary_earning_source"`
	SeasonalityProfile   SeasonalityProfile `json:"seasonality_profile"`

	Branch            string `gorm:"not null;index" json:"branch"`
	AssignedOfficerID string `json:"assigned_officer_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (h *Household) BeforeCreate(tx *gorm.DB) error {
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	return nil
}
