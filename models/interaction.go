package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Interaction records a touchpoint with a person (field visit, call, review).
// Dates are plain YYYY-MM-DD calendar strings; no timezone handling applies.
type Interaction struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	Title           string             `gorm:"column:interaction_title;not null" json:"interaction_title"`
	InteractionType InteractionType    `json:"interaction_type"`
	InteractionDate string             `gorm:"type:date" json:"interaction_date"`
	Outcome         InteractionOutcome `json:"outcome"`

	// NextActionDate is officer-supplied. Combined with a Follow-up Required
	// outcome it becomes the due date of the generated follow-up task.
	NextActionDate string `gorm:"type:date" json:"next_action_date"`

	PersonID        string `gorm:"type:uuid;not null;index" json:"primary_person_id"`
	LinkedProductID string `gorm:"type:uuid" json:"linked_product_id"`

	FieldOfficerNotes string `json:"field_officer_notes"`

	Branch            string `gorm:"not null;index" json:"branch"`
	AssignedOfficerID string `json:"assigned_officer_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (i *Interaction) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}

// NeedsFollowUp reports whether the interaction qualifies for an automated
// follow-up task at save time.
func (i *Interaction) NeedsFollowUp() bool {
	return i.Outcome == OutcomeFollowUpRequired && i.NextActionDate != ""
}
