package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Task is a follow-up work item for an officer. Automated tasks carry a
// SourceRef naming the record that caused them; (SourceRef, Title) is the
// dedup key for automated creation. Manual tasks have an empty SourceRef
// and bypass dedup entirely.
type Task struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	Title   string     `gorm:"column:task_title;not null" json:"task_title"`
	DueDate string     `gorm:"type:date" json:"due_date"`
	Status  TaskStatus `gorm:"not null" json:"status"`

	TaskType TaskType `gorm:"not null" json:"task_type"`

	LinkedInteractionID string `gorm:"type:uuid" json:"linked_interaction_id"`
	PersonID            string `gorm:"type:uuid;index" json:"primary_person_id"`

	AssignedOfficerID string `gorm:"index" json:"assigned_officer_id"`

	// SourceRef is a stable "collection/id" string, e.g. "products/abc123".
	SourceRef string `gorm:"index" json:"source_ref"`

	Branch    string `gorm:"not null;index" json:"branch"`
	CreatedBy string `json:"created_by"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
