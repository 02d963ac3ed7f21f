package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AutomationLog is an append-only audit record written alongside every
// automated task creation. Entries are never updated or deleted.
type AutomationLog struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	Action    string `gorm:"not null" json:"action"`
	SourceRef string `gorm:"index" json:"source_ref"`
	Branch    string `gorm:"not null;index" json:"branch"`
	CreatedBy string `json:"created_by"`

	// Details carries at least the task title and task type.
	Details datatypes.JSON `json:"details"`

	CreatedAt time.Time `json:"created_at"`
}

func (AutomationLog) TableName() string { return "automation_logs" }

func (l *AutomationLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}
