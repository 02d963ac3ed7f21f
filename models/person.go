package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Person is a primary customer record, scoped to one branch.
type Person struct {
	// ID is a unique identifier for the person, stored as a UUID.
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	FullName     string `gorm:"not null" json:"full_name"`
	MobileNumber string `json:"mobile_number"`
	Village      string `json:"village"`

	// Branch scopes every read and write; it is stamped from the acting
	// officer's profile and never inferred.
	Branch string `gorm:"not null;index" json:"branch"`

	Role      PersonRole `json:"role"`
	PGPDStage PGPDStage  `json:"pgpd_stage"`

	AssignedOfficerID string `json:"assigned_officer_id"`

	// RiskFlags is a JSON array of RiskFlag values.
	RiskFlags datatypes.JSON `json:"risk_flags"`

	// RiskStatus is derived from RiskFlags on every save, never edited.
	RiskStatus RiskStatus `json:"risk_status"`

	Notes string `json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Person) TableName() string { return "people" }

func (p *Person) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// FlagList decodes RiskFlags into a typed slice. An empty or absent JSON
// value decodes to nil.
func (p *Person) FlagList() []RiskFlag {
	if len(p.RiskFlags) == 0 {
		return nil
	}
	var flags []RiskFlag
	if err := json.Unmarshal(p.RiskFlags, &flags); err != nil {
		return nil
	}
	return flags
}

// SetFlags encodes the given flags and recomputes the derived risk status.
func (p *Person) SetFlags(flags []RiskFlag) error {
	if flags == nil {
		flags = []RiskFlag{}
	}
	raw, err := json.Marshal(flags)
	if err != nil {
		return err
	}
	p.RiskFlags = datatypes.JSON(raw)
	p.RiskStatus = RiskStatusFor(flags)
	return nil
}
