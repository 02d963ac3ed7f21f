package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product is a financial product (loan, insurance, savings, pension) held by
// a person. Type and status transitions feed the automation engine.
type Product struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	ProductName string        `gorm:"not null" json:"product_name"`
	ProductType ProductType   `gorm:"not null" json:"product_type"`
	Status      ProductStatus `gorm:"not null" json:"status"`
	Amount      float64       `json:"amount"`

	PersonID          string `gorm:"type:uuid;not null;index" json:"primary_person_id"`
	AssignedOfficerID string `json:"assigned_officer_id"`
	Branch            string `gorm:"not null;index" json:"branch"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// IsActiveLoan reports whether the product is in the (Loan, Active) state
// the business-review rule triggers on.
func (p *Product) IsActiveLoan() bool {
	return p.ProductType == ProductLoan && p.Status == ProductActive
}
