package models

import "time"

// UserProfile maps an authenticated officer uid to a display name, role and
// branch. The branch on this row scopes every request the officer makes; a
// profile without a branch cannot use the API.
type UserProfile struct {
	UID         string   `gorm:"primaryKey" json:"uid"`
	DisplayName string   `gorm:"not null" json:"display_name"`
	Role        UserRole `gorm:"not null" json:"role"`
	Branch      string   `json:"branch"`
	Email       string   `json:"email"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (UserProfile) TableName() string { return "user_profiles" }
