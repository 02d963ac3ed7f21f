package services

import (
	"errors"
	"fmt"
	"log"

	model "github.com/kavyansh10/GraminSetu/models"
	"gorm.io/gorm"
)

// UserService manages officer profiles, the source of the branch that
// scopes every other operation.
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

type UserProfileInput struct {
	DisplayName string
	Role        model.UserRole
	Branch      string
	Email       string
}

// Upsert creates or replaces the profile row for the given uid.
func (s *UserService) Upsert(uid string, in UserProfileInput) (*model.UserProfile, error) {
	if in.DisplayName == "" {
		return nil, fmt.Errorf("%w: display_name is required", ErrInvalidInput)
	}
	if !in.Role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, in.Role)
	}

	var profile model.UserProfile
	err := s.db.First(&profile, "uid = ?", uid).Error
	switch {
	case err == nil:
		profile.DisplayName = in.DisplayName
		profile.Role = in.Role
		profile.Branch = in.Branch
		profile.Email = in.Email
		if err := s.db.Save(&profile).Error; err != nil {
			log.Printf("[Upsert] Error updating profile %s: %v", uid, err)
			return nil, fmt.Errorf("failed to update profile: %w", err)
		}
		return &profile, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		profile = model.UserProfile{
			UID:         uid,
			DisplayName: in.DisplayName,
			Role:        in.Role,
			Branch:      in.Branch,
			Email:       in.Email,
		}
		if err := s.db.Create(&profile).Error; err != nil {
			log.Printf("[Upsert] Error creating profile %s: %v", uid, err)
			return nil, fmt.Errorf("failed to create profile: %w", err)
		}
		return &profile, nil
	default:
		log.Printf("[Upsert] Error looking up profile %s: %v", uid, err)
		return nil, err
	}
}

// Get returns the profile for a uid, or gorm.ErrRecordNotFound.
func (s *UserService) Get(uid string) (*model.UserProfile, error) {
	var profile model.UserProfile
	if err := s.db.First(&profile, "uid = ?", uid).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}
