package services

import (
	"errors"
	"fmt"
	"log"

	model "github.com/kavyansh10/GraminSetu/models"
	"gorm.io/gorm"
)

// ErrInvalidInput marks validation failures so controllers can answer 400
// instead of 500.
var ErrInvalidInput = errors.New("invalid input")

// PersonService handles people and their households, and feeds person
// changes through the automation engine.
type PersonService struct {
	db     *gorm.DB
	tasks  *TaskService
	search *SearchService
}

func NewPersonService(db *gorm.DB, tasks *TaskService, search *SearchService) *PersonService {
	return &PersonService{db: db, tasks: tasks, search: search}
}

// PersonInput is the officer-editable slice of a person record. Branch and
// derived risk status are never part of it.
type PersonInput struct {
	FullName          string
	MobileNumber      string
	Village           string
	Role              model.PersonRole
	PGPDStage         model.PGPDStage
	AssignedOfficerID string
	RiskFlags         []model.RiskFlag
	Notes             string
}

type HouseholdInput struct {
	HouseholdName        string
	PrimaryEarningSource model.EarningSource
	SeasonalityProfile   model.SeasonalityProfile
	AssignedOfficerID    string
}

func (in PersonInput) validate() error {
	if in.FullName == "" {
		return fmt.Errorf("%w: full_name is required", ErrInvalidInput)
	}
	if in.Role != "" && !in.Role.Valid() {
		return fmt.Errorf("%w: unknown role %q", ErrInvalidInput, in.Role)
	}
	if in.PGPDStage != "" && !in.PGPDStage.Valid() {
		return fmt.Errorf("%w: unknown pgpd_stage %q", ErrInvalidInput, in.PGPDStage)
	}
	for _, f := range in.RiskFlags {
		if !f.Valid() {
			return fmt.Errorf("%w: unknown risk flag %q", ErrInvalidInput, f)
		}
	}
	return nil
}

func (in HouseholdInput) validate() error {
	if in.HouseholdName == "" {
		return fmt.Errorf("%w: household_name is required", ErrInvalidInput)
	}
	if in.PrimaryEarningSource != "" && !in.PrimaryEarningSource.Valid() {
		return fmt.Errorf("%w: unknown earning source %q", ErrInvalidInput, in.PrimaryEarningSource)
	}
	if in.SeasonalityProfile != "" && !in.SeasonalityProfile.Valid() {
		return fmt.Errorf("%w: unknown seasonality profile %q", ErrInvalidInput, in.SeasonalityProfile)
	}
	return nil
}

// CreateWithHousehold creates a person, optionally an attached household,
// and the creation-time assessment task. The task is inserted directly:
// a brand-new person id cannot have a colliding source_ref, so the dedup
// check is skipped on this one path.
func (s *PersonService) CreateWithHousehold(branch, actorID string, in PersonInput, hh *HouseholdInput) (*model.Person, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	if hh != nil {
		if err := hh.validate(); err != nil {
			return nil, err
		}
	}

	person := model.Person{
		FullName:          in.FullName,
		MobileNumber:      in.MobileNumber,
		Village:           in.Village,
		Branch:            branch,
		Role:              in.Role,
		PGPDStage:         in.PGPDStage,
		AssignedOfficerID: in.AssignedOfficerID,
		Notes:             in.Notes,
	}
	if err := person.SetFlags(in.RiskFlags); err != nil {
		return nil, fmt.Errorf("failed to encode risk flags: %w", err)
	}
	if err := s.db.Create(&person).Error; err != nil {
		log.Printf("[CreateWithHousehold] Error creating person: %v", err)
		return nil, fmt.Errorf("failed to create person: %w", err)
	}
	log.Printf("[CreateWithHousehold] Person created: %s (%s)", person.FullName, person.ID)

	if hh != nil {
		if _, err := s.UpsertHousehold(branch, person.ID, *hh); err != nil {
			return nil, err
		}
	}

	intents := Evaluate(ChangeEvent{
		Kind:           KindPerson,
		Branch:         branch,
		ActorOfficerID: actorID,
		SourceRef:      "people/" + person.ID,
		Previous:       nil,
		Current:        &person,
	})
	for _, intent := range intents {
		if _, err := s.tasks.CreateTask(intent); err != nil {
			return nil, err
		}
	}

	s.search.IndexPerson(&person)
	return &person, nil
}

// Update applies officer edits, recomputes the derived risk status and runs
// the risk-flag rule on the empty-to-non-empty edge.
func (s *PersonService) Update(branch, actorID, id string, in PersonInput) (*model.Person, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	var person model.Person
	if err := s.db.Where("branch = ?", branch).First(&person, "id = ?", id).Error; err != nil {
		log.Printf("[Update] Error fetching person %s: %v", id, err)
		return nil, err
	}
	previous := person

	person.FullName = in.FullName
	person.MobileNumber = in.MobileNumber
	person.Village = in.Village
	person.Role = in.Role
	person.PGPDStage = in.PGPDStage
	person.AssignedOfficerID = in.AssignedOfficerID
	person.Notes = in.Notes
	if err := person.SetFlags(in.RiskFlags); err != nil {
		return nil, fmt.Errorf("failed to encode risk flags: %w", err)
	}
	if err := s.db.Save(&person).Error; err != nil {
		log.Printf("[Update] Error updating person %s: %v", id, err)
		return nil, fmt.Errorf("failed to update person: %w", err)
	}

	intents := Evaluate(ChangeEvent{
		Kind:           KindPerson,
		Branch:         branch,
		ActorOfficerID: actorID,
		SourceRef:      "people/" + person.ID,
		Previous:       &previous,
		Current:        &person,
	})
	if err := s.tasks.ApplyIntents(intents); err != nil {
		return nil, err
	}

	s.search.IndexPerson(&person)
	return &person, nil
}

func (s *PersonService) Get(branch, id string) (*model.Person, error) {
	var person model.Person
	if err := s.db.Where("branch = ?", branch).First(&person, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &person, nil
}

func (s *PersonService) List(branch string) ([]model.Person, error) {
	var people []model.Person
	if err := s.db.Where("branch = ?", branch).Order("created_at desc").Find(&people).Error; err != nil {
		log.Printf("[List] Error fetching people for branch %s: %v", branch, err)
		return nil, err
	}
	return people, nil
}

// ListAtRisk returns people whose derived risk status is At Risk.
func (s *PersonService) ListAtRisk(branch string) ([]model.Person, error) {
	var people []model.Person
	if err := s.db.Where("branch = ? AND risk_status = ?", branch, model.RiskAtRisk).Find(&people).Error; err != nil {
		log.Printf("[ListAtRisk] Error fetching at-risk people for branch %s: %v", branch, err)
		return nil, err
	}
	return people, nil
}

// HouseholdFor returns the person's household, or nil when none exists.
func (s *PersonService) HouseholdFor(branch, personID string) (*model.Household, error) {
	var hh model.Household
	err := s.db.Where("branch = ? AND person_id = ?", branch, personID).First(&hh).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		log.Printf("[HouseholdFor] Error fetching household for person %s: %v", personID, err)
		return nil, err
	}
	return &hh, nil
}

// UpsertHousehold keeps the one-household-per-person invariant: the existing
// row is updated in place, otherwise a new one is inserted.
func (s *PersonService) UpsertHousehold(branch, personID string, in HouseholdInput) (*model.Household, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	var existing model.Household
	err := s.db.Where("branch = ? AND person_id = ?", branch, personID).First(&existing).Error
	switch {
	case err == nil:
		existing.HouseholdName = in.HouseholdName
		existing.PrimaryEarningSource = in.PrimaryEarningSource
		existing.SeasonalityProfile = in.SeasonalityProfile
		existing.AssignedOfficerID = in.AssignedOfficerID
		if err := s.db.Save(&existing).Error; err != nil {
			log.Printf("[UpsertHousehold] Error updating household for person %s: %v", personID, err)
			return nil, fmt.Errorf("failed to update household: %w", err)
		}
		return &existing, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		hh := model.Household{
			HouseholdName:        in.HouseholdName,
			PersonID:             personID,
			PrimaryEarningSource: in.PrimaryEarningSource,
			SeasonalityProfile:   in.SeasonalityProfile,
			Branch:               branch,
			AssignedOfficerID:    in.AssignedOfficerID,
		}
		if err := s.db.Create(&hh).Error; err != nil {
			log.Printf("[UpsertHousehold] Error creating household for person %s: %v", personID, err)
			return nil, fmt.Errorf("failed to create household: %w", err)
		}
		return &hh, nil
	default:
		log.Printf("[UpsertHousehold] Error looking up household for person %s: %v", personID, err)
		return nil, err
	}
}

// ProductsFor lists one person's products in the branch.
func (s *PersonService) ProductsFor(branch, personID string) ([]model.Product, error) {
	var products []model.Product
	if err := s.db.Where("branch = ? AND person_id = ?", branch, personID).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// InteractionsFor lists one person's interactions in the branch.
func (s *PersonService) InteractionsFor(branch, personID string) ([]model.Interaction, error) {
	var interactions []model.Interaction
	if err := s.db.Where("branch = ? AND person_id = ?", branch, personID).Find(&interactions).Error; err != nil {
		return nil, err
	}
	return interactions, nil
}
