package services

import (
	"fmt"
	"log"

	model "github.com/kavyansh10/GraminSetu/models"
	"gorm.io/gorm"
)

// InteractionService handles interaction CRUD and the follow-up rule.
type InteractionService struct {
	db    *gorm.DB
	tasks *TaskService
}

func NewInteractionService(db *gorm.DB, tasks *TaskService) *InteractionService {
	return &InteractionService{db: db, tasks: tasks}
}

type InteractionInput struct {
	Title             string
	InteractionType   model.InteractionType
	InteractionDate   string
	Outcome           model.InteractionOutcome
	NextActionDate    string
	PersonID          string
	LinkedProductID   string
	FieldOfficerNotes string
	AssignedOfficerID string
}

func (in InteractionInput) validate() error {
	if in.Title == "" {
		return fmt.Errorf("%w: interaction_title is required", ErrInvalidInput)
	}
	if in.InteractionType != "" && !in.InteractionType.Valid() {
		return fmt.Errorf("%w: unknown interaction type %q", ErrInvalidInput, in.InteractionType)
	}
	if !in.Outcome.Valid() {
		return fmt.Errorf("%w: unknown outcome %q", ErrInvalidInput, in.Outcome)
	}
	if in.PersonID == "" {
		return fmt.Errorf("%w: primary_person_id is required", ErrInvalidInput)
	}
	return nil
}

// Create saves the interaction and, when the outcome requires follow-up and
// a next-action date is present, creates the follow-up task through dedup.
func (s *InteractionService) Create(branch, actorID string, in InteractionInput) (*model.Interaction, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	interaction := model.Interaction{
		Title:             in.Title,
		InteractionType:   in.InteractionType,
		InteractionDate:   in.InteractionDate,
		Outcome:           in.Outcome,
		NextActionDate:    in.NextActionDate,
		PersonID:          in.PersonID,
		LinkedProductID:   in.LinkedProductID,
		FieldOfficerNotes: in.FieldOfficerNotes,
		Branch:            branch,
		AssignedOfficerID: officerOr(in.AssignedOfficerID, actorID),
	}
	if err := s.db.Create(&interaction).Error; err != nil {
		log.Printf("[Create] Error creating interaction: %v", err)
		return nil, fmt.Errorf("failed to create interaction: %w", err)
	}

	if err := s.automate(branch, actorID, &interaction); err != nil {
		return nil, err
	}
	return &interaction, nil
}

// Update saves edits and re-evaluates the follow-up rule; the rule is
// level-triggered, so dedup is what keeps a re-save from duplicating the
// task.
func (s *InteractionService) Update(branch, actorID, id string, in InteractionInput) (*model.Interaction, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	var interaction model.Interaction
	if err := s.db.Where("branch = ?", branch).First(&interaction, "id = ?", id).Error; err != nil {
		log.Printf("[Update] Error fetching interaction %s: %v", id, err)
		return nil, err
	}

	interaction.Title = in.Title
	interaction.InteractionType = in.InteractionType
	interaction.InteractionDate = in.InteractionDate
	interaction.Outcome = in.Outcome
	interaction.NextActionDate = in.NextActionDate
	interaction.PersonID = in.PersonID
	interaction.LinkedProductID = in.LinkedProductID
	interaction.FieldOfficerNotes = in.FieldOfficerNotes
	if err := s.db.Save(&interaction).Error; err != nil {
		log.Printf("[Update] Error updating interaction %s: %v", id, err)
		return nil, fmt.Errorf("failed to update interaction: %w", err)
	}

	if err := s.automate(branch, actorID, &interaction); err != nil {
		return nil, err
	}
	return &interaction, nil
}

func (s *InteractionService) automate(branch, actorID string, cur *model.Interaction) error {
	intents := Evaluate(ChangeEvent{
		Kind:           KindInteraction,
		Branch:         branch,
		ActorOfficerID: actorID,
		SourceRef:      "interactions/" + cur.ID,
		Current:        cur,
	})
	return s.tasks.ApplyIntents(intents)
}

func (s *InteractionService) Get(branch, id string) (*model.Interaction, error) {
	var interaction model.Interaction
	if err := s.db.Where("branch = ?", branch).First(&interaction, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &interaction, nil
}

func (s *InteractionService) List(branch string) ([]model.Interaction, error) {
	var interactions []model.Interaction
	if err := s.db.Where("branch = ?", branch).Order("interaction_date desc").Find(&interactions).Error; err != nil {
		log.Printf("[List] Error fetching interactions for branch %s: %v", branch, err)
		return nil, err
	}
	return interactions, nil
}
