package services

import (
	"fmt"
	"time"

	model "github.com/kavyansh10/GraminSetu/models"
)

// DateLayout is the calendar-date format used everywhere dates cross a
// boundary. Arithmetic on due dates is plain calendar-day addition.
const DateLayout = "2006-01-02"

// EntityKind names the record type a ChangeEvent describes.
type EntityKind string

const (
	KindPerson      EntityKind = "person"
	KindProduct     EntityKind = "product"
	KindInteraction EntityKind = "interaction"
)

// ChangeEvent is one create or update of a triggering entity, with the
// record state before and after the write. Previous is nil on creation.
// Branch and the acting officer are passed explicitly; the engine never
// reads ambient context.
type ChangeEvent struct {
	Kind           EntityKind
	Branch         string
	ActorOfficerID string
	SourceRef      string
	Previous       any
	Current        any
}

// TaskIntent carries everything needed to construct a Task. The engine emits
// intents; persisting them (with dedup) is the task service's job.
type TaskIntent struct {
	Title               string
	DueDate             string
	Status              model.TaskStatus
	TaskType            model.TaskType
	PersonID            string
	LinkedInteractionID string
	AssignedOfficerID   string
	SourceRef           string
	Branch              string
	CreatedBy           string
}

// Automated task titles. The title doubles as half of the dedup key, so
// these strings must stay stable.
const (
	TitleInitialAssessment = "Initial financial assessment visit"
	TitleInsuranceTalk     = "Insurance discussion"
	TitleBusinessReview    = "Business / income review"
	TitleSavingsTalk       = "Savings / pension conversation"
)

// Evaluate applies the automation rules to one change event and returns the
// follow-up tasks it calls for, in rule order. It is a pure decision
// function: no storage access, no side effects. Most events produce zero or
// one intent; a product save that both activates a loan and closes another
// state can in principle match two rules, and both are returned.
func Evaluate(event ChangeEvent) []TaskIntent {
	switch event.Kind {
	case KindPerson:
		prev, _ := event.Previous.(*model.Person)
		cur, ok := event.Current.(*model.Person)
		if !ok {
			return nil
		}
		return evaluatePerson(event, prev, cur)
	case KindProduct:
		prev, _ := event.Previous.(*model.Product)
		cur, ok := event.Current.(*model.Product)
		if !ok {
			return nil
		}
		return evaluateProduct(event, prev, cur)
	case KindInteraction:
		cur, ok := event.Current.(*model.Interaction)
		if !ok {
			return nil
		}
		return evaluateInteraction(event, cur)
	}
	return nil
}

// evaluatePerson handles the person rules: the unconditional creation-time
// assessment visit, and the empty-to-non-empty risk-flag edge.
func evaluatePerson(event ChangeEvent, prev, cur *model.Person) []TaskIntent {
	if prev == nil {
		// Fires exactly once, at creation. The caller persists this intent
		// directly, without a dedup check: a freshly assigned id cannot
		// collide with an existing source_ref.
		return []TaskIntent{{
			Title:             TitleInitialAssessment,
			DueDate:           today(),
			Status:            model.TaskOpen,
			TaskType:          model.TaskSystem,
			PersonID:          cur.ID,
			AssignedOfficerID: officerOr(cur.AssignedOfficerID, event.ActorOfficerID),
			SourceRef:         event.SourceRef,
			Branch:            event.Branch,
			CreatedBy:         event.ActorOfficerID,
		}}
	}

	// Edge-triggered: only the transition from no flags to some flag counts.
	// Adding a second flag to an already-at-risk person does not fire.
	if len(prev.FlagList()) == 0 && len(cur.FlagList()) > 0 {
		return []TaskIntent{{
			Title:             TitleInsuranceTalk,
			DueDate:           daysFromNow(7),
			Status:            model.TaskSuggested,
			TaskType:          model.TaskSuggestedInteraction,
			PersonID:          cur.ID,
			AssignedOfficerID: event.ActorOfficerID,
			SourceRef:         event.SourceRef,
			Branch:            event.Branch,
			CreatedBy:         event.ActorOfficerID,
		}}
	}
	return nil
}

// evaluateProduct handles the two product rules, most specific first.
func evaluateProduct(event ChangeEvent, prev, cur *model.Product) []TaskIntent {
	var intents []TaskIntent

	wasActiveLoan := prev != nil && prev.IsActiveLoan()
	if cur.IsActiveLoan() && !wasActiveLoan {
		intents = append(intents, TaskIntent{
			Title:             TitleBusinessReview,
			DueDate:           daysFromNow(7),
			Status:            model.TaskSuggested,
			TaskType:          model.TaskSuggestedInteraction,
			PersonID:          cur.PersonID,
			AssignedOfficerID: officerOr(cur.AssignedOfficerID, event.ActorOfficerID),
			SourceRef:         event.SourceRef,
			Branch:            event.Branch,
			CreatedBy:         event.ActorOfficerID,
		})
	}

	// Closure is only an edge on update: a product created directly in the
	// Closed state has no transition to react to.
	if prev != nil && cur.Status == model.ProductClosed && prev.Status != model.ProductClosed {
		intents = append(intents, TaskIntent{
			Title:             TitleSavingsTalk,
			DueDate:           daysFromNow(14),
			Status:            model.TaskSuggested,
			TaskType:          model.TaskSuggestedInteraction,
			PersonID:          cur.PersonID,
			AssignedOfficerID: officerOr(cur.AssignedOfficerID, event.ActorOfficerID),
			SourceRef:         event.SourceRef,
			Branch:            event.Branch,
			CreatedBy:         event.ActorOfficerID,
		})
	}
	return intents
}

// evaluateInteraction is level-triggered: the rule fires whenever the saved
// state qualifies, on create or edit, with the officer-supplied next-action
// date as the due date.
func evaluateInteraction(event ChangeEvent, cur *model.Interaction) []TaskIntent {
	if !cur.NeedsFollowUp() {
		return nil
	}
	return []TaskIntent{{
		Title:               fmt.Sprintf("Follow-up: %s", cur.Title),
		DueDate:             cur.NextActionDate,
		Status:              model.TaskOpen,
		TaskType:            model.TaskFollowUp,
		PersonID:            cur.PersonID,
		LinkedInteractionID: cur.ID,
		AssignedOfficerID:   event.ActorOfficerID,
		SourceRef:           event.SourceRef,
		Branch:              event.Branch,
		CreatedBy:           event.ActorOfficerID,
	}}
}

func today() string {
	return time.Now().Format(DateLayout)
}

func daysFromNow(days int) string {
	return time.Now().AddDate(0, 0, days).Format(DateLayout)
}

func officerOr(assigned, fallback string) string {
	if assigned != "" {
		return assigned
	}
	return fallback
}
