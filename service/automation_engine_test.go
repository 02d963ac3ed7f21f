package services

import (
	"testing"
	"time"

	model "github.com/kavyansh10/GraminSetu/models"
	"github.com/agiledragon/gomonkey/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func personWithFlags(flags []model.RiskFlag) *model.Person {
	p := &model.Person{ID: "p1", FullName: "Sita Devi", Branch: "Jaipur"}
	if err := p.SetFlags(flags); err != nil {
		panic(err)
	}
	return p
}

func TestEvaluatePersonCreation(t *testing.T) {
	patches := gomonkey.ApplyFunc(time.Now, func() time.Time { return FixedTime })
	defer patches.Reset()
	wantDue := time.Now().Format(DateLayout)

	person := personWithFlags(nil)
	person.AssignedOfficerID = "officer-7"

	intents := Evaluate(ChangeEvent{
		Kind:           KindPerson,
		Branch:         "Jaipur",
		ActorOfficerID: "officer-1",
		SourceRef:      "people/p1",
		Previous:       nil,
		Current:        person,
	})

	require.Len(t, intents, 1)
	intent := intents[0]
	assert.Equal(t, TitleInitialAssessment, intent.Title)
	assert.Equal(t, wantDue, intent.DueDate)
	assert.Equal(t, model.TaskOpen, intent.Status)
	assert.Equal(t, model.TaskSystem, intent.TaskType)
	assert.Equal(t, "people/p1", intent.SourceRef)
	assert.Equal(t, "Jaipur", intent.Branch)
	// The assigned officer wins over the actor when both are present.
	assert.Equal(t, "officer-7", intent.AssignedOfficerID)
	assert.Equal(t, "officer-1", intent.CreatedBy)
}

func TestEvaluatePersonCreationOfficerFallback(t *testing.T) {
	intents := Evaluate(ChangeEvent{
		Kind:           KindPerson,
		Branch:         "Jaipur",
		ActorOfficerID: "officer-1",
		SourceRef:      "people/p1",
		Current:        personWithFlags(nil),
	})
	require.Len(t, intents, 1)
	assert.Equal(t, "officer-1", intents[0].AssignedOfficerID)
}

func TestEvaluatePersonCreationWithFlagsOnlyAssessment(t *testing.T) {
	// Creating a person who already carries flags still produces only the
	// assessment visit; the insurance rule is an update-time edge.
	intents := Evaluate(ChangeEvent{
		Kind:      KindPerson,
		Branch:    "Jaipur",
		SourceRef: "people/p1",
		Current:   personWithFlags([]model.RiskFlag{model.FlagClimateRisk}),
	})
	require.Len(t, intents, 1)
	assert.Equal(t, TitleInitialAssessment, intents[0].Title)
}

func TestEvaluatePersonRiskFlagEdge(t *testing.T) {
	patches := gomonkey.ApplyFunc(time.Now, func() time.Time { return FixedTime })
	defer patches.Reset()
	wantDue := time.Now().AddDate(0, 0, 7).Format(DateLayout)

	tests := []struct {
		name  string
		prev  []model.RiskFlag
		cur   []model.RiskFlag
		fires bool
	}{
		{"empty to one flag", nil, []model.RiskFlag{model.FlagClimateRisk}, true},
		{"empty to several flags", nil, []model.RiskFlag{model.FlagClimateRisk, model.FlagIncomeVolatility}, true},
		{"one flag to two flags", []model.RiskFlag{model.FlagClimateRisk}, []model.RiskFlag{model.FlagClimateRisk, model.FlagHealthShockRisk}, false},
		{"flag swap", []model.RiskFlag{model.FlagClimateRisk}, []model.RiskFlag{model.FlagIncomeVolatility}, false},
		{"flags cleared", []model.RiskFlag{model.FlagClimateRisk}, nil, false},
		{"still empty", nil, nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intents := Evaluate(ChangeEvent{
				Kind:           KindPerson,
				Branch:         "Jaipur",
				ActorOfficerID: "officer-2",
				SourceRef:      "people/p1",
				Previous:       personWithFlags(tt.prev),
				Current:        personWithFlags(tt.cur),
			})
			if !tt.fires {
				assert.Empty(t, intents)
				return
			}
			require.Len(t, intents, 1)
			intent := intents[0]
			assert.Equal(t, TitleInsuranceTalk, intent.Title)
			assert.Equal(t, wantDue, intent.DueDate)
			assert.Equal(t, model.TaskSuggested, intent.Status)
			assert.Equal(t, model.TaskSuggestedInteraction, intent.TaskType)
			assert.Equal(t, "officer-2", intent.AssignedOfficerID)
		})
	}
}

func TestEvaluateProductActiveLoanEdge(t *testing.T) {
	patches := gomonkey.ApplyFunc(time.Now, func() time.Time { return FixedTime })
	defer patches.Reset()
	wantDue := time.Now().AddDate(0, 0, 7).Format(DateLayout)

	product := func(pt model.ProductType, st model.ProductStatus) *model.Product {
		return &model.Product{ID: "pr1", PersonID: "p1", ProductType: pt, Status: st, Branch: "Jaipur"}
	}

	tests := []struct {
		name  string
		prev  *model.Product
		cur   *model.Product
		fires bool
	}{
		{"created as active loan", nil, product(model.ProductLoan, model.ProductActive), true},
		{"loan activated", product(model.ProductLoan, model.ProductRenewalDue), product(model.ProductLoan, model.ProductActive), true},
		{"insurance became loan", product(model.ProductInsurance, model.ProductActive), product(model.ProductLoan, model.ProductActive), true},
		{"already active loan", product(model.ProductLoan, model.ProductActive), product(model.ProductLoan, model.ProductActive), false},
		{"created as active savings", nil, product(model.ProductSavings, model.ProductActive), false},
		{"loan deactivated", product(model.ProductLoan, model.ProductActive), product(model.ProductLoan, model.ProductRenewalDue), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := ChangeEvent{
				Kind:           KindProduct,
				Branch:         "Jaipur",
				ActorOfficerID: "officer-3",
				SourceRef:      "products/pr1",
				Current:        tt.cur,
			}
			if tt.prev != nil {
				event.Previous = tt.prev
			}
			intents := Evaluate(event)
			if !tt.fires {
				assert.Empty(t, intents)
				return
			}
			require.Len(t, intents, 1)
			assert.Equal(t, TitleBusinessReview, intents[0].Title)
			assert.Equal(t, wantDue, intents[0].DueDate)
			assert.Equal(t, model.TaskSuggested, intents[0].Status)
			assert.Equal(t, "p1", intents[0].PersonID)
		})
	}
}

func TestEvaluateProductClosureEdge(t *testing.T) {
	patches := gomonkey.ApplyFunc(time.Now, func() time.Time { return FixedTime })
	defer patches.Reset()
	wantDue := time.Now().AddDate(0, 0, 14).Format(DateLayout)

	prev := &model.Product{ID: "pr2", PersonID: "p1", ProductType: model.ProductLoan, Status: model.ProductActive}
	cur := &model.Product{ID: "pr2", PersonID: "p1", ProductType: model.ProductLoan, Status: model.ProductClosed}

	intents := Evaluate(ChangeEvent{
		Kind:           KindProduct,
		Branch:         "Jaipur",
		ActorOfficerID: "officer-3",
		SourceRef:      "products/pr2",
		Previous:       prev,
		Current:        cur,
	})
	require.Len(t, intents, 1)
	assert.Equal(t, TitleSavingsTalk, intents[0].Title)
	assert.Equal(t, wantDue, intents[0].DueDate)
	assert.Equal(t, model.TaskSuggestedInteraction, intents[0].TaskType)
}

func TestEvaluateProductCreatedClosedDoesNotFire(t *testing.T) {
	// Closure reacts to a transition; a product born Closed has none.
	intents := Evaluate(ChangeEvent{
		Kind:      KindProduct,
		SourceRef: "products/pr3",
		Current:   &model.Product{ID: "pr3", ProductType: model.ProductLoan, Status: model.ProductClosed},
	})
	assert.Empty(t, intents)
}

func TestEvaluateProductRecloseDoesNotFire(t *testing.T) {
	closed := &model.Product{ID: "pr4", ProductType: model.ProductLoan, Status: model.ProductClosed}
	intents := Evaluate(ChangeEvent{
		Kind:      KindProduct,
		SourceRef: "products/pr4",
		Previous:  closed,
		Current:   closed,
	})
	assert.Empty(t, intents)
}

func TestEvaluateInteractionFollowUp(t *testing.T) {
	interaction := &model.Interaction{
		ID:             "i1",
		Title:          "EMI visit",
		Outcome:        model.OutcomeFollowUpRequired,
		NextActionDate: "2026-07-01",
		PersonID:       "p1",
	}
	intents := Evaluate(ChangeEvent{
		Kind:           KindInteraction,
		Branch:         "Jaipur",
		ActorOfficerID: "officer-4",
		SourceRef:      "interactions/i1",
		Current:        interaction,
	})
	require.Len(t, intents, 1)
	intent := intents[0]
	assert.Equal(t, "Follow-up: EMI visit", intent.Title)
	// The officer-entered next-action date is the due date, verbatim.
	assert.Equal(t, "2026-07-01", intent.DueDate)
	assert.Equal(t, model.TaskOpen, intent.Status)
	assert.Equal(t, model.TaskFollowUp, intent.TaskType)
	assert.Equal(t, "i1", intent.LinkedInteractionID)
	assert.Equal(t, "officer-4", intent.AssignedOfficerID)
}

func TestEvaluateInteractionNoFollowUp(t *testing.T) {
	tests := []struct {
		name    string
		outcome model.InteractionOutcome
		next    string
	}{
		{"completed", model.OutcomeCompleted, "2026-07-01"},
		{"follow-up without date", model.OutcomeFollowUpRequired, ""},
		{"unavailable", model.OutcomeCustomerUnavailable, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intents := Evaluate(ChangeEvent{
				Kind:      KindInteraction,
				SourceRef: "interactions/i2",
				Current:   &model.Interaction{ID: "i2", Title: "Visit", Outcome: tt.outcome, NextActionDate: tt.next},
			})
			assert.Empty(t, intents)
		})
	}
}

func TestEvaluateIgnoresMismatchedPayload(t *testing.T) {
	assert.Empty(t, Evaluate(ChangeEvent{Kind: KindPerson, Current: &model.Product{}}))
	assert.Empty(t, Evaluate(ChangeEvent{Kind: KindProduct, Current: nil}))
	assert.Empty(t, Evaluate(ChangeEvent{Kind: "unknown", Current: &model.Person{}}))
}
