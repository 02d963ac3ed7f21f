package services

import (
	"testing"

	model "github.com/kavyansh10/GraminSetu/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedBranch(t *testing.T, db *gorm.DB) {
	t.Helper()
	people := NewPersonService(db, NewTaskService(db), nil)
	products := NewProductService(db, NewTaskService(db))
	interactions := NewInteractionService(db, NewTaskService(db))

	normal, err := people.CreateWithHousehold("Jaipur", "officer-1", PersonInput{FullName: "Sita Devi"}, nil)
	require.NoError(t, err)
	_, err = people.CreateWithHousehold("Jaipur", "officer-1", PersonInput{
		FullName:  "Ram Singh",
		RiskFlags: []model.RiskFlag{model.FlagClimateRisk},
	}, nil)
	require.NoError(t, err)

	// One active loan, one closed loan, one active savings.
	_, err = products.Create("Jaipur", "officer-1", ProductInput{
		ProductName: "Dairy loan", ProductType: model.ProductLoan, Status: model.ProductActive, PersonID: normal.ID,
	})
	require.NoError(t, err)
	_, err = products.Create("Jaipur", "officer-1", ProductInput{
		ProductName: "Old loan", ProductType: model.ProductLoan, Status: model.ProductClosed, PersonID: normal.ID,
	})
	require.NoError(t, err)
	_, err = products.Create("Jaipur", "officer-1", ProductInput{
		ProductName: "Savings", ProductType: model.ProductSavings, Status: model.ProductActive, PersonID: normal.ID,
	})
	require.NoError(t, err)

	for _, date := range []string{"2026-06-01", "2026-06-05", "2026-06-09"} {
		_, err = interactions.Create("Jaipur", "officer-1", InteractionInput{
			Title:           "Visit " + date,
			InteractionDate: date,
			Outcome:         model.OutcomeCompleted,
			PersonID:        normal.ID,
		})
		require.NoError(t, err)
	}

	// A different branch that must not leak into Jaipur's numbers.
	_, err = people.CreateWithHousehold("Udaipur", "officer-9", PersonInput{
		FullName:  "Mohan Lal",
		RiskFlags: []model.RiskFlag{model.FlagIncomeVolatility},
	}, nil)
	require.NoError(t, err)
}

func TestBranchSummary(t *testing.T) {
	db := newTestDB(t)
	seedBranch(t, db)

	summary, err := NewReportService(db).Summary("Jaipur", "2026-06-05")
	require.NoError(t, err)

	assert.EqualValues(t, 1, summary.ActiveLoans)
	assert.EqualValues(t, 1, summary.PeopleAtRisk)
	// Two person creations, two assessment visit tasks, plus the active-loan
	// business review is Suggested, not Open.
	assert.EqualValues(t, 2, summary.OpenTasks)
	assert.EqualValues(t, 2, summary.InteractionsSince)
}

func TestBranchSummaryWithoutSinceSkipsInteractions(t *testing.T) {
	db := newTestDB(t)
	seedBranch(t, db)

	summary, err := NewReportService(db).Summary("Jaipur", "")
	require.NoError(t, err)
	assert.EqualValues(t, 0, summary.InteractionsSince)
	assert.EqualValues(t, 1, summary.ActiveLoans)
}

func TestBranchSummaryEmptyBranch(t *testing.T) {
	db := newTestDB(t)
	seedBranch(t, db)

	summary, err := NewReportService(db).Summary("Kota", "2026-06-01")
	require.NoError(t, err)
	assert.EqualValues(t, 0, summary.ActiveLoans)
	assert.EqualValues(t, 0, summary.PeopleAtRisk)
	assert.EqualValues(t, 0, summary.OpenTasks)
	assert.EqualValues(t, 0, summary.InteractionsSince)
}
