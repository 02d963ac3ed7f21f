package services

import (
	"testing"
	"time"

	model "github.com/kavyansh10/GraminSetu/models"
	"github.com/agiledragon/gomonkey/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newProductService(db *gorm.DB) *ProductService {
	return NewProductService(db, NewTaskService(db))
}

func TestCreateActiveLoanCreatesBusinessReview(t *testing.T) {
	patches := gomonkey.ApplyFunc(time.Now, func() time.Time { return FixedTime })
	defer patches.Reset()
	wantDue := time.Now().AddDate(0, 0, 7).Format(DateLayout)

	db := newTestDB(t)
	svc := newProductService(db)

	product, err := svc.Create("Jaipur", "officer-1", ProductInput{
		ProductName: "Dairy expansion loan",
		ProductType: model.ProductLoan,
		Status:      model.ProductActive,
		Amount:      50000,
		PersonID:    "p1",
	})
	require.NoError(t, err)

	var task model.Task
	require.NoError(t, db.First(&task, "task_title = ?", TitleBusinessReview).Error)
	assert.Equal(t, wantDue, task.DueDate)
	assert.Equal(t, model.TaskSuggested, task.Status)
	assert.Equal(t, model.TaskSuggestedInteraction, task.TaskType)
	assert.Equal(t, "products/"+product.ID, task.SourceRef)
	assert.Equal(t, "p1", task.PersonID)
	assert.EqualValues(t, 1, countRows(t, db, &model.AutomationLog{}))
}

func TestCreateNonLoanCreatesNothing(t *testing.T) {
	db := newTestDB(t)
	svc := newProductService(db)

	_, err := svc.Create("Jaipur", "officer-1", ProductInput{
		ProductName: "Crop insurance",
		ProductType: model.ProductInsurance,
		Status:      model.ProductActive,
		PersonID:    "p1",
	})
	require.NoError(t, err)
	assert.EqualValues(t, 0, countRows(t, db, &model.Task{}))
}

func TestActivatingLoanLaterCreatesBusinessReviewOnce(t *testing.T) {
	db := newTestDB(t)
	svc := newProductService(db)

	product, err := svc.Create("Jaipur", "officer-1", ProductInput{
		ProductName: "Dairy expansion loan",
		ProductType: model.ProductLoan,
		Status:      model.ProductRenewalDue,
		PersonID:    "p1",
	})
	require.NoError(t, err)
	assert.EqualValues(t, 0, countRows(t, db, &model.Task{}))

	active := ProductInput{
		ProductName: "Dairy expansion loan",
		ProductType: model.ProductLoan,
		Status:      model.ProductActive,
		PersonID:    "p1",
	}
	_, err = svc.Update("Jaipur", "officer-1", product.ID, active)
	require.NoError(t, err)
	// A second save of the same state is neither an edge nor, thanks to
	// dedup, a duplicate.
	_, err = svc.Update("Jaipur", "officer-1", product.ID, active)
	require.NoError(t, err)

	assert.EqualValues(t, 1, countRows(t, db, &model.Task{}))
	assert.EqualValues(t, 1, countRows(t, db, &model.AutomationLog{}))
}

func TestClosingProductCreatesSavingsTalk(t *testing.T) {
	patches := gomonkey.ApplyFunc(time.Now, func() time.Time { return FixedTime })
	defer patches.Reset()
	wantDue := time.Now().AddDate(0, 0, 14).Format(DateLayout)

	db := newTestDB(t)
	svc := newProductService(db)

	product, err := svc.Create("Jaipur", "officer-1", ProductInput{
		ProductName: "Crop insurance",
		ProductType: model.ProductInsurance,
		Status:      model.ProductActive,
		PersonID:    "p1",
	})
	require.NoError(t, err)

	_, err = svc.Update("Jaipur", "officer-1", product.ID, ProductInput{
		ProductName: "Crop insurance",
		ProductType: model.ProductInsurance,
		Status:      model.ProductClosed,
		PersonID:    "p1",
	})
	require.NoError(t, err)

	var task model.Task
	require.NoError(t, db.First(&task, "task_title = ?", TitleSavingsTalk).Error)
	assert.Equal(t, wantDue, task.DueDate)
	assert.Equal(t, model.TaskSuggested, task.Status)
	assert.Equal(t, "products/"+product.ID, task.SourceRef)
}

func TestProductCreatedClosedCreatesNothing(t *testing.T) {
	db := newTestDB(t)
	svc := newProductService(db)

	_, err := svc.Create("Jaipur", "officer-1", ProductInput{
		ProductName: "Old loan",
		ProductType: model.ProductLoan,
		Status:      model.ProductClosed,
		PersonID:    "p1",
	})
	require.NoError(t, err)
	assert.EqualValues(t, 0, countRows(t, db, &model.Task{}))
}

func TestClosingActiveLoanCreatesOnlySavingsTalk(t *testing.T) {
	db := newTestDB(t)
	svc := newProductService(db)

	product, err := svc.Create("Jaipur", "officer-1", ProductInput{
		ProductName: "Dairy expansion loan",
		ProductType: model.ProductLoan,
		Status:      model.ProductActive,
		PersonID:    "p1",
	})
	require.NoError(t, err)

	_, err = svc.Update("Jaipur", "officer-1", product.ID, ProductInput{
		ProductName: "Dairy expansion loan",
		ProductType: model.ProductLoan,
		Status:      model.ProductClosed,
		PersonID:    "p1",
	})
	require.NoError(t, err)

	tasks := allTasks(t, db)
	require.Len(t, tasks, 2)
	titles := []string{tasks[0].Title, tasks[1].Title}
	assert.Contains(t, titles, TitleBusinessReview)
	assert.Contains(t, titles, TitleSavingsTalk)
}

func TestProductValidation(t *testing.T) {
	db := newTestDB(t)
	svc := newProductService(db)

	_, err := svc.Create("Jaipur", "officer-1", ProductInput{
		ProductName: "Mystery product",
		ProductType: "Derivative",
		Status:      model.ProductActive,
		PersonID:    "p1",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create("Jaipur", "officer-1", ProductInput{
		ProductName: "Loan",
		ProductType: model.ProductLoan,
		Status:      model.ProductActive,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestProductReadsAreBranchScoped(t *testing.T) {
	db := newTestDB(t)
	svc := newProductService(db)

	product, err := svc.Create("Jaipur", "officer-1", ProductInput{
		ProductName: "Crop insurance",
		ProductType: model.ProductInsurance,
		Status:      model.ProductActive,
		PersonID:    "p1",
	})
	require.NoError(t, err)

	_, err = svc.Get("Udaipur", product.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
