package services

import (
	"testing"

	model "github.com/kavyansh10/GraminSetu/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func insuranceIntent(sourceRef string) TaskIntent {
	return TaskIntent{
		Title:             TitleInsuranceTalk,
		DueDate:           "2026-06-17",
		Status:            model.TaskSuggested,
		TaskType:          model.TaskSuggestedInteraction,
		PersonID:          "p1",
		AssignedOfficerID: "officer-1",
		SourceRef:         sourceRef,
		Branch:            "Jaipur",
		CreatedBy:         "officer-1",
	}
}

func TestCreateTaskIfMissingIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := NewTaskService(db)

	first, err := svc.CreateTaskIfMissing(insuranceIntent("people/p1"))
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, TitleInsuranceTalk, first.Title)
	assert.Equal(t, "Jaipur", first.Branch)

	// Re-applying the same intent is a no-op, not an error.
	second, err := svc.CreateTaskIfMissing(insuranceIntent("people/p1"))
	require.NoError(t, err)
	assert.Nil(t, second)

	assert.EqualValues(t, 1, countRows(t, db, &model.Task{}))
	assert.EqualValues(t, 1, countRows(t, db, &model.AutomationLog{}))
}

func TestCreateTaskIfMissingDistinctTitlesCoexist(t *testing.T) {
	db := newTestDB(t)
	svc := NewTaskService(db)

	_, err := svc.CreateTaskIfMissing(insuranceIntent("products/pr1"))
	require.NoError(t, err)

	other := insuranceIntent("products/pr1")
	other.Title = TitleSavingsTalk
	_, err = svc.CreateTaskIfMissing(other)
	require.NoError(t, err)

	assert.EqualValues(t, 2, countRows(t, db, &model.Task{}))
	assert.EqualValues(t, 2, countRows(t, db, &model.AutomationLog{}))
}

func TestCreateTaskIfMissingSameTitleDifferentSource(t *testing.T) {
	db := newTestDB(t)
	svc := NewTaskService(db)

	_, err := svc.CreateTaskIfMissing(insuranceIntent("products/pr1"))
	require.NoError(t, err)
	_, err = svc.CreateTaskIfMissing(insuranceIntent("products/pr2"))
	require.NoError(t, err)

	assert.EqualValues(t, 2, countRows(t, db, &model.Task{}))
}

func TestCreateTaskIfMissingFailsClosed(t *testing.T) {
	db := newTestDB(t)
	svc := NewTaskService(db)

	// With the tasks table gone the existence check errors, and nothing may
	// be created on a failed check.
	require.NoError(t, db.Migrator().DropTable(&model.Task{}))

	task, err := svc.CreateTaskIfMissing(insuranceIntent("people/p1"))
	require.Error(t, err)
	assert.Nil(t, task)
	assert.EqualValues(t, 0, countRows(t, db, &model.AutomationLog{}))
}

func TestCreateTaskIfMissingToleratesLogFailure(t *testing.T) {
	db := newTestDB(t)
	svc := NewTaskService(db)

	// The audit log is diagnostic: losing it must not lose the task.
	require.NoError(t, db.Migrator().DropTable(&model.AutomationLog{}))

	task, err := svc.CreateTaskIfMissing(insuranceIntent("people/p1"))
	require.NoError(t, err)
	require.NotNil(t, task)
	assert.EqualValues(t, 1, countRows(t, db, &model.Task{}))
}

func TestCreateTaskIfMissingLogContents(t *testing.T) {
	db := newTestDB(t)
	svc := NewTaskService(db)

	_, err := svc.CreateTaskIfMissing(insuranceIntent("products/pr9"))
	require.NoError(t, err)

	var entry model.AutomationLog
	require.NoError(t, db.First(&entry).Error)
	assert.Equal(t, "task_created", entry.Action)
	assert.Equal(t, "products/pr9", entry.SourceRef)
	assert.Equal(t, "Jaipur", entry.Branch)
	assert.Equal(t, "officer-1", entry.CreatedBy)
	assert.Contains(t, string(entry.Details), TitleInsuranceTalk)
	assert.Contains(t, string(entry.Details), string(model.TaskSuggestedInteraction))
}

func TestCreateTaskDirectSkipsDedupAndLog(t *testing.T) {
	db := newTestDB(t)
	svc := NewTaskService(db)

	intent := insuranceIntent("")
	intent.Title = "Collect signed KYC form"
	intent.TaskType = model.TaskFollowUp
	intent.Status = model.TaskOpen

	_, err := svc.CreateTask(intent)
	require.NoError(t, err)
	_, err = svc.CreateTask(intent)
	require.NoError(t, err)

	// Manual tasks may repeat and never write an automation entry.
	assert.EqualValues(t, 2, countRows(t, db, &model.Task{}))
	assert.EqualValues(t, 0, countRows(t, db, &model.AutomationLog{}))
}

func TestTaskListingScopes(t *testing.T) {
	db := newTestDB(t)
	svc := NewTaskService(db)

	seed := []TaskIntent{
		{Title: "A", Status: model.TaskOpen, TaskType: model.TaskSystem, Branch: "Jaipur", AssignedOfficerID: "officer-1", PersonID: "p1", DueDate: "2026-06-12"},
		{Title: "B", Status: model.TaskOpen, TaskType: model.TaskSystem, Branch: "Jaipur", AssignedOfficerID: "officer-2", PersonID: "p1", DueDate: "2026-06-11"},
		{Title: "C", Status: model.TaskOpen, TaskType: model.TaskSystem, Branch: "Udaipur", AssignedOfficerID: "officer-1", PersonID: "p2", DueDate: "2026-06-10"},
	}
	for _, intent := range seed {
		_, err := svc.CreateTask(intent)
		require.NoError(t, err)
	}

	mine, err := svc.ListByOfficer("Jaipur", "officer-1")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "A", mine[0].Title)

	branch, err := svc.ListByBranch("Jaipur")
	require.NoError(t, err)
	require.Len(t, branch, 2)
	// Soonest due date first.
	assert.Equal(t, "B", branch[0].Title)

	person, err := svc.ListByPerson("Jaipur", "p1")
	require.NoError(t, err)
	assert.Len(t, person, 2)
}

func TestUpdateStatus(t *testing.T) {
	db := newTestDB(t)
	svc := NewTaskService(db)

	created, err := svc.CreateTask(TaskIntent{
		Title: "A", Status: model.TaskSuggested, TaskType: model.TaskSuggestedInteraction, Branch: "Jaipur",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateStatus("Jaipur", created.ID, model.TaskDone)
	require.NoError(t, err)
	assert.Equal(t, model.TaskDone, updated.Status)

	var stored model.Task
	require.NoError(t, db.First(&stored, "id = ?", created.ID).Error)
	assert.Equal(t, model.TaskDone, stored.Status)
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	db := newTestDB(t)
	svc := NewTaskService(db)

	_, err := svc.UpdateStatus("Jaipur", "some-id", model.TaskStatus("Archived"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateStatusIsBranchScoped(t *testing.T) {
	db := newTestDB(t)
	svc := NewTaskService(db)

	created, err := svc.CreateTask(TaskIntent{
		Title: "A", Status: model.TaskOpen, TaskType: model.TaskSystem, Branch: "Jaipur",
	})
	require.NoError(t, err)

	_, err = svc.UpdateStatus("Udaipur", created.ID, model.TaskDone)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
