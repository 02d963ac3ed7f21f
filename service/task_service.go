package services

import (
	"encoding/json"
	"fmt"
	"log"

	model "github.com/kavyansh10/GraminSetu/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// TaskService persists tasks and the automation audit log.
type TaskService struct {
	db *gorm.DB
}

func NewTaskService(db *gorm.DB) *TaskService {
	return &TaskService{db: db}
}

// CreateTaskIfMissing turns a TaskIntent into a persisted Task with
// at-most-once semantics per (source_ref, task title). Calling it any number
// of times with the same pair has the effect of calling it once.
//
// If the existence check fails the operation fails closed: no task is
// created. If the task insert succeeds but the audit-log insert fails, the
// task is kept and the failure is only logged; the log is diagnostic, not
// authoritative.
func (s *TaskService) CreateTaskIfMissing(intent TaskIntent) (*model.Task, error) {
	var existing []model.Task
	if err := s.db.Where("source_ref = ?", intent.SourceRef).Find(&existing).Error; err != nil {
		log.Printf("[CreateTaskIfMissing] Error checking existing tasks for %s: %v", intent.SourceRef, err)
		return nil, fmt.Errorf("failed to check existing tasks: %w", err)
	}
	for _, t := range existing {
		if t.Title == intent.Title {
			log.Printf("[CreateTaskIfMissing] Task %q already exists for %s; skipping", intent.Title, intent.SourceRef)
			return nil, nil
		}
	}

	task := taskFromIntent(intent)
	if err := s.db.Create(&task).Error; err != nil {
		log.Printf("[CreateTaskIfMissing] Error creating task %q for %s: %v", intent.Title, intent.SourceRef, err)
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	log.Printf("[CreateTaskIfMissing] Task created: %q for %s", task.Title, task.SourceRef)

	s.writeAutomationLog(task)
	return &task, nil
}

// CreateTask inserts a task directly, without a dedup check or an audit
// entry. Used for officer-created manual tasks and the person-creation
// assessment task, whose source_ref is new by construction.
func (s *TaskService) CreateTask(intent TaskIntent) (*model.Task, error) {
	task := taskFromIntent(intent)
	if err := s.db.Create(&task).Error; err != nil {
		log.Printf("[CreateTask] Error creating task %q: %v", intent.Title, err)
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return &task, nil
}

// ApplyIntents runs each intent through the dedup path. The first storage
// failure aborts the remainder.
func (s *TaskService) ApplyIntents(intents []TaskIntent) error {
	for _, intent := range intents {
		if _, err := s.CreateTaskIfMissing(intent); err != nil {
			return err
		}
	}
	return nil
}

func taskFromIntent(intent TaskIntent) model.Task {
	return model.Task{
		Title:               intent.Title,
		DueDate:             intent.DueDate,
		Status:              intent.Status,
		TaskType:            intent.TaskType,
		LinkedInteractionID: intent.LinkedInteractionID,
		PersonID:            intent.PersonID,
		AssignedOfficerID:   intent.AssignedOfficerID,
		SourceRef:           intent.SourceRef,
		Branch:              intent.Branch,
		CreatedBy:           intent.CreatedBy,
	}
}

// writeAutomationLog appends the audit entry paired with a just-created
// task. Failure here is tolerated: the task stays.
func (s *TaskService) writeAutomationLog(task model.Task) {
	details, err := json.Marshal(map[string]interface{}{
		"task_title": task.Title,
		"task_type":  task.TaskType,
	})
	if err != nil {
		log.Printf("[writeAutomationLog] Error marshaling details for %s: %v", task.SourceRef, err)
		details = []byte("{}")
	}
	entry := model.AutomationLog{
		Action:    "task_created",
		SourceRef: task.SourceRef,
		Branch:    task.Branch,
		CreatedBy: task.CreatedBy,
		Details:   datatypes.JSON(details),
	}
	if err := s.db.Create(&entry).Error; err != nil {
		log.Printf("[writeAutomationLog] Error creating automation log for %s: %v", task.SourceRef, err)
	}
}

// ListByOfficer returns the officer's tasks within a branch.
func (s *TaskService) ListByOfficer(branch, officerID string) ([]model.Task, error) {
	var tasks []model.Task
	if err := s.db.Where("branch = ? AND assigned_officer_id = ?", branch, officerID).
		Order("due_date asc").Find(&tasks).Error; err != nil {
		log.Printf("[ListByOfficer] Error fetching tasks for officer %s: %v", officerID, err)
		return nil, err
	}
	return tasks, nil
}

// ListByBranch returns every task in the branch.
func (s *TaskService) ListByBranch(branch string) ([]model.Task, error) {
	var tasks []model.Task
	if err := s.db.Where("branch = ?", branch).Order("due_date asc").Find(&tasks).Error; err != nil {
		log.Printf("[ListByBranch] Error fetching tasks for branch %s: %v", branch, err)
		return nil, err
	}
	return tasks, nil
}

// ListByPerson returns tasks linked to one person in the branch.
func (s *TaskService) ListByPerson(branch, personID string) ([]model.Task, error) {
	var tasks []model.Task
	if err := s.db.Where("branch = ? AND person_id = ?", branch, personID).Find(&tasks).Error; err != nil {
		log.Printf("[ListByPerson] Error fetching tasks for person %s: %v", personID, err)
		return nil, err
	}
	return tasks, nil
}

// UpdateStatus moves a task between Open/Suggested/Done. Status is the only
// field an officer can change after creation.
func (s *TaskService) UpdateStatus(branch, taskID string, status model.TaskStatus) (*model.Task, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown task status %q", ErrInvalidInput, status)
	}
	var task model.Task
	if err := s.db.Where("branch = ?", branch).First(&task, "id = ?", taskID).Error; err != nil {
		log.Printf("[UpdateStatus] Error fetching task %s: %v", taskID, err)
		return nil, err
	}
	if err := s.db.Model(&task).Update("status", status).Error; err != nil {
		log.Printf("[UpdateStatus] Error updating task %s: %v", taskID, err)
		return nil, err
	}
	task.Status = status
	return &task, nil
}
