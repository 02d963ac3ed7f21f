package controller

import (
	"log"
	"net/http"

	model "github.com/kavyansh10/GraminSetu/models"
	service "github.com/kavyansh10/GraminSetu/service"

	"github.com/gin-gonic/gin"
)

type TaskController struct {
	service *service.TaskService
}

func NewTaskController(s *service.TaskService) *TaskController {
	return &TaskController{service: s}
}

// ListTasks returns the acting officer's tasks by default; ?scope=branch
// widens to the whole branch, ?person=<id> narrows to one person.
func (c *TaskController) ListTasks(ctx *gin.Context) {
	var (
		tasks []model.Task
		err   error
	)
	switch {
	case ctx.Query("person") != "":
		tasks, err = c.service.ListByPerson(branchOf(ctx), ctx.Query("person"))
	case ctx.Query("scope") == "branch":
		tasks, err = c.service.ListByBranch(branchOf(ctx))
	default:
		tasks, err = c.service.ListByOfficer(branchOf(ctx), officerOf(ctx))
	}
	if err != nil {
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Tasks retrieved successfully", "tasks": tasks})
}

type manualTaskRequest struct {
	Title               string `json:"task_title" binding:"required"`
	DueDate             string `json:"due_date" binding:"required"`
	Status              string `json:"status"`
	TaskType            string `json:"task_type"`
	LinkedInteractionID string `json:"linked_interaction_id"`
	PersonID            string `json:"primary_person_id"`
	AssignedOfficerID   string `json:"assigned_officer_id"`
}

// CreateTask records a manual, officer-created task. Manual tasks carry no
// source_ref, skip dedup and write no automation log.
func (c *TaskController) CreateTask(ctx *gin.Context) {
	var req manualTaskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task payload", "details": err.Error()})
		return
	}

	status := model.TaskStatus(req.Status)
	if req.Status == "" {
		status = model.TaskOpen
	}
	if !status.Valid() {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Unknown task status"})
		return
	}
	taskType := model.TaskType(req.TaskType)
	if req.TaskType == "" {
		taskType = model.TaskFollowUp
	}
	if !taskType.Valid() {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Unknown task type"})
		return
	}
	assigned := req.AssignedOfficerID
	if assigned == "" {
		assigned = officerOf(ctx)
	}

	task, err := c.service.CreateTask(service.TaskIntent{
		Title:               req.Title,
		DueDate:             req.DueDate,
		Status:              status,
		TaskType:            taskType,
		LinkedInteractionID: req.LinkedInteractionID,
		PersonID:            req.PersonID,
		AssignedOfficerID:   assigned,
		Branch:              branchOf(ctx),
		CreatedBy:           officerOf(ctx),
	})
	if err != nil {
		log.Printf("[CreateTask] Error creating manual task: %v", err)
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"message": "Task created successfully", "task": task})
}

// UpdateTaskStatus moves a task between Open, Suggested and Done.
func (c *TaskController) UpdateTaskStatus(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Task ID required"})
		return
	}
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status payload", "details": err.Error()})
		return
	}
	task, err := c.service.UpdateStatus(branchOf(ctx), id, model.TaskStatus(req.Status))
	if err != nil {
		log.Printf("[UpdateTaskStatus] Error updating task %s: %v", id, err)
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Task status updated", "task": task})
}

// ListPersonTasks lists tasks linked to one person.
func (c *TaskController) ListPersonTasks(ctx *gin.Context) {
	tasks, err := c.service.ListByPerson(branchOf(ctx), ctx.Param("id"))
	if err != nil {
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"tasks": tasks})
}
