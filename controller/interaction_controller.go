package controller

import (
	"log"
	"net/http"

	model "github.com/kavyansh10/GraminSetu/models"
	service "github.com/kavyansh10/GraminSetu/service"

	"github.com/gin-gonic/gin"
)

type InteractionController struct {
	service *service.InteractionService
}

func NewInteractionController(s *service.InteractionService) *InteractionController {
	return &InteractionController{service: s}
}

type interactionRequest struct {
	Title             string `json:"interaction_title" binding:"required"`
	InteractionType   string `json:"interaction_type"`
	InteractionDate   string `json:"interaction_date"`
	Outcome           string `json:"outcome" binding:"required"`
	NextActionDate    string `json:"next_action_date"`
	PersonID          string `json:"primary_person_id" binding:"required"`
	LinkedProductID   string `json:"linked_product_id"`
	FieldOfficerNotes string `json:"field_officer_notes"`
	AssignedOfficerID string `json:"assigned_officer_id"`
}

func (r interactionRequest) toInput() service.InteractionInput {
	return service.InteractionInput{
		Title:             r.Title,
		InteractionType:   model.InteractionType(r.InteractionType),
		InteractionDate:   r.InteractionDate,
		Outcome:           model.InteractionOutcome(r.Outcome),
		NextActionDate:    r.NextActionDate,
		PersonID:          r.PersonID,
		LinkedProductID:   r.LinkedProductID,
		FieldOfficerNotes: r.FieldOfficerNotes,
		AssignedOfficerID: r.AssignedOfficerID,
	}
}

func (c *InteractionController) CreateInteraction(ctx *gin.Context) {
	var req interactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid interaction payload", "details": err.Error()})
		return
	}
	interaction, err := c.service.Create(branchOf(ctx), officerOf(ctx), req.toInput())
	if err != nil {
		log.Printf("[CreateInteraction] Error creating interaction: %v", err)
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"message": "Interaction logged successfully", "interaction": interaction})
}

func (c *InteractionController) UpdateInteraction(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Interaction ID required"})
		return
	}
	var req interactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid interaction payload", "details": err.Error()})
		return
	}
	interaction, err := c.service.Update(branchOf(ctx), officerOf(ctx), id, req.toInput())
	if err != nil {
		log.Printf("[UpdateInteraction] Error updating interaction %s: %v", id, err)
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Interaction updated successfully", "interaction": interaction})
}

func (c *InteractionController) GetInteraction(ctx *gin.Context) {
	interaction, err := c.service.Get(branchOf(ctx), ctx.Param("id"))
	if err != nil {
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"interaction": interaction})
}

func (c *InteractionController) ListInteractions(ctx *gin.Context) {
	interactions, err := c.service.List(branchOf(ctx))
	if err != nil {
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"interactions": interactions})
}
