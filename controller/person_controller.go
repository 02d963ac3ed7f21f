package controller

import (
	"log"
	"net/http"

	model "github.com/kavyansh10/GraminSetu/models"
	service "github.com/kavyansh10/GraminSetu/service"

	"github.com/gin-gonic/gin"
)

type PersonController struct {
	service *service.PersonService
}

func NewPersonController(s *service.PersonService) *PersonController {
	return &PersonController{service: s}
}

type personRequest struct {
	FullName          string   `json:"full_name" binding:"required"`
	MobileNumber      string   `json:"mobile_number"`
	Village           string   `json:"village"`
	Role              string   `json:"role"`
	PGPDStage         string   `json:"pgpd_stage"`
	AssignedOfficerID string   `json:"assigned_officer_id"`
	RiskFlags         []string `json:"risk_flags"`
	Notes             string   `json:"notes"`
}

type householdRequest struct {
	HouseholdName        string `json:"household_name" binding:"required"`
	PrimaryEarningSource string `json:"primary_earning_source"`
	SeasonalityProfile   string `json:"seasonality_profile"`
	AssignedOfficerID    string `json:"assigned_officer_id"`
}

func (r personRequest) toInput(actorID string) service.PersonInput {
	flags := make([]model.RiskFlag, 0, len(r.RiskFlags))
	for _, f := range r.RiskFlags {
		flags = append(flags, model.RiskFlag(f))
	}
	assigned := r.AssignedOfficerID
	if assigned == "" {
		assigned = actorID
	}
	return service.PersonInput{
		FullName:          r.FullName,
		MobileNumber:      r.MobileNumber,
		Village:           r.Village,
		Role:              model.PersonRole(r.Role),
		PGPDStage:         model.PGPDStage(r.PGPDStage),
		AssignedOfficerID: assigned,
		RiskFlags:         flags,
		Notes:             r.Notes,
	}
}

func (r householdRequest) toInput() service.HouseholdInput {
	return service.HouseholdInput{
		HouseholdName:        r.HouseholdName,
		PrimaryEarningSource: model.EarningSource(r.PrimaryEarningSource),
		SeasonalityProfile:   model.SeasonalityProfile(r.SeasonalityProfile),
		AssignedOfficerID:    r.AssignedOfficerID,
	}
}

// CreatePerson creates a person plus optional household; the automation
// engine issues the initial assessment task as part of the same request.
func (c *PersonController) CreatePerson(ctx *gin.Context) {
	var req struct {
		personRequest
		Household *householdRequest `json:"household"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid person payload", "details": err.Error()})
		return
	}

	var hh *service.HouseholdInput
	if req.Household != nil {
		in := req.Household.toInput()
		hh = &in
	}
	person, err := c.service.CreateWithHousehold(branchOf(ctx), officerOf(ctx), req.toInput(officerOf(ctx)), hh)
	if err != nil {
		log.Printf("[CreatePerson] Error creating person: %v", err)
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"message": "Person created successfully", "person": person})
}

func (c *PersonController) UpdatePerson(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Person ID required"})
		return
	}
	var req personRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid person payload", "details": err.Error()})
		return
	}
	person, err := c.service.Update(branchOf(ctx), officerOf(ctx), id, req.toInput(officerOf(ctx)))
	if err != nil {
		log.Printf("[UpdatePerson] Error updating person %s: %v", id, err)
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Person updated successfully", "person": person})
}

func (c *PersonController) GetPerson(ctx *gin.Context) {
	person, err := c.service.Get(branchOf(ctx), ctx.Param("id"))
	if err != nil {
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"person": person})
}

func (c *PersonController) ListPeople(ctx *gin.Context) {
	if ctx.Query("risk") == "at-risk" {
		people, err := c.service.ListAtRisk(branchOf(ctx))
		if err != nil {
			fail(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"people": people})
		return
	}
	people, err := c.service.List(branchOf(ctx))
	if err != nil {
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"people": people})
}

// GetHousehold returns the person's household, if any.
func (c *PersonController) GetHousehold(ctx *gin.Context) {
	hh, err := c.service.HouseholdFor(branchOf(ctx), ctx.Param("id"))
	if err != nil {
		fail(ctx, err)
		return
	}
	if hh == nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "No household for this person"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"household": hh})
}

// UpsertHousehold creates or replaces the person's household.
func (c *PersonController) UpsertHousehold(ctx *gin.Context) {
	var req householdRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid household payload", "details": err.Error()})
		return
	}
	hh, err := c.service.UpsertHousehold(branchOf(ctx), ctx.Param("id"), req.toInput())
	if err != nil {
		log.Printf("[UpsertHousehold] Error upserting household: %v", err)
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Household saved successfully", "household": hh})
}

func (c *PersonController) ListPersonProducts(ctx *gin.Context) {
	products, err := c.service.ProductsFor(branchOf(ctx), ctx.Param("id"))
	if err != nil {
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"products": products})
}

func (c *PersonController) ListPersonInteractions(ctx *gin.Context) {
	interactions, err := c.service.InteractionsFor(branchOf(ctx), ctx.Param("id"))
	if err != nil {
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"interactions": interactions})
}
