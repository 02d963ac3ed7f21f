package controller

import (
	"log"
	"net/http"

	model "github.com/kavyansh10/GraminSetu/models"
	service "github.com/kavyansh10/GraminSetu/service"

	"github.com/gin-gonic/gin"
)

// RecordController serves the pipeline entities: opportunities, meetings,
// phone calls, RFPs, invoices.
type RecordController struct {
	service *service.RecordService
}

func NewRecordController(s *service.RecordService) *RecordController {
	return &RecordController{service: s}
}

type opportunityRequest struct {
	OpportunityName string  `json:"opportunity_name" binding:"required"`
	Stage           string  `json:"stage" binding:"required"`
	Value           float64 `json:"value"`
	OwnerUserID     string  `json:"owner_user_id"`
	PersonID        string  `json:"primary_person_id"`
}

func (r opportunityRequest) toInput(actorID string) service.OpportunityInput {
	owner := r.OwnerUserID
	if owner == "" {
		owner = actorID
	}
	return service.OpportunityInput{
		OpportunityName: r.OpportunityName,
		Stage:           model.OpportunityStage(r.Stage),
		Value:           r.Value,
		OwnerUserID:     owner,
		PersonID:        r.PersonID,
	}
}

func (c *RecordController) CreateOpportunity(ctx *gin.Context) {
	var req opportunityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid opportunity payload", "details": err.Error()})
		return
	}
	opp, err := c.service.CreateOpportunity(branchOf(ctx), req.toInput(officerOf(ctx)))
	if err != nil {
		log.Printf("[CreateOpportunity] Error: %v", err)
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"message": "Opportunity created successfully", "opportunity": opp})
}

func (c *RecordController) UpdateOpportunity(ctx *gin.Context) {
	var req opportunityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid opportunity payload", "details": err.Error()})
		return
	}
	opp, err := c.service.UpdateOpportunity(branchOf(ctx), ctx.Param("id"), req.toInput(officerOf(ctx)))
	if err != nil {
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Opportunity updated successfully", "opportunity": opp})
}

func (c *RecordController) ListOpportunities(ctx *gin.Context) {
	opps, err := c.service.ListOpportunities(branchOf(ctx))
	if err != nil {
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"opportunities": opps})
}

func (c *RecordController) GetOpportunity(ctx *gin.Context) {
	opp, err := c.service.GetOpportunity(branchOf(ctx), ctx.Param("id"))
	if err != nil {
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"opportunity": opp})
}

type meetingRequest struct {
	MeetingTitle string   `json:"meeting_title" binding:"required"`
	ScheduledAt  string   `json:"scheduled_at"`
	Location     string   `json:"location"`
	AttendeeIDs  []string `json:"attendee_ids"`
	Notes        string   `json:"notes"`
}

func (c *RecordController) CreateMeeting(ctx *gin.Context) {
	var req meetingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid meeting payload", "details": err.Error()})
		return
	}
	meeting, err := c.service.CreateMeeting(branchOf(ctx), service.MeetingInput{
		MeetingTitle: req.MeetingTitle,
		ScheduledAt:  req.ScheduledAt,
		Location:     req.Location,
		AttendeeIDs:  req.AttendeeIDs,
		Notes:        req.Notes,
		CreatedBy:    officerOf(ctx),
	})
	if err != nil {
		log.Printf("[CreateMeeting] Error: %v", err)
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"message": "Meeting created successfully", "meeting": meeting})
}

func (c *RecordController) UpdateMeeting(ctx *gin.Context) {
	var req meetingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid meeting payload", "details": err.Error()})
		return
	}
	meeting, err := c.service.UpdateMeeting(branchOf(ctx), ctx.Param("id"), service.MeetingInput{
		MeetingTitle: req.MeetingTitle,
		ScheduledAt:  req.ScheduledAt,
		Location:     req.Location,
		AttendeeIDs:  req.AttendeeIDs,
		Notes:        req.Notes,
	})
	if err != nil {
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Meeting updated successfully", "meeting": meeting})
}

func (c *RecordController) ListMeetings(ctx *gin.Context) {
	meetings, err := c.service.ListMeetings(branchOf(ctx))
	if err != nil {
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"meetings": meetings})
}

type phoneCallRequest struct {
	CallTime string `json:"call_time" binding:"required"`
	Duration int    `json:"duration"`
	Outcome  string `json:"outcome" binding:"required"`
	PersonID string `json:"primary_person_id"`
	Notes    string `json:"notes"`
}

func (r phoneCallRequest) toInput() service.PhoneCallInput {
	return service.PhoneCallInput{
		CallTime: r.CallTime,
		Duration: r.Duration,
		Outcome:  model.CallOutcome(r.Outcome),
		PersonID: r.PersonID,
		Notes:    r.Notes,
	}
}

func (c *RecordController) CreatePhoneCall(ctx *gin.Context) {
	var req phoneCallRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid phone call payload", "details": err.Error()})
		return
	}
	call, err := c.service.CreatePhoneCall(branchOf(ctx), req.toInput())
	if err != nil {
		log.Printf("[CreatePhoneCall] Error: %v", err)
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"message": "Phone call logged successfully", "phone_call": call})
}

func (c *RecordController) UpdatePhoneCall(ctx *gin.Context) {
	var req phoneCallRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid phone call payload", "details": err.Error()})
		return
	}
	call, err := c.service.UpdatePhoneCall(branchOf(ctx), ctx.Param("id"), req.toInput())
	if err != nil {
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Phone call updated successfully", "phone_call": call})
}

func (c *RecordController) ListPhoneCalls(ctx *gin.Context) {
	calls, err := c.service.ListPhoneCalls(branchOf(ctx))
	if err != nil {
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"phone_calls": calls})
}

type rfpRequest struct {
	RFPTitle       string `json:"rfp_title" binding:"required"`
	Status         string `json:"status" binding:"required"`
	DueDate        string `json:"due_date"`
	PersonID       string `json:"primary_person_id"`
	AttachmentName string `json:"attachment_name"`
	AttachmentURL  string `json:"attachment_url"`
}

func (r rfpRequest) toInput() service.RFPInput {
	return service.RFPInput{
		RFPTitle:       r.RFPTitle,
		Status:         model.RFPStatus(r.Status),
		DueDate:        r.DueDate,
		PersonID:       r.PersonID,
		AttachmentName: r.AttachmentName,
		AttachmentURL:  r.AttachmentURL,
	}
}

func (c *RecordController) CreateRFP(ctx *gin.Context) {
	var req rfpRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid RFP payload", "details": err.Error()})
		return
	}
	rfp, err := c.service.CreateRFP(branchOf(ctx), req.toInput())
	if err != nil {
		log.Printf("[CreateRFP] Error: %v", err)
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"message": "RFP created successfully", "rfp": rfp})
}

func (c *RecordController) UpdateRFP(ctx *gin.Context) {
	var req rfpRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid RFP payload", "details": err.Error()})
		return
	}
	rfp, err := c.service.UpdateRFP(branchOf(ctx), ctx.Param("id"), req.toInput())
	if err != nil {
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "RFP updated successfully", "rfp": rfp})
}

func (c *RecordController) ListRFPs(ctx *gin.Context) {
	rfps, err := c.service.ListRFPs(branchOf(ctx))
	if err != nil {
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"rfps": rfps})
}

type invoiceRequest struct {
	InvoiceTitle   string  `json:"invoice_title" binding:"required"`
	Status         string  `json:"status" binding:"required"`
	Amount         float64 `json:"amount"`
	PersonID       string  `json:"primary_person_id"`
	AttachmentName string  `json:"attachment_name"`
	AttachmentURL  string  `json:"attachment_url"`
}

func (r invoiceRequest) toInput() service.InvoiceInput {
	return service.InvoiceInput{
		InvoiceTitle:   r.InvoiceTitle,
		Status:         model.InvoiceStatus(r.Status),
		Amount:         r.Amount,
		PersonID:       r.PersonID,
		AttachmentName: r.AttachmentName,
		AttachmentURL:  r.AttachmentURL,
	}
}

func (c *RecordController) CreateInvoice(ctx *gin.Context) {
	var req invoiceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid invoice payload", "details": err.Error()})
		return
	}
	invoice, err := c.service.CreateInvoice(branchOf(ctx), req.toInput())
	if err != nil {
		log.Printf("[CreateInvoice] Error: %v", err)
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"message": "Invoice created successfully", "invoice": invoice})
}

func (c *RecordController) UpdateInvoice(ctx *gin.Context) {
	var req invoiceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid invoice payload", "details": err.Error()})
		return
	}
	invoice, err := c.service.UpdateInvoice(branchOf(ctx), ctx.Param("id"), req.toInput())
	if err != nil {
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Invoice updated successfully", "invoice": invoice})
}

func (c *RecordController) ListInvoices(ctx *gin.Context) {
	invoices, err := c.service.ListInvoices(branchOf(ctx))
	if err != nil {
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"invoices": invoices})
}
