package services

import (
	"encoding/json"
	"fmt"
	"log"

	model "github.com/kavyansh10/GraminSetu/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// RecordService covers the pipeline entities with plain branch-scoped CRUD:
// opportunities, meetings, phone calls, RFPs and invoices. No automation
// rules attach to any of these.
type RecordService struct {
	db *gorm.DB
}

func NewRecordService(db *gorm.DB) *RecordService {
	return &RecordService{db: db}
}

type OpportunityInput struct {
	OpportunityName string
	Stage           model.OpportunityStage
	Value           float64
	OwnerUserID     string
	PersonID        string
}

func (s *RecordService) CreateOpportunity(branch string, in OpportunityInput) (*model.Opportunity, error) {
	if in.OpportunityName == "" {
		return nil, fmt.Errorf("%w: opportunity_name is required", ErrInvalidInput)
	}
	if !in.Stage.Valid() {
		return nil, fmt.Errorf("%w: unknown stage %q", ErrInvalidInput, in.Stage)
	}
	opp := model.Opportunity{
		OpportunityName: in.OpportunityName,
		Stage:           in.Stage,
		Value:           in.Value,
		OwnerUserID:     in.OwnerUserID,
		PersonID:        in.PersonID,
		Branch:          branch,
	}
	if err := s.db.Create(&opp).Error; err != nil {
		log.Printf("[CreateOpportunity] Error creating opportunity: %v", err)
		return nil, fmt.Errorf("failed to create opportunity: %w", err)
	}
	return &opp, nil
}

func (s *RecordService) UpdateOpportunity(branch, id string, in OpportunityInput) (*model.Opportunity, error) {
	if !in.Stage.Valid() {
		return nil, fmt.Errorf("%w: unknown stage %q", ErrInvalidInput, in.Stage)
	}
	var opp model.Opportunity
	if err := s.db.Where("branch = ?", branch).First(&opp, "id = ?", id).Error; err != nil {
		return nil, err
	}
	opp.OpportunityName = in.OpportunityName
	opp.Stage = in.Stage
	opp.Value = in.Value
	opp.OwnerUserID = in.OwnerUserID
	opp.PersonID = in.PersonID
	if err := s.db.Save(&opp).Error; err != nil {
		log.Printf("[UpdateOpportunity] Error updating opportunity %s: %v", id, err)
		return nil, err
	}
	return &opp, nil
}

func (s *RecordService) ListOpportunities(branch string) ([]model.Opportunity, error) {
	var opps []model.Opportunity
	if err := s.db.Where("branch = ?", branch).Order("created_at desc").Find(&opps).Error; err != nil {
		return nil, err
	}
	return opps, nil
}

func (s *RecordService) GetOpportunity(branch, id string) (*model.Opportunity, error) {
	var opp model.Opportunity
	if err := s.db.Where("branch = ?", branch).First(&opp, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &opp, nil
}

type MeetingInput struct {
	MeetingTitle string
	ScheduledAt  string
	Location     string
	AttendeeIDs  []string
	Notes        string
	CreatedBy    string
}

func (s *RecordService) CreateMeeting(branch string, in MeetingInput) (*model.Meeting, error) {
	if in.MeetingTitle == "" {
		return nil, fmt.Errorf("%w: meeting_title is required", ErrInvalidInput)
	}
	attendees, err := json.Marshal(in.AttendeeIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to encode attendee ids: %w", err)
	}
	meeting := model.Meeting{
		MeetingTitle: in.MeetingTitle,
		ScheduledAt:  in.ScheduledAt,
		Location:     in.Location,
		AttendeeIDs:  datatypes.JSON(attendees),
		Notes:        in.Notes,
		Branch:       branch,
		CreatedBy:    in.CreatedBy,
	}
	if err := s.db.Create(&meeting).Error; err != nil {
		log.Printf("[CreateMeeting] Error creating meeting: %v", err)
		return nil, fmt.Errorf("failed to create meeting: %w", err)
	}
	return &meeting, nil
}

func (s *RecordService) UpdateMeeting(branch, id string, in MeetingInput) (*model.Meeting, error) {
	var meeting model.Meeting
	if err := s.db.Where("branch = ?", branch).First(&meeting, "id = ?", id).Error; err != nil {
		return nil, err
	}
	attendees, err := json.Marshal(in.AttendeeIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to encode attendee ids: %w", err)
	}
	meeting.MeetingTitle = in.MeetingTitle
	meeting.ScheduledAt = in.ScheduledAt
	meeting.Location = in.Location
	meeting.AttendeeIDs = datatypes.JSON(attendees)
	meeting.Notes = in.Notes
	if err := s.db.Save(&meeting).Error; err != nil {
		log.Printf("[UpdateMeeting] Error updating meeting %s: %v", id, err)
		return nil, err
	}
	return &meeting, nil
}

func (s *RecordService) ListMeetings(branch string) ([]model.Meeting, error) {
	var meetings []model.Meeting
	if err := s.db.Where("branch = ?", branch).Order("scheduled_at desc").Find(&meetings).Error; err != nil {
		return nil, err
	}
	return meetings, nil
}

type PhoneCallInput struct {
	CallTime string
	Duration int
	Outcome  model.CallOutcome
	PersonID string
	Notes    string
}

func (s *RecordService) CreatePhoneCall(branch string, in PhoneCallInput) (*model.PhoneCall, error) {
	if !in.Outcome.Valid() {
		return nil, fmt.Errorf("%w: unknown call outcome %q", ErrInvalidInput, in.Outcome)
	}
	call := model.PhoneCall{
		CallTime: in.CallTime,
		Duration: in.Duration,
		Outcome:  in.Outcome,
		PersonID: in.PersonID,
		Notes:    in.Notes,
		Branch:   branch,
	}
	if err := s.db.Create(&call).Error; err != nil {
		log.Printf("[CreatePhoneCall] Error creating phone call: %v", err)
		return nil, fmt.Errorf("failed to create phone call: %w", err)
	}
	return &call, nil
}

func (s *RecordService) UpdatePhoneCall(branch, id string, in PhoneCallInput) (*model.PhoneCall, error) {
	if !in.Outcome.Valid() {
		return nil, fmt.Errorf("%w: unknown call outcome %q", ErrInvalidInput, in.Outcome)
	}
	var call model.PhoneCall
	if err := s.db.Where("branch = ?", branch).First(&call, "id = ?", id).Error; err != nil {
		return nil, err
	}
	call.CallTime = in.CallTime
	call.Duration = in.Duration
	call.Outcome = in.Outcome
	call.PersonID = in.PersonID
	call.Notes = in.Notes
	if err := s.db.Save(&call).Error; err != nil {
		log.Printf("[UpdatePhoneCall] Error updating phone call %s: %v", id, err)
		return nil, err
	}
	return &call, nil
}

func (s *RecordService) ListPhoneCalls(branch string) ([]model.PhoneCall, error) {
	var calls []model.PhoneCall
	if err := s.db.Where("branch = ?", branch).Order("call_time desc").Find(&calls).Error; err != nil {
		return nil, err
	}
	return calls, nil
}

type RFPInput struct {
	RFPTitle       string
	Status         model.RFPStatus
	DueDate        string
	PersonID       string
	AttachmentName string
	AttachmentURL  string
}

func (s *RecordService) CreateRFP(branch string, in RFPInput) (*model.RFP, error) {
	if in.RFPTitle == "" {
		return nil, fmt.Errorf("%w: rfp_title is required", ErrInvalidInput)
	}
	if !in.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown RFP status %q", ErrInvalidInput, in.Status)
	}
	rfp := model.RFP{
		RFPTitle:       in.RFPTitle,
		Status:         in.Status,
		DueDate:        in.DueDate,
		PersonID:       in.PersonID,
		AttachmentName: in.AttachmentName,
		AttachmentURL:  in.AttachmentURL,
		Branch:         branch,
	}
	if err := s.db.Create(&rfp).Error; err != nil {
		log.Printf("[CreateRFP] Error creating RFP: %v", err)
		return nil, fmt.Errorf("failed to create RFP: %w", err)
	}
	return &rfp, nil
}

func (s *RecordService) UpdateRFP(branch, id string, in RFPInput) (*model.RFP, error) {
	if !in.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown RFP status %q", ErrInvalidInput, in.Status)
	}
	var rfp model.RFP
	if err := s.db.Where("branch = ?", branch).First(&rfp, "id = ?", id).Error; err != nil {
		return nil, err
	}
	rfp.RFPTitle = in.RFPTitle
	rfp.Status = in.Status
	rfp.DueDate = in.DueDate
	rfp.PersonID = in.PersonID
	if in.AttachmentName != "" {
		rfp.AttachmentName = in.AttachmentName
		rfp.AttachmentURL = in.AttachmentURL
	}
	if err := s.db.Save(&rfp).Error; err != nil {
		log.Printf("[UpdateRFP] Error updating RFP %s: %v", id, err)
		return nil, err
	}
	return &rfp, nil
}

func (s *RecordService) ListRFPs(branch string) ([]model.RFP, error) {
	var rfps []model.RFP
	if err := s.db.Where("branch = ?", branch).Order("created_at desc").Find(&rfps).Error; err != nil {
		return nil, err
	}
	return rfps, nil
}

type InvoiceInput struct {
	InvoiceTitle   string
	Status         model.InvoiceStatus
	Amount         float64
	PersonID       string
	AttachmentName string
	AttachmentURL  string
}

func (s *RecordService) CreateInvoice(branch string, in InvoiceInput) (*model.Invoice, error) {
	if in.InvoiceTitle == "" {
		return nil, fmt.Errorf("%w: invoice_title is required", ErrInvalidInput)
	}
	if !in.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown invoice status %q", ErrInvalidInput, in.Status)
	}
	invoice := model.Invoice{
		InvoiceTitle:   in.InvoiceTitle,
		Status:         in.Status,
		Amount:         in.Amount,
		PersonID:       in.PersonID,
		AttachmentName: in.AttachmentName,
		AttachmentURL:  in.AttachmentURL,
		Branch:         branch,
	}
	if err := s.db.Create(&invoice).Error; err != nil {
		log.Printf("[CreateInvoice] Error creating invoice: %v", err)
		return nil, fmt.Errorf("failed to create invoice: %w", err)
	}
	return &invoice, nil
}

func (s *RecordService) UpdateInvoice(branch, id string, in InvoiceInput) (*model.Invoice, error) {
	if !in.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown invoice status %q", ErrInvalidInput, in.Status)
	}
	var invoice model.Invoice
	if err := s.db.Where("branch = ?", branch).First(&invoice, "id = ?", id).Error; err != nil {
		return nil, err
	}
	invoice.InvoiceTitle = in.InvoiceTitle
	invoice.Status = in.Status
	invoice.Amount = in.Amount
	invoice.PersonID = in.PersonID
	if in.AttachmentName != "" {
		invoice.AttachmentName = in.AttachmentName
		invoice.AttachmentURL = in.AttachmentURL
	}
	if err := s.db.Save(&invoice).Error; err != nil {
		log.Printf("[UpdateInvoice] Error updating invoice %s: %v", id, err)
		return nil, err
	}
	return &invoice, nil
}

func (s *RecordService) ListInvoices(branch string) ([]model.Invoice, error) {
	var invoices []model.Invoice
	if err := s.db.Where("branch = ?", branch).Order("created_at desc").Find(&invoices).Error; err != nil {
		return nil, err
	}
	return invoices, nil
}
