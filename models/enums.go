package models

// Enum vocabularies used across the CRM. Values arriving from clients are
// validated against these sets at the controller boundary; anything outside
// the set is rejected before it reaches storage.

type PGPDStage string

const (
	StagePlan      PGPDStage = "Plan"
	StageGrow      PGPDStage = "Grow"
	StageProtect   PGPDStage = "Protect"
	StageDiversify PGPDStage = "Diversify"
)

func (s PGPDStage) Valid() bool {
	switch s {
	case StagePlan, StageGrow, StageProtect, StageDiversify:
		return true
	}
	return false
}

type PersonRole string

const (
	RolePrimaryEarner PersonRole = "Primary Earner"
	RoleBorrower      PersonRole = "Borrower"
)

func (r PersonRole) Valid() bool {
	return r == RolePrimaryEarner || r == RoleBorrower
}

type RiskFlag string

const (
	FlagClimateRisk      RiskFlag = "Climate Risk"
	FlagIncomeVolatility RiskFlag = "Income Volatility"
	FlagHealthShockRisk  RiskFlag = "Health Shock Risk"
)

func (f RiskFlag) Valid() bool {
	switch f {
	case FlagClimateRisk, FlagIncomeVolatility, FlagHealthShockRisk:
		return true
	}
	return false
}

// RiskStatus is derived from the risk flags, never edited directly.
type RiskStatus string

const (
	RiskNormal RiskStatus = "Normal"
	RiskAtRisk RiskStatus = "At Risk"
)

// RiskStatusFor computes the derived status: any flag set means At Risk.
func RiskStatusFor(flags []RiskFlag) RiskStatus {
	if len(flags) > 0 {
		return RiskAtRisk
	}
	return RiskNormal
}

type ProductType string

const (
	ProductLoan      ProductType = "Loan"
	ProductInsurance ProductType = "Insurance"
	ProductSavings   ProductType = "Savings"
	ProductPension   ProductType = "Pension"
)

func (t ProductType) Valid() bool {
	switch t {
	case ProductLoan, ProductInsurance, ProductSavings, ProductPension:
		return true
	}
	return false
}

type ProductStatus string

const (
	ProductActive     ProductStatus = "Active"
	ProductClosed     ProductStatus = "Closed"
	ProductRenewalDue ProductStatus = "Renewal Due"
)

func (s ProductStatus) Valid() bool {
	switch s {
	case ProductActive, ProductClosed, ProductRenewalDue:
		return true
	}
	return false
}

type InteractionType string

const (
	InteractionFieldVisit      InteractionType = "Field Visit"
	InteractionEMIFollowUp     InteractionType = "EMI Follow-up"
	InteractionInsuranceTalk   InteractionType = "Insurance Discussion"
	InteractionClaimSupport    InteractionType = "Claim Support"
	InteractionFinancialReview InteractionType = "Financial Review"
)

func (t InteractionType) Valid() bool {
	switch t {
	case InteractionFieldVisit, InteractionEMIFollowUp, InteractionInsuranceTalk,
		InteractionClaimSupport, InteractionFinancialReview:
		return true
	}
	return false
}

type InteractionOutcome string

const (
	OutcomeCompleted           InteractionOutcome = "Completed"
	OutcomeFollowUpRequired    InteractionOutcome = "Follow-up Required"
	OutcomeCustomerUnavailable InteractionOutcome = "Customer Unavailable"
	OutcomeEscalated           InteractionOutcome = "Escalated"
)

func (o InteractionOutcome) Valid() bool {
	switch o {
	case OutcomeCompleted, OutcomeFollowUpRequired, OutcomeCustomerUnavailable, OutcomeEscalated:
		return true
	}
	return false
}

type TaskStatus string

const (
	TaskOpen      TaskStatus = "Open"
	TaskSuggested TaskStatus = "Suggested"
	TaskDone      TaskStatus = "Done"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskOpen, TaskSuggested, TaskDone:
		return true
	}
	return false
}

type TaskType string

const (
	TaskSystem               TaskType = "System"
	TaskFollowUp             TaskType = "FollowUp"
	TaskSuggestedInteraction TaskType = "SuggestedInteraction"
)

func (t TaskType) Valid() bool {
	switch t {
	case TaskSystem, TaskFollowUp, TaskSuggestedInteraction:
		return true
	}
	return false
}

type UserRole string

const (
	UserAdmin         UserRole = "Admin"
	UserBranchManager UserRole = "BranchManager"
	UserFieldOfficer  UserRole = "FieldOfficer"
)

func (r UserRole) Valid() bool {
	switch r {
	case UserAdmin, UserBranchManager, UserFieldOfficer:
		return true
	}
	return false
}

type EarningSource string

const (
	EarningAgriculture EarningSource = "Agriculture"
	EarningMSME        EarningSource = "MSME"
	EarningWage        EarningSource = "Wage"
)

func (e EarningSource) Valid() bool {
	switch e {
	case EarningAgriculture, EarningMSME, EarningWage:
		return true
	}
	return false
}

type SeasonalityProfile string

const (
	SeasonKharif    SeasonalityProfile = "Kharif"
	SeasonRabi      SeasonalityProfile = "Rabi"
	SeasonPerennial SeasonalityProfile = "Perennial"
)

func (s SeasonalityProfile) Valid() bool {
	switch s {
	case SeasonKharif, SeasonRabi, SeasonPerennial:
		return true
	}
	return false
}

type OpportunityStage string

const (
	StageIdentified OpportunityStage = "Identified"
	StageInReview   OpportunityStage = "In Review"
	StageProposal   OpportunityStage = "Proposal"
	StageWon        OpportunityStage = "Won"
	StageLost       OpportunityStage = "Lost"
)

func (s OpportunityStage) Valid() bool {
	switch s {
	case StageIdentified, StageInReview, StageProposal, StageWon, StageLost:
		return true
	}
	return false
}

type CallOutcome string

const (
	CallConnected        CallOutcome = "Connected"
	CallNoAnswer         CallOutcome = "No answer"
	CallFollowUpRequired CallOutcome = "Follow-up required"
)

func (o CallOutcome) Valid() bool {
	switch o {
	case CallConnected, CallNoAnswer, CallFollowUpRequired:
		return true
	}
	return false
}

type RFPStatus string

const (
	RFPDraft     RFPStatus = "Draft"
	RFPSubmitted RFPStatus = "Submitted"
	RFPWon       RFPStatus = "Won"
	RFPLost      RFPStatus = "Lost"
)

func (s RFPStatus) Valid() bool {
	switch s {
	case RFPDraft, RFPSubmitted, RFPWon, RFPLost:
		return true
	}
	return false
}

type InvoiceStatus string

const (
	InvoiceDraft   InvoiceStatus = "Draft"
	InvoiceSent    InvoiceStatus = "Sent"
	InvoicePaid    InvoiceStatus = "Paid"
	InvoiceOverdue InvoiceStatus = "Overdue"
)

func (s InvoiceStatus) Valid() bool {
	switch s {
	case InvoiceDraft, InvoiceSent, InvoicePaid, InvoiceOverdue:
		return true
	}
	return false
}
