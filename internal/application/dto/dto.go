package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Request DTOs
// ---------------------------------------------------------------------------

// CreateApplicationRequest carries the data needed to open a draft application.
type CreateApplicationRequest struct {
	CustomerRef     string              `json:"customer_ref"`
	Category        string              `json:"category"`
	RequestedAmount decimal.Decimal     `json:"requested_amount"`
	TermMonths      int                 `json:"term_months"`
	Purpose         string              `json:"purpose"`
	DeclaredIncome  decimal.NullDecimal `json:"declared_income"`
	ExistingDebt    decimal.NullDecimal `json:"existing_debt"`
	CollateralValue decimal.NullDecimal `json:"collateral_value"`
}

// UpdateDraftRequest replaces the editable fields of a draft.
type UpdateDraftRequest struct {
	ApplicationID   string              `json:"application_id"`
	RequestedAmount decimal.Decimal     `json:"requested_amount"`
	TermMonths      int                 `json:"term_months"`
	Purpose         string              `json:"purpose"`
	DeclaredIncome  decimal.NullDecimal `json:"declared_income"`
	ExistingDebt    decimal.NullDecimal `json:"existing_debt"`
	CollateralValue decimal.NullDecimal `json:"collateral_value"`
}

// SubmitApplicationRequest identifies a draft to submit for review.
type SubmitApplicationRequest struct {
	ApplicationID string `json:"application_id"`
}

// AdvanceReviewRequest moves an application one review stage forward.
type AdvanceReviewRequest struct {
	ApplicationID string `json:"application_id"`
}

// AssessApplicationRequest triggers a risk assessment run.
type AssessApplicationRequest struct {
	ApplicationID string `json:"application_id"`
}

// ApproveApplicationRequest carries a manual approval decision.
type ApproveApplicationRequest struct {
	ApplicationID      string          `json:"application_id"`
	ApprovedAmount     decimal.Decimal `json:"approved_amount"`
	ApprovedTermMonths int             `json:"approved_term_months"`
	ApprovedRate       decimal.Decimal `json:"approved_rate"`
	ApprovedBy         string          `json:"approved_by"`
	Reason             string          `json:"reason"`
}

// RejectApplicationRequest carries a rejection decision.
type RejectApplicationRequest struct {
	ApplicationID string `json:"application_id"`
	Reason        string `json:"reason"`
	RejectedBy    string `json:"rejected_by"`
}

// DisburseApplicationRequest pays out an approved application.
type DisburseApplicationRequest struct {
	ApplicationID   string          `json:"application_id"`
	DisbursedAmount decimal.Decimal `json:"disbursed_amount"`
}

// CancelApplicationRequest withdraws an open application.
type CancelApplicationRequest struct {
	ApplicationID string `json:"application_id"`
}

// RequestInfoRequest pauses a review stage pending applicant information.
type RequestInfoRequest struct {
	ApplicationID string `json:"application_id"`
	Reason        string `json:"reason"`
}

// ResolveInfoRequest resumes a paused review stage.
type ResolveInfoRequest struct {
	ApplicationID string `json:"application_id"`
}

// GetApplicationRequest identifies an application to retrieve, by id or by
// application number.
type GetApplicationRequest struct {
	ApplicationID     string `json:"application_id"`
	ApplicationNumber string `json:"application_number"`
}

// ---------------------------------------------------------------------------
// Response DTOs
// ---------------------------------------------------------------------------

// AssessmentResponse is the external representation of a risk assessment.
type AssessmentResponse struct {
	RiskScore     int      `json:"risk_score"`
	RiskGrade     string   `json:"risk_grade"`
	DebtToIncome  string   `json:"debt_to_income,omitempty"`
	LoanToValue   string   `json:"loan_to_value,omitempty"`
	Complete      bool     `json:"complete"`
	MissingInputs []string `json:"missing_inputs,omitempty"`
	Notes         string   `json:"notes,omitempty"`
}

// ApplicationResponse is the external representation of a loan application.
type ApplicationResponse struct {
	ID                 string              `json:"id"`
	ApplicationNumber  string              `json:"application_number,omitempty"`
	CustomerRef        string              `json:"customer_ref"`
	Category           string              `json:"category"`
	RequestedAmount    decimal.Decimal     `json:"requested_amount"`
	TermMonths         int                 `json:"term_months"`
	Purpose            string              `json:"purpose,omitempty"`
	DeclaredIncome     decimal.NullDecimal `json:"declared_income"`
	ExistingDebt       decimal.NullDecimal `json:"existing_debt"`
	CollateralValue    decimal.NullDecimal `json:"collateral_value"`
	Status             string              `json:"status"`
	Assessment         *AssessmentResponse `json:"assessment,omitempty"`
	ApprovedAmount     decimal.NullDecimal `json:"approved_amount"`
	ApprovedTermMonths int                 `json:"approved_term_months,omitempty"`
	ApprovedRate       decimal.NullDecimal `json:"approved_rate"`
	MonthlyPayment     decimal.NullDecimal `json:"monthly_payment"`
	DisbursedAmount    decimal.NullDecimal `json:"disbursed_amount"`
	DecisionReason     string              `json:"decision_reason,omitempty"`
	DecidedBy          string              `json:"decided_by,omitempty"`
	SubmittedAt        *time.Time          `json:"submitted_at,omitempty"`
	DecidedAt          *time.Time          `json:"decided_at,omitempty"`
	DisbursedAt        *time.Time          `json:"disbursed_at,omitempty"`
	Version            int                 `json:"version"`
	CreatedAt          time.Time           `json:"created_at"`
	UpdatedAt          time.Time           `json:"updated_at"`
}

// ScheduleEntryResponse represents a single amortization schedule row.
type ScheduleEntryResponse struct {
	Month            int             `json:"month"`
	Payment          decimal.Decimal `json:"payment"`
	PrincipalPortion decimal.Decimal `json:"principal_portion"`
	InterestPortion  decimal.Decimal `json:"interest_portion"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
}

// ScheduleRequest asks for an amortization schedule preview.
type ScheduleRequest struct {
	Principal         decimal.Decimal `json:"principal"`
	AnnualRatePercent decimal.Decimal `json:"annual_rate_percent"`
	TermMonths        int             `json:"term_months"`
}

// ScheduleResponse carries a computed schedule preview.
type ScheduleResponse struct {
	MonthlyPayment decimal.Decimal         `json:"monthly_payment"`
	TotalPayment   decimal.Decimal         `json:"total_payment"`
	TotalInterest  decimal.Decimal         `json:"total_interest"`
	Entries        []ScheduleEntryResponse `json:"entries"`
}
