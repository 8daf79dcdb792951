package grpc

// Temporary gRPC message types until proto generation is wired.

import (
	"time"

	"github.com/meridianbank/origination/internal/application/dto"
)

type CreateApplicationRequestMsg struct {
	CustomerRef     string `json:"customer_ref"`
	Category        string `json:"category"`
	RequestedAmount string `json:"requested_amount"`
	TermMonths      int32  `json:"term_months"`
	Purpose         string `json:"purpose,omitempty"`
	DeclaredIncome  string `json:"declared_income,omitempty"`
	ExistingDebt    string `json:"existing_debt,omitempty"`
	CollateralValue string `json:"collateral_value,omitempty"`
}

type UpdateDraftRequestMsg struct {
	ApplicationID   string `json:"application_id"`
	RequestedAmount string `json:"requested_amount"`
	TermMonths      int32  `json:"term_months"`
	Purpose         string `json:"purpose,omitempty"`
	DeclaredIncome  string `json:"declared_income,omitempty"`
	ExistingDebt    string `json:"existing_debt,omitempty"`
	CollateralValue string `json:"collateral_value,omitempty"`
}

type SubmitApplicationRequestMsg struct {
	ApplicationID string `json:"application_id"`
}

type AdvanceReviewRequestMsg struct {
	ApplicationID string `json:"application_id"`
}

type RequestInfoRequestMsg struct {
	ApplicationID string `json:"application_id"`
	Reason        string `json:"reason"`
}

type ResolveInfoRequestMsg struct {
	ApplicationID string `json:"application_id"`
}

type AssessApplicationRequestMsg struct {
	ApplicationID string `json:"application_id"`
}

type ApproveApplicationRequestMsg struct {
	ApplicationID      string `json:"application_id"`
	ApprovedAmount     string `json:"approved_amount"`
	ApprovedTermMonths int32  `json:"approved_term_months"`
	ApprovedRate       string `json:"approved_rate"`
	Reason             string `json:"reason,omitempty"`
}

type RejectApplicationRequestMsg struct {
	ApplicationID string `json:"application_id"`
	Reason        string `json:"reason"`
}

type DisburseApplicationRequestMsg struct {
	ApplicationID   string `json:"application_id"`
	DisbursedAmount string `json:"disbursed_amount"`
}

type CancelApplicationRequestMsg struct {
	ApplicationID string `json:"application_id"`
}

type GetApplicationRequestMsg struct {
	ApplicationID     string `json:"application_id,omitempty"`
	ApplicationNumber string `json:"application_number,omitempty"`
}

type ListApplicationsRequestMsg struct {
	CustomerRef string `json:"customer_ref"`
}

type ComputeScheduleRequestMsg struct {
	Principal         string `json:"principal"`
	AnnualRatePercent string `json:"annual_rate_percent"`
	TermMonths        int32  `json:"term_months"`
}

type AssessmentMsg struct {
	RiskScore     int32    `json:"risk_score"`
	RiskGrade     string   `json:"risk_grade"`
	DebtToIncome  string   `json:"debt_to_income,omitempty"`
	LoanToValue   string   `json:"loan_to_value,omitempty"`
	Complete      bool     `json:"complete"`
	MissingInputs []string `json:"missing_inputs,omitempty"`
	Notes         string   `json:"notes,omitempty"`
}

type ApplicationMsg struct {
	ID                 string         `json:"id"`
	ApplicationNumber  string         `json:"application_number,omitempty"`
	CustomerRef        string         `json:"customer_ref"`
	Category           string         `json:"category"`
	RequestedAmount    string         `json:"requested_amount"`
	TermMonths         int32          `json:"term_months"`
	Purpose            string         `json:"purpose,omitempty"`
	DeclaredIncome     string         `json:"declared_income,omitempty"`
	ExistingDebt       string         `json:"existing_debt,omitempty"`
	CollateralValue    string         `json:"collateral_value,omitempty"`
	Status             string         `json:"status"`
	Assessment         *AssessmentMsg `json:"assessment,omitempty"`
	ApprovedAmount     string         `json:"approved_amount,omitempty"`
	ApprovedTermMonths int32          `json:"approved_term_months,omitempty"`
	ApprovedRate       string         `json:"approved_rate,omitempty"`
	MonthlyPayment     string         `json:"monthly_payment,omitempty"`
	DisbursedAmount    string         `json:"disbursed_amount,omitempty"`
	DecisionReason     string         `json:"decision_reason,omitempty"`
	DecidedBy          string         `json:"decided_by,omitempty"`
	SubmittedAt        string         `json:"submitted_at,omitempty"`
	DecidedAt          string         `json:"decided_at,omitempty"`
	DisbursedAt        string         `json:"disbursed_at,omitempty"`
	Version            int32          `json:"version"`
	CreatedAt          string         `json:"created_at"`
	UpdatedAt          string         `json:"updated_at"`
}

type ApplicationResponseMsg struct {
	Application *ApplicationMsg `json:"application"`
}

type ListApplicationsResponseMsg struct {
	Applications []*ApplicationMsg `json:"applications"`
	TotalCount   int32             `json:"total_count"`
}

type ScheduleEntryMsg struct {
	Month            int32  `json:"month"`
	Payment          string `json:"payment"`
	PrincipalPortion string `json:"principal_portion"`
	InterestPortion  string `json:"interest_portion"`
	RemainingBalance string `json:"remaining_balance"`
}

type ComputeScheduleResponseMsg struct {
	MonthlyPayment string              `json:"monthly_payment"`
	TotalPayment   string              `json:"total_payment"`
	TotalInterest  string              `json:"total_interest"`
	Entries        []*ScheduleEntryMsg `json:"entries"`
}

func toApplicationMsg(r dto.ApplicationResponse) *ApplicationMsg {
	msg := &ApplicationMsg{
		ID:                 r.ID,
		ApplicationNumber:  r.ApplicationNumber,
		CustomerRef:        r.CustomerRef,
		Category:           r.Category,
		RequestedAmount:    r.RequestedAmount.StringFixed(2),
		TermMonths:         int32(r.TermMonths),         //nolint:gosec // bounded
		ApprovedTermMonths: int32(r.ApprovedTermMonths), //nolint:gosec // bounded
		Purpose:            r.Purpose,
		Status:             r.Status,
		DecisionReason:     r.DecisionReason,
		DecidedBy:          r.DecidedBy,
		Version:            int32(r.Version), //nolint:gosec // bounded
		CreatedAt:          r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          r.UpdatedAt.Format(time.RFC3339),
	}
	if r.DeclaredIncome.Valid {
		msg.DeclaredIncome = r.DeclaredIncome.Decimal.StringFixed(2)
	}
	if r.ExistingDebt.Valid {
		msg.ExistingDebt = r.ExistingDebt.Decimal.StringFixed(2)
	}
	if r.CollateralValue.Valid {
		msg.CollateralValue = r.CollateralValue.Decimal.StringFixed(2)
	}
	if r.ApprovedAmount.Valid {
		msg.ApprovedAmount = r.ApprovedAmount.Decimal.StringFixed(2)
	}
	if r.ApprovedRate.Valid {
		msg.ApprovedRate = r.ApprovedRate.Decimal.String()
	}
	if r.MonthlyPayment.Valid {
		msg.MonthlyPayment = r.MonthlyPayment.Decimal.StringFixed(2)
	}
	if r.DisbursedAmount.Valid {
		msg.DisbursedAmount = r.DisbursedAmount.Decimal.StringFixed(2)
	}
	if r.SubmittedAt != nil {
		msg.SubmittedAt = r.SubmittedAt.Format(time.RFC3339)
	}
	if r.DecidedAt != nil {
		msg.DecidedAt = r.DecidedAt.Format(time.RFC3339)
	}
	if r.DisbursedAt != nil {
		msg.DisbursedAt = r.DisbursedAt.Format(time.RFC3339)
	}
	if r.Assessment != nil {
		msg.Assessment = &AssessmentMsg{
			RiskScore:     int32(r.Assessment.RiskScore), //nolint:gosec // bounded
			RiskGrade:     r.Assessment.RiskGrade,
			DebtToIncome:  r.Assessment.DebtToIncome,
			LoanToValue:   r.Assessment.LoanToValue,
			Complete:      r.Assessment.Complete,
			MissingInputs: r.Assessment.MissingInputs,
			Notes:         r.Assessment.Notes,
		}
	}
	return msg
}
