package event

import (
	"github.com/shopspring/decimal"

	"github.com/meridianbank/origination/pkg/events"
)

// DomainEvent is an alias for the shared pkg/events.DomainEvent interface.
type DomainEvent = events.DomainEvent

const aggregateType = "LoanApplication"

// ---------------------------------------------------------------------------
// Loan Application lifecycle events
// ---------------------------------------------------------------------------

// ApplicationCreated is raised when a draft application enters the system.
type ApplicationCreated struct {
	events.BaseEvent
	CustomerRef     string          `json:"customer_ref"`
	Category        string          `json:"category"`
	RequestedAmount decimal.Decimal `json:"requested_amount"`
	TermMonths      int             `json:"term_months"`
}

func NewApplicationCreated(applicationID, customerRef, category string, amount decimal.Decimal, termMonths int) ApplicationCreated {
	return ApplicationCreated{
		BaseEvent:       events.NewBaseEvent("origination.application.created", applicationID, aggregateType),
		CustomerRef:     customerRef,
		Category:        category,
		RequestedAmount: amount,
		TermMonths:      termMonths,
	}
}

// ApplicationSubmitted is raised when a draft is submitted and receives its
// application number.
type ApplicationSubmitted struct {
	events.BaseEvent
	ApplicationNumber string          `json:"application_number"`
	CustomerRef       string          `json:"customer_ref"`
	Category          string          `json:"category"`
	RequestedAmount   decimal.Decimal `json:"requested_amount"`
	TermMonths        int             `json:"term_months"`
}

func NewApplicationSubmitted(applicationID, applicationNumber, customerRef, category string, amount decimal.Decimal, termMonths int) ApplicationSubmitted {
	return ApplicationSubmitted{
		BaseEvent:         events.NewBaseEvent("origination.application.submitted", applicationID, aggregateType),
		ApplicationNumber: applicationNumber,
		CustomerRef:       customerRef,
		Category:          category,
		RequestedAmount:   amount,
		TermMonths:        termMonths,
	}
}

// ApplicationReviewAdvanced is raised when an application moves one stage
// forward through the review pipeline.
type ApplicationReviewAdvanced struct {
	events.BaseEvent
	FromStatus string `json:"from_status"`
	ToStatus   string `json:"to_status"`
}

func NewApplicationReviewAdvanced(applicationID, from, to string) ApplicationReviewAdvanced {
	return ApplicationReviewAdvanced{
		BaseEvent:  events.NewBaseEvent("origination.application.review_advanced", applicationID, aggregateType),
		FromStatus: from,
		ToStatus:   to,
	}
}

// ApplicationInfoRequested is raised when a review stage is paused pending
// additional information from the applicant.
type ApplicationInfoRequested struct {
	events.BaseEvent
	Reason       string `json:"reason"`
	PausedStatus string `json:"paused_status"`
}

func NewApplicationInfoRequested(applicationID, reason, pausedStatus string) ApplicationInfoRequested {
	return ApplicationInfoRequested{
		BaseEvent:    events.NewBaseEvent("origination.application.info_requested", applicationID, aggregateType),
		Reason:       reason,
		PausedStatus: pausedStatus,
	}
}

// ApplicationInfoResolved is raised when the requested information arrives
// and review resumes at the interrupted stage.
type ApplicationInfoResolved struct {
	events.BaseEvent
	ResumedStatus string `json:"resumed_status"`
}

func NewApplicationInfoResolved(applicationID, resumedStatus string) ApplicationInfoResolved {
	return ApplicationInfoResolved{
		BaseEvent:     events.NewBaseEvent("origination.application.info_resolved", applicationID, aggregateType),
		ResumedStatus: resumedStatus,
	}
}

// ApplicationAssessed is raised when a risk assessment outcome is recorded.
type ApplicationAssessed struct {
	events.BaseEvent
	RiskScore  int    `json:"risk_score"`
	RiskGrade  string `json:"risk_grade"`
	Complete   bool   `json:"complete"`
	AutoRouted bool   `json:"auto_routed"`
}

func NewApplicationAssessed(applicationID string, score int, grade string, complete, autoRouted bool) ApplicationAssessed {
	return ApplicationAssessed{
		BaseEvent:  events.NewBaseEvent("origination.application.assessed", applicationID, aggregateType),
		RiskScore:  score,
		RiskGrade:  grade,
		Complete:   complete,
		AutoRouted: autoRouted,
	}
}

// ApplicationApproved is raised when an application is approved, manually or
// through the auto-approval path.
type ApplicationApproved struct {
	events.BaseEvent
	ApprovedAmount     decimal.Decimal `json:"approved_amount"`
	ApprovedTermMonths int             `json:"approved_term_months"`
	ApprovedRate       decimal.Decimal `json:"approved_rate"`
	MonthlyPayment     decimal.Decimal `json:"monthly_payment"`
	ApprovedBy         string          `json:"approved_by"`
	Reason             string          `json:"reason"`
	Auto               bool            `json:"auto"`
}

func NewApplicationApproved(
	applicationID string,
	amount decimal.Decimal, termMonths int, rate, monthlyPayment decimal.Decimal,
	approvedBy, reason string, auto bool,
) ApplicationApproved {
	return ApplicationApproved{
		BaseEvent:          events.NewBaseEvent("origination.application.approved", applicationID, aggregateType),
		ApprovedAmount:     amount,
		ApprovedTermMonths: termMonths,
		ApprovedRate:       rate,
		MonthlyPayment:     monthlyPayment,
		ApprovedBy:         approvedBy,
		Reason:             reason,
		Auto:               auto,
	}
}

// ApplicationRejected is raised when an application is rejected.
type ApplicationRejected struct {
	events.BaseEvent
	Reason     string `json:"reason"`
	RejectedBy string `json:"rejected_by"`
}

func NewApplicationRejected(applicationID, reason, rejectedBy string) ApplicationRejected {
	return ApplicationRejected{
		BaseEvent:  events.NewBaseEvent("origination.application.rejected", applicationID, aggregateType),
		Reason:     reason,
		RejectedBy: rejectedBy,
	}
}

// ApplicationDisbursed is raised when an approved loan is paid out.
type ApplicationDisbursed struct {
	events.BaseEvent
	DisbursedAmount decimal.Decimal `json:"disbursed_amount"`
}

func NewApplicationDisbursed(applicationID string, amount decimal.Decimal) ApplicationDisbursed {
	return ApplicationDisbursed{
		BaseEvent:       events.NewBaseEvent("origination.application.disbursed", applicationID, aggregateType),
		DisbursedAmount: amount,
	}
}

// ApplicationCancelled is raised when the applicant withdraws.
type ApplicationCancelled struct {
	events.BaseEvent
}

func NewApplicationCancelled(applicationID string) ApplicationCancelled {
	return ApplicationCancelled{
		BaseEvent: events.NewBaseEvent("origination.application.cancelled", applicationID, aggregateType),
	}
}
