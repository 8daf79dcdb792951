package model

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/meridianbank/origination/internal/domain/event"
	"github.com/meridianbank/origination/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// LoanApplication aggregate root
// ---------------------------------------------------------------------------

// LoanApplication is an immutable aggregate. Every transition returns a new
// copy; on error the receiver is returned unchanged, so a failed transition
// never leaves a partially mutated application behind.
type LoanApplication struct {
	id                  string
	applicationNumber   string
	customerRef         string
	category            valueobject.LoanCategory
	requestedAmount     decimal.Decimal
	requestedTermMonths int
	purpose             string
	declaredIncome      decimal.NullDecimal
	existingDebt        decimal.NullDecimal
	collateralValue     decimal.NullDecimal
	status              valueobject.ApplicationStatus
	resumeStatus        valueobject.ApplicationStatus
	assessment          *Assessment
	approvedAmount      decimal.NullDecimal
	approvedTermMonths  int
	approvedRate        decimal.NullDecimal
	monthlyPayment      decimal.NullDecimal
	disbursedAmount     decimal.NullDecimal
	decisionReason      string
	decidedBy           string
	submittedAt         time.Time
	decidedAt           time.Time
	disbursedAt         time.Time
	version             int
	createdAt           time.Time
	updatedAt           time.Time
	domainEvents        []event.DomainEvent
}

var applicationNumberPattern = regexp.MustCompile(`^LN-\d{4}-\d{4}$`)

// FormatApplicationNumber renders a year plus sequence value in the
// LN-YYYY-NNNN scheme used on every submitted application.
func FormatApplicationNumber(year, seq int) string {
	return fmt.Sprintf("LN-%04d-%04d", year, seq)
}

// ---------------------------------------------------------------------------
// Constructors
// ---------------------------------------------------------------------------

// NewLoanApplication creates a brand-new application in DRAFT status.
// Category bounds are the eligibility service's concern; this constructor
// only enforces structural requirements.
func NewLoanApplication(
	customerRef string,
	category valueobject.LoanCategory,
	requestedAmount decimal.Decimal,
	requestedTermMonths int,
	purpose string,
	declaredIncome, existingDebt, collateralValue decimal.NullDecimal,
	now time.Time,
) (LoanApplication, error) {
	if strings.TrimSpace(customerRef) == "" {
		return LoanApplication{}, valueobject.NewValidationError("customerRef", "customer reference is required")
	}
	if category.IsZero() {
		return LoanApplication{}, valueobject.NewValidationError("loanCategory", "loan category is required")
	}
	if requestedAmount.LessThanOrEqual(decimal.Zero) {
		return LoanApplication{}, valueobject.NewValidationError("requestedAmount", "requested amount must be positive")
	}
	if requestedTermMonths <= 0 {
		return LoanApplication{}, valueobject.NewValidationError("requestedTermMonths", "requested term must be positive")
	}

	id := uuid.New().String()
	app := LoanApplication{
		id:                  id,
		customerRef:         customerRef,
		category:            category,
		requestedAmount:     requestedAmount,
		requestedTermMonths: requestedTermMonths,
		purpose:             purpose,
		declaredIncome:      declaredIncome,
		existingDebt:        existingDebt,
		collateralValue:     collateralValue,
		status:              valueobject.StatusDraft,
		version:             1,
		createdAt:           now,
		updatedAt:           now,
	}
	app.domainEvents = append(app.domainEvents, event.NewApplicationCreated(
		id, customerRef, category.String(), requestedAmount, requestedTermMonths,
	))
	return app, nil
}

// Snapshot is the flat persistence view of an aggregate. Optional monetary
// fields stay null until the transition that sets them.
type Snapshot struct {
	ID                  string
	ApplicationNumber   string
	CustomerRef         string
	Category            valueobject.LoanCategory
	RequestedAmount     decimal.Decimal
	RequestedTermMonths int
	Purpose             string
	DeclaredIncome      decimal.NullDecimal
	ExistingDebt        decimal.NullDecimal
	CollateralValue     decimal.NullDecimal
	Status              valueobject.ApplicationStatus
	ResumeStatus        valueobject.ApplicationStatus
	Assessment          *Assessment
	ApprovedAmount      decimal.NullDecimal
	ApprovedTermMonths  int
	ApprovedRate        decimal.NullDecimal
	MonthlyPayment      decimal.NullDecimal
	DisbursedAmount     decimal.NullDecimal
	DecisionReason      string
	DecidedBy           string
	SubmittedAt         time.Time
	DecidedAt           time.Time
	DisbursedAt         time.Time
	Version             int
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// ReconstructLoanApplication rebuilds an aggregate from persistence without
// side-effects; no events are raised.
func ReconstructLoanApplication(s Snapshot) LoanApplication {
	return LoanApplication{
		id:                  s.ID,
		applicationNumber:   s.ApplicationNumber,
		customerRef:         s.CustomerRef,
		category:            s.Category,
		requestedAmount:     s.RequestedAmount,
		requestedTermMonths: s.RequestedTermMonths,
		purpose:             s.Purpose,
		declaredIncome:      s.DeclaredIncome,
		existingDebt:        s.ExistingDebt,
		collateralValue:     s.CollateralValue,
		status:              s.Status,
		resumeStatus:        s.ResumeStatus,
		assessment:          s.Assessment,
		approvedAmount:      s.ApprovedAmount,
		approvedTermMonths:  s.ApprovedTermMonths,
		approvedRate:        s.ApprovedRate,
		monthlyPayment:      s.MonthlyPayment,
		disbursedAmount:     s.DisbursedAmount,
		decisionReason:      s.DecisionReason,
		decidedBy:           s.DecidedBy,
		submittedAt:         s.SubmittedAt,
		decidedAt:           s.DecidedAt,
		disbursedAt:         s.DisbursedAt,
		version:             s.Version,
		createdAt:           s.CreatedAt,
		updatedAt:           s.UpdatedAt,
	}
}

// Snapshot returns the flat persistence view of the aggregate.
func (a LoanApplication) Snapshot() Snapshot {
	return Snapshot{
		ID:                  a.id,
		ApplicationNumber:   a.applicationNumber,
		CustomerRef:         a.customerRef,
		Category:            a.category,
		RequestedAmount:     a.requestedAmount,
		RequestedTermMonths: a.requestedTermMonths,
		Purpose:             a.purpose,
		DeclaredIncome:      a.declaredIncome,
		ExistingDebt:        a.existingDebt,
		CollateralValue:     a.collateralValue,
		Status:              a.status,
		ResumeStatus:        a.resumeStatus,
		Assessment:          a.assessment,
		ApprovedAmount:      a.approvedAmount,
		ApprovedTermMonths:  a.approvedTermMonths,
		ApprovedRate:        a.approvedRate,
		MonthlyPayment:      a.monthlyPayment,
		DisbursedAmount:     a.disbursedAmount,
		DecisionReason:      a.decisionReason,
		DecidedBy:           a.decidedBy,
		SubmittedAt:         a.submittedAt,
		DecidedAt:           a.decidedAt,
		DisbursedAt:         a.disbursedAt,
		Version:             a.version,
		CreatedAt:           a.createdAt,
		UpdatedAt:           a.updatedAt,
	}
}

// ---------------------------------------------------------------------------
// State transitions (each returns a new copy)
// ---------------------------------------------------------------------------

// UpdateDraft replaces the editable fields of a DRAFT application, including
// the applicant-declared financial inputs consumed by the risk classifier.
func (a LoanApplication) UpdateDraft(
	requestedAmount decimal.Decimal,
	requestedTermMonths int,
	purpose string,
	declaredIncome, existingDebt, collateralValue decimal.NullDecimal,
	now time.Time,
) (LoanApplication, error) {
	if !a.status.Equal(valueobject.StatusDraft) {
		return a, valueobject.NewValidationError("status", "only draft applications can be edited")
	}
	if requestedAmount.LessThanOrEqual(decimal.Zero) {
		return a, valueobject.NewValidationError("requestedAmount", "requested amount must be positive")
	}
	if requestedTermMonths <= 0 {
		return a, valueobject.NewValidationError("requestedTermMonths", "requested term must be positive")
	}

	next := a
	next.requestedAmount = requestedAmount
	next.requestedTermMonths = requestedTermMonths
	next.purpose = purpose
	next.declaredIncome = declaredIncome
	next.existingDebt = existingDebt
	next.collateralValue = collateralValue
	next.updatedAt = now
	next.domainEvents = copyEvents(a.domainEvents)
	return next, nil
}

// Submit transitions DRAFT -> SUBMITTED, stamping the application number and
// submission time. The number must follow the LN-YYYY-NNNN scheme; its
// uniqueness is the repository's concern.
func (a LoanApplication) Submit(applicationNumber string, now time.Time) (LoanApplication, error) {
	if !a.status.CanTransitionTo(valueobject.StatusSubmitted) {
		return a, valueobject.TransitionError{From: a.status, To: valueobject.StatusSubmitted}
	}
	if !applicationNumberPattern.MatchString(applicationNumber) {
		return a, valueobject.NewValidationError("applicationNumber", "number %q does not match LN-YYYY-NNNN", applicationNumber)
	}

	next := a
	next.status = valueobject.StatusSubmitted
	next.applicationNumber = applicationNumber
	next.submittedAt = now
	next.updatedAt = now
	next.domainEvents = copyEvents(a.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewApplicationSubmitted(
		a.id, applicationNumber, a.customerRef, a.category.String(), a.requestedAmount, a.requestedTermMonths,
	))
	return next, nil
}

// AdvanceReview moves the application one stage forward through the review
// pipeline: SUBMITTED -> PENDING, then each review stage to its successor.
func (a LoanApplication) AdvanceReview(now time.Time) (LoanApplication, error) {
	var target valueobject.ApplicationStatus
	switch {
	case a.status.Equal(valueobject.StatusSubmitted):
		target = valueobject.StatusPending
	default:
		next, ok := a.status.NextReviewStage()
		if !ok {
			return a, valueobject.TransitionError{From: a.status, To: valueobject.ApplicationStatus{}}
		}
		target = next
	}

	next := a
	next.status = target
	next.updatedAt = now
	next.domainEvents = copyEvents(a.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewApplicationReviewAdvanced(
		a.id, a.status.String(), target.String(),
	))
	return next, nil
}

// RequestInfo pauses a review stage, remembering where to resume.
func (a LoanApplication) RequestInfo(reason string, now time.Time) (LoanApplication, error) {
	if strings.TrimSpace(reason) == "" {
		return a, valueobject.NewValidationError("reason", "a reason is required to request information")
	}
	if !a.status.CanTransitionTo(valueobject.StatusPendingInfo) {
		return a, valueobject.TransitionError{From: a.status, To: valueobject.StatusPendingInfo}
	}

	next := a
	next.resumeStatus = a.status
	next.status = valueobject.StatusPendingInfo
	next.updatedAt = now
	next.domainEvents = copyEvents(a.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewApplicationInfoRequested(
		a.id, reason, a.status.String(),
	))
	return next, nil
}

// ResolveInfo returns a paused application to the review stage it left.
func (a LoanApplication) ResolveInfo(now time.Time) (LoanApplication, error) {
	if !a.status.Equal(valueobject.StatusPendingInfo) {
		return a, valueobject.TransitionError{From: a.status, To: a.resumeStatus}
	}
	if a.resumeStatus.IsZero() || !a.status.CanTransitionTo(a.resumeStatus) {
		return a, valueobject.TransitionError{From: a.status, To: a.resumeStatus}
	}

	resumed := a.resumeStatus
	next := a
	next.status = resumed
	next.resumeStatus = valueobject.ApplicationStatus{}
	next.updatedAt = now
	next.domainEvents = copyEvents(a.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewApplicationInfoResolved(
		a.id, resumed.String(),
	))
	return next, nil
}

// RecordAssessment attaches a risk assessment outcome in place. The status
// does not change; routing decisions belong to the caller.
func (a LoanApplication) RecordAssessment(assessment Assessment, now time.Time) (LoanApplication, error) {
	if !a.status.IsReview() {
		return a, valueobject.TransitionError{From: a.status, To: a.status}
	}
	if assessment.RiskScore < 0 || assessment.RiskScore > 100 {
		return a, valueobject.NewValidationError("riskScore", "score %d outside [0,100]", assessment.RiskScore)
	}

	next := a
	next.assessment = &assessment
	next.updatedAt = now
	next.domainEvents = copyEvents(a.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewApplicationAssessed(
		a.id, assessment.RiskScore, assessment.RiskGrade.String(), assessment.Complete, false,
	))
	return next, nil
}

// Approve transitions a review stage to APPROVED, storing the approved
// figures and the already-computed monthly payment atomically with the
// status change.
func (a LoanApplication) Approve(
	approvedAmount decimal.Decimal,
	approvedTermMonths int,
	approvedRate decimal.Decimal,
	monthlyPayment decimal.Decimal,
	approvedBy, reason string,
	auto bool,
	now time.Time,
) (LoanApplication, error) {
	if !a.status.CanTransitionTo(valueobject.StatusApproved) {
		return a, valueobject.TransitionError{From: a.status, To: valueobject.StatusApproved}
	}
	if approvedAmount.LessThanOrEqual(decimal.Zero) {
		return a, valueobject.NewValidationError("approvedAmount", "approved amount must be positive")
	}
	if approvedTermMonths <= 0 {
		return a, valueobject.NewValidationError("approvedTermMonths", "approved term must be positive")
	}
	if approvedRate.IsNegative() {
		return a, valueobject.NewValidationError("approvedRate", "approved rate must not be negative")
	}
	if strings.TrimSpace(approvedBy) == "" {
		return a, valueobject.NewValidationError("approvedBy", "approver is required")
	}

	next := a
	next.status = valueobject.StatusApproved
	next.approvedAmount = decimal.NewNullDecimal(approvedAmount)
	next.approvedTermMonths = approvedTermMonths
	next.approvedRate = decimal.NewNullDecimal(approvedRate)
	next.monthlyPayment = decimal.NewNullDecimal(monthlyPayment)
	next.decidedBy = approvedBy
	next.decisionReason = reason
	next.decidedAt = now
	next.updatedAt = now
	next.domainEvents = copyEvents(a.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewApplicationApproved(
		a.id, approvedAmount, approvedTermMonths, approvedRate, monthlyPayment, approvedBy, reason, auto,
	))
	return next, nil
}

// Reject transitions any non-terminal, non-approved state to REJECTED.
// An empty reason is a contract violation.
func (a LoanApplication) Reject(reason, rejectedBy string, now time.Time) (LoanApplication, error) {
	if strings.TrimSpace(reason) == "" {
		return a, valueobject.NewValidationError("reason", "a rejection reason is required")
	}
	if !a.status.CanTransitionTo(valueobject.StatusRejected) {
		return a, valueobject.TransitionError{From: a.status, To: valueobject.StatusRejected}
	}

	next := a
	next.status = valueobject.StatusRejected
	next.decisionReason = reason
	next.decidedBy = rejectedBy
	next.decidedAt = now
	next.updatedAt = now
	next.domainEvents = copyEvents(a.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewApplicationRejected(a.id, reason, rejectedBy))
	return next, nil
}

// Disburse transitions APPROVED -> DISBURSED. The disbursed amount may not
// exceed the approved amount.
func (a LoanApplication) Disburse(amount decimal.Decimal, now time.Time) (LoanApplication, error) {
	if !a.status.CanTransitionTo(valueobject.StatusDisbursed) {
		return a, valueobject.TransitionError{From: a.status, To: valueobject.StatusDisbursed}
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return a, valueobject.NewValidationError("disbursedAmount", "disbursed amount must be positive")
	}
	if !a.approvedAmount.Valid || amount.GreaterThan(a.approvedAmount.Decimal) {
		return a, valueobject.NewValidationError("disbursedAmount",
			"disbursed amount %s exceeds approved amount", amount)
	}

	next := a
	next.status = valueobject.StatusDisbursed
	next.disbursedAmount = decimal.NewNullDecimal(amount)
	next.disbursedAt = now
	next.updatedAt = now
	next.domainEvents = copyEvents(a.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewApplicationDisbursed(a.id, amount))
	return next, nil
}

// Cancel transitions any non-terminal, non-approved state to CANCELLED.
func (a LoanApplication) Cancel(now time.Time) (LoanApplication, error) {
	if !a.status.CanTransitionTo(valueobject.StatusCancelled) {
		return a, valueobject.TransitionError{From: a.status, To: valueobject.StatusCancelled}
	}

	next := a
	next.status = valueobject.StatusCancelled
	next.updatedAt = now
	next.domainEvents = copyEvents(a.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewApplicationCancelled(a.id))
	return next, nil
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (a LoanApplication) ID() string                                  { return a.id }
func (a LoanApplication) ApplicationNumber() string                   { return a.applicationNumber }
func (a LoanApplication) CustomerRef() string                         { return a.customerRef }
func (a LoanApplication) Category() valueobject.LoanCategory          { return a.category }
func (a LoanApplication) RequestedAmount() decimal.Decimal            { return a.requestedAmount }
func (a LoanApplication) RequestedTermMonths() int                    { return a.requestedTermMonths }
func (a LoanApplication) Purpose() string                             { return a.purpose }
func (a LoanApplication) DeclaredIncome() decimal.NullDecimal         { return a.declaredIncome }
func (a LoanApplication) ExistingDebt() decimal.NullDecimal           { return a.existingDebt }
func (a LoanApplication) CollateralValue() decimal.NullDecimal        { return a.collateralValue }
func (a LoanApplication) Status() valueobject.ApplicationStatus       { return a.status }
func (a LoanApplication) ResumeStatus() valueobject.ApplicationStatus { return a.resumeStatus }
func (a LoanApplication) ApprovedAmount() decimal.NullDecimal         { return a.approvedAmount }
func (a LoanApplication) ApprovedTermMonths() int                     { return a.approvedTermMonths }
func (a LoanApplication) ApprovedRate() decimal.NullDecimal           { return a.approvedRate }
func (a LoanApplication) MonthlyPayment() decimal.NullDecimal         { return a.monthlyPayment }
func (a LoanApplication) DisbursedAmount() decimal.NullDecimal        { return a.disbursedAmount }
func (a LoanApplication) DecisionReason() string                      { return a.decisionReason }
func (a LoanApplication) DecidedBy() string                           { return a.decidedBy }
func (a LoanApplication) SubmittedAt() time.Time                      { return a.submittedAt }
func (a LoanApplication) DecidedAt() time.Time                        { return a.decidedAt }
func (a LoanApplication) DisbursedAt() time.Time                      { return a.disbursedAt }
func (a LoanApplication) Version() int                                { return a.version }
func (a LoanApplication) CreatedAt() time.Time                        { return a.createdAt }
func (a LoanApplication) UpdatedAt() time.Time                        { return a.updatedAt }
func (a LoanApplication) DomainEvents() []event.DomainEvent           { return a.domainEvents }

// Assessment returns the recorded assessment, or nil when none exists yet.
func (a LoanApplication) Assessment() *Assessment { return a.assessment }

// ClearEvents returns a copy with an empty event list (call after publishing).
func (a LoanApplication) ClearEvents() LoanApplication {
	next := a
	next.domainEvents = nil
	return next
}

// ---------------------------------------------------------------------------
// helpers
// ---------------------------------------------------------------------------

func copyEvents(src []event.DomainEvent) []event.DomainEvent {
	if len(src) == 0 {
		return nil
	}
	dst := make([]event.DomainEvent, len(src))
	copy(dst, src)
	return dst
}
