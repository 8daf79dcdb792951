package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// ApplicationStatus – immutable value object with an explicit transition table
// ---------------------------------------------------------------------------

// ApplicationStatus represents the lifecycle stage of a loan application.
// Which transitions are legal is a property of the table below, not of the
// code paths that request them.
type ApplicationStatus struct {
	value string
}

const (
	statusDraft          = "DRAFT"
	statusSubmitted      = "SUBMITTED"
	statusPending        = "PENDING"
	statusDocumentReview = "DOCUMENT_REVIEW"
	statusCreditCheck    = "CREDIT_CHECK"
	statusRiskAssessment = "RISK_ASSESSMENT"
	statusManagerReview  = "MANAGER_REVIEW"
	statusPendingInfo    = "PENDING_INFO"
	statusApproved       = "APPROVED"
	statusDisbursed      = "DISBURSED"
	statusRejected       = "REJECTED"
	statusCancelled      = "CANCELLED"
)

var (
	StatusDraft          = ApplicationStatus{value: statusDraft}
	StatusSubmitted      = ApplicationStatus{value: statusSubmitted}
	StatusPending        = ApplicationStatus{value: statusPending}
	StatusDocumentReview = ApplicationStatus{value: statusDocumentReview}
	StatusCreditCheck    = ApplicationStatus{value: statusCreditCheck}
	StatusRiskAssessment = ApplicationStatus{value: statusRiskAssessment}
	StatusManagerReview  = ApplicationStatus{value: statusManagerReview}
	StatusPendingInfo    = ApplicationStatus{value: statusPendingInfo}
	StatusApproved       = ApplicationStatus{value: statusApproved}
	StatusDisbursed      = ApplicationStatus{value: statusDisbursed}
	StatusRejected       = ApplicationStatus{value: statusRejected}
	StatusCancelled      = ApplicationStatus{value: statusCancelled}
)

var validApplicationStatuses = map[string]ApplicationStatus{
	statusDraft:          StatusDraft,
	statusSubmitted:      StatusSubmitted,
	statusPending:        StatusPending,
	statusDocumentReview: StatusDocumentReview,
	statusCreditCheck:    StatusCreditCheck,
	statusRiskAssessment: StatusRiskAssessment,
	statusManagerReview:  StatusManagerReview,
	statusPendingInfo:    StatusPendingInfo,
	statusApproved:       StatusApproved,
	statusDisbursed:      StatusDisbursed,
	statusRejected:       StatusRejected,
	statusCancelled:      StatusCancelled,
}

// allowedTransitions is the single source of truth for the state machine.
// REJECTED and CANCELLED are reachable from every non-terminal state except
// APPROVED, whose only legal exit is DISBURSED. PENDING_INFO is reachable from
// every review state and resumes to the review state it interrupted.
var allowedTransitions = map[string][]string{
	statusDraft:          {statusSubmitted, statusRejected, statusCancelled},
	statusSubmitted:      {statusPending, statusRejected, statusCancelled},
	statusPending:        {statusDocumentReview, statusPendingInfo, statusApproved, statusRejected, statusCancelled},
	statusDocumentReview: {statusCreditCheck, statusPendingInfo, statusApproved, statusRejected, statusCancelled},
	statusCreditCheck:    {statusRiskAssessment, statusPendingInfo, statusApproved, statusRejected, statusCancelled},
	statusRiskAssessment: {statusManagerReview, statusPendingInfo, statusApproved, statusRejected, statusCancelled},
	statusManagerReview:  {statusPendingInfo, statusApproved, statusRejected, statusCancelled},
	statusPendingInfo:    {statusPending, statusDocumentReview, statusCreditCheck, statusRiskAssessment, statusManagerReview, statusRejected, statusCancelled},
	statusApproved:       {statusDisbursed},
	statusDisbursed:      {},
	statusRejected:       {},
	statusCancelled:      {},
}

// nextReviewStage maps each review state to the stage that follows it.
var nextReviewStage = map[string]ApplicationStatus{
	statusPending:        StatusDocumentReview,
	statusDocumentReview: StatusCreditCheck,
	statusCreditCheck:    StatusRiskAssessment,
	statusRiskAssessment: StatusManagerReview,
}

// NewApplicationStatus creates an ApplicationStatus from a raw string.
func NewApplicationStatus(s string) (ApplicationStatus, error) {
	v, ok := validApplicationStatuses[s]
	if !ok {
		return ApplicationStatus{}, fmt.Errorf("invalid application status: %q", s)
	}
	return v, nil
}

// String returns the string representation of the status.
func (s ApplicationStatus) String() string { return s.value }

// IsZero returns true if the status has not been initialised.
func (s ApplicationStatus) IsZero() bool { return s.value == "" }

// Equal returns true when both statuses carry the same value.
func (s ApplicationStatus) Equal(other ApplicationStatus) bool { return s.value == other.value }

// CanTransitionTo reports whether the transition table permits moving from
// this status to next.
func (s ApplicationStatus) CanTransitionTo(next ApplicationStatus) bool {
	for _, t := range allowedTransitions[s.value] {
		if t == next.value {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the status admits no further transitions.
func (s ApplicationStatus) IsTerminal() bool {
	ts, ok := allowedTransitions[s.value]
	return ok && len(ts) == 0
}

// IsReview reports whether the status is one of the review stages in which
// assessment, approval, and information requests are permitted.
func (s ApplicationStatus) IsReview() bool {
	switch s.value {
	case statusPending, statusDocumentReview, statusCreditCheck, statusRiskAssessment, statusManagerReview:
		return true
	}
	return false
}

// NextReviewStage returns the review stage that follows this one, or false
// when the status is not a review stage or is the last one.
func (s ApplicationStatus) NextReviewStage() (ApplicationStatus, bool) {
	next, ok := nextReviewStage[s.value]
	return next, ok
}
