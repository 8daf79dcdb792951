package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/meridianbank/origination/internal/application/dto"
	"github.com/meridianbank/origination/internal/domain/model"
	"github.com/meridianbank/origination/internal/domain/port"
)

func toApplicationResponse(app model.LoanApplication) dto.ApplicationResponse {
	resp := dto.ApplicationResponse{
		ID:                 app.ID(),
		ApplicationNumber:  app.ApplicationNumber(),
		CustomerRef:        app.CustomerRef(),
		Category:           app.Category().String(),
		RequestedAmount:    app.RequestedAmount(),
		TermMonths:         app.RequestedTermMonths(),
		Purpose:            app.Purpose(),
		DeclaredIncome:     app.DeclaredIncome(),
		ExistingDebt:       app.ExistingDebt(),
		CollateralValue:    app.CollateralValue(),
		Status:             app.Status().String(),
		ApprovedAmount:     app.ApprovedAmount(),
		ApprovedTermMonths: app.ApprovedTermMonths(),
		ApprovedRate:       app.ApprovedRate(),
		MonthlyPayment:     app.MonthlyPayment(),
		DisbursedAmount:    app.DisbursedAmount(),
		DecisionReason:     app.DecisionReason(),
		DecidedBy:          app.DecidedBy(),
		SubmittedAt:        optionalTime(app.SubmittedAt()),
		DecidedAt:          optionalTime(app.DecidedAt()),
		DisbursedAt:        optionalTime(app.DisbursedAt()),
		Version:            app.Version(),
		CreatedAt:          app.CreatedAt(),
		UpdatedAt:          app.UpdatedAt(),
	}

	if a := app.Assessment(); a != nil {
		assessment := dto.AssessmentResponse{
			RiskScore:     a.RiskScore,
			RiskGrade:     a.RiskGrade.String(),
			Complete:      a.Complete,
			MissingInputs: a.MissingInputs,
			Notes:         a.Notes,
		}
		if a.DebtToIncome.Defined() {
			assessment.DebtToIncome = a.DebtToIncome.Value().String()
		}
		if a.LoanToValue.Defined() {
			assessment.LoanToValue = a.LoanToValue.Value().String()
		}
		resp.Assessment = &assessment
	}

	return resp
}

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

// publishEvents pushes the aggregate's pending events fire-and-forget: a
// broker outage must never fail a transition that already persisted.
func publishEvents(ctx context.Context, logger *slog.Logger, publisher port.EventPublisher, app model.LoanApplication) {
	evts := app.DomainEvents()
	if len(evts) == 0 {
		return
	}
	if err := publisher.Publish(ctx, evts...); err != nil {
		logger.Warn("failed to publish domain events",
			"application_id", app.ID(),
			"event_count", len(evts),
			"error", err,
		)
	}
}
