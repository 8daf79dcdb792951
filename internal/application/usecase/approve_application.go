package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/meridianbank/origination/internal/application/dto"
	"github.com/meridianbank/origination/internal/domain/model"
	"github.com/meridianbank/origination/internal/domain/port"
	"github.com/meridianbank/origination/internal/domain/service"
)

// ApproveApplicationUseCase records a manual approval: the approved figures
// must satisfy the category bounds, and the monthly payment is computed and
// stored atomically with the status change.
type ApproveApplicationUseCase struct {
	appRepo     port.ApplicationRepository
	publisher   port.EventPublisher
	eligibility *service.EligibilityService
	logger      *slog.Logger
}

// NewApproveApplicationUseCase wires dependencies.
func NewApproveApplicationUseCase(
	appRepo port.ApplicationRepository,
	publisher port.EventPublisher,
	eligibility *service.EligibilityService,
	logger *slog.Logger,
) *ApproveApplicationUseCase {
	return &ApproveApplicationUseCase{
		appRepo:     appRepo,
		publisher:   publisher,
		eligibility: eligibility,
		logger:      logger,
	}
}

// Execute approves an application in review.
func (uc *ApproveApplicationUseCase) Execute(
	ctx context.Context,
	req dto.ApproveApplicationRequest,
) (dto.ApplicationResponse, error) {
	now := time.Now().UTC()

	// 1. Load current state.
	app, err := uc.appRepo.FindByID(ctx, req.ApplicationID)
	if err != nil {
		return dto.ApplicationResponse{}, fmt.Errorf("find application: %w", err)
	}
	expected := app.Status()

	// 2. The approved figures must themselves satisfy the category bounds.
	if err := uc.eligibility.CheckBounds(app.Category(), req.ApprovedAmount, req.ApprovedTermMonths); err != nil {
		return dto.ApplicationResponse{}, err
	}

	// 3. Compute the payment and transition.
	payment := model.MonthlyPayment(req.ApprovedAmount, req.ApprovedRate, req.ApprovedTermMonths)
	app, err = app.Approve(
		req.ApprovedAmount, req.ApprovedTermMonths, req.ApprovedRate, payment,
		req.ApprovedBy, req.Reason, false, now,
	)
	if err != nil {
		return dto.ApplicationResponse{}, err
	}

	// 4. Persist.
	if err := uc.appRepo.Update(ctx, app, expected); err != nil {
		return dto.ApplicationResponse{}, fmt.Errorf("update application: %w", err)
	}

	// 5. Publish domain events (fire-and-forget).
	publishEvents(ctx, uc.logger, uc.publisher, app)

	return toApplicationResponse(app), nil
}
