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

// SubmitApplicationUseCase submits a draft for review, assigning its unique
// LN-YYYY-NNNN application number.
type SubmitApplicationUseCase struct {
	appRepo     port.ApplicationRepository
	sequence    port.ApplicationNumberSequence
	publisher   port.EventPublisher
	eligibility *service.EligibilityService
	logger      *slog.Logger
}

// NewSubmitApplicationUseCase wires dependencies.
func NewSubmitApplicationUseCase(
	appRepo port.ApplicationRepository,
	sequence port.ApplicationNumberSequence,
	publisher port.EventPublisher,
	eligibility *service.EligibilityService,
	logger *slog.Logger,
) *SubmitApplicationUseCase {
	return &SubmitApplicationUseCase{
		appRepo:     appRepo,
		sequence:    sequence,
		publisher:   publisher,
		eligibility: eligibility,
		logger:      logger,
	}
}

// Execute re-validates bounds (the draft may have been edited since
// creation), reserves the next application number, and moves the draft to
// SUBMITTED.
func (uc *SubmitApplicationUseCase) Execute(
	ctx context.Context,
	req dto.SubmitApplicationRequest,
) (dto.ApplicationResponse, error) {
	now := time.Now().UTC()

	// 1. Load current state.
	app, err := uc.appRepo.FindByID(ctx, req.ApplicationID)
	if err != nil {
		return dto.ApplicationResponse{}, fmt.Errorf("find application: %w", err)
	}
	expected := app.Status()

	// 2. Re-validate bounds.
	if err := uc.eligibility.CheckBounds(app.Category(), app.RequestedAmount(), app.RequestedTermMonths()); err != nil {
		return dto.ApplicationResponse{}, err
	}

	// 3. Reserve the next number for this year.
	seq, err := uc.sequence.Next(ctx, now.Year())
	if err != nil {
		return dto.ApplicationResponse{}, fmt.Errorf("next application number: %w", err)
	}
	number := model.FormatApplicationNumber(now.Year(), seq)

	// 4. Transition to SUBMITTED.
	app, err = app.Submit(number, now)
	if err != nil {
		return dto.ApplicationResponse{}, err
	}

	// 5. Persist; the repository enforces application number uniqueness.
	if err := uc.appRepo.Update(ctx, app, expected); err != nil {
		return dto.ApplicationResponse{}, fmt.Errorf("update application: %w", err)
	}

	// 6. Publish domain events (fire-and-forget).
	publishEvents(ctx, uc.logger, uc.publisher, app)

	return toApplicationResponse(app), nil
}
