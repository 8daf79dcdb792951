package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/meridianbank/origination/internal/application/dto"
	"github.com/meridianbank/origination/internal/domain/port"
)

// RejectApplicationUseCase records a rejection with its mandatory reason.
type RejectApplicationUseCase struct {
	appRepo   port.ApplicationRepository
	publisher port.EventPublisher
	logger    *slog.Logger
}

// NewRejectApplicationUseCase wires dependencies.
func NewRejectApplicationUseCase(
	appRepo port.ApplicationRepository,
	publisher port.EventPublisher,
	logger *slog.Logger,
) *RejectApplicationUseCase {
	return &RejectApplicationUseCase{appRepo: appRepo, publisher: publisher, logger: logger}
}

// Execute rejects an open application.
func (uc *RejectApplicationUseCase) Execute(
	ctx context.Context,
	req dto.RejectApplicationRequest,
) (dto.ApplicationResponse, error) {
	now := time.Now().UTC()

	// 1. Load current state.
	app, err := uc.appRepo.FindByID(ctx, req.ApplicationID)
	if err != nil {
		return dto.ApplicationResponse{}, fmt.Errorf("find application: %w", err)
	}
	expected := app.Status()

	// 2. Transition.
	app, err = app.Reject(req.Reason, req.RejectedBy, now)
	if err != nil {
		return dto.ApplicationResponse{}, err
	}

	// 3. Persist.
	if err := uc.appRepo.Update(ctx, app, expected); err != nil {
		return dto.ApplicationResponse{}, fmt.Errorf("update application: %w", err)
	}

	// 4. Publish domain events (fire-and-forget).
	publishEvents(ctx, uc.logger, uc.publisher, app)

	return toApplicationResponse(app), nil
}
