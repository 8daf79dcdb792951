package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/meridianbank/origination/internal/application/dto"
	"github.com/meridianbank/origination/internal/domain/port"
)

// DisburseApplicationUseCase pays out an approved application.
type DisburseApplicationUseCase struct {
	appRepo   port.ApplicationRepository
	publisher port.EventPublisher
	logger    *slog.Logger
}

// NewDisburseApplicationUseCase wires dependencies.
func NewDisburseApplicationUseCase(
	appRepo port.ApplicationRepository,
	publisher port.EventPublisher,
	logger *slog.Logger,
) *DisburseApplicationUseCase {
	return &DisburseApplicationUseCase{appRepo: appRepo, publisher: publisher, logger: logger}
}

// Execute disburses an approved application. The amount may not exceed the
// approved amount; partial disbursement is allowed.
func (uc *DisburseApplicationUseCase) Execute(
	ctx context.Context,
	req dto.DisburseApplicationRequest,
) (dto.ApplicationResponse, error) {
	now := time.Now().UTC()

	// 1. Load current state.
	app, err := uc.appRepo.FindByID(ctx, req.ApplicationID)
	if err != nil {
		return dto.ApplicationResponse{}, fmt.Errorf("find application: %w", err)
	}
	expected := app.Status()

	// 2. Transition.
	app, err = app.Disburse(req.DisbursedAmount, now)
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
