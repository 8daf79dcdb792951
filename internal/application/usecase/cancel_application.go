package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/meridianbank/origination/internal/application/dto"
	"github.com/meridianbank/origination/internal/domain/port"
)

// CancelApplicationUseCase withdraws an open application.
type CancelApplicationUseCase struct {
	appRepo   port.ApplicationRepository
	publisher port.EventPublisher
	logger    *slog.Logger
}

// NewCancelApplicationUseCase wires dependencies.
func NewCancelApplicationUseCase(
	appRepo port.ApplicationRepository,
	publisher port.EventPublisher,
	logger *slog.Logger,
) *CancelApplicationUseCase {
	return &CancelApplicationUseCase{appRepo: appRepo, publisher: publisher, logger: logger}
}

// Execute cancels an open application.
func (uc *CancelApplicationUseCase) Execute(
	ctx context.Context,
	req dto.CancelApplicationRequest,
) (dto.ApplicationResponse, error) {
	now := time.Now().UTC()

	// 1. Load current state.
	app, err := uc.appRepo.FindByID(ctx, req.ApplicationID)
	if err != nil {
		return dto.ApplicationResponse{}, fmt.Errorf("find application: %w", err)
	}
	expected := app.Status()

	// 2. Transition.
	app, err = app.Cancel(now)
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
