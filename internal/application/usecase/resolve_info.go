package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/meridianbank/origination/internal/application/dto"
	"github.com/meridianbank/origination/internal/domain/port"
)

// ResolveInfoUseCase resumes a paused application at the review stage it
// left when the information request was raised.
type ResolveInfoUseCase struct {
	appRepo   port.ApplicationRepository
	publisher port.EventPublisher
	logger    *slog.Logger
}

// NewResolveInfoUseCase wires dependencies.
func NewResolveInfoUseCase(
	appRepo port.ApplicationRepository,
	publisher port.EventPublisher,
	logger *slog.Logger,
) *ResolveInfoUseCase {
	return &ResolveInfoUseCase{appRepo: appRepo, publisher: publisher, logger: logger}
}

// Execute returns a PENDING_INFO application to its interrupted stage.
func (uc *ResolveInfoUseCase) Execute(
	ctx context.Context,
	req dto.ResolveInfoRequest,
) (dto.ApplicationResponse, error) {
	now := time.Now().UTC()

	app, err := uc.appRepo.FindByID(ctx, req.ApplicationID)
	if err != nil {
		return dto.ApplicationResponse{}, fmt.Errorf("find application: %w", err)
	}
	expected := app.Status()

	app, err = app.ResolveInfo(now)
	if err != nil {
		return dto.ApplicationResponse{}, err
	}

	if err := uc.appRepo.Update(ctx, app, expected); err != nil {
		return dto.ApplicationResponse{}, fmt.Errorf("update application: %w", err)
	}

	publishEvents(ctx, uc.logger, uc.publisher, app)

	return toApplicationResponse(app), nil
}
