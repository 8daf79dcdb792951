package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/meridianbank/origination/internal/application/dto"
	"github.com/meridianbank/origination/internal/domain/port"
)

// RequestInfoUseCase pauses a review stage pending applicant information.
type RequestInfoUseCase struct {
	appRepo   port.ApplicationRepository
	publisher port.EventPublisher
	logger    *slog.Logger
}

// NewRequestInfoUseCase wires dependencies.
func NewRequestInfoUseCase(
	appRepo port.ApplicationRepository,
	publisher port.EventPublisher,
	logger *slog.Logger,
) *RequestInfoUseCase {
	return &RequestInfoUseCase{appRepo: appRepo, publisher: publisher, logger: logger}
}

// Execute moves a review stage to PENDING_INFO.
func (uc *RequestInfoUseCase) Execute(
	ctx context.Context,
	req dto.RequestInfoRequest,
) (dto.ApplicationResponse, error) {
	now := time.Now().UTC()

	app, err := uc.appRepo.FindByID(ctx, req.ApplicationID)
	if err != nil {
		return dto.ApplicationResponse{}, fmt.Errorf("find application: %w", err)
	}
	expected := app.Status()

	app, err = app.RequestInfo(req.Reason, now)
	if err != nil {
		return dto.ApplicationResponse{}, err
	}

	if err := uc.appRepo.Update(ctx, app, expected); err != nil {
		return dto.ApplicationResponse{}, fmt.Errorf("update application: %w", err)
	}

	publishEvents(ctx, uc.logger, uc.publisher, app)

	return toApplicationResponse(app), nil
}
