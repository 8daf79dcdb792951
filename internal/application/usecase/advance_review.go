package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/meridianbank/origination/internal/application/dto"
	"github.com/meridianbank/origination/internal/domain/port"
	"github.com/meridianbank/origination/internal/domain/valueobject"
)

// AdvanceReviewUseCase moves an application one stage forward through the
// review pipeline, gating the exit from DOCUMENT_REVIEW on document
// completeness.
type AdvanceReviewUseCase struct {
	appRepo   port.ApplicationRepository
	docs      port.DocumentChecker
	publisher port.EventPublisher
	logger    *slog.Logger
}

// NewAdvanceReviewUseCase wires dependencies.
func NewAdvanceReviewUseCase(
	appRepo port.ApplicationRepository,
	docs port.DocumentChecker,
	publisher port.EventPublisher,
	logger *slog.Logger,
) *AdvanceReviewUseCase {
	return &AdvanceReviewUseCase{appRepo: appRepo, docs: docs, publisher: publisher, logger: logger}
}

// Execute advances the review pipeline by one stage.
func (uc *AdvanceReviewUseCase) Execute(
	ctx context.Context,
	req dto.AdvanceReviewRequest,
) (dto.ApplicationResponse, error) {
	now := time.Now().UTC()

	// 1. Load current state.
	app, err := uc.appRepo.FindByID(ctx, req.ApplicationID)
	if err != nil {
		return dto.ApplicationResponse{}, fmt.Errorf("find application: %w", err)
	}
	expected := app.Status()

	// 2. Document gate: nothing leaves DOCUMENT_REVIEW with documents missing.
	if expected.Equal(valueobject.StatusDocumentReview) {
		ok, err := uc.docs.RequiredDocsSatisfied(ctx, app.ID())
		if err != nil {
			return dto.ApplicationResponse{}, fmt.Errorf("check documents: %w", err)
		}
		if !ok {
			return dto.ApplicationResponse{}, valueobject.NewValidationError("documents",
				"required documents are not satisfied for application %s", app.ID())
		}
	}

	// 3. Transition.
	app, err = app.AdvanceReview(now)
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
