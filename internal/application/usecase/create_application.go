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
	"github.com/meridianbank/origination/internal/domain/valueobject"
)

// CreateApplicationUseCase opens a new draft application after checking the
// category bounds.
type CreateApplicationUseCase struct {
	appRepo     port.ApplicationRepository
	publisher   port.EventPublisher
	eligibility *service.EligibilityService
	logger      *slog.Logger
}

// NewCreateApplicationUseCase wires dependencies.
func NewCreateApplicationUseCase(
	appRepo port.ApplicationRepository,
	publisher port.EventPublisher,
	eligibility *service.EligibilityService,
	logger *slog.Logger,
) *CreateApplicationUseCase {
	return &CreateApplicationUseCase{
		appRepo:     appRepo,
		publisher:   publisher,
		eligibility: eligibility,
		logger:      logger,
	}
}

// Execute validates bounds, creates the draft, and persists it. An
// out-of-bounds request creates nothing.
func (uc *CreateApplicationUseCase) Execute(
	ctx context.Context,
	req dto.CreateApplicationRequest,
) (dto.ApplicationResponse, error) {
	now := time.Now().UTC()

	// 1. Resolve the category.
	category, err := valueobject.NewLoanCategory(req.Category)
	if err != nil {
		return dto.ApplicationResponse{}, valueobject.NewValidationError("loanCategory", "%s", err)
	}

	// 2. Eligibility bounds check.
	if err := uc.eligibility.CheckBounds(category, req.RequestedAmount, req.TermMonths); err != nil {
		return dto.ApplicationResponse{}, err
	}

	// 3. Create the draft aggregate.
	app, err := model.NewLoanApplication(
		req.CustomerRef, category, req.RequestedAmount, req.TermMonths, req.Purpose,
		req.DeclaredIncome, req.ExistingDebt, req.CollateralValue, now,
	)
	if err != nil {
		return dto.ApplicationResponse{}, err
	}

	// 4. Persist.
	if err := uc.appRepo.Create(ctx, app); err != nil {
		return dto.ApplicationResponse{}, fmt.Errorf("create application: %w", err)
	}

	// 5. Publish domain events (fire-and-forget).
	publishEvents(ctx, uc.logger, uc.publisher, app)

	return toApplicationResponse(app), nil
}
