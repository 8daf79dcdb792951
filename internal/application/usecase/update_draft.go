package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/meridianbank/origination/internal/application/dto"
	"github.com/meridianbank/origination/internal/domain/port"
	"github.com/meridianbank/origination/internal/domain/service"
)

// UpdateDraftUseCase replaces the editable fields of a draft application.
type UpdateDraftUseCase struct {
	appRepo     port.ApplicationRepository
	eligibility *service.EligibilityService
	logger      *slog.Logger
}

// NewUpdateDraftUseCase wires dependencies.
func NewUpdateDraftUseCase(
	appRepo port.ApplicationRepository,
	eligibility *service.EligibilityService,
	logger *slog.Logger,
) *UpdateDraftUseCase {
	return &UpdateDraftUseCase{appRepo: appRepo, eligibility: eligibility, logger: logger}
}

// Execute loads the draft, applies the edits, and persists them under the
// compare-and-swap contract.
func (uc *UpdateDraftUseCase) Execute(
	ctx context.Context,
	req dto.UpdateDraftRequest,
) (dto.ApplicationResponse, error) {
	now := time.Now().UTC()

	// 1. Load current state.
	app, err := uc.appRepo.FindByID(ctx, req.ApplicationID)
	if err != nil {
		return dto.ApplicationResponse{}, fmt.Errorf("find application: %w", err)
	}
	expected := app.Status()

	// 2. Eligibility bounds check on the new values.
	if err := uc.eligibility.CheckBounds(app.Category(), req.RequestedAmount, req.TermMonths); err != nil {
		return dto.ApplicationResponse{}, err
	}

	// 3. Apply the edits.
	app, err = app.UpdateDraft(
		req.RequestedAmount, req.TermMonths, req.Purpose,
		req.DeclaredIncome, req.ExistingDebt, req.CollateralValue, now,
	)
	if err != nil {
		return dto.ApplicationResponse{}, err
	}

	// 4. Persist.
	if err := uc.appRepo.Update(ctx, app, expected); err != nil {
		return dto.ApplicationResponse{}, fmt.Errorf("update application: %w", err)
	}

	return toApplicationResponse(app), nil
}
