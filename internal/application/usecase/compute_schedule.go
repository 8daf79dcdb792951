package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/meridianbank/origination/internal/application/dto"
	"github.com/meridianbank/origination/internal/domain/model"
	"github.com/meridianbank/origination/internal/domain/valueobject"
)

// ComputeScheduleUseCase previews an amortization schedule without touching
// any stored application.
type ComputeScheduleUseCase struct{}

// NewComputeScheduleUseCase returns the stateless preview use case.
func NewComputeScheduleUseCase() *ComputeScheduleUseCase {
	return &ComputeScheduleUseCase{}
}

// Execute computes the payment figures and full schedule for the inputs.
func (uc *ComputeScheduleUseCase) Execute(
	_ context.Context,
	req dto.ScheduleRequest,
) (dto.ScheduleResponse, error) {
	if req.Principal.LessThanOrEqual(decimal.Zero) {
		return dto.ScheduleResponse{}, valueobject.NewValidationError("principal", "principal must be positive")
	}
	if req.TermMonths <= 0 {
		return dto.ScheduleResponse{}, valueobject.NewValidationError("termMonths", "term must be positive")
	}
	if req.AnnualRatePercent.IsNegative() {
		return dto.ScheduleResponse{}, valueobject.NewValidationError("annualRatePercent", "rate must not be negative")
	}

	schedule := model.Schedule(req.Principal, req.AnnualRatePercent, req.TermMonths)
	entries := make([]dto.ScheduleEntryResponse, len(schedule))
	for i, e := range schedule {
		entries[i] = dto.ScheduleEntryResponse{
			Month:            e.Month,
			Payment:          e.Payment,
			PrincipalPortion: e.PrincipalPortion,
			InterestPortion:  e.InterestPortion,
			RemainingBalance: e.RemainingBalance,
		}
	}

	return dto.ScheduleResponse{
		MonthlyPayment: model.MonthlyPayment(req.Principal, req.AnnualRatePercent, req.TermMonths),
		TotalPayment:   model.TotalPayment(req.Principal, req.AnnualRatePercent, req.TermMonths),
		TotalInterest:  model.TotalInterest(req.Principal, req.AnnualRatePercent, req.TermMonths),
		Entries:        entries,
	}, nil
}
