package usecase

import (
	"context"
	"fmt"

	"github.com/meridianbank/origination/internal/application/dto"
	"github.com/meridianbank/origination/internal/domain/port"
	"github.com/meridianbank/origination/internal/domain/valueobject"
)

// GetApplicationUseCase retrieves an application by id or by application
// number.
type GetApplicationUseCase struct {
	appRepo port.ApplicationRepository
}

// NewGetApplicationUseCase wires dependencies.
func NewGetApplicationUseCase(appRepo port.ApplicationRepository) *GetApplicationUseCase {
	return &GetApplicationUseCase{appRepo: appRepo}
}

// Execute loads one application.
func (uc *GetApplicationUseCase) Execute(
	ctx context.Context,
	req dto.GetApplicationRequest,
) (dto.ApplicationResponse, error) {
	switch {
	case req.ApplicationID != "":
		app, err := uc.appRepo.FindByID(ctx, req.ApplicationID)
		if err != nil {
			return dto.ApplicationResponse{}, fmt.Errorf("find application: %w", err)
		}
		return toApplicationResponse(app), nil
	case req.ApplicationNumber != "":
		app, err := uc.appRepo.FindByNumber(ctx, req.ApplicationNumber)
		if err != nil {
			return dto.ApplicationResponse{}, fmt.Errorf("find application by number: %w", err)
		}
		return toApplicationResponse(app), nil
	default:
		return dto.ApplicationResponse{}, valueobject.NewValidationError("applicationId",
			"either application id or application number is required")
	}
}

// ListApplicationsUseCase retrieves every application for one customer.
type ListApplicationsUseCase struct {
	appRepo port.ApplicationRepository
}

// NewListApplicationsUseCase wires dependencies.
func NewListApplicationsUseCase(appRepo port.ApplicationRepository) *ListApplicationsUseCase {
	return &ListApplicationsUseCase{appRepo: appRepo}
}

// Execute lists a customer's applications.
func (uc *ListApplicationsUseCase) Execute(ctx context.Context, customerRef string) ([]dto.ApplicationResponse, error) {
	if customerRef == "" {
		return nil, valueobject.NewValidationError("customerRef", "customer reference is required")
	}
	apps, err := uc.appRepo.FindByCustomerRef(ctx, customerRef)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	out := make([]dto.ApplicationResponse, len(apps))
	for i, app := range apps {
		out[i] = toApplicationResponse(app)
	}
	return out, nil
}
