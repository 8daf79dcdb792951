package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridianbank/origination/internal/application/dto"
	"github.com/meridianbank/origination/internal/application/usecase"
	"github.com/meridianbank/origination/internal/domain/event"
	"github.com/meridianbank/origination/internal/domain/model"
	"github.com/meridianbank/origination/internal/domain/policy"
	"github.com/meridianbank/origination/internal/domain/service"
	"github.com/meridianbank/origination/internal/domain/valueobject"
)

func validCreateRequest() dto.CreateApplicationRequest {
	return dto.CreateApplicationRequest{
		CustomerRef:     "CUST-001",
		Category:        "PERSONAL",
		RequestedAmount: d("2000000"),
		TermMonths:      24,
		Purpose:         "home renovation",
		DeclaredIncome:  nd("450000"),
	}
}

func TestCreateApplication_Execute(t *testing.T) {
	eligibility := service.NewEligibilityService(policy.Default())

	t.Run("creates a draft and publishes the created event", func(t *testing.T) {
		appRepo := &mockApplicationRepository{}
		publisher := &mockEventPublisher{}
		uc := usecase.NewCreateApplicationUseCase(appRepo, publisher, eligibility, testLogger())

		resp, err := uc.Execute(context.Background(), validCreateRequest())
		require.NoError(t, err)

		assert.NotEmpty(t, resp.ID)
		assert.Equal(t, "DRAFT", resp.Status)
		assert.Empty(t, resp.ApplicationNumber)
		assert.False(t, resp.ApprovedAmount.Valid)

		require.Len(t, appRepo.created, 1)
		require.Len(t, publisher.publishedEvents, 1)
		assert.Equal(t, "origination.application.created", publisher.publishedEvents[0].EventType())
	})

	t.Run("out-of-bounds amount creates nothing", func(t *testing.T) {
		appRepo := &mockApplicationRepository{}
		uc := usecase.NewCreateApplicationUseCase(appRepo, &mockEventPublisher{}, eligibility, testLogger())

		req := validCreateRequest()
		req.RequestedAmount = d("50000000")

		_, err := uc.Execute(context.Background(), req)
		assert.True(t, valueobject.IsValidation(err))
		assert.Empty(t, appRepo.created)
	})

	t.Run("out-of-bounds term creates nothing", func(t *testing.T) {
		appRepo := &mockApplicationRepository{}
		uc := usecase.NewCreateApplicationUseCase(appRepo, &mockEventPublisher{}, eligibility, testLogger())

		req := validCreateRequest()
		req.TermMonths = 120

		_, err := uc.Execute(context.Background(), req)
		assert.True(t, valueobject.IsValidation(err))
		assert.Empty(t, appRepo.created)
	})

	t.Run("unknown category", func(t *testing.T) {
		uc := usecase.NewCreateApplicationUseCase(&mockApplicationRepository{}, &mockEventPublisher{}, eligibility, testLogger())

		req := validCreateRequest()
		req.Category = "PAYDAY"

		_, err := uc.Execute(context.Background(), req)
		assert.True(t, valueobject.IsValidation(err))
	})

	t.Run("repository failure propagates", func(t *testing.T) {
		appRepo := &mockApplicationRepository{
			createFunc: func(_ context.Context, _ model.LoanApplication) error {
				return errors.New("connection refused")
			},
		}
		uc := usecase.NewCreateApplicationUseCase(appRepo, &mockEventPublisher{}, eligibility, testLogger())

		_, err := uc.Execute(context.Background(), validCreateRequest())
		assert.ErrorContains(t, err, "connection refused")
	})

	t.Run("publish failure does not fail the creation", func(t *testing.T) {
		appRepo := &mockApplicationRepository{}
		publisher := &mockEventPublisher{
			publishFunc: func(_ context.Context, _ ...event.DomainEvent) error {
				return errors.New("broker down")
			},
		}
		uc := usecase.NewCreateApplicationUseCase(appRepo, publisher, eligibility, testLogger())

		resp, err := uc.Execute(context.Background(), validCreateRequest())
		require.NoError(t, err)
		assert.Equal(t, "DRAFT", resp.Status)
		require.Len(t, appRepo.created, 1)
	})
}
