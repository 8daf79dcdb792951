package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridianbank/origination/internal/application/dto"
	"github.com/meridianbank/origination/internal/application/usecase"
	"github.com/meridianbank/origination/internal/domain/model"
	"github.com/meridianbank/origination/internal/domain/policy"
	"github.com/meridianbank/origination/internal/domain/service"
	"github.com/meridianbank/origination/internal/domain/valueobject"
)

func validApproveRequest() dto.ApproveApplicationRequest {
	return dto.ApproveApplicationRequest{
		ApplicationID:      "app-1",
		ApprovedAmount:     d("2000000"),
		ApprovedTermMonths: 24,
		ApprovedRate:       d("12.5"),
		ApprovedBy:         "mgr-7",
		Reason:             "clean credit profile",
	}
}

func TestApproveApplication_Execute(t *testing.T) {
	eligibility := service.NewEligibilityService(policy.Default())

	newUseCase := func(repo *mockApplicationRepository, pub *mockEventPublisher) *usecase.ApproveApplicationUseCase {
		return usecase.NewApproveApplicationUseCase(repo, pub, eligibility, testLogger())
	}

	t.Run("stores the computed payment with the approval", func(t *testing.T) {
		appRepo := repoWith(applicationAt(t, valueobject.StatusManagerReview))
		publisher := &mockEventPublisher{}
		uc := newUseCase(appRepo, publisher)

		resp, err := uc.Execute(context.Background(), validApproveRequest())
		require.NoError(t, err)

		assert.Equal(t, "APPROVED", resp.Status)
		require.True(t, resp.MonthlyPayment.Valid)
		want := model.MonthlyPayment(d("2000000"), d("12.5"), 24)
		assert.True(t, want.Equal(resp.MonthlyPayment.Decimal))
		assert.Equal(t, "mgr-7", resp.DecidedBy)
		assert.NotNil(t, resp.DecidedAt)

		require.Len(t, appRepo.expectedStatuses, 1)
		assert.Equal(t, valueobject.StatusManagerReview, appRepo.expectedStatuses[0])

		require.Len(t, publisher.publishedEvents, 1)
		assert.Equal(t, "origination.application.approved", publisher.publishedEvents[0].EventType())
	})

	t.Run("approved figures must satisfy bounds", func(t *testing.T) {
		appRepo := repoWith(applicationAt(t, valueobject.StatusManagerReview))
		uc := newUseCase(appRepo, &mockEventPublisher{})

		req := validApproveRequest()
		req.ApprovedAmount = d("20000000")

		_, err := uc.Execute(context.Background(), req)
		assert.True(t, valueobject.IsValidation(err))
		assert.Empty(t, appRepo.updated)
	})

	t.Run("cannot approve a terminal application", func(t *testing.T) {
		rejected, err := applicationAt(t, valueobject.StatusManagerReview).Reject("thin file", "mgr-7", fixedNow)
		require.NoError(t, err)
		appRepo := repoWith(rejected.ClearEvents())
		uc := newUseCase(appRepo, &mockEventPublisher{})

		_, err = uc.Execute(context.Background(), validApproveRequest())
		assert.ErrorIs(t, err, valueobject.ErrInvalidStatusTransition)
	})

	t.Run("version conflict surfaces to the caller", func(t *testing.T) {
		appRepo := repoWith(applicationAt(t, valueobject.StatusManagerReview))
		appRepo.updateFunc = func(_ context.Context, _ model.LoanApplication, _ valueobject.ApplicationStatus) error {
			return valueobject.ErrVersionConflict
		}
		uc := newUseCase(appRepo, &mockEventPublisher{})

		_, err := uc.Execute(context.Background(), validApproveRequest())
		assert.ErrorIs(t, err, valueobject.ErrVersionConflict)
	})
}
