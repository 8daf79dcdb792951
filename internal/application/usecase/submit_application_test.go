package usecase_test

import (
	"context"
	"errors"
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

func TestSubmitApplication_Execute(t *testing.T) {
	eligibility := service.NewEligibilityService(policy.Default())

	newUseCase := func(repo *mockApplicationRepository, seq *mockNumberSequence, pub *mockEventPublisher) *usecase.SubmitApplicationUseCase {
		return usecase.NewSubmitApplicationUseCase(repo, seq, pub, eligibility, testLogger())
	}

	t.Run("assigns a formatted application number", func(t *testing.T) {
		appRepo := repoWith(draftApplication(t))
		seq := &mockNumberSequence{
			nextFunc: func(_ context.Context, year int) (int, error) {
				assert.GreaterOrEqual(t, year, 2025)
				return 42, nil
			},
		}
		publisher := &mockEventPublisher{}
		uc := newUseCase(appRepo, seq, publisher)

		resp, err := uc.Execute(context.Background(), dto.SubmitApplicationRequest{ApplicationID: "app-1"})
		require.NoError(t, err)

		assert.Equal(t, "SUBMITTED", resp.Status)
		assert.Regexp(t, `^LN-\d{4}-0042$`, resp.ApplicationNumber)
		assert.NotNil(t, resp.SubmittedAt)

		// CAS expectation is the pre-transition status.
		require.Len(t, appRepo.expectedStatuses, 1)
		assert.Equal(t, valueobject.StatusDraft, appRepo.expectedStatuses[0])

		require.Len(t, publisher.publishedEvents, 1)
		assert.Equal(t, "origination.application.submitted", publisher.publishedEvents[0].EventType())
	})

	t.Run("re-validates bounds before submitting", func(t *testing.T) {
		// The draft was created before the term bound it violates existed in
		// its policy file, so submission must catch it.
		app, err := model.NewLoanApplication(
			"CUST-001", valueobject.CategoryConsumer,
			d("1000000"), 48, "",
			nd("450000"), noDec, noDec,
			fixedNow,
		)
		require.NoError(t, err)

		appRepo := repoWith(app.ClearEvents())
		uc := newUseCase(appRepo, &mockNumberSequence{}, &mockEventPublisher{})

		_, err = uc.Execute(context.Background(), dto.SubmitApplicationRequest{ApplicationID: app.ID()})
		assert.True(t, valueobject.IsValidation(err))
		assert.Empty(t, appRepo.updated)
	})

	t.Run("sequence failure propagates", func(t *testing.T) {
		appRepo := repoWith(draftApplication(t))
		seq := &mockNumberSequence{
			nextFunc: func(_ context.Context, _ int) (int, error) {
				return 0, errors.New("sequence unavailable")
			},
		}
		uc := newUseCase(appRepo, seq, &mockEventPublisher{})

		_, err := uc.Execute(context.Background(), dto.SubmitApplicationRequest{ApplicationID: "app-1"})
		assert.ErrorContains(t, err, "sequence unavailable")
	})

	t.Run("double submit is an illegal transition", func(t *testing.T) {
		appRepo := repoWith(applicationAt(t, valueobject.StatusSubmitted))
		uc := newUseCase(appRepo, &mockNumberSequence{}, &mockEventPublisher{})

		_, err := uc.Execute(context.Background(), dto.SubmitApplicationRequest{ApplicationID: "app-1"})
		assert.ErrorIs(t, err, valueobject.ErrInvalidStatusTransition)
	})

	t.Run("version conflict surfaces to the caller", func(t *testing.T) {
		appRepo := repoWith(draftApplication(t))
		appRepo.updateFunc = func(_ context.Context, _ model.LoanApplication, _ valueobject.ApplicationStatus) error {
			return valueobject.ErrVersionConflict
		}
		uc := newUseCase(appRepo, &mockNumberSequence{}, &mockEventPublisher{})

		_, err := uc.Execute(context.Background(), dto.SubmitApplicationRequest{ApplicationID: "app-1"})
		assert.ErrorIs(t, err, valueobject.ErrVersionConflict)
	})

	t.Run("missing application", func(t *testing.T) {
		uc := newUseCase(&mockApplicationRepository{}, &mockNumberSequence{}, &mockEventPublisher{})

		_, err := uc.Execute(context.Background(), dto.SubmitApplicationRequest{ApplicationID: "nope"})
		assert.ErrorIs(t, err, valueobject.ErrApplicationNotFound)
	})
}
