package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridianbank/origination/internal/application/dto"
	"github.com/meridianbank/origination/internal/application/usecase"
	"github.com/meridianbank/origination/internal/domain/model"
	"github.com/meridianbank/origination/internal/domain/valueobject"
)

func TestGetApplication_Execute(t *testing.T) {
	app := applicationAt(t, valueobject.StatusSubmitted)

	t.Run("by id", func(t *testing.T) {
		uc := usecase.NewGetApplicationUseCase(repoWith(app))

		resp, err := uc.Execute(context.Background(), dto.GetApplicationRequest{ApplicationID: app.ID()})
		require.NoError(t, err)
		assert.Equal(t, app.ID(), resp.ID)
		assert.Equal(t, "SUBMITTED", resp.Status)
	})

	t.Run("by application number", func(t *testing.T) {
		repo := &mockApplicationRepository{
			findByNumberFunc: func(_ context.Context, number string) (model.LoanApplication, error) {
				assert.Equal(t, "LN-2025-0001", number)
				return app, nil
			},
		}
		uc := usecase.NewGetApplicationUseCase(repo)

		resp, err := uc.Execute(context.Background(), dto.GetApplicationRequest{ApplicationNumber: "LN-2025-0001"})
		require.NoError(t, err)
		assert.Equal(t, "LN-2025-0001", resp.ApplicationNumber)
	})

	t.Run("neither identifier", func(t *testing.T) {
		uc := usecase.NewGetApplicationUseCase(&mockApplicationRepository{})

		_, err := uc.Execute(context.Background(), dto.GetApplicationRequest{})
		assert.True(t, valueobject.IsValidation(err))
	})

	t.Run("not found", func(t *testing.T) {
		uc := usecase.NewGetApplicationUseCase(&mockApplicationRepository{})

		_, err := uc.Execute(context.Background(), dto.GetApplicationRequest{ApplicationID: "nope"})
		assert.ErrorIs(t, err, valueobject.ErrApplicationNotFound)
	})
}

func TestListApplications_Execute(t *testing.T) {
	t.Run("maps every application", func(t *testing.T) {
		repo := &mockApplicationRepository{
			findByCustomerRefFunc: func(_ context.Context, ref string) ([]model.LoanApplication, error) {
				assert.Equal(t, "CUST-001", ref)
				return []model.LoanApplication{
					applicationAt(t, valueobject.StatusSubmitted),
					draftApplication(t),
				}, nil
			},
		}
		uc := usecase.NewListApplicationsUseCase(repo)

		resp, err := uc.Execute(context.Background(), "CUST-001")
		require.NoError(t, err)
		require.Len(t, resp, 2)
		assert.Equal(t, "SUBMITTED", resp[0].Status)
		assert.Equal(t, "DRAFT", resp[1].Status)
	})

	t.Run("empty customer ref", func(t *testing.T) {
		uc := usecase.NewListApplicationsUseCase(&mockApplicationRepository{})

		_, err := uc.Execute(context.Background(), "")
		assert.True(t, valueobject.IsValidation(err))
	})
}

func TestComputeSchedule_Execute(t *testing.T) {
	uc := usecase.NewComputeScheduleUseCase()

	t.Run("computes payment figures and entries", func(t *testing.T) {
		resp, err := uc.Execute(context.Background(), dto.ScheduleRequest{
			Principal:         d("5000000"),
			AnnualRatePercent: d("12"),
			TermMonths:        24,
		})
		require.NoError(t, err)

		assert.Equal(t, "235367.36", resp.MonthlyPayment.StringFixed(2))
		require.Len(t, resp.Entries, 24)
		assert.True(t, resp.Entries[23].RemainingBalance.IsZero())
		assert.True(t, resp.TotalPayment.Sub(resp.TotalInterest).Equal(d("5000000")))
	})

	t.Run("rejects non-positive inputs", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), dto.ScheduleRequest{Principal: d("0"), AnnualRatePercent: d("12"), TermMonths: 24})
		assert.True(t, valueobject.IsValidation(err))

		_, err = uc.Execute(context.Background(), dto.ScheduleRequest{Principal: d("100"), AnnualRatePercent: d("12"), TermMonths: 0})
		assert.True(t, valueobject.IsValidation(err))

		_, err = uc.Execute(context.Background(), dto.ScheduleRequest{Principal: d("100"), AnnualRatePercent: d("-1"), TermMonths: 12})
		assert.True(t, valueobject.IsValidation(err))
	})
}
