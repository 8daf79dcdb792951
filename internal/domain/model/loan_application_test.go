package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridianbank/origination/internal/domain/event"
	"github.com/meridianbank/origination/internal/domain/valueobject"
)

var testNow = time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)

func newDraft(t *testing.T) LoanApplication {
	t.Helper()
	app, err := NewLoanApplication(
		"CUST-001", valueobject.CategoryPersonal,
		d("2000000"), 24, "home renovation",
		decimal.NewNullDecimal(d("450000")), decimal.NewNullDecimal(d("120000")), decimal.NullDecimal{},
		testNow,
	)
	require.NoError(t, err)
	return app
}

func submitted(t *testing.T) LoanApplication {
	t.Helper()
	app, err := newDraft(t).Submit("LN-2025-0001", testNow)
	require.NoError(t, err)
	return app
}

func atStatus(t *testing.T, target valueobject.ApplicationStatus) LoanApplication {
	t.Helper()
	app := submitted(t)
	for !app.Status().Equal(target) {
		next, err := app.AdvanceReview(testNow)
		require.NoError(t, err, "advancing from %s towards %s", app.Status(), target)
		app = next
	}
	return app
}

func TestNewLoanApplication(t *testing.T) {
	t.Run("creates a draft with a created event", func(t *testing.T) {
		app := newDraft(t)

		assert.NotEmpty(t, app.ID())
		assert.Equal(t, valueobject.StatusDraft, app.Status())
		assert.Empty(t, app.ApplicationNumber())
		assert.Equal(t, 1, app.Version())
		assert.False(t, app.ApprovedAmount().Valid)

		require.Len(t, app.DomainEvents(), 1)
		assert.Equal(t, "origination.application.created", app.DomainEvents()[0].EventType())
	})

	t.Run("rejects structural violations", func(t *testing.T) {
		noFin := decimal.NullDecimal{}

		_, err := NewLoanApplication("", valueobject.CategoryPersonal, d("100"), 12, "", noFin, noFin, noFin, testNow)
		assert.True(t, valueobject.IsValidation(err))

		_, err = NewLoanApplication("CUST-001", valueobject.LoanCategory{}, d("100"), 12, "", noFin, noFin, noFin, testNow)
		assert.True(t, valueobject.IsValidation(err))

		_, err = NewLoanApplication("CUST-001", valueobject.CategoryPersonal, decimal.Zero, 12, "", noFin, noFin, noFin, testNow)
		assert.True(t, valueobject.IsValidation(err))

		_, err = NewLoanApplication("CUST-001", valueobject.CategoryPersonal, d("100"), 0, "", noFin, noFin, noFin, testNow)
		assert.True(t, valueobject.IsValidation(err))
	})
}

func TestUpdateDraft(t *testing.T) {
	app := newDraft(t)

	t.Run("replaces editable fields", func(t *testing.T) {
		income := decimal.NewNullDecimal(d("600000"))
		collateral := decimal.NewNullDecimal(d("4000000"))

		next, err := app.UpdateDraft(d("3000000"), 36, "car purchase",
			income, decimal.NullDecimal{}, collateral, testNow.Add(time.Hour))
		require.NoError(t, err)
		assert.Equal(t, "3000000", next.RequestedAmount().String())
		assert.Equal(t, 36, next.RequestedTermMonths())
		assert.Equal(t, "car purchase", next.Purpose())
		assert.True(t, next.CollateralValue().Valid)
		assert.False(t, next.ExistingDebt().Valid)
		// Original copy untouched.
		assert.Equal(t, "2000000", app.RequestedAmount().String())
		assert.True(t, app.ExistingDebt().Valid)
	})

	t.Run("refuses once submitted", func(t *testing.T) {
		sub := submitted(t)
		_, err := sub.UpdateDraft(d("3000000"), 36, "",
			decimal.NullDecimal{}, decimal.NullDecimal{}, decimal.NullDecimal{}, testNow)
		assert.True(t, valueobject.IsValidation(err))
	})
}

func TestSubmit(t *testing.T) {
	t.Run("stamps number and timestamp", func(t *testing.T) {
		app, err := newDraft(t).Submit("LN-2025-0042", testNow)
		require.NoError(t, err)
		assert.Equal(t, valueobject.StatusSubmitted, app.Status())
		assert.Equal(t, "LN-2025-0042", app.ApplicationNumber())
		assert.Equal(t, testNow, app.SubmittedAt())

		types := eventTypes(app.DomainEvents())
		assert.Contains(t, types, "origination.application.submitted")
	})

	t.Run("rejects malformed numbers", func(t *testing.T) {
		for _, bad := range []string{"", "LN-2025-1", "APP-2025-0001", "LN-25-0001", "ln-2025-0001"} {
			_, err := newDraft(t).Submit(bad, testNow)
			assert.True(t, valueobject.IsValidation(err), "number %q", bad)
		}
	})

	t.Run("double submit is an illegal transition", func(t *testing.T) {
		app := submitted(t)
		_, err := app.Submit("LN-2025-0002", testNow)
		assert.ErrorIs(t, err, valueobject.ErrInvalidStatusTransition)
	})
}

func TestAdvanceReview(t *testing.T) {
	t.Run("walks the full pipeline in order", func(t *testing.T) {
		app := submitted(t)
		want := []valueobject.ApplicationStatus{
			valueobject.StatusPending,
			valueobject.StatusDocumentReview,
			valueobject.StatusCreditCheck,
			valueobject.StatusRiskAssessment,
			valueobject.StatusManagerReview,
		}
		for _, w := range want {
			next, err := app.AdvanceReview(testNow)
			require.NoError(t, err)
			assert.Equal(t, w, next.Status())
			app = next
		}
	})

	t.Run("cannot advance past manager review", func(t *testing.T) {
		app := atStatus(t, valueobject.StatusManagerReview)
		_, err := app.AdvanceReview(testNow)
		assert.ErrorIs(t, err, valueobject.ErrInvalidStatusTransition)
	})

	t.Run("cannot advance a draft", func(t *testing.T) {
		_, err := newDraft(t).AdvanceReview(testNow)
		assert.ErrorIs(t, err, valueobject.ErrInvalidStatusTransition)
	})
}

func TestRequestAndResolveInfo(t *testing.T) {
	t.Run("pauses and resumes the same stage", func(t *testing.T) {
		app := atStatus(t, valueobject.StatusCreditCheck)

		paused, err := app.RequestInfo("need salary statement", testNow)
		require.NoError(t, err)
		assert.Equal(t, valueobject.StatusPendingInfo, paused.Status())
		assert.Equal(t, valueobject.StatusCreditCheck, paused.ResumeStatus())

		resumed, err := paused.ResolveInfo(testNow)
		require.NoError(t, err)
		assert.Equal(t, valueobject.StatusCreditCheck, resumed.Status())
		assert.True(t, resumed.ResumeStatus().IsZero())
	})

	t.Run("reason is mandatory", func(t *testing.T) {
		app := atStatus(t, valueobject.StatusCreditCheck)
		_, err := app.RequestInfo("  ", testNow)
		assert.True(t, valueobject.IsValidation(err))
	})

	t.Run("cannot pause outside review", func(t *testing.T) {
		_, err := newDraft(t).RequestInfo("why", testNow)
		assert.ErrorIs(t, err, valueobject.ErrInvalidStatusTransition)
	})

	t.Run("cannot resolve when not paused", func(t *testing.T) {
		app := atStatus(t, valueobject.StatusCreditCheck)
		_, err := app.ResolveInfo(testNow)
		assert.ErrorIs(t, err, valueobject.ErrInvalidStatusTransition)
	})
}

func TestRecordAssessment(t *testing.T) {
	assessment := Assessment{
		RiskScore:  25,
		RiskGrade:  valueobject.RiskGradeLow,
		Complete:   true,
		AssessedAt: testNow,
	}

	t.Run("attaches outcome without changing status", func(t *testing.T) {
		app := atStatus(t, valueobject.StatusRiskAssessment)

		next, err := app.RecordAssessment(assessment, testNow)
		require.NoError(t, err)
		assert.Equal(t, valueobject.StatusRiskAssessment, next.Status())
		require.NotNil(t, next.Assessment())
		assert.Equal(t, 25, next.Assessment().RiskScore)
	})

	t.Run("refuses outside review states", func(t *testing.T) {
		_, err := newDraft(t).RecordAssessment(assessment, testNow)
		assert.ErrorIs(t, err, valueobject.ErrInvalidStatusTransition)
	})

	t.Run("refuses out-of-range score", func(t *testing.T) {
		app := atStatus(t, valueobject.StatusRiskAssessment)
		_, err := app.RecordAssessment(Assessment{RiskScore: 101}, testNow)
		assert.True(t, valueobject.IsValidation(err))
	})
}

func TestApprove(t *testing.T) {
	t.Run("stores figures atomically with the status change", func(t *testing.T) {
		app := atStatus(t, valueobject.StatusManagerReview)

		next, err := app.Approve(d("2000000"), 24, d("12.5"), d("94629.84"), "mgr-7", "clean profile", false, testNow)
		require.NoError(t, err)
		assert.Equal(t, valueobject.StatusApproved, next.Status())
		require.True(t, next.ApprovedAmount().Valid)
		assert.Equal(t, "2000000", next.ApprovedAmount().Decimal.String())
		assert.True(t, next.MonthlyPayment().Valid)
		assert.Equal(t, "mgr-7", next.DecidedBy())
		assert.Equal(t, testNow, next.DecidedAt())
	})

	t.Run("approval from pending is legal", func(t *testing.T) {
		app := atStatus(t, valueobject.StatusPending)
		next, err := app.Approve(d("2000000"), 24, d("12.5"), d("94629.84"), "system", "auto", true, testNow)
		require.NoError(t, err)
		assert.Equal(t, valueobject.StatusApproved, next.Status())
	})

	t.Run("a failed approval leaves the application unchanged", func(t *testing.T) {
		app := atStatus(t, valueobject.StatusManagerReview)
		got, err := app.Approve(decimal.Zero, 24, d("12.5"), d("1"), "mgr-7", "", false, testNow)
		require.Error(t, err)
		assert.Equal(t, valueobject.StatusManagerReview, got.Status())
		assert.False(t, got.ApprovedAmount().Valid)
	})

	t.Run("cannot approve a draft", func(t *testing.T) {
		_, err := newDraft(t).Approve(d("1"), 12, d("10"), d("1"), "mgr-7", "", false, testNow)
		assert.ErrorIs(t, err, valueobject.ErrInvalidStatusTransition)
	})
}

func TestReject(t *testing.T) {
	t.Run("reason is mandatory", func(t *testing.T) {
		app := atStatus(t, valueobject.StatusCreditCheck)
		_, err := app.Reject("", "mgr-7", testNow)
		assert.True(t, valueobject.IsValidation(err))
	})

	t.Run("rejects from any open state", func(t *testing.T) {
		for _, app := range []LoanApplication{
			newDraft(t), submitted(t),
			atStatus(t, valueobject.StatusPending),
			atStatus(t, valueobject.StatusManagerReview),
		} {
			next, err := app.Reject("insufficient income", "mgr-7", testNow)
			require.NoError(t, err)
			assert.Equal(t, valueobject.StatusRejected, next.Status())
			assert.Equal(t, "insufficient income", next.DecisionReason())
		}
	})

	t.Run("cannot reject once approved", func(t *testing.T) {
		app := approvedApp(t)
		_, err := app.Reject("late change of heart", "mgr-7", testNow)
		assert.ErrorIs(t, err, valueobject.ErrInvalidStatusTransition)
	})
}

func TestDisburse(t *testing.T) {
	t.Run("approved to disbursed", func(t *testing.T) {
		app := approvedApp(t)

		next, err := app.Disburse(d("2000000"), testNow)
		require.NoError(t, err)
		assert.Equal(t, valueobject.StatusDisbursed, next.Status())
		require.True(t, next.DisbursedAmount().Valid)
		assert.Equal(t, testNow, next.DisbursedAt())
	})

	t.Run("partial disbursement is allowed", func(t *testing.T) {
		_, err := approvedApp(t).Disburse(d("1500000"), testNow)
		assert.NoError(t, err)
	})

	t.Run("cannot exceed the approved amount", func(t *testing.T) {
		_, err := approvedApp(t).Disburse(d("2000000.01"), testNow)
		assert.True(t, valueobject.IsValidation(err))
	})

	t.Run("cannot disburse an unapproved application", func(t *testing.T) {
		_, err := atStatus(t, valueobject.StatusManagerReview).Disburse(d("1"), testNow)
		assert.ErrorIs(t, err, valueobject.ErrInvalidStatusTransition)
	})

	t.Run("cannot disburse twice", func(t *testing.T) {
		app, err := approvedApp(t).Disburse(d("2000000"), testNow)
		require.NoError(t, err)
		_, err = app.Disburse(d("1"), testNow)
		assert.ErrorIs(t, err, valueobject.ErrInvalidStatusTransition)
	})
}

func TestCancel(t *testing.T) {
	t.Run("open states can be cancelled", func(t *testing.T) {
		next, err := atStatus(t, valueobject.StatusDocumentReview).Cancel(testNow)
		require.NoError(t, err)
		assert.Equal(t, valueobject.StatusCancelled, next.Status())
	})

	t.Run("approved cannot be cancelled", func(t *testing.T) {
		_, err := approvedApp(t).Cancel(testNow)
		assert.ErrorIs(t, err, valueobject.ErrInvalidStatusTransition)
	})

	t.Run("terminal states stay terminal", func(t *testing.T) {
		cancelled, err := newDraft(t).Cancel(testNow)
		require.NoError(t, err)
		_, err = cancelled.Cancel(testNow)
		assert.ErrorIs(t, err, valueobject.ErrInvalidStatusTransition)
	})
}

func TestSnapshotRoundTrip(t *testing.T) {
	app := approvedApp(t)

	got := ReconstructLoanApplication(app.Snapshot())

	assert.Equal(t, app.ID(), got.ID())
	assert.Equal(t, app.ApplicationNumber(), got.ApplicationNumber())
	assert.Equal(t, app.Status(), got.Status())
	assert.True(t, got.ApprovedAmount().Valid)
	assert.True(t, app.ApprovedAmount().Decimal.Equal(got.ApprovedAmount().Decimal))
	assert.Equal(t, app.Version(), got.Version())
	// Reconstruction never raises events.
	assert.Empty(t, got.DomainEvents())
}

func TestClearEvents(t *testing.T) {
	app := submitted(t)
	require.NotEmpty(t, app.DomainEvents())

	cleared := app.ClearEvents()
	assert.Empty(t, cleared.DomainEvents())
	assert.NotEmpty(t, app.DomainEvents())
}

func approvedApp(t *testing.T) LoanApplication {
	t.Helper()
	app, err := atStatus(t, valueobject.StatusManagerReview).
		Approve(d("2000000"), 24, d("12.5"), d("94629.84"), "mgr-7", "ok", false, testNow)
	require.NoError(t, err)
	return app
}

func eventTypes(evts []event.DomainEvent) []string {
	types := make([]string, 0, len(evts))
	for _, e := range evts {
		types = append(types, e.EventType())
	}
	return types
}
