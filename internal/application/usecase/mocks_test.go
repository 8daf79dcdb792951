package usecase_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/meridianbank/origination/internal/domain/event"
	"github.com/meridianbank/origination/internal/domain/model"
	"github.com/meridianbank/origination/internal/domain/valueobject"
)

// --- Mock implementations ---

type mockApplicationRepository struct {
	createFunc            func(ctx context.Context, app model.LoanApplication) error
	updateFunc            func(ctx context.Context, app model.LoanApplication, expected valueobject.ApplicationStatus) error
	findByIDFunc          func(ctx context.Context, id string) (model.LoanApplication, error)
	findByNumberFunc      func(ctx context.Context, number string) (model.LoanApplication, error)
	findByCustomerRefFunc func(ctx context.Context, customerRef string) ([]model.LoanApplication, error)

	created []model.LoanApplication
	updated []model.LoanApplication
	// expectedStatuses records the CAS expectation of every Update call.
	expectedStatuses []valueobject.ApplicationStatus
}

func (m *mockApplicationRepository) Create(ctx context.Context, app model.LoanApplication) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, app)
	}
	m.created = append(m.created, app)
	return nil
}

func (m *mockApplicationRepository) Update(ctx context.Context, app model.LoanApplication, expected valueobject.ApplicationStatus) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, app, expected)
	}
	m.updated = append(m.updated, app)
	m.expectedStatuses = append(m.expectedStatuses, expected)
	return nil
}

func (m *mockApplicationRepository) FindByID(ctx context.Context, id string) (model.LoanApplication, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return model.LoanApplication{}, valueobject.ErrApplicationNotFound
}

func (m *mockApplicationRepository) FindByNumber(ctx context.Context, number string) (model.LoanApplication, error) {
	if m.findByNumberFunc != nil {
		return m.findByNumberFunc(ctx, number)
	}
	return model.LoanApplication{}, valueobject.ErrApplicationNotFound
}

func (m *mockApplicationRepository) FindByCustomerRef(ctx context.Context, customerRef string) ([]model.LoanApplication, error) {
	if m.findByCustomerRefFunc != nil {
		return m.findByCustomerRefFunc(ctx, customerRef)
	}
	return nil, nil
}

type mockNumberSequence struct {
	nextFunc func(ctx context.Context, year int) (int, error)
}

func (m *mockNumberSequence) Next(ctx context.Context, year int) (int, error) {
	if m.nextFunc != nil {
		return m.nextFunc(ctx, year)
	}
	return 1, nil
}

type mockEventPublisher struct {
	publishFunc     func(ctx context.Context, events ...event.DomainEvent) error
	publishedEvents []event.DomainEvent
}

func (m *mockEventPublisher) Publish(ctx context.Context, evts ...event.DomainEvent) error {
	if m.publishFunc != nil {
		return m.publishFunc(ctx, evts...)
	}
	m.publishedEvents = append(m.publishedEvents, evts...)
	return nil
}

type mockCustomerDirectory struct {
	getCustomerFunc func(ctx context.Context, customerRef string) (model.CustomerFinancials, error)
}

func (m *mockCustomerDirectory) GetCustomer(ctx context.Context, customerRef string) (model.CustomerFinancials, error) {
	if m.getCustomerFunc != nil {
		return m.getCustomerFunc(ctx, customerRef)
	}
	return model.CustomerFinancials{
		CustomerRef: customerRef,
		CreditScore: 760,
	}, nil
}

type mockDocumentChecker struct {
	satisfiedFunc func(ctx context.Context, applicationID string) (bool, error)
}

func (m *mockDocumentChecker) RequiredDocsSatisfied(ctx context.Context, applicationID string) (bool, error) {
	if m.satisfiedFunc != nil {
		return m.satisfiedFunc(ctx, applicationID)
	}
	return true, nil
}

// --- Test fixtures ---

var fixedNow = time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func nd(s string) decimal.NullDecimal { return decimal.NewNullDecimal(d(s)) }

var noDec = decimal.NullDecimal{}

func draftApplication(t *testing.T) model.LoanApplication {
	t.Helper()
	app, err := model.NewLoanApplication(
		"CUST-001", valueobject.CategoryPersonal,
		d("2000000"), 24, "home renovation",
		nd("450000"), nd("120000"), decimal.NullDecimal{},
		fixedNow,
	)
	require.NoError(t, err)
	return app.ClearEvents()
}

func applicationAt(t *testing.T, target valueobject.ApplicationStatus) model.LoanApplication {
	t.Helper()
	app := draftApplication(t)
	if target.Equal(valueobject.StatusDraft) {
		return app
	}
	app, err := app.Submit("LN-2025-0001", fixedNow)
	require.NoError(t, err)
	for !app.Status().Equal(target) {
		next, err := app.AdvanceReview(fixedNow)
		require.NoError(t, err, "advancing from %s towards %s", app.Status(), target)
		app = next
	}
	return app.ClearEvents()
}

// repoWith returns a repository whose FindByID always yields app.
func repoWith(app model.LoanApplication) *mockApplicationRepository {
	return &mockApplicationRepository{
		findByIDFunc: func(_ context.Context, _ string) (model.LoanApplication, error) {
			return app, nil
		},
	}
}
