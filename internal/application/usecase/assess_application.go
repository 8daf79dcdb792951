package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/meridianbank/origination/internal/application/dto"
	"github.com/meridianbank/origination/internal/domain/model"
	"github.com/meridianbank/origination/internal/domain/policy"
	"github.com/meridianbank/origination/internal/domain/port"
	"github.com/meridianbank/origination/internal/domain/service"
	"github.com/meridianbank/origination/internal/domain/valueobject"
)

const autoApprover = "system"

// AssessApplicationUseCase runs the risk classifier over an application in
// review and records the outcome. When the category policy allows it, a
// complete LOW-grade assessment within the auto-approval limit fast-forwards
// the application straight to APPROVED with computed payment figures.
type AssessApplicationUseCase struct {
	appRepo     port.ApplicationRepository
	customers   port.CustomerDirectory
	publisher   port.EventPublisher
	eligibility *service.EligibilityService
	classifier  *service.RiskClassifier
	policies    policy.Table
	logger      *slog.Logger
}

// NewAssessApplicationUseCase wires dependencies.
func NewAssessApplicationUseCase(
	appRepo port.ApplicationRepository,
	customers port.CustomerDirectory,
	publisher port.EventPublisher,
	eligibility *service.EligibilityService,
	classifier *service.RiskClassifier,
	policies policy.Table,
	logger *slog.Logger,
) *AssessApplicationUseCase {
	return &AssessApplicationUseCase{
		appRepo:     appRepo,
		customers:   customers,
		publisher:   publisher,
		eligibility: eligibility,
		classifier:  classifier,
		policies:    policies,
		logger:      logger,
	}
}

// Execute classifies the application's risk and records the assessment.
func (uc *AssessApplicationUseCase) Execute(
	ctx context.Context,
	req dto.AssessApplicationRequest,
) (dto.ApplicationResponse, error) {
	now := time.Now().UTC()

	// 1. Load current state.
	app, err := uc.appRepo.FindByID(ctx, req.ApplicationID)
	if err != nil {
		return dto.ApplicationResponse{}, fmt.Errorf("find application: %w", err)
	}
	expected := app.Status()

	// 2. Pull the customer's directory financials.
	financials, err := uc.customers.GetCustomer(ctx, app.CustomerRef())
	if err != nil {
		return dto.ApplicationResponse{}, fmt.Errorf("get customer %s: %w", app.CustomerRef(), err)
	}

	// 3. Classify. Applicant-declared figures win over directory figures.
	assessment, err := uc.classifier.Classify(service.ClassificationInput{
		Category:        app.Category(),
		RequestedAmount: app.RequestedAmount(),
		CreditScore:     financials.CreditScore,
		DeclaredIncome:  mergeDecimal(app.DeclaredIncome(), financials.MonthlyIncome),
		ExistingDebt:    mergeDecimal(app.ExistingDebt(), financials.ExistingDebt),
		CollateralValue: app.CollateralValue(),
	}, now)
	if err != nil {
		return dto.ApplicationResponse{}, fmt.Errorf("classify application: %w", err)
	}

	// 4. Record the outcome in place.
	app, err = app.RecordAssessment(assessment, now)
	if err != nil {
		return dto.ApplicationResponse{}, err
	}
	if !assessment.Complete {
		uc.logger.Warn("assessment incomplete",
			"application_id", app.ID(),
			"missing_inputs", assessment.MissingInputs,
		)
	}

	// 5. Auto-approval fast-forward when policy allows it.
	if uc.autoApprovable(app, assessment) {
		p, err := uc.policies.ForCategory(app.Category())
		if err != nil {
			return dto.ApplicationResponse{}, fmt.Errorf("policy for %s: %w", app.Category(), err)
		}
		payment := model.MonthlyPayment(app.RequestedAmount(), p.BaseRatePercent, app.RequestedTermMonths())
		app, err = app.Approve(
			app.RequestedAmount(), app.RequestedTermMonths(), p.BaseRatePercent, payment,
			autoApprover, fmt.Sprintf("auto-approved: %s risk within limit", assessment.RiskGrade), true, now,
		)
		if err != nil {
			return dto.ApplicationResponse{}, err
		}
	}

	// 6. Persist.
	if err := uc.appRepo.Update(ctx, app, expected); err != nil {
		return dto.ApplicationResponse{}, fmt.Errorf("update application: %w", err)
	}

	// 7. Publish domain events (fire-and-forget).
	publishEvents(ctx, uc.logger, uc.publisher, app)

	return toApplicationResponse(app), nil
}

// autoApprovable requires a complete LOW-grade assessment and an amount
// under the category's auto-approval limit. Partial assessments never
// fast-forward.
func (uc *AssessApplicationUseCase) autoApprovable(app model.LoanApplication, assessment model.Assessment) bool {
	return assessment.Complete &&
		assessment.RiskGrade.Equal(valueobject.RiskGradeLow) &&
		uc.eligibility.IsAutoApprovable(app.Category(), app.RequestedAmount())
}

func mergeDecimal(declared, directory decimal.NullDecimal) decimal.NullDecimal {
	if declared.Valid {
		return declared
	}
	return directory
}
