package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/meridianbank/origination/internal/domain/model"
	"github.com/meridianbank/origination/internal/domain/port"
	"github.com/meridianbank/origination/internal/domain/valueobject"
)

var _ port.ApplicationRepository = (*ApplicationRepo)(nil)

const uniqueViolation = "23505"

// ApplicationRepo implements port.ApplicationRepository on PostgreSQL.
type ApplicationRepo struct {
	pool *pgxpool.Pool
}

// NewApplicationRepo creates a repository backed by the given pool.
func NewApplicationRepo(pool *pgxpool.Pool) *ApplicationRepo {
	return &ApplicationRepo{pool: pool}
}

const applicationColumns = `
	id, application_number, customer_ref, category,
	requested_amount, requested_term_months, purpose,
	declared_income, existing_debt, collateral_value,
	status, resume_status, assessment,
	approved_amount, approved_term_months, approved_rate, monthly_payment,
	disbursed_amount, decision_reason, decided_by,
	submitted_at, decided_at, disbursed_at,
	version, created_at, updated_at`

// Create inserts a brand-new application row.
func (r *ApplicationRepo) Create(ctx context.Context, app model.LoanApplication) error {
	s := app.Snapshot()
	assessment, err := marshalAssessment(s.Assessment)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO loan_applications (` + applicationColumns + `)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23,$24,$25,$26)
	`
	_, err = r.pool.Exec(ctx, query,
		s.ID, nullString(s.ApplicationNumber), s.CustomerRef, s.Category.String(),
		s.RequestedAmount, s.RequestedTermMonths, s.Purpose,
		s.DeclaredIncome, s.ExistingDebt, s.CollateralValue,
		s.Status.String(), nullString(s.ResumeStatus.String()), assessment,
		s.ApprovedAmount, nullInt(s.ApprovedTermMonths), s.ApprovedRate, s.MonthlyPayment,
		s.DisbursedAmount, s.DecisionReason, s.DecidedBy,
		nullTime(s.SubmittedAt), nullTime(s.DecidedAt), nullTime(s.DisbursedAt),
		s.Version, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert loan application: %w", translateError(err))
	}
	return nil
}

// Update writes the new aggregate state under the compare-and-swap contract:
// the row must still carry expectedStatus and the aggregate's version, or
// the write affects nothing and the caller gets ErrVersionConflict.
func (r *ApplicationRepo) Update(ctx context.Context, app model.LoanApplication, expectedStatus valueobject.ApplicationStatus) error {
	s := app.Snapshot()
	assessment, err := marshalAssessment(s.Assessment)
	if err != nil {
		return err
	}

	query := `
		UPDATE loan_applications SET
			application_number   = $2,
			requested_amount     = $3,
			requested_term_months = $4,
			purpose              = $5,
			declared_income      = $6,
			existing_debt        = $7,
			collateral_value     = $8,
			status               = $9,
			resume_status        = $10,
			assessment           = $11,
			approved_amount      = $12,
			approved_term_months = $13,
			approved_rate        = $14,
			monthly_payment      = $15,
			disbursed_amount     = $16,
			decision_reason      = $17,
			decided_by           = $18,
			submitted_at         = $19,
			decided_at           = $20,
			disbursed_at         = $21,
			version              = loan_applications.version + 1,
			updated_at           = $22
		WHERE id = $1 AND status = $23 AND version = $24
	`
	tag, err := r.pool.Exec(ctx, query,
		s.ID, nullString(s.ApplicationNumber),
		s.RequestedAmount, s.RequestedTermMonths, s.Purpose,
		s.DeclaredIncome, s.ExistingDebt, s.CollateralValue,
		s.Status.String(), nullString(s.ResumeStatus.String()), assessment,
		s.ApprovedAmount, nullInt(s.ApprovedTermMonths), s.ApprovedRate, s.MonthlyPayment,
		s.DisbursedAmount, s.DecisionReason, s.DecidedBy,
		nullTime(s.SubmittedAt), nullTime(s.DecidedAt), nullTime(s.DisbursedAt),
		s.UpdatedAt,
		expectedStatus.String(), s.Version,
	)
	if err != nil {
		return fmt.Errorf("update loan application: %w", translateError(err))
	}
	if tag.RowsAffected() == 0 {
		return valueobject.ErrVersionConflict
	}
	return nil
}

// FindByID retrieves one application.
func (r *ApplicationRepo) FindByID(ctx context.Context, id string) (model.LoanApplication, error) {
	query := `SELECT ` + applicationColumns + ` FROM loan_applications WHERE id = $1`
	return scanApplication(r.pool.QueryRow(ctx, query, id))
}

// FindByNumber retrieves one application by its LN-YYYY-NNNN number.
func (r *ApplicationRepo) FindByNumber(ctx context.Context, number string) (model.LoanApplication, error) {
	query := `SELECT ` + applicationColumns + ` FROM loan_applications WHERE application_number = $1`
	return scanApplication(r.pool.QueryRow(ctx, query, number))
}

// FindByCustomerRef retrieves all applications for one customer, newest first.
func (r *ApplicationRepo) FindByCustomerRef(ctx context.Context, customerRef string) ([]model.LoanApplication, error) {
	query := `SELECT ` + applicationColumns + ` FROM loan_applications WHERE customer_ref = $1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, customerRef)
	if err != nil {
		return nil, fmt.Errorf("query loan applications: %w", err)
	}
	defer rows.Close()

	var result []model.LoanApplication
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, app)
	}
	return result, rows.Err()
}

// ---------------------------------------------------------------------------
// scan helpers
// ---------------------------------------------------------------------------

type scannable interface {
	Scan(dest ...any) error
}

// assessmentRecord is the flat JSON shape stored in the assessment column.
type assessmentRecord struct {
	RiskScore     int      `json:"risk_score"`
	RiskGrade     string   `json:"risk_grade"`
	DebtToIncome  *string  `json:"debt_to_income,omitempty"`
	LoanToValue   *string  `json:"loan_to_value,omitempty"`
	Complete      bool     `json:"complete"`
	MissingInputs []string `json:"missing_inputs,omitempty"`
	Notes         string   `json:"notes,omitempty"`
	AssessedAt    string   `json:"assessed_at"`
}

func marshalAssessment(a *model.Assessment) ([]byte, error) {
	if a == nil {
		return nil, nil
	}
	rec := assessmentRecord{
		RiskScore:     a.RiskScore,
		RiskGrade:     a.RiskGrade.String(),
		Complete:      a.Complete,
		MissingInputs: a.MissingInputs,
		Notes:         a.Notes,
		AssessedAt:    a.AssessedAt.UTC().Format(time.RFC3339Nano),
	}
	if a.DebtToIncome.Defined() {
		v := a.DebtToIncome.Value().String()
		rec.DebtToIncome = &v
	}
	if a.LoanToValue.Defined() {
		v := a.LoanToValue.Value().String()
		rec.LoanToValue = &v
	}
	raw, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("marshal assessment: %w", err)
	}
	return raw, nil
}

func unmarshalAssessment(raw []byte) (*model.Assessment, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var rec assessmentRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("unmarshal assessment: %w", err)
	}
	grade, err := valueobject.NewRiskGrade(rec.RiskGrade)
	if err != nil {
		return nil, fmt.Errorf("parse risk grade: %w", err)
	}
	assessedAt, err := time.Parse(time.RFC3339Nano, rec.AssessedAt)
	if err != nil {
		return nil, fmt.Errorf("parse assessed_at: %w", err)
	}
	a := model.Assessment{
		RiskScore:     rec.RiskScore,
		RiskGrade:     grade,
		Complete:      rec.Complete,
		MissingInputs: rec.MissingInputs,
		Notes:         rec.Notes,
		AssessedAt:    assessedAt,
	}
	if rec.DebtToIncome != nil {
		v, err := decimal.NewFromString(*rec.DebtToIncome)
		if err != nil {
			return nil, fmt.Errorf("parse debt_to_income: %w", err)
		}
		a.DebtToIncome = valueobject.NewRatio(v)
	} else {
		a.DebtToIncome = valueobject.UndefinedRatio()
	}
	if rec.LoanToValue != nil {
		v, err := decimal.NewFromString(*rec.LoanToValue)
		if err != nil {
			return nil, fmt.Errorf("parse loan_to_value: %w", err)
		}
		a.LoanToValue = valueobject.NewRatio(v)
	} else {
		a.LoanToValue = valueobject.UndefinedRatio()
	}
	return &a, nil
}

func scanApplication(row scannable) (model.LoanApplication, error) {
	var (
		s               model.Snapshot
		number          *string
		categoryStr     string
		statusStr       string
		resumeStatusStr *string
		assessmentRaw   []byte
		approvedTerm    *int
		submittedAt     *time.Time
		decidedAt       *time.Time
		disbursedAt     *time.Time
	)

	err := row.Scan(
		&s.ID, &number, &s.CustomerRef, &categoryStr,
		&s.RequestedAmount, &s.RequestedTermMonths, &s.Purpose,
		&s.DeclaredIncome, &s.ExistingDebt, &s.CollateralValue,
		&statusStr, &resumeStatusStr, &assessmentRaw,
		&s.ApprovedAmount, &approvedTerm, &s.ApprovedRate, &s.MonthlyPayment,
		&s.DisbursedAmount, &s.DecisionReason, &s.DecidedBy,
		&submittedAt, &decidedAt, &disbursedAt,
		&s.Version, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.LoanApplication{}, valueobject.ErrApplicationNotFound
		}
		return model.LoanApplication{}, fmt.Errorf("scan loan application: %w", err)
	}

	if number != nil {
		s.ApplicationNumber = *number
	}
	s.Category, err = valueobject.NewLoanCategory(categoryStr)
	if err != nil {
		return model.LoanApplication{}, fmt.Errorf("parse category: %w", err)
	}
	s.Status, err = valueobject.NewApplicationStatus(statusStr)
	if err != nil {
		return model.LoanApplication{}, fmt.Errorf("parse status: %w", err)
	}
	if resumeStatusStr != nil {
		s.ResumeStatus, err = valueobject.NewApplicationStatus(*resumeStatusStr)
		if err != nil {
			return model.LoanApplication{}, fmt.Errorf("parse resume status: %w", err)
		}
	}
	s.Assessment, err = unmarshalAssessment(assessmentRaw)
	if err != nil {
		return model.LoanApplication{}, err
	}
	if approvedTerm != nil {
		s.ApprovedTermMonths = *approvedTerm
	}
	if submittedAt != nil {
		s.SubmittedAt = *submittedAt
	}
	if decidedAt != nil {
		s.DecidedAt = *decidedAt
	}
	if disbursedAt != nil {
		s.DisbursedAt = *disbursedAt
	}

	return model.ReconstructLoanApplication(s), nil
}

// translateError maps constraint violations onto domain errors.
func translateError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		if pgErr.ConstraintName == "loan_applications_application_number_key" {
			return valueobject.NewValidationError("applicationNumber", "application number already in use")
		}
		return valueobject.NewValidationError("id", "application already exists")
	}
	return err
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func nullInt(i int) *int {
	if i == 0 {
		return nil
	}
	return &i
}

func nullTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
