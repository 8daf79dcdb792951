package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/meridianbank/origination/internal/domain/model"
	"github.com/meridianbank/origination/internal/domain/policy"
	"github.com/meridianbank/origination/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// RiskClassifier – weighted risk scoring over financial inputs
// ---------------------------------------------------------------------------

// ClassificationInput carries everything the classifier needs for one run.
// Income and debt are the merged view (applicant-declared values first,
// directory values as fallback); a zero CreditScore means unknown.
type ClassificationInput struct {
	Category        valueobject.LoanCategory
	RequestedAmount decimal.Decimal
	CreditScore     int
	DeclaredIncome  decimal.NullDecimal
	ExistingDebt    decimal.NullDecimal
	CollateralValue decimal.NullDecimal
}

// RiskClassifier blends four risk components into a single 0-100 score.
// Each component is itself 0-100 with higher meaning riskier, and each is
// monotonic in its input: a higher DTI, LTV, or amount ratio never lowers
// the score, a higher credit score never raises it. Missing inputs are
// excluded from the weighted sum with the remaining weights renormalized,
// and the exclusion is reported so callers can flag a partial assessment
// instead of silently trusting it.
type RiskClassifier struct {
	table policy.Table
}

// NewRiskClassifier returns a classifier backed by the given policy table.
func NewRiskClassifier(table policy.Table) *RiskClassifier {
	return &RiskClassifier{table: table}
}

const (
	creditScoreFloor   = 300
	creditScoreCeiling = 850
)

var (
	dtiKnee    = decimal.RequireFromString("0.4")
	ltvKnee    = decimal.RequireFromString("0.8")
	amountKnee = decimal.RequireFromString("0.9")
)

// Classify computes the weighted risk score and grade for one application.
func (c *RiskClassifier) Classify(in ClassificationInput, now time.Time) (model.Assessment, error) {
	p, err := c.table.ForCategory(in.Category)
	if err != nil {
		return model.Assessment{}, err
	}

	dti := DebtToIncomeRatio(in.RequestedAmount, in.ExistingDebt, in.DeclaredIncome)
	ltv := LoanToValueRatio(in.RequestedAmount, in.CollateralValue)
	amountRatio := in.RequestedAmount.DivRound(p.MaxAmount, 4)

	var (
		weighted    = decimal.Zero
		totalWeight = decimal.Zero
		missing     []string
	)
	accumulate := func(weight, component decimal.Decimal) {
		weighted = weighted.Add(weight.Mul(component))
		totalWeight = totalWeight.Add(weight)
	}

	if in.CreditScore > 0 {
		accumulate(p.RiskWeights.CreditScore, creditComponent(in.CreditScore))
	} else {
		missing = append(missing, "creditScore")
	}
	if dti.Defined() {
		accumulate(p.RiskWeights.DebtToIncome, kneeComponent(dti.Value(), dtiKnee, 30))
	} else {
		missing = append(missing, "declaredIncome")
	}
	if ltv.Defined() {
		accumulate(p.RiskWeights.LoanToValue, kneeComponent(ltv.Value(), ltvKnee, 40))
	} else {
		missing = append(missing, "collateralValue")
	}
	accumulate(p.RiskWeights.AmountToMax, kneeComponent(amountRatio, amountKnee, 50))

	score := 0
	if totalWeight.IsPositive() {
		score = int(weighted.DivRound(totalWeight, 0).IntPart())
	}
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	grade := valueobject.GradeForScore(score)
	notes := fmt.Sprintf("score %d, grade %s", score, grade)
	if len(missing) > 0 {
		notes += "; excluded inputs: " + strings.Join(missing, ", ")
	}

	return model.Assessment{
		RiskScore:     score,
		RiskGrade:     grade,
		DebtToIncome:  dti,
		LoanToValue:   ltv,
		Complete:      len(missing) == 0,
		MissingInputs: missing,
		Notes:         notes,
		AssessedAt:    now,
	}, nil
}

// creditComponent maps a 300-850 bureau score onto 0-100, inverted: a
// perfect score contributes no risk, the floor contributes all of it.
func creditComponent(score int) decimal.Decimal {
	if score < creditScoreFloor {
		score = creditScoreFloor
	}
	if score > creditScoreCeiling {
		score = creditScoreCeiling
	}
	span := decimal.NewFromInt(creditScoreCeiling - creditScoreFloor)
	return decimal.NewFromInt(int64(creditScoreCeiling - score)).
		Mul(decimal.NewFromInt(100)).
		Div(span)
}

// kneeComponent maps a ratio onto 0-100 with a penalty knee: below the knee
// the component climbs linearly to kneeLevel, above it the remaining range
// up to 100 is consumed over one knee-width, then saturates.
func kneeComponent(ratio, knee decimal.Decimal, kneeLevel int64) decimal.Decimal {
	if ratio.IsNegative() {
		return decimal.Zero
	}
	level := decimal.NewFromInt(kneeLevel)
	if ratio.LessThanOrEqual(knee) {
		return ratio.Div(knee).Mul(level)
	}
	excess := ratio.Sub(knee).Div(knee)
	if excess.GreaterThan(decimal.NewFromInt(1)) {
		excess = decimal.NewFromInt(1)
	}
	return level.Add(excess.Mul(decimal.NewFromInt(100).Sub(level)))
}
