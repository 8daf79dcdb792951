package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridianbank/origination/internal/domain/policy"
	"github.com/meridianbank/origination/internal/domain/valueobject"
)

var assessedAt = time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)

func personalInput() ClassificationInput {
	return ClassificationInput{
		Category:        valueobject.CategoryPersonal,
		RequestedAmount: d("500000"),
		CreditScore:     800,
		DeclaredIncome:  nd("600000"),
		ExistingDebt:    nd("0"),
		CollateralValue: nd("2000000"),
	}
}

func TestClassify(t *testing.T) {
	classifier := NewRiskClassifier(policy.Default())

	t.Run("strong applicant with full inputs", func(t *testing.T) {
		in := personalInput()
		in.RequestedAmount = d("300000")

		got, err := classifier.Classify(in, assessedAt)
		require.NoError(t, err)

		assert.Equal(t, 19, got.RiskScore)
		assert.Equal(t, valueobject.RiskGradeLow, got.RiskGrade)
		assert.True(t, got.Complete)
		assert.Empty(t, got.MissingInputs)
		assert.Equal(t, assessedAt, got.AssessedAt)
	})

	t.Run("weak applicant grades high", func(t *testing.T) {
		got, err := classifier.Classify(ClassificationInput{
			Category:        valueobject.CategoryPersonal,
			RequestedAmount: d("9500000"),
			CreditScore:     450,
			DeclaredIncome:  nd("300000"),
			ExistingDebt:    nd("2000000"),
			CollateralValue: nd("8000000"),
		}, assessedAt)
		require.NoError(t, err)

		assert.Equal(t, 77, got.RiskScore)
		assert.Equal(t, valueobject.RiskGradeHigh, got.RiskGrade)
	})

	t.Run("missing collateral is excluded and reported", func(t *testing.T) {
		got, err := classifier.Classify(ClassificationInput{
			Category:        valueobject.CategoryPersonal,
			RequestedAmount: d("500000"),
			CreditScore:     780,
			DeclaredIncome:  nd("500000"),
		}, assessedAt)
		require.NoError(t, err)

		assert.Equal(t, 44, got.RiskScore)
		assert.False(t, got.Complete)
		assert.Equal(t, []string{"collateralValue"}, got.MissingInputs)
		assert.False(t, got.LoanToValue.Defined())
	})

	t.Run("classifier survives with only the amount ratio", func(t *testing.T) {
		got, err := classifier.Classify(ClassificationInput{
			Category:        valueobject.CategoryPersonal,
			RequestedAmount: d("1000000"),
		}, assessedAt)
		require.NoError(t, err)

		assert.Equal(t, 6, got.RiskScore)
		assert.False(t, got.Complete)
		assert.ElementsMatch(t, []string{"creditScore", "declaredIncome", "collateralValue"}, got.MissingInputs)
	})

	t.Run("score stays within 0-100", func(t *testing.T) {
		got, err := classifier.Classify(ClassificationInput{
			Category:        valueobject.CategoryPersonal,
			RequestedAmount: d("10000000"),
			CreditScore:     300,
			DeclaredIncome:  nd("1"),
			ExistingDebt:    nd("99000000"),
			CollateralValue: nd("1"),
		}, assessedAt)
		require.NoError(t, err)

		assert.GreaterOrEqual(t, got.RiskScore, 0)
		assert.LessOrEqual(t, got.RiskScore, 100)
		assert.Equal(t, valueobject.RiskGradeHigh, got.RiskGrade)
	})

	t.Run("unknown category", func(t *testing.T) {
		_, err := classifier.Classify(ClassificationInput{Category: valueobject.LoanCategory{}, RequestedAmount: d("1")}, assessedAt)
		assert.Error(t, err)
	})
}

func TestClassifyMonotonicity(t *testing.T) {
	classifier := NewRiskClassifier(policy.Default())

	run := func(t *testing.T, in ClassificationInput) int {
		t.Helper()
		got, err := classifier.Classify(in, assessedAt)
		require.NoError(t, err)
		return got.RiskScore
	}

	t.Run("higher credit score never increases risk", func(t *testing.T) {
		prev := 101
		for _, score := range []int{350, 500, 650, 800} {
			in := personalInput()
			in.CreditScore = score
			got := run(t, in)
			assert.LessOrEqual(t, got, prev, "credit score %d", score)
			prev = got
		}
	})

	t.Run("higher debt never decreases risk", func(t *testing.T) {
		prev := -1
		for _, debt := range []string{"0", "200000", "1000000", "5000000"} {
			in := personalInput()
			in.ExistingDebt = nd(debt)
			got := run(t, in)
			assert.GreaterOrEqual(t, got, prev, "debt %s", debt)
			prev = got
		}
	})

	t.Run("less collateral never decreases risk", func(t *testing.T) {
		prev := -1
		for _, coll := range []string{"5000000", "2000000", "1000000", "600000"} {
			in := personalInput()
			in.CollateralValue = nd(coll)
			got := run(t, in)
			assert.GreaterOrEqual(t, got, prev, "collateral %s", coll)
			prev = got
		}
	})

	t.Run("larger requested amount never decreases risk", func(t *testing.T) {
		prev := -1
		for _, amount := range []string{"500000", "2000000", "6000000", "9500000"} {
			in := personalInput()
			in.RequestedAmount = d(amount)
			got := run(t, in)
			assert.GreaterOrEqual(t, got, prev, "amount %s", amount)
			prev = got
		}
	})
}
