package policy

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridianbank/origination/internal/domain/valueobject"
)

func TestDefaultTable(t *testing.T) {
	table := Default()

	t.Run("covers every category", func(t *testing.T) {
		for _, c := range valueobject.AllLoanCategories() {
			_, err := table.ForCategory(c)
			assert.NoError(t, err, "category %s", c)
		}
	})

	t.Run("bounds are internally consistent", func(t *testing.T) {
		for name, p := range table {
			assert.True(t, p.MinAmount.IsPositive(), "%s minAmount", name)
			assert.True(t, p.MaxAmount.GreaterThan(p.MinAmount), "%s amount range", name)
			assert.Greater(t, p.MaxTermMonths, p.MinTermMonths, "%s term range", name)
			if p.AutoApprove {
				assert.True(t, p.AutoApproveLimit.IsPositive(), "%s autoApproveLimit", name)
				assert.True(t, p.AutoApproveLimit.LessThanOrEqual(p.MaxAmount), "%s limit within max", name)
			}
		}
	})

	t.Run("risk weights sum to one", func(t *testing.T) {
		for name, p := range table {
			sum := p.RiskWeights.CreditScore.
				Add(p.RiskWeights.DebtToIncome).
				Add(p.RiskWeights.LoanToValue).
				Add(p.RiskWeights.AmountToMax)
			assert.True(t, sum.Equal(decimal.NewFromInt(1)), "%s weights sum to %s", name, sum)
		}
	})

	t.Run("mortgage never auto-approves", func(t *testing.T) {
		p, err := table.ForCategory(valueobject.CategoryMortgage)
		require.NoError(t, err)
		assert.False(t, p.AutoApprove)
	})
}

func TestLoadFile(t *testing.T) {
	writeFile := func(t *testing.T, content string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "policy.json")
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
		return path
	}

	t.Run("partial override keeps defaults for other categories", func(t *testing.T) {
		path := writeFile(t, `{
			"PERSONAL": {
				"minAmount": "200000",
				"maxAmount": "8000000",
				"minTermMonths": 6,
				"maxTermMonths": 48,
				"baseRatePercent": "13.9",
				"autoApprove": false,
				"riskWeights": {
					"creditScore": "0.4",
					"debtToIncome": "0.3",
					"loanToValue": "0.2",
					"amountToMax": "0.1"
				}
			}
		}`)

		table, err := LoadFile(path)
		require.NoError(t, err)

		personal, err := table.ForCategory(valueobject.CategoryPersonal)
		require.NoError(t, err)
		assert.Equal(t, "200000", personal.MinAmount.String())
		assert.False(t, personal.AutoApprove)

		mortgage, err := table.ForCategory(valueobject.CategoryMortgage)
		require.NoError(t, err)
		assert.Equal(t, "5000000", mortgage.MinAmount.String())
	})

	t.Run("rejects unknown category", func(t *testing.T) {
		path := writeFile(t, `{"PAYDAY": {"minAmount": "1", "maxAmount": "2", "minTermMonths": 1, "maxTermMonths": 2, "baseRatePercent": "1"}}`)

		_, err := LoadFile(path)
		assert.Error(t, err)
	})

	t.Run("rejects inverted bounds", func(t *testing.T) {
		path := writeFile(t, `{"CAR": {"minAmount": "5000000", "maxAmount": "100000", "minTermMonths": 6, "maxTermMonths": 84, "baseRatePercent": "10"}}`)

		_, err := LoadFile(path)
		assert.Error(t, err)
	})

	t.Run("rejects auto-approve without a limit", func(t *testing.T) {
		path := writeFile(t, `{"CAR": {"minAmount": "200000", "maxAmount": "30000000", "minTermMonths": 6, "maxTermMonths": 84, "baseRatePercent": "10", "autoApprove": true}}`)

		_, err := LoadFile(path)
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))
		assert.Error(t, err)
	})

	t.Run("malformed json", func(t *testing.T) {
		path := writeFile(t, `{`)
		_, err := LoadFile(path)
		assert.Error(t, err)
	})
}
