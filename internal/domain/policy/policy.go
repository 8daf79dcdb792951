// Package policy holds the per-category lending policy table: amount and
// term bounds, base interest rates, auto-approval limits, and the weight
// coefficients feeding the risk classifier. The table is read-only input to
// the engine; institutions retune it through a JSON file, not a recompile.
package policy

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"github.com/meridianbank/origination/internal/domain/valueobject"
)

// RiskWeights are the coefficients applied to each risk component when the
// classifier blends them into a single score. They should sum to 1; the
// classifier renormalizes when components are missing.
type RiskWeights struct {
	CreditScore  decimal.Decimal `json:"creditScore"`
	DebtToIncome decimal.Decimal `json:"debtToIncome"`
	LoanToValue  decimal.Decimal `json:"loanToValue"`
	AmountToMax  decimal.Decimal `json:"amountToMax"`
}

// CategoryPolicy describes the lending rules for one loan category.
type CategoryPolicy struct {
	MinAmount        decimal.Decimal `json:"minAmount"`
	MaxAmount        decimal.Decimal `json:"maxAmount"`
	MinTermMonths    int             `json:"minTermMonths"`
	MaxTermMonths    int             `json:"maxTermMonths"`
	BaseRatePercent  decimal.Decimal `json:"baseRatePercent"`
	AutoApprove      bool            `json:"autoApprove"`
	AutoApproveLimit decimal.Decimal `json:"autoApproveLimit"`
	RiskWeights      RiskWeights     `json:"riskWeights"`
}

// Table maps category names to their policies.
type Table map[string]CategoryPolicy

func standardWeights() RiskWeights {
	return RiskWeights{
		CreditScore:  decimal.RequireFromString("0.35"),
		DebtToIncome: decimal.RequireFromString("0.30"),
		LoanToValue:  decimal.RequireFromString("0.20"),
		AmountToMax:  decimal.RequireFromString("0.15"),
	}
}

// Default returns the built-in policy table. Amounts are in minor-unit-free
// currency (e.g. KZT); rates are annual percentages.
func Default() Table {
	d := decimal.RequireFromString
	return Table{
		valueobject.CategoryPersonal.String(): {
			MinAmount: d("100000"), MaxAmount: d("10000000"),
			MinTermMonths: 3, MaxTermMonths: 60,
			BaseRatePercent: d("12.5"),
			AutoApprove:     true, AutoApproveLimit: d("1000000"),
			RiskWeights: standardWeights(),
		},
		valueobject.CategoryBusiness.String(): {
			MinAmount: d("500000"), MaxAmount: d("100000000"),
			MinTermMonths: 6, MaxTermMonths: 120,
			BaseRatePercent: d("14"),
			AutoApprove:     true, AutoApproveLimit: d("5000000"),
			RiskWeights: standardWeights(),
		},
		valueobject.CategoryMortgage.String(): {
			MinAmount: d("5000000"), MaxAmount: d("500000000"),
			MinTermMonths: 12, MaxTermMonths: 360,
			BaseRatePercent: d("8.5"),
			// Mortgages always go through manual review.
			AutoApprove: false,
			RiskWeights: standardWeights(),
		},
		valueobject.CategoryCar.String(): {
			MinAmount: d("200000"), MaxAmount: d("30000000"),
			MinTermMonths: 6, MaxTermMonths: 84,
			BaseRatePercent: d("10"),
			AutoApprove:     true, AutoApproveLimit: d("3000000"),
			RiskWeights: standardWeights(),
		},
		valueobject.CategoryConsumer.String(): {
			MinAmount: d("50000"), MaxAmount: d("5000000"),
			MinTermMonths: 3, MaxTermMonths: 36,
			BaseRatePercent: d("15"),
			AutoApprove:     true, AutoApproveLimit: d("500000"),
			RiskWeights: standardWeights(),
		},
		valueobject.CategoryEducation.String(): {
			MinAmount: d("100000"), MaxAmount: d("20000000"),
			MinTermMonths: 6, MaxTermMonths: 120,
			BaseRatePercent: d("9"),
			AutoApprove:     true, AutoApproveLimit: d("2000000"),
			RiskWeights: standardWeights(),
		},
		valueobject.CategoryMedical.String(): {
			MinAmount: d("50000"), MaxAmount: d("15000000"),
			MinTermMonths: 3, MaxTermMonths: 60,
			BaseRatePercent: d("11"),
			AutoApprove:     true, AutoApproveLimit: d("1500000"),
			RiskWeights: standardWeights(),
		},
	}
}

// LoadFile reads a policy table from a JSON file. Categories present in the
// file replace the built-in defaults; categories absent from the file keep
// their defaults, so a partial override file is valid.
func LoadFile(path string) (Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read policy file: %w", err)
	}

	var overrides map[string]CategoryPolicy
	if err := json.Unmarshal(raw, &overrides); err != nil {
		return nil, fmt.Errorf("parse policy file %s: %w", path, err)
	}

	table := Default()
	for name, p := range overrides {
		if _, err := valueobject.NewLoanCategory(name); err != nil {
			return nil, fmt.Errorf("policy file %s: %w", path, err)
		}
		if err := validate(name, p); err != nil {
			return nil, fmt.Errorf("policy file %s: %w", path, err)
		}
		table[name] = p
	}
	return table, nil
}

// ForCategory looks up the policy row for a category.
func (t Table) ForCategory(category valueobject.LoanCategory) (CategoryPolicy, error) {
	p, ok := t[category.String()]
	if !ok {
		return CategoryPolicy{}, fmt.Errorf("no policy configured for category %s", category)
	}
	return p, nil
}

func validate(name string, p CategoryPolicy) error {
	if p.MinAmount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("category %s: minAmount must be positive", name)
	}
	if p.MaxAmount.LessThan(p.MinAmount) {
		return fmt.Errorf("category %s: maxAmount below minAmount", name)
	}
	if p.MinTermMonths <= 0 || p.MaxTermMonths < p.MinTermMonths {
		return fmt.Errorf("category %s: invalid term bounds %d-%d", name, p.MinTermMonths, p.MaxTermMonths)
	}
	if p.BaseRatePercent.IsNegative() {
		return fmt.Errorf("category %s: baseRatePercent must not be negative", name)
	}
	if p.AutoApprove && p.AutoApproveLimit.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("category %s: autoApprove enabled without a positive limit", name)
	}
	return nil
}
