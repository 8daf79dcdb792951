package service

import (
	"github.com/shopspring/decimal"

	"github.com/meridianbank/origination/internal/domain/policy"
	"github.com/meridianbank/origination/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// EligibilityService – stateless per-category eligibility rules
// ---------------------------------------------------------------------------

// EligibilityService answers bounds and ratio questions against the policy
// table. It is pure: no I/O, no retained state between calls.
type EligibilityService struct {
	table policy.Table
}

// NewEligibilityService returns a service backed by the given policy table.
func NewEligibilityService(table policy.Table) *EligibilityService {
	return &EligibilityService{table: table}
}

// BoundsFor returns the amount and term bounds for a category.
func (s *EligibilityService) BoundsFor(category valueobject.LoanCategory) (policy.CategoryPolicy, error) {
	return s.table.ForCategory(category)
}

// CheckBounds validates amount and term against the category's closed
// intervals, returning an attributable validation error on the first
// violation found.
func (s *EligibilityService) CheckBounds(category valueobject.LoanCategory, amount decimal.Decimal, termMonths int) error {
	p, err := s.table.ForCategory(category)
	if err != nil {
		return valueobject.NewValidationError("loanCategory", "%s", err)
	}

	if amount.LessThan(p.MinAmount) {
		return valueobject.NewValidationError("requestedAmount",
			"amount %s is below the %s minimum of %s", amount, category, p.MinAmount)
	}
	if amount.GreaterThan(p.MaxAmount) {
		return valueobject.NewValidationError("requestedAmount",
			"amount %s exceeds the %s maximum of %s", amount, category, p.MaxAmount)
	}
	if termMonths < p.MinTermMonths {
		return valueobject.NewValidationError("requestedTermMonths",
			"term %d months is below the %s minimum of %d", termMonths, category, p.MinTermMonths)
	}
	if termMonths > p.MaxTermMonths {
		return valueobject.NewValidationError("requestedTermMonths",
			"term %d months exceeds the %s maximum of %d", termMonths, category, p.MaxTermMonths)
	}
	return nil
}

// IsWithinBounds reports whether amount and term lie within the category's
// closed intervals.
func (s *EligibilityService) IsWithinBounds(category valueobject.LoanCategory, amount decimal.Decimal, termMonths int) bool {
	return s.CheckBounds(category, amount, termMonths) == nil
}

// IsAutoApprovable reports whether the amount falls under the category's
// configured auto-approval limit. Categories without auto-approval always
// answer false.
func (s *EligibilityService) IsAutoApprovable(category valueobject.LoanCategory, amount decimal.Decimal) bool {
	p, err := s.table.ForCategory(category)
	if err != nil || !p.AutoApprove {
		return false
	}
	return amount.LessThanOrEqual(p.AutoApproveLimit)
}

// DebtToIncomeRatio computes (requestedAmount + existingDebt) / declaredIncome
// rounded to 4 fractional digits, half-up. A zero or absent income yields an
// undefined ratio, which callers must treat as insufficient data, not zero.
// Absent existing debt contributes nothing to the numerator.
func DebtToIncomeRatio(requestedAmount decimal.Decimal, existingDebt, declaredIncome decimal.NullDecimal) valueobject.Ratio {
	if !declaredIncome.Valid || declaredIncome.Decimal.LessThanOrEqual(decimal.Zero) {
		return valueobject.UndefinedRatio()
	}
	debt := decimal.Zero
	if existingDebt.Valid {
		debt = existingDebt.Decimal
	}
	return valueobject.NewRatio(requestedAmount.Add(debt).DivRound(declaredIncome.Decimal, 4))
}

// LoanToValueRatio computes requestedAmount / collateralValue with the same
// rounding and undefined semantics as DebtToIncomeRatio.
func LoanToValueRatio(requestedAmount decimal.Decimal, collateralValue decimal.NullDecimal) valueobject.Ratio {
	if !collateralValue.Valid || collateralValue.Decimal.LessThanOrEqual(decimal.Zero) {
		return valueobject.UndefinedRatio()
	}
	return valueobject.NewRatio(requestedAmount.DivRound(collateralValue.Decimal, 4))
}
