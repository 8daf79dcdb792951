package model

import "github.com/shopspring/decimal"

// CustomerFinancials is the directory view of a customer's finances. The
// engine only reads it; customer data is owned elsewhere. A zero CreditScore
// means the bureau score is unknown (real scores live on the 300-850 scale).
type CustomerFinancials struct {
	CustomerRef   string
	CreditScore   int
	MonthlyIncome decimal.NullDecimal
	ExistingDebt  decimal.NullDecimal
}
