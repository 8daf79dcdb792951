package model

import (
	"github.com/shopspring/decimal"
)

// ScheduleEntry is an immutable value object representing one monthly period
// in an amortization schedule.
type ScheduleEntry struct {
	Month            int
	Payment          decimal.Decimal
	PrincipalPortion decimal.Decimal
	InterestPortion  decimal.Decimal
	RemainingBalance decimal.Decimal
}

var (
	one           = decimal.NewFromInt(1)
	monthsPerYear = decimal.NewFromInt(12)
	hundred       = decimal.NewFromInt(100)
)

// MonthlyRate converts an annual percentage rate to a monthly decimal rate:
// annualRatePercent / 100 / 12.
func MonthlyRate(annualRatePercent decimal.Decimal) decimal.Decimal {
	return annualRatePercent.Div(hundred).Div(monthsPerYear)
}

// MonthlyPayment computes the fixed monthly payment for a standard annuity
// loan, rounded to 2 fractional digits, half-up:
//
//	payment = P * r * (1+r)^n / ((1+r)^n - 1)
//
// A zero rate degenerates to an even split of the principal. All arithmetic
// stays in decimal; binary floating point would drift at cent level across
// long schedules.
func MonthlyPayment(principal decimal.Decimal, annualRatePercent decimal.Decimal, termMonths int) decimal.Decimal {
	if termMonths <= 0 || principal.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	rate := MonthlyRate(annualRatePercent)
	if rate.IsZero() {
		return principal.DivRound(decimal.NewFromInt(int64(termMonths)), 2)
	}

	factor := one.Add(rate).Pow(decimal.NewFromInt(int64(termMonths)))
	return principal.Mul(rate).Mul(factor).DivRound(factor.Sub(one), 2)
}

// TotalPayment is the monthly payment multiplied by the term.
func TotalPayment(principal decimal.Decimal, annualRatePercent decimal.Decimal, termMonths int) decimal.Decimal {
	return MonthlyPayment(principal, annualRatePercent, termMonths).
		Mul(decimal.NewFromInt(int64(termMonths)))
}

// TotalInterest is the total payment minus the principal.
func TotalInterest(principal decimal.Decimal, annualRatePercent decimal.Decimal, termMonths int) decimal.Decimal {
	return TotalPayment(principal, annualRatePercent, termMonths).Sub(principal)
}

// Schedule computes the full amortization schedule, one entry per month.
// Each entry's interest is the remaining balance times the monthly rate; the
// principal portion is the payment minus interest. The final period absorbs
// the accumulated rounding remainder into its principal portion so the
// closing balance is exactly zero. The computation is deterministic: calling
// it twice with the same inputs yields identical schedules.
func Schedule(principal decimal.Decimal, annualRatePercent decimal.Decimal, termMonths int) []ScheduleEntry {
	if termMonths <= 0 || principal.LessThanOrEqual(decimal.Zero) {
		return nil
	}

	rate := MonthlyRate(annualRatePercent)
	payment := MonthlyPayment(principal, annualRatePercent, termMonths)

	schedule := make([]ScheduleEntry, 0, termMonths)
	remaining := principal

	for month := 1; month <= termMonths; month++ {
		interest := remaining.Mul(rate).Round(2)
		principalPart := payment.Sub(interest)
		entryPayment := payment

		if principalPart.GreaterThan(remaining) {
			principalPart = remaining
		}
		// Last period: fold the rounding remainder into the principal so the
		// balance lands on exactly zero.
		if month == termMonths {
			principalPart = remaining
			entryPayment = principalPart.Add(interest)
		}

		remaining = remaining.Sub(principalPart)

		schedule = append(schedule, ScheduleEntry{
			Month:            month,
			Payment:          entryPayment,
			PrincipalPortion: principalPart,
			InterestPortion:  interest,
			RemainingBalance: remaining,
		})
	}

	return schedule
}
