package adapter

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/meridianbank/origination/internal/domain/model"
	"github.com/meridianbank/origination/internal/domain/port"
)

var _ port.CustomerDirectory = (*StubCustomerDirectory)(nil)

// StubCustomerDirectory is a development/test adapter that returns
// deterministic customer financials derived from the customer reference.
// It implements port.CustomerDirectory.
type StubCustomerDirectory struct{}

// NewStubCustomerDirectory creates a new stub adapter.
func NewStubCustomerDirectory() *StubCustomerDirectory {
	return &StubCustomerDirectory{}
}

// GetCustomer returns financials derived from a hash of the customer
// reference, so the same customer always gets the same profile. This allows
// repeatable test scenarios.
func (d *StubCustomerDirectory) GetCustomer(_ context.Context, customerRef string) (model.CustomerFinancials, error) {
	if customerRef == "" {
		return model.CustomerFinancials{}, fmt.Errorf("customer reference is required")
	}

	h := sha256.Sum256([]byte(customerRef))
	score := 300 + int(binary.BigEndian.Uint32(h[:4])%551) // range [300, 850]
	income := 50_000 + int64(binary.BigEndian.Uint32(h[4:8])%950_000)
	debt := int64(binary.BigEndian.Uint32(h[8:12])) % (income / 2)

	return model.CustomerFinancials{
		CustomerRef:   customerRef,
		CreditScore:   score,
		MonthlyIncome: decimal.NewNullDecimal(decimal.NewFromInt(income)),
		ExistingDebt:  decimal.NewNullDecimal(decimal.NewFromInt(debt)),
	}, nil
}
