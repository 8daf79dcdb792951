package valueobject

import "github.com/shopspring/decimal"

// ---------------------------------------------------------------------------
// Ratio – explicit optional result of a financial ratio computation
// ---------------------------------------------------------------------------

// Ratio carries a derived financial ratio together with whether it could be
// computed at all. An undefined ratio means the inputs were absent or zero;
// callers must treat it as "insufficient data", never as zero.
type Ratio struct {
	value   decimal.Decimal
	defined bool
}

// NewRatio creates a defined Ratio.
func NewRatio(v decimal.Decimal) Ratio {
	return Ratio{value: v, defined: true}
}

// UndefinedRatio creates a Ratio whose inputs were missing.
func UndefinedRatio() Ratio {
	return Ratio{}
}

// Defined reports whether the ratio was computable.
func (r Ratio) Defined() bool { return r.defined }

// Value returns the ratio value. Only meaningful when Defined is true.
func (r Ratio) Value() decimal.Decimal { return r.value }

// String renders the ratio, or "undefined" when it could not be computed.
func (r Ratio) String() string {
	if !r.defined {
		return "undefined"
	}
	return r.value.String()
}
