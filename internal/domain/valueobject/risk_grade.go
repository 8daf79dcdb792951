package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// RiskGrade – immutable value object
// ---------------------------------------------------------------------------

// RiskGrade buckets a 0-100 risk score into the three review bands.
type RiskGrade struct {
	value string
}

const (
	riskGradeLow    = "LOW"
	riskGradeMedium = "MEDIUM"
	riskGradeHigh   = "HIGH"
)

var (
	RiskGradeLow    = RiskGrade{value: riskGradeLow}
	RiskGradeMedium = RiskGrade{value: riskGradeMedium}
	RiskGradeHigh   = RiskGrade{value: riskGradeHigh}
)

var validRiskGrades = map[string]RiskGrade{
	riskGradeLow:    RiskGradeLow,
	riskGradeMedium: RiskGradeMedium,
	riskGradeHigh:   RiskGradeHigh,
}

// NewRiskGrade creates a RiskGrade from a raw string.
func NewRiskGrade(s string) (RiskGrade, error) {
	v, ok := validRiskGrades[s]
	if !ok {
		return RiskGrade{}, fmt.Errorf("invalid risk grade: %q", s)
	}
	return v, nil
}

// GradeForScore maps a bounded 0-100 risk score onto its grade:
// below 30 is LOW, 30 to 69 is MEDIUM, 70 and above is HIGH.
func GradeForScore(score int) RiskGrade {
	switch {
	case score >= 70:
		return RiskGradeHigh
	case score >= 30:
		return RiskGradeMedium
	default:
		return RiskGradeLow
	}
}

// String returns the string representation of the grade.
func (g RiskGrade) String() string { return g.value }

// IsZero returns true if the grade has not been initialised.
func (g RiskGrade) IsZero() bool { return g.value == "" }

// Equal returns true when both grades carry the same value.
func (g RiskGrade) Equal(other RiskGrade) bool { return g.value == other.value }
