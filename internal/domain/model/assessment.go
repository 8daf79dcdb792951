package model

import (
	"time"

	"github.com/meridianbank/origination/internal/domain/valueobject"
)

// Assessment is the recorded outcome of a risk classification run. Complete
// is false when any classifier input was missing; MissingInputs names the
// gaps so reviewers know the score is partial rather than trustworthy.
type Assessment struct {
	RiskScore     int
	RiskGrade     valueobject.RiskGrade
	DebtToIncome  valueobject.Ratio
	LoanToValue   valueobject.Ratio
	Complete      bool
	MissingInputs []string
	Notes         string
	AssessedAt    time.Time
}
