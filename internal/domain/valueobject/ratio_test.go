package valueobject

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRatio(t *testing.T) {
	t.Run("defined ratio keeps its value", func(t *testing.T) {
		r := NewRatio(decimal.RequireFromString("0.4286"))

		assert.True(t, r.Defined())
		assert.Equal(t, "0.4286", r.String())
	})

	t.Run("undefined ratio is not zero", func(t *testing.T) {
		r := UndefinedRatio()

		assert.False(t, r.Defined())
		assert.NotEqual(t, "0", r.String())
	})

	t.Run("zero is a legitimate defined value", func(t *testing.T) {
		r := NewRatio(decimal.Zero)

		assert.True(t, r.Defined())
		assert.Equal(t, "0", r.String())
	})
}

func TestGradeForScore(t *testing.T) {
	tests := []struct {
		score int
		want  RiskGrade
	}{
		{0, RiskGradeLow},
		{29, RiskGradeLow},
		{30, RiskGradeMedium},
		{69, RiskGradeMedium},
		{70, RiskGradeHigh},
		{100, RiskGradeHigh},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, GradeForScore(tt.score), "score %d", tt.score)
	}
}
