package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/meridianbank/origination/internal/domain/port"
)

var _ port.ApplicationNumberSequence = (*NumberSequence)(nil)

// NumberSequence hands out per-year application sequence numbers. The upsert
// keeps allocation atomic under concurrent submissions.
type NumberSequence struct {
	pool *pgxpool.Pool
}

// NewNumberSequence creates a sequence backed by the given pool.
func NewNumberSequence(pool *pgxpool.Pool) *NumberSequence {
	return &NumberSequence{pool: pool}
}

// Next returns the next sequence value for the given year, starting at 1.
func (s *NumberSequence) Next(ctx context.Context, year int) (int, error) {
	query := `
		INSERT INTO application_sequences (year, value)
		VALUES ($1, 1)
		ON CONFLICT (year) DO UPDATE SET value = application_sequences.value + 1
		RETURNING value
	`
	var value int
	if err := s.pool.QueryRow(ctx, query, year).Scan(&value); err != nil {
		return 0, fmt.Errorf("next application sequence: %w", err)
	}
	return value, nil
}
