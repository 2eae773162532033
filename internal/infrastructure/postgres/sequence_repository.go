package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/textile-market/internal/domain/repository"
)

var _ repository.SequenceRepository = (*SequenceRepo)(nil)

// SequenceRepo contador por nombre en la tabla sequences.
type SequenceRepo struct {
	q Querier
}

// NewSequenceRepository construye el adaptador. Dentro de una tx el incremento se confirma con ella.
func NewSequenceRepository(q Querier) *SequenceRepo {
	return &SequenceRepo{q: q}
}

// Next incrementa y devuelve el contador en una sola sentencia (la fila queda bloqueada hasta el commit).
func (r *SequenceRepo) Next(ctx context.Context, name string) (int64, error) {
	query := `
		INSERT INTO sequences (name, value) VALUES ($1, 1)
		ON CONFLICT (name) DO UPDATE SET value = sequences.value + 1
		RETURNING value`
	var value int64
	if err := r.q.QueryRow(ctx, query, name).Scan(&value); err != nil {
		return 0, fmt.Errorf("next sequence %s: %w", name, err)
	}
	return value, nil
}
