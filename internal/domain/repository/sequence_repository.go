package repository

import "context"

// SequenceRepository contador monotónico por tipo de registro.
// Next incrementa y devuelve el nuevo valor en una sola operación atómica.
type SequenceRepository interface {
	Next(ctx context.Context, name string) (int64, error)
}
