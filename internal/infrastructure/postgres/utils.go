package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return false
}

// writeError traduce un error de INSERT/UPDATE: 23505 -> dup; el resto se envuelve con la operación.
func writeError(err, dup error, op, table string) error {
	if isUniqueViolation(err) {
		return dup
	}
	return fmt.Errorf("%s %s: %w", op, table, err)
}
