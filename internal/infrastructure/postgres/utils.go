package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier subconjunto común de *pgxpool.Pool y pgx.Tx usado por los repositorios.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const (
	codeUniqueViolation      = "23505"
	codeInvalidTextRepresent = "22P02"
	codeCheckViolation       = "23514"
	codeNumericOutOfRange    = "22003"
	codeStringTooLong        = "22001"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	return hasCode(err, codeUniqueViolation)
}

// isInvalidText identificador con formato inválido (ej. UUID mal formado, 22P02).
func isInvalidText(err error) bool {
	return hasCode(err, codeInvalidTextRepresent)
}

// isInvalidValue valor rechazado por la columna: CHECK, fuera de rango numérico o texto demasiado largo.
func isInvalidValue(err error) bool {
	return hasCode(err, codeCheckViolation, codeNumericOutOfRange, codeStringTooLong)
}

func hasCode(err error, codes ...string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	for _, c := range codes {
		if pgErr.Code == c {
			return true
		}
	}
	return false
}
