package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation verifica si un error es una violación de constraint
// único (23505). Es la frontera de seguridad ante carreras: un duplicado
// concurrente falla aquí, nunca sobreescribe.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// nullIfEmpty convierte "" en NULL para columnas opcionales con índice único
// parcial (ej. users.email).
func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
