package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/backoffice-api/internal/domain"
)

// Querier lo cumplen *pgxpool.Pool y pgx.Tx; los repos aceptan cualquiera de los dos.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Códigos SQLSTATE con los que la base rechaza un valor de estado.
const (
	sqlStateCheckViolation  = "23514" // CHECK (status IN (...))
	sqlStateInvalidTextRepr = "22P02" // valor fuera del enum
	sqlStateFKViolation     = "23503" // status referenciando una tabla de estados
)

// statusRejected indica si err es un rechazo del valor de estado por la base.
func statusRejected(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	switch pgErr.Code {
	case sqlStateCheckViolation, sqlStateInvalidTextRepr, sqlStateFKViolation:
		return true
	}
	return false
}

// wrapStatusError traduce el error de un UPDATE de estado al error de dominio.
func wrapStatusError(op string, err error) error {
	if statusRejected(err) {
		return fmt.Errorf("%s: %w: %v", op, domain.ErrStatusRejected, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// formatTimestamp deja la marca en RFC 3339 UTC; NULL queda vacía.
func formatTimestamp(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
