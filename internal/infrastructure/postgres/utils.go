package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// Códigos SQLSTATE que se reportan con un mensaje propio.
const (
	sqlUndefinedTable  = "42P01"
	sqlUndefinedColumn = "42703"
	sqlReadOnlyTx      = "25006"
)

// pgCode devuelve el SQLSTATE de err, o "" si no viene de PostgreSQL.
func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// wrapQueryError anota el error con la colección y, cuando se reconoce, con la causa
// (esquema desactualizado o sesión de solo lectura).
func wrapQueryError(table string, err error) error {
	switch pgCode(err) {
	case sqlUndefinedTable:
		return fmt.Errorf("postgres.%s: la tabla no existe: %w", table, err)
	case sqlUndefinedColumn:
		return fmt.Errorf("postgres.%s: columna desconocida, revise el esquema: %w", table, err)
	case sqlReadOnlyTx:
		return fmt.Errorf("postgres.%s: la sesión es de solo lectura: %w", table, err)
	default:
		return fmt.Errorf("postgres.%s: %w", table, err)
	}
}
