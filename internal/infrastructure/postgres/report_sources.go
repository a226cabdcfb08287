package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Leonardo2020-col/Hotel-management-demo-V2-sub002/internal/domain/record"
	"github.com/Leonardo2020-col/Hotel-management-demo-V2-sub002/internal/domain/repository"
)

const defaultLimit = 5000

// Querier lo que las fuentes necesitan de la conexión; lo cumplen *pgxpool.Pool, *pgx.Conn y pgx.Tx.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

var (
	_ repository.RoomSource        = (*ReportSources)(nil)
	_ repository.ReservationSource = (*ReportSources)(nil)
	_ repository.GuestSource       = (*ReportSources)(nil)
	_ repository.InventorySource   = (*ReportSources)(nil)
)

// ReportSources lecturas crudas para el motor de reportes. Cada consulta devuelve una fila
// por registro como mapa columna → valor; los nombres de columna se eligen para coincidir
// con los alias que entiende record.Normalizer.
type ReportSources struct {
	q Querier
}

// NewReportSources construye el adaptador.
func NewReportSources(q Querier) *ReportSources {
	return &ReportSources{q: q}
}

// Sources devuelve el adaptador como el conjunto de puertos del caso de uso.
func (s *ReportSources) Sources() repository.ReportSources {
	return repository.ReportSources{Rooms: s, Reservations: s, Guests: s, Inventory: s}
}

// ListRooms habitaciones con el nombre de su tipo.
func (s *ReportSources) ListRooms(ctx context.Context, f repository.Filter) ([]record.Raw, error) {
	const query = `
	SELECT
	    r.id::TEXT          AS id,
	    r.room_number       AS room_number,
	    r.status            AS status,
	    rt.name             AS room_type,
	    COALESCE(rt.base_price, 0) AS base_rate,
	    r.branch_id::TEXT   AS branch_id
	FROM rooms r
	LEFT JOIN room_types rt ON rt.id = r.room_type_id
	WHERE ($1 = '' OR r.branch_id::TEXT = $1)
	ORDER BY r.room_number
	LIMIT $2`
	return s.collect(ctx, "rooms", query, f.BranchID, limitOf(f.Limit))
}

// ListReservations historial de reservas, más recientes primero.
func (s *ReportSources) ListReservations(ctx context.Context, f repository.ReservationFilter) ([]record.Raw, error) {
	const query = `
	SELECT
	    res.id::TEXT        AS id,
	    res.guest_id::TEXT  AS guest_id,
	    res.room_id::TEXT   AS room_id,
	    res.check_in        AS check_in,
	    res.check_out       AS check_out,
	    res.status          AS status,
	    COALESCE(res.total_amount, 0) AS total_amount,
	    COALESCE(res.snacks_total, 0) AS snacks_total,
	    COALESCE(res.rate, 0)         AS rate,
	    res.nights          AS nights,
	    res.branch_id::TEXT AS branch_id
	FROM reservations res
	WHERE ($1 = '' OR res.branch_id::TEXT = $1)
	  AND ($2 = '' OR res.status = $2)
	ORDER BY res.check_in DESC
	LIMIT $3`
	return s.collect(ctx, "reservations", query, f.BranchID, f.Status, limitOf(f.Limit))
}

// ListGuests huéspedes registrados.
func (s *ReportSources) ListGuests(ctx context.Context, f repository.Filter) ([]record.Raw, error) {
	const query = `
	SELECT
	    g.id::TEXT          AS id,
	    g.first_name        AS first_name,
	    g.last_name         AS last_name,
	    g.email             AS email,
	    g.document_number   AS document_number,
	    g.branch_id::TEXT   AS branch_id,
	    g.created_at        AS created_at
	FROM guests g
	WHERE ($1 = '' OR g.branch_id::TEXT = $1)
	ORDER BY g.created_at DESC
	LIMIT $2`
	return s.collect(ctx, "guests", query, f.BranchID, limitOf(f.Limit))
}

// ListInventoryItems insumos y productos de tienda con su categoría.
func (s *ReportSources) ListInventoryItems(ctx context.Context, f repository.Filter) ([]record.Raw, error) {
	const query = `
	SELECT
	    i.id::TEXT          AS id,
	    i.name              AS name,
	    c.name              AS category,
	    i.current_stock     AS current_stock,
	    i.min_stock         AS min_stock,
	    COALESCE(i.unit_price, 0) AS unit_price,
	    i.item_type         AS item_type,
	    i.branch_id::TEXT   AS branch_id
	FROM inventory_items i
	LEFT JOIN inventory_categories c ON c.id = i.category_id
	WHERE ($1 = '' OR i.branch_id::TEXT = $1)
	ORDER BY i.name
	LIMIT $2`
	return s.collect(ctx, "inventory_items", query, f.BranchID, limitOf(f.Limit))
}

// Ping verifica que la base responde; lo usa el endpoint de salud.
func (s *ReportSources) Ping(ctx context.Context) error {
	if _, err := s.q.Exec(ctx, "SELECT 1"); err != nil {
		return fmt.Errorf("postgres.ping: %w", err)
	}
	return nil
}

func (s *ReportSources) collect(ctx context.Context, table, query string, args ...any) ([]record.Raw, error) {
	rows, err := s.q.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapQueryError(table, err)
	}
	maps, err := pgx.CollectRows(rows, pgx.RowToMap)
	if err != nil {
		return nil, fmt.Errorf("postgres.%s: scan: %w", table, err)
	}
	return toRaw(maps), nil
}

func toRaw(maps []map[string]any) []record.Raw {
	out := make([]record.Raw, 0, len(maps))
	for _, m := range maps {
		out = append(out, record.Raw(m))
	}
	return out
}

func limitOf(n int) int {
	if n <= 0 {
		return defaultLimit
	}
	return n
}
