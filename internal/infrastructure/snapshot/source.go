// Package snapshot lee las colecciones del hotel desde un volcado JSON. Lo usa la CLI para
// generar reportes sin base de datos y los tests de integración.
package snapshot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/Leonardo2020-col/Hotel-management-demo-V2-sub002/internal/domain/record"
	"github.com/Leonardo2020-col/Hotel-management-demo-V2-sub002/internal/domain/repository"
)

// document forma del archivo. Se aceptan las claves en camelCase y snake_case.
type document struct {
	Rooms          []record.Raw `json:"rooms"`
	Reservations   []record.Raw `json:"reservations"`
	Guests         []record.Raw `json:"guests"`
	Inventory      []record.Raw `json:"inventory"`
	InventoryItems []record.Raw `json:"inventory_items"`
	InventoryCamel []record.Raw `json:"inventoryItems"`
}

// Source fuente en memoria cargada desde un snapshot.
type Source struct {
	rooms        []record.Raw
	reservations []record.Raw
	guests       []record.Raw
	items        []record.Raw
}

var (
	_ repository.RoomSource        = (*Source)(nil)
	_ repository.ReservationSource = (*Source)(nil)
	_ repository.GuestSource       = (*Source)(nil)
	_ repository.InventorySource   = (*Source)(nil)
)

type options struct {
	latin1 bool
}

// Option ajusta la lectura del snapshot.
type Option func(*options)

// WithLatin1 decodifica el archivo como ISO-8859-1 (exportaciones antiguas del PMS).
func WithLatin1() Option {
	return func(o *options) { o.latin1 = true }
}

// Open carga el snapshot desde un archivo.
func Open(path string, opts ...Option) (*Source, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}
	return Load(bytes.NewReader(b), opts...)
}

// Load carga el snapshot desde r. Los números se conservan como json.Number para no
// perder precisión en los montos.
func Load(r io.Reader, opts ...Option) (*Source, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.latin1 {
		r = transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	}
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var doc document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("snapshot: json inválido: %w", err)
	}
	items := doc.Inventory
	if len(items) == 0 {
		items = doc.InventoryItems
	}
	if len(items) == 0 {
		items = doc.InventoryCamel
	}
	return &Source{
		rooms:        doc.Rooms,
		reservations: doc.Reservations,
		guests:       doc.Guests,
		items:        items,
	}, nil
}

// Sources devuelve la fuente como el conjunto de puertos del caso de uso.
func (s *Source) Sources() repository.ReportSources {
	return repository.ReportSources{Rooms: s, Reservations: s, Guests: s, Inventory: s}
}

// ListRooms implementa repository.RoomSource.
func (s *Source) ListRooms(ctx context.Context, f repository.Filter) ([]record.Raw, error) {
	return selectRaw(ctx, s.rooms, f, nil)
}

// ListReservations implementa repository.ReservationSource.
func (s *Source) ListReservations(ctx context.Context, f repository.ReservationFilter) ([]record.Raw, error) {
	var match func(record.Raw) bool
	if f.Status != "" {
		match = func(r record.Raw) bool { return field(r, "status") == f.Status }
	}
	return selectRaw(ctx, s.reservations, f.Filter, match)
}

// ListGuests implementa repository.GuestSource.
func (s *Source) ListGuests(ctx context.Context, f repository.Filter) ([]record.Raw, error) {
	return selectRaw(ctx, s.guests, f, nil)
}

// ListInventoryItems implementa repository.InventorySource.
func (s *Source) ListInventoryItems(ctx context.Context, f repository.Filter) ([]record.Raw, error) {
	return selectRaw(ctx, s.items, f, nil)
}

// selectRaw aplica sucursal, filtro extra y límite. Los registros sin sucursal pertenecen
// a todas.
func selectRaw(ctx context.Context, in []record.Raw, f repository.Filter, match func(record.Raw) bool) ([]record.Raw, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]record.Raw, 0, len(in))
	for _, r := range in {
		if f.Limit > 0 && len(out) >= f.Limit {
			break
		}
		if branch := field(r, "branchId", "branch_id"); f.BranchID != "" && branch != "" && branch != f.BranchID {
			continue
		}
		if match != nil && !match(r) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func field(r record.Raw, keys ...string) string {
	for _, k := range keys {
		if s, ok := r[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}
