package repository

import (
	"context"

	"github.com/Leonardo2020-col/Hotel-management-demo-V2-sub002/internal/domain/record"
)

// Filter acota la lectura de una colección. BranchID vacío lee todas las sucursales;
// Limit <= 0 usa el límite por defecto de la implementación.
type Filter struct {
	BranchID string
	Limit    int
}

// ReservationFilter agrega el filtro opcional por estado.
type ReservationFilter struct {
	Filter
	Status string
}

// Los puertos de lectura devuelven registros crudos: la normalización ocurre en un único
// punto (record.Normalizer) y ningún adaptador decide nombres de campos canónicos.

// RoomSource lee las habitaciones de una sucursal.
type RoomSource interface {
	ListRooms(ctx context.Context, f Filter) ([]record.Raw, error)
}

// ReservationSource lee el historial de reservas.
type ReservationSource interface {
	ListReservations(ctx context.Context, f ReservationFilter) ([]record.Raw, error)
}

// GuestSource lee los huéspedes registrados.
type GuestSource interface {
	ListGuests(ctx context.Context, f Filter) ([]record.Raw, error)
}

// InventorySource lee los artículos de inventario (insumos y tienda).
type InventorySource interface {
	ListInventoryItems(ctx context.Context, f Filter) ([]record.Raw, error)
}

// ReportSources agrupa los cuatro puertos que consume el caso de uso de reportes.
type ReportSources struct {
	Rooms        RoomSource
	Reservations ReservationSource
	Guests       GuestSource
	Inventory    InventorySource
}
