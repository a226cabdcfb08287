package record

import (
	"math"
	"strings"
	"time"

	"github.com/Leonardo2020-col/Hotel-management-demo-V2-sub002/internal/domain/entity"
)

// Valores por defecto documentados para campos ausentes.
const (
	DefaultCategory = "Sin categoría"
	DefaultRoomType = "Estándar"
)

// Normalizer convierte registros crudos en entidades canónicas.
// Nunca falla: los campos ausentes o malformados se sustituyen por sus valores por defecto.
type Normalizer struct {
	Location        *time.Location
	DefaultCategory string
	DefaultRoomType string
}

// NewNormalizer construye un normalizador con los valores por defecto estándar.
func NewNormalizer(loc *time.Location) Normalizer {
	if loc == nil {
		loc = time.UTC
	}
	return Normalizer{Location: loc, DefaultCategory: DefaultCategory, DefaultRoomType: DefaultRoomType}
}

var roomStatusAliases = map[string]entity.RoomStatus{
	"available":      entity.RoomAvailable,
	"occupied":       entity.RoomOccupied,
	"cleaning":       entity.RoomCleaning,
	"maintenance":    entity.RoomMaintenance,
	"out_of_order":   entity.RoomOutOfOrder,
	"out_of_service": entity.RoomOutOfOrder,
}

var reservationStatusAliases = map[string]entity.ReservationStatus{
	"pending":     entity.ReservationPending,
	"confirmed":   entity.ReservationConfirmed,
	"checked_in":  entity.ReservationCheckedIn,
	"checkin":     entity.ReservationCheckedIn,
	"checked_out": entity.ReservationCheckedOut,
	"checkout":    entity.ReservationCheckedOut,
	"completed":   entity.ReservationCheckedOut,
	"cancelled":   entity.ReservationCancelled,
	"canceled":    entity.ReservationCancelled,
}

// Room normaliza una habitación. Estado desconocido → available.
func (n Normalizer) Room(raw Raw) entity.Room {
	status, ok := roomStatusAliases[normalizeToken(raw.str("status", "roomStatus", "room_status"))]
	if !ok {
		status = entity.RoomAvailable
	}
	roomType := raw.str("roomType", "room_type", "type")
	if roomType == "" {
		roomType = n.roomTypeDefault()
	}
	return entity.Room{
		ID:       raw.str("id", "roomId", "room_id"),
		Number:   raw.str("number", "roomNumber", "room_number"),
		Status:   status,
		RoomType: roomType,
		BaseRate: raw.money("baseRate", "base_rate", "price"),
		BranchID: raw.str("branchId", "branch_id"),
	}
}

// Reservation normaliza una reserva. Nights se deriva de las fechas si no viene (mínimo 1).
// Sin CheckIn se toma CheckOut - Nights; si CheckOut falta o no es posterior a CheckIn se
// reconstruye como CheckIn + Nights. Sin ninguna de las dos fechas la estadía queda en el
// año 1 y no cae en ninguna ventana.
func (n Normalizer) Reservation(raw Raw) entity.Reservation {
	loc := n.location()
	status, ok := reservationStatusAliases[normalizeToken(raw.str("status", "reservationStatus", "reservation_status"))]
	if !ok {
		status = entity.ReservationPending
	}

	checkIn, hasIn := raw.date(loc, "checkIn", "check_in", "checkInDate", "check_in_date")
	checkOut, hasOut := raw.date(loc, "checkOut", "check_out", "checkOutDate", "check_out_date")

	nights, hasNights := raw.integer("nights", "numberOfNights", "number_of_nights")
	if !hasNights || nights < 1 {
		nights = 1
		if hasIn && hasOut && checkOut.After(checkIn) {
			nights = wholeDays(checkIn, checkOut)
		}
	}
	if !hasIn && hasOut {
		checkIn = checkOut.AddDate(0, 0, -nights)
	}
	if !hasOut || !checkOut.After(checkIn) {
		checkOut = checkIn.AddDate(0, 0, nights)
	}

	total := raw.money("totalAmount", "total_amount", "total")
	extras := raw.money("extrasAmount", "extras_amount", "snacksTotal", "snacks_total")
	if extras.GreaterThan(total) {
		extras = total
	}

	return entity.Reservation{
		ID:           raw.str("id", "reservationId", "reservation_id"),
		GuestID:      raw.str("guestId", "guest_id"),
		RoomID:       raw.str("roomId", "room_id"),
		CheckIn:      checkIn,
		CheckOut:     checkOut,
		Status:       status,
		TotalAmount:  total,
		ExtrasAmount: extras,
		Rate:         raw.money("rate", "roomRate", "room_rate"),
		Nights:       nights,
		BranchID:     raw.str("branchId", "branch_id"),
	}
}

// Guest normaliza un huésped. El nombre se arma con nombre + apellido si no viene completo.
func (n Normalizer) Guest(raw Raw) entity.Guest {
	fullName := raw.str("fullName", "full_name", "name")
	if fullName == "" {
		fullName = strings.TrimSpace(raw.str("firstName", "first_name") + " " + raw.str("lastName", "last_name"))
	}
	createdAt, _ := raw.date(n.location(), "createdAt", "created_at")
	return entity.Guest{
		ID:        raw.str("id", "guestId", "guest_id"),
		FullName:  fullName,
		Email:     raw.str("email"),
		Document:  raw.str("documentNumber", "document_number", "document"),
		BranchID:  raw.str("branchId", "branch_id"),
		CreatedAt: createdAt,
	}
}

// InventoryItem normaliza un artículo. Tipo desconocido → supply.
func (n Normalizer) InventoryItem(raw Raw) entity.InventoryItem {
	category := raw.str("category", "categoryName", "category_name")
	if category == "" {
		category = n.categoryDefault()
	}
	itemType := entity.ItemSupply
	if normalizeToken(raw.str("itemType", "item_type", "type")) == string(entity.ItemSnack) {
		itemType = entity.ItemSnack
	}
	current, _ := raw.integer("currentStock", "current_stock", "stock")
	minimum, _ := raw.integer("minStock", "min_stock", "minimumStock", "minimum_stock")
	return entity.InventoryItem{
		ID:           raw.str("id", "itemId", "item_id"),
		Name:         raw.str("name", "itemName", "item_name"),
		Category:     category,
		CurrentStock: max(current, 0),
		MinStock:     max(minimum, 0),
		UnitPrice:    raw.money("unitPrice", "unit_price", "price"),
		ItemType:     itemType,
		BranchID:     raw.str("branchId", "branch_id"),
	}
}

// Rooms normaliza una colección completa conservando el orden de entrada.
func (n Normalizer) Rooms(raws []Raw) []entity.Room {
	out := make([]entity.Room, 0, len(raws))
	for _, r := range raws {
		out = append(out, n.Room(r))
	}
	return out
}

// Reservations normaliza una colección completa conservando el orden de entrada.
func (n Normalizer) Reservations(raws []Raw) []entity.Reservation {
	out := make([]entity.Reservation, 0, len(raws))
	for _, r := range raws {
		out = append(out, n.Reservation(r))
	}
	return out
}

// Guests normaliza una colección completa conservando el orden de entrada.
func (n Normalizer) Guests(raws []Raw) []entity.Guest {
	out := make([]entity.Guest, 0, len(raws))
	for _, r := range raws {
		out = append(out, n.Guest(r))
	}
	return out
}

// InventoryItems normaliza una colección completa conservando el orden de entrada.
func (n Normalizer) InventoryItems(raws []Raw) []entity.InventoryItem {
	out := make([]entity.InventoryItem, 0, len(raws))
	for _, r := range raws {
		out = append(out, n.InventoryItem(r))
	}
	return out
}

func (n Normalizer) location() *time.Location {
	if n.Location == nil {
		return time.UTC
	}
	return n.Location
}

func (n Normalizer) categoryDefault() string {
	if n.DefaultCategory == "" {
		return DefaultCategory
	}
	return n.DefaultCategory
}

func (n Normalizer) roomTypeDefault() string {
	if n.DefaultRoomType == "" {
		return DefaultRoomType
	}
	return n.DefaultRoomType
}

// wholeDays días de calendario entre dos fechas (redondeo absorbe cambios de horario), mínimo 1.
func wholeDays(from, to time.Time) int {
	d := int(math.Round(to.Sub(from).Hours() / 24))
	if d < 1 {
		return 1
	}
	return d
}
