package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReservationStatus ciclo de vida de una reserva.
type ReservationStatus string

const (
	ReservationPending    ReservationStatus = "pending"
	ReservationConfirmed  ReservationStatus = "confirmed"
	ReservationCheckedIn  ReservationStatus = "checked_in"
	ReservationCheckedOut ReservationStatus = "checked_out"
	ReservationCancelled  ReservationStatus = "cancelled"
)

// Valid indica si el estado es uno de los valores enumerados.
func (s ReservationStatus) Valid() bool {
	switch s {
	case ReservationPending, ReservationConfirmed, ReservationCheckedIn, ReservationCheckedOut, ReservationCancelled:
		return true
	}
	return false
}

// Reservation representa una estadía. CheckIn y CheckOut son fechas (medianoche local);
// CheckOut es exclusivo: la noche de salida no se ocupa.
type Reservation struct {
	ID           string
	GuestID      string
	RoomID       string
	CheckIn      time.Time
	CheckOut     time.Time
	Status       ReservationStatus
	TotalAmount  decimal.Decimal // incluye habitación + consumos
	ExtrasAmount decimal.Decimal // tienda/snacks cargados a la reserva, <= TotalAmount
	Rate         decimal.Decimal // tarifa por noche aplicada
	Nights       int             // >= 1
	BranchID     string
}

// Completed indica si la estadía ya fue realizada (checked_out).
func (r Reservation) Completed() bool {
	return r.Status == ReservationCheckedOut
}

// OccupiesDay indica si la habitación está ocupada la noche del día d (CheckIn <= d < CheckOut).
func (r Reservation) OccupiesDay(d time.Time) bool {
	return !r.CheckIn.After(d) && r.CheckOut.After(d)
}
