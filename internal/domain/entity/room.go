package entity

import "github.com/shopspring/decimal"

// RoomStatus estado operativo de una habitación.
type RoomStatus string

const (
	RoomAvailable   RoomStatus = "available"
	RoomOccupied    RoomStatus = "occupied"
	RoomCleaning    RoomStatus = "cleaning"
	RoomMaintenance RoomStatus = "maintenance"
	RoomOutOfOrder  RoomStatus = "out_of_order"
)

// Valid indica si el estado es uno de los valores enumerados.
func (s RoomStatus) Valid() bool {
	switch s {
	case RoomAvailable, RoomOccupied, RoomCleaning, RoomMaintenance, RoomOutOfOrder:
		return true
	}
	return false
}

// Room representa una habitación del hotel (snapshot de solo lectura).
type Room struct {
	ID       string
	Number   string
	Status   RoomStatus
	RoomType string          // texto libre; "Estándar" si viene vacío
	BaseRate decimal.Decimal // tarifa base >= 0
	BranchID string
}

// InMaintenance agrupa mantenimiento y fuera de servicio.
func (r Room) InMaintenance() bool {
	return r.Status == RoomMaintenance || r.Status == RoomOutOfOrder
}
