package metrics

import (
	"github.com/shopspring/decimal"

	"github.com/Leonardo2020-col/Hotel-management-demo-V2-sub002/internal/domain/entity"
)

// GuestSummary resultado del Guest Classifier.
type GuestSummary struct {
	TotalRegistered   int             `json:"total_registered"`
	UniqueGuests      int             `json:"unique_guests"`
	NewGuests         int             `json:"new_guests"`
	ReturningGuests   int             `json:"returning_guests"`
	AverageStayNights decimal.Decimal `json:"average_stay_nights"`
	Degraded          bool            `json:"degraded"`
}

// ClassifyGuests separa los huéspedes activos en la ventana en nuevos y recurrentes.
//
// Un huésped es nuevo si tiene como máximo una estadía completada en todo el historial
// (la estadía actual puede ser esa única), recurrente en otro caso. Las reservas sin
// guestId no identifican a nadie y no se cuentan. Siempre NewGuests + ReturningGuests ==
// UniqueGuests.
func ClassifyGuests(historical, overlapping []entity.Reservation) GuestSummary {
	completedByGuest := map[string]int{}
	for _, r := range historical {
		if r.Completed() && r.GuestID != "" {
			completedByGuest[r.GuestID]++
		}
	}

	seen := map[string]struct{}{}
	var s GuestSummary
	for _, r := range overlapping {
		if r.GuestID == "" {
			continue
		}
		if _, ok := seen[r.GuestID]; ok {
			continue
		}
		seen[r.GuestID] = struct{}{}
		if completedByGuest[r.GuestID] <= 1 {
			s.NewGuests++
		} else {
			s.ReturningGuests++
		}
	}
	s.UniqueGuests = len(seen)

	nights, stays := 0, 0
	for _, r := range overlapping {
		if r.Completed() {
			nights += r.Nights
			stays++
		}
	}
	s.AverageStayNights = SafeRatio(decimal.NewFromInt(int64(nights)), decimal.NewFromInt(int64(stays))).Round(1)
	return s
}
