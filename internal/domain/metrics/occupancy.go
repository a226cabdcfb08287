package metrics

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/Leonardo2020-col/Hotel-management-demo-V2-sub002/internal/domain/entity"
)

// RoomTypeOccupancy ocupación de un tipo de habitación.
type RoomTypeOccupancy struct {
	RoomType  string          `json:"room_type"`
	Total     int             `json:"total"`
	Occupied  int             `json:"occupied"`
	Available int             `json:"available"`
	Rate      decimal.Decimal `json:"rate"`
}

// TrendPoint ocupación de un día.
type TrendPoint struct {
	Date     string          `json:"date"` // YYYY-MM-DD
	Occupied int             `json:"occupied"`
	Rate     decimal.Decimal `json:"rate"`
}

// TrendStats estadísticas de la serie, redondeadas a 1 decimal. 0 con serie vacía.
type TrendStats struct {
	Avg decimal.Decimal `json:"avg"`
	Max decimal.Decimal `json:"max"`
	Min decimal.Decimal `json:"min"`
}

// OccupancySummary resultado del Occupancy Calculator.
type OccupancySummary struct {
	Total       int                 `json:"total"`
	Occupied    int                 `json:"occupied"`
	Available   int                 `json:"available"`
	Cleaning    int                 `json:"cleaning"`
	Maintenance int                 `json:"maintenance"`
	Rate        decimal.Decimal     `json:"rate"`
	ByRoomType  []RoomTypeOccupancy `json:"by_room_type"`
	Trend       []TrendPoint        `json:"trend"`
	TrendStats  TrendStats          `json:"trend_stats"`
	Degraded    bool                `json:"degraded"`
}

// ComputeOccupancy calcula la ocupación actual de las habitaciones, agrupada por tipo.
// Si window no es nil agrega además la serie diaria y sus estadísticas.
func ComputeOccupancy(rooms []entity.Room, reservations []entity.Reservation, window *DateWindow) OccupancySummary {
	s := OccupancySummary{
		Total:      len(rooms),
		ByRoomType: OccupancyByRoomType(rooms),
		Trend:      []TrendPoint{},
		TrendStats: TrendStats{Avg: decimal.Zero, Max: decimal.Zero, Min: decimal.Zero},
	}
	for _, r := range rooms {
		switch {
		case r.Status == entity.RoomOccupied:
			s.Occupied++
		case r.Status == entity.RoomAvailable:
			s.Available++
		case r.Status == entity.RoomCleaning:
			s.Cleaning++
		case r.InMaintenance():
			s.Maintenance++
		}
	}
	s.Rate = ratePercent(s.Occupied, s.Total)

	if window != nil {
		s.Trend = OccupancyTrend(len(rooms), reservations, *window)
		s.TrendStats = TrendStatistics(s.Trend)
	}
	return s
}

// OccupancyByRoomType agrupa las habitaciones por tipo, ordenadas por nombre de tipo.
func OccupancyByRoomType(rooms []entity.Room) []RoomTypeOccupancy {
	byType := map[string]*RoomTypeOccupancy{}
	for _, r := range rooms {
		b, ok := byType[r.RoomType]
		if !ok {
			b = &RoomTypeOccupancy{RoomType: r.RoomType}
			byType[r.RoomType] = b
		}
		b.Total++
		switch r.Status {
		case entity.RoomOccupied:
			b.Occupied++
		case entity.RoomAvailable:
			b.Available++
		}
	}
	out := make([]RoomTypeOccupancy, 0, len(byType))
	for _, b := range byType {
		b.Rate = ratePercent(b.Occupied, b.Total)
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RoomType < out[j].RoomType })
	return out
}

// OccupancyTrend serie diaria: para cada día d de la ventana cuenta las reservas en
// checked_in con CheckIn <= d < CheckOut. La tasa se acota a 100 y es 0 sin habitaciones.
func OccupancyTrend(totalRooms int, reservations []entity.Reservation, w DateWindow) []TrendPoint {
	days := w.EachDay()
	out := make([]TrendPoint, 0, len(days))
	for _, d := range days {
		occupied := 0
		for _, r := range reservations {
			if r.Status == entity.ReservationCheckedIn && r.OccupiesDay(d) {
				occupied++
			}
		}
		out = append(out, TrendPoint{
			Date:     d.Format(dateLayout),
			Occupied: occupied,
			Rate:     ratePercent(occupied, totalRooms),
		})
	}
	return out
}

// TrendStatistics promedio, máximo y mínimo de la serie.
func TrendStatistics(points []TrendPoint) TrendStats {
	if len(points) == 0 {
		return TrendStats{Avg: decimal.Zero, Max: decimal.Zero, Min: decimal.Zero}
	}
	sum := decimal.Zero
	maxRate, minRate := points[0].Rate, points[0].Rate
	for _, p := range points {
		sum = sum.Add(p.Rate)
		if p.Rate.GreaterThan(maxRate) {
			maxRate = p.Rate
		}
		if p.Rate.LessThan(minRate) {
			minRate = p.Rate
		}
	}
	return TrendStats{
		Avg: SafeRatio(sum, decimal.NewFromInt(int64(len(points)))).Round(1),
		Max: maxRate.Round(1),
		Min: minRate.Round(1),
	}
}
