package metrics_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Leonardo2020-col/Hotel-management-demo-V2-sub002/internal/domain/entity"
	"github.com/Leonardo2020-col/Hotel-management-demo-V2-sub002/internal/domain/metrics"
)

func room(id, roomType string, status entity.RoomStatus) entity.Room {
	return entity.Room{ID: id, Number: id, RoomType: roomType, Status: status}
}

func TestComputeOccupancy_ConteoPorEstado(t *testing.T) {
	rooms := []entity.Room{
		room("101", "Doble", entity.RoomOccupied),
		room("102", "Doble", entity.RoomOccupied),
		room("103", "Simple", entity.RoomAvailable),
		room("104", "Simple", entity.RoomCleaning),
		room("105", "Suite", entity.RoomMaintenance),
		room("106", "Suite", entity.RoomOutOfOrder),
	}

	s := metrics.ComputeOccupancy(rooms, nil, nil)

	assert.Equal(t, 6, s.Total)
	assert.Equal(t, 2, s.Occupied)
	assert.Equal(t, 1, s.Available)
	assert.Equal(t, 1, s.Cleaning)
	assert.Equal(t, 2, s.Maintenance)
	assertDec(t, "33.3", s.Rate)
	assert.Empty(t, s.Trend)

	if assert.Len(t, s.ByRoomType, 3) {
		assert.Equal(t, "Doble", s.ByRoomType[0].RoomType)
		assertDec(t, "100", s.ByRoomType[0].Rate)
		assert.Equal(t, "Simple", s.ByRoomType[1].RoomType)
		assert.Equal(t, 1, s.ByRoomType[1].Available)
		assert.Equal(t, "Suite", s.ByRoomType[2].RoomType)
		assert.True(t, s.ByRoomType[2].Rate.IsZero())
	}
}

func TestComputeOccupancy_HotelVacio(t *testing.T) {
	w := metrics.DateWindow{Start: day(2025, time.June, 1), End: day(2025, time.June, 3)}
	reservations := []entity.Reservation{
		stay("r1", "g1", day(2025, time.June, 1), day(2025, time.June, 3), entity.ReservationCheckedIn),
	}

	s := metrics.ComputeOccupancy(nil, reservations, &w)

	assert.Zero(t, s.Total)
	assert.True(t, s.Rate.IsZero())
	assert.NotNil(t, s.ByRoomType)
	for _, p := range s.Trend {
		assert.True(t, p.Rate.IsZero(), "día %s", p.Date)
	}
}

func TestComputeOccupancy_TendenciaDiaria(t *testing.T) {
	w := metrics.DateWindow{Start: day(2025, time.June, 1), End: day(2025, time.June, 3)}
	rooms := []entity.Room{room("101", "Doble", entity.RoomOccupied), room("102", "Doble", entity.RoomAvailable)}
	reservations := []entity.Reservation{
		stay("r1", "g1", day(2025, time.June, 1), day(2025, time.June, 3), entity.ReservationCheckedIn),
		// las completadas no cuentan para la serie
		stay("r2", "g2", day(2025, time.June, 1), day(2025, time.June, 5), entity.ReservationCheckedOut),
	}

	s := metrics.ComputeOccupancy(rooms, reservations, &w)

	if assert.Len(t, s.Trend, 3) {
		assert.Equal(t, "2025-06-01", s.Trend[0].Date)
		assert.Equal(t, 1, s.Trend[0].Occupied)
		assertDec(t, "50", s.Trend[0].Rate)
		assertDec(t, "50", s.Trend[1].Rate)
		assert.Equal(t, 0, s.Trend[2].Occupied, "el día de salida no se ocupa")
	}
	assertDec(t, "33.3", s.TrendStats.Avg)
	assertDec(t, "50", s.TrendStats.Max)
	assertDec(t, "0", s.TrendStats.Min)
}

func TestComputeOccupancy_TasaAcotadaA100(t *testing.T) {
	w := metrics.DateWindow{Start: day(2025, time.June, 1), End: day(2025, time.June, 1)}
	rooms := []entity.Room{room("101", "Doble", entity.RoomOccupied)}
	var reservations []entity.Reservation
	for _, id := range []string{"a", "b", "c"} {
		reservations = append(reservations, stay(id, id, day(2025, time.June, 1), day(2025, time.June, 2), entity.ReservationCheckedIn))
	}

	s := metrics.ComputeOccupancy(rooms, reservations, &w)

	for _, p := range s.Trend {
		assert.False(t, p.Rate.GreaterThan(dec("100")))
		assert.False(t, p.Rate.IsNegative())
	}
	assert.False(t, s.Rate.GreaterThan(dec("100")))
}

func TestTrendStatistics_SerieVacia(t *testing.T) {
	st := metrics.TrendStatistics(nil)
	assert.True(t, st.Avg.IsZero())
	assert.True(t, st.Max.IsZero())
	assert.True(t, st.Min.IsZero())
}
