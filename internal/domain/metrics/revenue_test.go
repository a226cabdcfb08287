package metrics_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/Leonardo2020-col/Hotel-management-demo-V2-sub002/internal/domain/entity"
	"github.com/Leonardo2020-col/Hotel-management-demo-V2-sub002/internal/domain/metrics"
)

var buckets = metrics.RevenueBuckets{Rooms: "Habitaciones", Store: "Tienda/Snacks"}

func paid(id, roomID, total, extras, rate string) entity.Reservation {
	r := stay(id, "g-"+id, day(2025, time.June, 1), day(2025, time.June, 4), entity.ReservationCheckedOut)
	r.RoomID = roomID
	r.TotalAmount = dec(total)
	r.ExtrasAmount = dec(extras)
	r.Rate = dec(rate)
	return r
}

func TestComputeRevenue_EstadiaUnica(t *testing.T) {
	s := metrics.ComputeRevenue([]entity.Reservation{paid("r1", "101", "300", "0", "100")}, nil, dec("50"), buckets)

	assertDec(t, "300", s.Total)
	assertDec(t, "100", s.ADR)
	assertDec(t, "50", s.RevPAR)
	assert.Equal(t, 1, s.CompletedCount)
	assert.True(t, s.GrowthPercent.IsZero(), "sin período anterior el crecimiento es 0")
}

func TestComputeRevenue_SinReservas(t *testing.T) {
	s := metrics.ComputeRevenue(nil, nil, dec("75"), buckets)

	assert.True(t, s.Total.IsZero())
	assert.True(t, s.ADR.IsZero())
	assert.True(t, s.RevPAR.IsZero())
	assert.True(t, s.GrowthPercent.IsZero())
	for _, c := range s.ByCategory {
		assert.Zero(t, c.Percentage)
	}
	assert.NotNil(t, s.ByRoomType)
}

func TestComputeRevenue_CrecimientoRespectoAlAnterior(t *testing.T) {
	current := []entity.Reservation{paid("a", "101", "100", "0", "100"), paid("b", "101", "50", "0", "50")}
	prior := []entity.Reservation{paid("c", "101", "100", "0", "100")}

	s := metrics.ComputeRevenue(current, prior, decimal.Zero, buckets)

	assertDec(t, "100", s.PriorTotal)
	assertDec(t, "50", s.GrowthPercent)
	assertDec(t, "75", s.ADR)
}

func TestComputeRevenue_ConservacionPorCategoria(t *testing.T) {
	completed := []entity.Reservation{
		paid("a", "101", "200", "30", "100"),
		paid("b", "102", "100", "20", "80"),
		paid("c", "103", "33.33", "0", "33.33"),
	}

	s := metrics.ComputeRevenue(completed, nil, decimal.Zero, buckets)

	sum := decimal.Zero
	pct := 0
	for _, c := range s.ByCategory {
		sum = sum.Add(c.Amount)
		pct += c.Percentage
	}
	assert.True(t, sum.Equal(s.Total), "suma %s != total %s", sum, s.Total)
	assert.Equal(t, 100, pct)

	if assert.Len(t, s.ByCategory, 2) {
		assert.Equal(t, "Habitaciones", s.ByCategory[0].Name)
		assertDec(t, "283.33", s.ByCategory[0].Amount)
		assert.Equal(t, "Tienda/Snacks", s.ByCategory[1].Name)
		assert.Equal(t, 2, s.ByCategory[1].Count)
	}
}

func TestRevenueByRoomType(t *testing.T) {
	rooms := []entity.Room{room("101", "Doble", entity.RoomAvailable), room("102", "Suite", entity.RoomAvailable)}
	completed := []entity.Reservation{
		paid("a", "101", "100", "0", "100"),
		paid("b", "102", "300", "0", "300"),
		paid("c", "999", "100", "0", "100"),
	}

	shares := metrics.RevenueByRoomType(completed, rooms, "Estándar")

	if assert.Len(t, shares, 3) {
		assert.Equal(t, "Suite", shares[0].Name)
		assert.Equal(t, 60, shares[0].Percentage)
		// empate de montos: orden alfabético
		assert.Equal(t, "Doble", shares[1].Name)
		assert.Equal(t, "Estándar", shares[2].Name)
		assert.Equal(t, 100, shares[0].Percentage+shares[1].Percentage+shares[2].Percentage)
	}
}
