package metrics_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Leonardo2020-col/Hotel-management-demo-V2-sub002/internal/domain/entity"
	"github.com/Leonardo2020-col/Hotel-management-demo-V2-sub002/internal/domain/metrics"
	"github.com/Leonardo2020-col/Hotel-management-demo-V2-sub002/internal/domain/record"
)

func stay(id, guest string, in, out time.Time, status entity.ReservationStatus) entity.Reservation {
	nights := int(out.Sub(in).Hours() / 24)
	if nights < 1 {
		nights = 1
	}
	return entity.Reservation{
		ID:       id,
		GuestID:  guest,
		RoomID:   "room-1",
		CheckIn:  in,
		CheckOut: out,
		Status:   status,
		Nights:   nights,
	}
}

func TestFilterByWindow_LimiteDeSalidaExclusivo(t *testing.T) {
	r := stay("r1", "g1", day(2025, time.January, 10), day(2025, time.January, 15), entity.ReservationCheckedOut)

	overlapping := metrics.FilterByWindow([]entity.Reservation{r},
		metrics.DateWindow{Start: day(2025, time.January, 14), End: day(2025, time.January, 20)})
	assert.Len(t, overlapping.Overlapping, 1)
	assert.Len(t, overlapping.Completed, 1)

	boundary := metrics.FilterByWindow([]entity.Reservation{r},
		metrics.DateWindow{Start: day(2025, time.January, 15), End: day(2025, time.January, 20)})
	assert.Empty(t, boundary.Overlapping)
	assert.NotNil(t, boundary.Overlapping)
	assert.Empty(t, boundary.Completed)
}

func TestFilterByWindow_VentanaDeUnDiaIncluyeLaNoche(t *testing.T) {
	r := stay("r1", "g1", day(2025, time.January, 10), day(2025, time.January, 11), entity.ReservationCheckedIn)

	sel := metrics.FilterByWindow([]entity.Reservation{r},
		metrics.DateWindow{Start: day(2025, time.January, 10), End: day(2025, time.January, 10)})
	assert.Len(t, sel.Overlapping, 1)
	assert.Empty(t, sel.Completed)
}

func TestFilterByWindow_ConservaOrdenYSeparaCompletadas(t *testing.T) {
	w := metrics.DateWindow{Start: day(2025, time.March, 1), End: day(2025, time.March, 31)}
	input := []entity.Reservation{
		stay("c", "g3", day(2025, time.March, 20), day(2025, time.March, 22), entity.ReservationCheckedOut),
		stay("fuera", "g9", day(2025, time.February, 1), day(2025, time.February, 3), entity.ReservationCheckedOut),
		stay("a", "g1", day(2025, time.February, 27), day(2025, time.March, 2), entity.ReservationCancelled),
		stay("b", "g2", day(2025, time.March, 30), day(2025, time.April, 4), entity.ReservationCheckedOut),
	}

	sel := metrics.FilterByWindow(input, w)

	ids := func(rs []entity.Reservation) []string {
		out := make([]string, 0, len(rs))
		for _, r := range rs {
			out = append(out, r.ID)
		}
		return out
	}
	assert.Equal(t, []string{"c", "a", "b"}, ids(sel.Overlapping))
	assert.Equal(t, []string{"c", "b"}, ids(sel.Completed))
	assert.Equal(t, sel, metrics.FilterByWindow(input, w), "resultado determinista")
}

func TestFilterByWindow_EntradaElUltimoDiaSeIncluye(t *testing.T) {
	w := metrics.DateWindow{Start: day(2025, time.January, 10), End: day(2025, time.January, 15)}

	lastDay := stay("r1", "g1", day(2025, time.January, 15), day(2025, time.January, 17), entity.ReservationConfirmed)
	nextDay := stay("r2", "g2", day(2025, time.January, 16), day(2025, time.January, 18), entity.ReservationConfirmed)

	sel := metrics.FilterByWindow([]entity.Reservation{lastDay, nextDay}, w)
	require.Len(t, sel.Overlapping, 1, "la noche del 15 pertenece a la ventana; la del 16 no")
	assert.Equal(t, "r1", sel.Overlapping[0].ID)
}

func TestFilterByWindow_ReservaSinEntradaNoInvadeOtrasVentanas(t *testing.T) {
	n := record.NewNormalizer(time.UTC)
	r := n.Reservation(record.Raw{"id": "r1", "guestId": "g1", "checkOut": "2025-06-04", "status": "checked_out", "totalAmount": 300})

	for _, w := range []metrics.DateWindow{
		{Start: day(2024, time.January, 1), End: day(2024, time.January, 31)},
		{Start: day(1999, time.January, 1), End: day(1999, time.January, 31)},
	} {
		sel := metrics.FilterByWindow([]entity.Reservation{r}, w)
		assert.Empty(t, sel.Overlapping)
		assert.Empty(t, sel.Completed)
	}

	june := metrics.FilterByWindow([]entity.Reservation{r},
		metrics.DateWindow{Start: day(2025, time.June, 1), End: day(2025, time.June, 30)})
	assert.Len(t, june.Completed, 1)
}

func TestFilterByWindow_ReservaSinFechasNoCaeEnNingunaVentana(t *testing.T) {
	r := record.NewNormalizer(time.UTC).Reservation(record.Raw{"id": "r1", "status": "checked_out", "totalAmount": 300})

	sel := metrics.FilterByWindow([]entity.Reservation{r},
		metrics.DateWindow{Start: day(1900, time.January, 1), End: day(2100, time.December, 31)})
	assert.Empty(t, sel.Overlapping)
}
