package metrics_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Leonardo2020-col/Hotel-management-demo-V2-sub002/internal/domain/metrics"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDec(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	assert.Truef(t, dec(want).Equal(got), "esperado %s, obtenido %s %v", want, got.String(), msgAndArgs)
}

// ──────────────────────────────────────────────────────────────────────────────
// Períodos con nombre
// ──────────────────────────────────────────────────────────────────────────────

func TestResolve_EsteMesHastaHoy(t *testing.T) {
	cfg := metrics.DefaultConfig()
	now := time.Date(2025, time.June, 15, 10, 30, 0, 0, time.UTC)

	res := cfg.Resolve(metrics.PeriodRequest{Name: "this_month"}, now)

	assert.Equal(t, metrics.PeriodThisMonth, res.Name)
	assert.Equal(t, day(2025, time.June, 1), res.Current.Start)
	assert.Equal(t, day(2025, time.June, 15), res.Current.End)
	assert.Equal(t, day(2025, time.May, 17), res.Prior.Start)
	assert.Equal(t, day(2025, time.May, 31), res.Prior.End)
	assert.Equal(t, "Este mes (01/06/2025 - 15/06/2025)", res.Label)
	assert.Empty(t, res.Warning)
}

func TestResolve_HoyYVentanaAnteriorDeUnDia(t *testing.T) {
	cfg := metrics.DefaultConfig()
	res := cfg.Resolve(metrics.PeriodRequest{Name: "today"}, time.Date(2025, time.June, 5, 23, 0, 0, 0, time.UTC))

	assert.Equal(t, day(2025, time.June, 5), res.Current.Start)
	assert.Equal(t, day(2025, time.June, 5), res.Current.End)
	assert.Equal(t, 1, res.Current.Days())
	assert.Equal(t, day(2025, time.June, 4), res.Prior.Start)
	assert.Equal(t, day(2025, time.June, 4), res.Prior.End)
	assert.Equal(t, "Hoy (05/06/2025)", res.Label)
}

func TestResolve_TablaDePeriodos(t *testing.T) {
	cfg := metrics.DefaultConfig()
	// miércoles
	now := day(2025, time.June, 4)

	tests := []struct {
		name      string
		period    string
		wantStart time.Time
		wantEnd   time.Time
	}{
		{"ayer", "yesterday", day(2025, time.June, 3), day(2025, time.June, 3)},
		{"semana en curso desde el lunes", "this_week", day(2025, time.June, 2), day(2025, time.June, 4)},
		{"semana pasada completa", "last_week", day(2025, time.May, 26), day(2025, time.June, 1)},
		{"mes pasado", "last_month", day(2025, time.May, 1), day(2025, time.May, 31)},
		{"trimestre", "this_quarter", day(2025, time.April, 1), day(2025, time.June, 4)},
		{"año", "this_year", day(2025, time.January, 1), day(2025, time.June, 4)},
		{"alias en español", "mes_pasado", day(2025, time.May, 1), day(2025, time.May, 31)},
		{"mayúsculas y guiones", "Last-Week", day(2025, time.May, 26), day(2025, time.June, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := cfg.Resolve(metrics.PeriodRequest{Name: tt.period}, now)
			assert.Equal(t, tt.wantStart, res.Current.Start)
			assert.Equal(t, tt.wantEnd, res.Current.End)
			assert.Empty(t, res.Warning)
		})
	}
}

func TestResolve_MesPasadoEnFebrero(t *testing.T) {
	res := metrics.DefaultConfig().Resolve(metrics.PeriodRequest{Name: "last_month"}, day(2025, time.March, 10))
	assert.Equal(t, day(2025, time.February, 1), res.Current.Start)
	assert.Equal(t, day(2025, time.February, 28), res.Current.End)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fallbacks y rangos explícitos
// ──────────────────────────────────────────────────────────────────────────────

func TestResolve_NombreDesconocidoUsaEsteMesConAdvertencia(t *testing.T) {
	res := metrics.DefaultConfig().Resolve(metrics.PeriodRequest{Name: "quincena"}, day(2025, time.June, 15))

	assert.Equal(t, metrics.PeriodThisMonth, res.Name)
	assert.Equal(t, day(2025, time.June, 1), res.Current.Start)
	assert.Contains(t, res.Warning, "quincena")
}

func TestResolve_PersonalizadoConLimites(t *testing.T) {
	res := metrics.DefaultConfig().Resolve(metrics.PeriodRequest{
		Name:  "custom",
		Start: day(2025, time.January, 10),
		End:   day(2025, time.January, 19),
	}, day(2025, time.June, 15))

	assert.Equal(t, metrics.PeriodCustom, res.Name)
	assert.Equal(t, 10, res.Current.Days())
	assert.Equal(t, day(2024, time.December, 31), res.Prior.Start)
	assert.Equal(t, day(2025, time.January, 9), res.Prior.End)
	assert.Empty(t, res.Warning)
}

func TestResolve_SinNombreConLimitesEsPersonalizado(t *testing.T) {
	res := metrics.DefaultConfig().Resolve(metrics.PeriodRequest{
		Start: day(2025, time.January, 1),
		End:   day(2025, time.January, 31),
	}, day(2025, time.June, 15))

	assert.Equal(t, metrics.PeriodCustom, res.Name)
	assert.Equal(t, day(2025, time.January, 31), res.Current.End)
}

func TestResolve_PersonalizadoInvertidoSeCorrige(t *testing.T) {
	res := metrics.DefaultConfig().Resolve(metrics.PeriodRequest{
		Name:  "custom",
		Start: day(2025, time.January, 31),
		End:   day(2025, time.January, 1),
	}, day(2025, time.June, 15))

	assert.Equal(t, day(2025, time.January, 1), res.Current.Start)
	assert.Equal(t, day(2025, time.January, 31), res.Current.End)
	assert.NotEmpty(t, res.Warning)
}

func TestResolve_PersonalizadoSinLimitesUsaDefault(t *testing.T) {
	res := metrics.DefaultConfig().Resolve(metrics.PeriodRequest{Name: "custom"}, day(2025, time.June, 15))

	assert.Equal(t, metrics.PeriodThisMonth, res.Name)
	assert.NotEmpty(t, res.Warning)
}

func TestResolve_RespetaZonaHoraria(t *testing.T) {
	lima, err := time.LoadLocation("America/Lima")
	require.NoError(t, err)
	cfg := metrics.DefaultConfig()
	cfg.Location = lima

	// 02:00 UTC del 1 de julio todavía es 30 de junio en Lima
	res := cfg.Resolve(metrics.PeriodRequest{Name: "today"}, time.Date(2025, time.July, 1, 2, 0, 0, 0, time.UTC))

	y, m, d := res.Current.Start.Date()
	assert.Equal(t, 2025, y)
	assert.Equal(t, time.June, m)
	assert.Equal(t, 30, d)
}

// ──────────────────────────────────────────────────────────────────────────────
// DateWindow
// ──────────────────────────────────────────────────────────────────────────────

func TestDateWindow_PriorSinHuecoNiSolapamiento(t *testing.T) {
	windows := []metrics.DateWindow{
		{Start: day(2025, time.June, 1), End: day(2025, time.June, 1)},
		{Start: day(2025, time.June, 1), End: day(2025, time.June, 30)},
		{Start: day(2025, time.February, 1), End: day(2025, time.March, 31)},
	}
	for _, w := range windows {
		p := w.Prior()
		assert.Equal(t, w.Days(), p.Days())
		assert.Equal(t, w.Start, p.End.AddDate(0, 0, 1))
	}
}

func TestDateWindow_JSON(t *testing.T) {
	w := metrics.DateWindow{Start: day(2025, time.June, 1), End: day(2025, time.June, 30)}
	b, err := w.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"start":"2025-06-01","end":"2025-06-30"}`, string(b))
	assert.Len(t, w.EachDay(), 30)
}
