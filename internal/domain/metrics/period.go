package metrics

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/Leonardo2020-col/Hotel-management-demo-V2-sub002/internal/domain/record"
)

// PeriodName nombre canónico de un período.
type PeriodName string

const (
	PeriodToday       PeriodName = "today"
	PeriodYesterday   PeriodName = "yesterday"
	PeriodThisWeek    PeriodName = "this_week"
	PeriodLastWeek    PeriodName = "last_week"
	PeriodThisMonth   PeriodName = "this_month"
	PeriodLastMonth   PeriodName = "last_month"
	PeriodThisQuarter PeriodName = "this_quarter"
	PeriodThisYear    PeriodName = "this_year"
	PeriodCustom      PeriodName = "custom"
)

const dateLayout = "2006-01-02"

// DateWindow ventana de fechas con ambos extremos inclusivos (días de calendario).
// Siempre Start <= End.
type DateWindow struct {
	Start time.Time
	End   time.Time
}

// Days número de días de calendario de la ventana (mínimo 1).
func (w DateWindow) Days() int {
	return int(math.Round(w.End.Sub(w.Start).Hours()/24)) + 1
}

// Contains indica si el día d cae dentro de la ventana.
func (w DateWindow) Contains(d time.Time) bool {
	return !d.Before(w.Start) && !d.After(w.End)
}

// Overlaps indica si una estadía [checkIn, checkOut) se cruza con la ventana:
// checkIn < fin exclusivo AND checkOut > inicio. El fin exclusivo es el día siguiente a End,
// así una ventana de un solo día incluye las estadías que ocupan esa noche y la salida
// sigue siendo exclusiva.
func (w DateWindow) Overlaps(checkIn, checkOut time.Time) bool {
	return checkIn.Before(w.End.AddDate(0, 0, 1)) && checkOut.After(w.Start)
}

// Prior ventana inmediatamente anterior de igual longitud, sin hueco ni solapamiento.
func (w DateWindow) Prior() DateWindow {
	n := w.Days()
	return DateWindow{
		Start: w.Start.AddDate(0, 0, -n),
		End:   w.Start.AddDate(0, 0, -1),
	}
}

// EachDay devuelve cada día de la ventana en orden.
func (w DateWindow) EachDay() []time.Time {
	days := make([]time.Time, 0, w.Days())
	for d := w.Start; !d.After(w.End); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// MarshalJSON serializa como {"start":"YYYY-MM-DD","end":"YYYY-MM-DD"}.
func (w DateWindow) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf(`{"start":%q,"end":%q}`, w.Start.Format(dateLayout), w.End.Format(dateLayout))), nil
}

// PeriodRequest lo que pide el llamador: un nombre o límites explícitos (custom).
type PeriodRequest struct {
	Name  string
	Start time.Time
	End   time.Time
}

func (r PeriodRequest) hasBounds() bool {
	return !r.Start.IsZero() && !r.End.IsZero()
}

// Resolution resultado del Period Resolver.
type Resolution struct {
	Name    PeriodName `json:"name"`
	Label   string     `json:"label"`
	Current DateWindow `json:"current"`
	Prior   DateWindow `json:"prior"`
	Warning string     `json:"warning,omitempty"`
}

// Resolve traduce un período con nombre (o límites explícitos) a las ventanas actual y
// anterior, relativas a now. Un nombre desconocido no es un error: se usa el período por
// defecto de la tabla y se devuelve una advertencia. Los límites invertidos se corrigen con
// advertencia; el caso de uso los rechaza antes con ErrInvalidPeriod.
func (c Config) Resolve(req PeriodRequest, now time.Time) Resolution {
	loc := c.location()
	today := record.DateOf(now.In(loc), loc)

	name, known := c.lookupPeriod(req.Name)
	var warning string
	switch {
	case strings.TrimSpace(req.Name) == "" && req.hasBounds():
		name = PeriodCustom
	case strings.TrimSpace(req.Name) == "":
		name = c.defaultPeriod()
	case !known:
		name = c.defaultPeriod()
		warning = fmt.Sprintf("período desconocido %q; se usa %q", req.Name, c.label(name))
	}

	if name == PeriodCustom && !req.hasBounds() {
		name = c.defaultPeriod()
		warning = fmt.Sprintf("el período personalizado requiere fecha de inicio y fin; se usa %q", c.label(name))
	}

	var current DateWindow
	if name == PeriodCustom {
		current = DateWindow{Start: record.DateOf(req.Start, loc), End: record.DateOf(req.End, loc)}
		if current.Start.After(current.End) {
			current.Start, current.End = current.End, current.Start
			warning = "la fecha de inicio era posterior a la de fin; se invirtieron"
		}
	} else {
		current = namedWindow(name, today)
	}

	return Resolution{
		Name:    name,
		Label:   windowLabel(c.label(name), current),
		Current: current,
		Prior:   current.Prior(),
		Warning: warning,
	}
}

func (c Config) lookupPeriod(raw string) (PeriodName, bool) {
	token := strings.NewReplacer("-", "_", " ", "_").Replace(strings.ToLower(strings.TrimSpace(raw)))
	for _, p := range c.Periods {
		if string(p.Name) == token {
			return p.Name, true
		}
		for _, a := range p.Aliases {
			if a == token {
				return p.Name, true
			}
		}
	}
	return "", false
}

func (c Config) defaultPeriod() PeriodName {
	if _, ok := c.spec(c.DefaultPeriod); ok && c.DefaultPeriod != PeriodCustom {
		return c.DefaultPeriod
	}
	return PeriodThisMonth
}

func (c Config) label(name PeriodName) string {
	if p, ok := c.spec(name); ok && p.Label != "" {
		return p.Label
	}
	return string(name)
}

// namedWindow calcula la ventana de un período con nombre. Los períodos "en curso"
// (semana, mes, trimestre, año) van del primer día hasta hoy inclusive.
func namedWindow(name PeriodName, today time.Time) DateWindow {
	loc := today.Location()
	y, m, _ := today.Date()
	switch name {
	case PeriodToday:
		return DateWindow{Start: today, End: today}
	case PeriodYesterday:
		d := today.AddDate(0, 0, -1)
		return DateWindow{Start: d, End: d}
	case PeriodThisWeek:
		return DateWindow{Start: weekStart(today), End: today}
	case PeriodLastWeek:
		start := weekStart(today).AddDate(0, 0, -7)
		return DateWindow{Start: start, End: start.AddDate(0, 0, 6)}
	case PeriodLastMonth:
		first := time.Date(y, m, 1, 0, 0, 0, 0, loc)
		return DateWindow{Start: first.AddDate(0, -1, 0), End: first.AddDate(0, 0, -1)}
	case PeriodThisQuarter:
		qm := time.Month((int(m)-1)/3*3 + 1)
		return DateWindow{Start: time.Date(y, qm, 1, 0, 0, 0, 0, loc), End: today}
	case PeriodThisYear:
		return DateWindow{Start: time.Date(y, time.January, 1, 0, 0, 0, 0, loc), End: today}
	default:
		return DateWindow{Start: time.Date(y, m, 1, 0, 0, 0, 0, loc), End: today}
	}
}

// weekStart lunes de la semana de d.
func weekStart(d time.Time) time.Time {
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}

func windowLabel(name string, w DateWindow) string {
	if w.Start.Equal(w.End) {
		return fmt.Sprintf("%s (%s)", name, w.Start.Format("02/01/2006"))
	}
	return fmt.Sprintf("%s (%s - %s)", name, w.Start.Format("02/01/2006"), w.End.Format("02/01/2006"))
}
