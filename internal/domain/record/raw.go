// Package record es la única frontera de normalización entre el almacén de datos y el
// motor de reportes: traduce registros crudos con nombres de campo heterogéneos
// (snake_case de PostgreSQL, camelCase de exportaciones JSON) a las entidades canónicas.
package record

import (
	"encoding/json"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

// Raw registro crudo tal como lo entrega la fuente (fila de PostgreSQL, objeto JSON...).
type Raw map[string]any

// Kind tipo de entidad de un registro crudo.
type Kind string

const (
	KindRoom          Kind = "room"
	KindReservation   Kind = "reservation"
	KindGuest         Kind = "guest"
	KindInventoryItem Kind = "inventory_item"
)

// lookup devuelve el primer alias definido (presente y no nulo), respetando el orden dado.
func (r Raw) lookup(aliases ...string) (any, bool) {
	for _, a := range aliases {
		if v, ok := r[a]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

func (r Raw) str(aliases ...string) string {
	v, ok := r.lookup(aliases...)
	if !ok {
		return ""
	}
	if b, ok := v.([16]byte); ok {
		return uuid.UUID(b).String()
	}
	return strings.TrimSpace(cast.ToString(v))
}

func (r Raw) integer(aliases ...string) (int, bool) {
	v, ok := r.lookup(aliases...)
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case decimal.Decimal:
		return int(n.IntPart()), true
	case json.Number:
		if d, err := decimal.NewFromString(n.String()); err == nil {
			return int(d.Round(0).IntPart()), true
		}
		return 0, false
	case float64:
		return int(math.Round(n)), true
	case string:
		if d, err := decimal.NewFromString(strings.TrimSpace(n)); err == nil {
			return int(d.Round(0).IntPart()), true
		}
		return 0, false
	}
	i, err := cast.ToIntE(v)
	if err != nil {
		return 0, false
	}
	return i, true
}

func (r Raw) money(aliases ...string) decimal.Decimal {
	v, ok := r.lookup(aliases...)
	if !ok {
		return decimal.Zero
	}
	d := toDecimal(v)
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

func (r Raw) date(loc *time.Location, aliases ...string) (time.Time, bool) {
	v, ok := r.lookup(aliases...)
	if !ok {
		return time.Time{}, false
	}
	t, err := cast.ToTimeInDefaultLocationE(v, loc)
	if err != nil || t.IsZero() {
		return time.Time{}, false
	}
	return DateOf(t, loc), true
}

// DateOf trunca t a la medianoche de su fecha de calendario, en loc.
// Se conserva la fecha tal como viene escrita (columnas DATE llegan en UTC).
func DateOf(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

func toDecimal(v any) decimal.Decimal {
	switch n := v.(type) {
	case decimal.Decimal:
		return n
	case *decimal.Decimal:
		if n == nil {
			return decimal.Zero
		}
		return *n
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(n))
		if err != nil {
			return decimal.Zero
		}
		return d
	case json.Number:
		d, err := decimal.NewFromString(n.String())
		if err != nil {
			return decimal.Zero
		}
		return d
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return decimal.Zero
		}
		return decimal.NewFromFloat(n)
	case float32:
		return toDecimal(float64(n))
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return decimal.NewFromInt(cast.ToInt64(n))
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return decimal.Zero
	}
	return toDecimal(f)
}

func normalizeToken(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("-", "_", " ", "_").Replace(s)
}
