package metrics

import (
	"sort"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// SafeRatio num / den; 0 cuando den es 0. Todos los cocientes del motor pasan por aquí,
// así ningún resultado puede ser NaN ni infinito.
func SafeRatio(num, den decimal.Decimal) decimal.Decimal {
	if den.IsZero() {
		return decimal.Zero
	}
	return num.Div(den)
}

// Percent part / whole × 100 redondeado a 1 decimal; 0 cuando whole es 0.
func Percent(part, whole decimal.Decimal) decimal.Decimal {
	return SafeRatio(part, whole).Mul(hundred).Round(1)
}

// ratePercent porcentaje de conteos acotado a [0, 100].
func ratePercent(part, whole int) decimal.Decimal {
	if part > whole {
		part = whole
	}
	return Percent(decimal.NewFromInt(int64(part)), decimal.NewFromInt(int64(whole)))
}

// LargestRemainder reparte 100 puntos porcentuales enteros entre los montos de forma
// proporcional (método de Hamilton). La suma es exactamente 100 cuando el total es
// positivo; con total 0 todos los porcentajes son 0. Los empates en la parte fraccionaria
// favorecen al monto mayor y luego al primero en orden.
func LargestRemainder(amounts []decimal.Decimal) []int {
	out := make([]int, len(amounts))
	total := decimal.Zero
	for _, a := range amounts {
		if a.IsPositive() {
			total = total.Add(a)
		}
	}
	if !total.IsPositive() {
		return out
	}

	type share struct {
		idx  int
		frac decimal.Decimal
		amt  decimal.Decimal
	}
	shares := make([]share, 0, len(amounts))
	assigned := 0
	for i, a := range amounts {
		if !a.IsPositive() {
			continue
		}
		quota := a.Mul(hundred).Div(total)
		floor := quota.Floor()
		out[i] = int(floor.IntPart())
		assigned += out[i]
		shares = append(shares, share{idx: i, frac: quota.Sub(floor), amt: a})
	}

	sort.SliceStable(shares, func(i, j int) bool {
		if !shares[i].frac.Equal(shares[j].frac) {
			return shares[i].frac.GreaterThan(shares[j].frac)
		}
		if !shares[i].amt.Equal(shares[j].amt) {
			return shares[i].amt.GreaterThan(shares[j].amt)
		}
		return shares[i].idx < shares[j].idx
	})
	for k := 0; assigned < 100 && len(shares) > 0; k++ {
		out[shares[k%len(shares)].idx]++
		assigned++
	}
	return out
}

// CategoryShare participación de una categoría dentro de un total.
type CategoryShare struct {
	Name       string          `json:"name"`
	Amount     decimal.Decimal `json:"amount"`
	Count      int             `json:"count"`
	Percentage int             `json:"percentage"`
}

// buildShares arma el desglose por categoría aplicando LargestRemainder sobre los montos.
func buildShares(names []string, amounts []decimal.Decimal, counts []int) []CategoryShare {
	pcts := LargestRemainder(amounts)
	out := make([]CategoryShare, 0, len(names))
	for i, name := range names {
		out = append(out, CategoryShare{
			Name:       name,
			Amount:     amounts[i].Round(2),
			Count:      counts[i],
			Percentage: pcts[i],
		})
	}
	return out
}

// groupedTotals acumula montos por clave conservando el orden de primera aparición.
type groupedTotals struct {
	order   []string
	amounts map[string]decimal.Decimal
	counts  map[string]int
}

func newGroupedTotals() *groupedTotals {
	return &groupedTotals{amounts: map[string]decimal.Decimal{}, counts: map[string]int{}}
}

func (g *groupedTotals) add(key string, amount decimal.Decimal) {
	if _, ok := g.amounts[key]; !ok {
		g.order = append(g.order, key)
		g.amounts[key] = decimal.Zero
	}
	g.amounts[key] = g.amounts[key].Add(amount)
	g.counts[key]++
}

// shares devuelve el desglose ordenado por monto descendente y nombre.
func (g *groupedTotals) shares() []CategoryShare {
	keys := append([]string(nil), g.order...)
	sort.SliceStable(keys, func(i, j int) bool {
		a, b := g.amounts[keys[i]], g.amounts[keys[j]]
		if !a.Equal(b) {
			return a.GreaterThan(b)
		}
		return keys[i] < keys[j]
	})
	amounts := make([]decimal.Decimal, len(keys))
	counts := make([]int, len(keys))
	for i, k := range keys {
		amounts[i] = g.amounts[k]
		counts[i] = g.counts[k]
	}
	return buildShares(keys, amounts, counts)
}
