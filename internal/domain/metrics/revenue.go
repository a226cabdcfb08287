package metrics

import (
	"github.com/shopspring/decimal"

	"github.com/Leonardo2020-col/Hotel-management-demo-V2-sub002/internal/domain/entity"
)

// RevenueSummary resultado del Revenue & Rate Calculator.
type RevenueSummary struct {
	Total          decimal.Decimal `json:"total"`
	PriorTotal     decimal.Decimal `json:"prior_total"`
	GrowthPercent  decimal.Decimal `json:"growth_percent"`
	ADR            decimal.Decimal `json:"adr"`
	RevPAR         decimal.Decimal `json:"revpar"`
	CompletedCount int             `json:"completed_count"`
	ByCategory     []CategoryShare `json:"by_category"`
	ByRoomType     []CategoryShare `json:"by_room_type"`
	Degraded       bool            `json:"degraded"`
}

// RevenueBuckets nombres de los dos grupos de ingresos.
type RevenueBuckets struct {
	Rooms string
	Store string
}

// ComputeRevenue calcula ingresos realizados, ADR, RevPAR y crecimiento.
// occupancyRate es la tasa actual del Occupancy Calculator (habitaciones ocupadas sobre
// el total al momento del cálculo), no la de la ventana: RevPAR de una ventana pasada se
// calcula con la ocupación de hoy.
func ComputeRevenue(
	completed, priorCompleted []entity.Reservation,
	occupancyRate decimal.Decimal,
	buckets RevenueBuckets,
) RevenueSummary {
	total, extras, rates := decimal.Zero, decimal.Zero, decimal.Zero
	for _, r := range completed {
		total = total.Add(r.TotalAmount)
		extras = extras.Add(r.ExtrasAmount)
		rates = rates.Add(r.Rate)
	}
	priorTotal := decimal.Zero
	for _, r := range priorCompleted {
		priorTotal = priorTotal.Add(r.TotalAmount)
	}

	adr := SafeRatio(rates, decimal.NewFromInt(int64(len(completed)))).Round(2)
	revpar := adr.Mul(occupancyRate).Div(hundred).Round(2)

	storeCount := 0
	for _, r := range completed {
		if r.ExtrasAmount.IsPositive() {
			storeCount++
		}
	}
	byCategory := buildShares(
		[]string{buckets.Rooms, buckets.Store},
		[]decimal.Decimal{total.Sub(extras), extras},
		[]int{len(completed), storeCount},
	)

	return RevenueSummary{
		Total:          total.Round(2),
		PriorTotal:     priorTotal.Round(2),
		GrowthPercent:  Growth(total, priorTotal),
		ADR:            adr,
		RevPAR:         revpar,
		CompletedCount: len(completed),
		ByCategory:     byCategory,
		ByRoomType:     []CategoryShare{},
	}
}

// Growth variación porcentual (current - prior) / prior × 100, redondeada a 1 decimal.
// 0 cuando prior es 0.
func Growth(current, prior decimal.Decimal) decimal.Decimal {
	return Percent(current.Sub(prior), prior)
}

// RevenueByRoomType reparte los ingresos de las reservas completadas por tipo de
// habitación. Las reservas cuya habitación no está en rooms se agrupan en defaultType.
func RevenueByRoomType(completed []entity.Reservation, rooms []entity.Room, defaultType string) []CategoryShare {
	typeOf := make(map[string]string, len(rooms))
	for _, r := range rooms {
		typeOf[r.ID] = r.RoomType
	}
	g := newGroupedTotals()
	for _, r := range completed {
		t, ok := typeOf[r.RoomID]
		if !ok {
			t = defaultType
		}
		g.add(t, r.TotalAmount)
	}
	return g.shares()
}
