package pdf

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer formatea con separador de miles "." y decimal ",".
var printer = message.NewPrinter(language.Spanish)

// formatMoney ej: 12345.5 → "$12.345,50".
func formatMoney(d decimal.Decimal) string {
	return "$" + formatNumber(d, 2)
}

// formatPercent ej: 33.3 → "33,3%".
func formatPercent(d decimal.Decimal) string {
	return formatNumber(d, 1) + "%"
}

func formatNumber(d decimal.Decimal, places int32) string {
	f := d.Round(places).InexactFloat64()
	switch places {
	case 0:
		return printer.Sprintf("%.0f", f)
	case 1:
		return printer.Sprintf("%.1f", f)
	default:
		return printer.Sprintf("%.2f", f)
	}
}
