package utils

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var idPrinter = message.NewPrinter(language.Indonesian)

// FormatNumber renders v with Indonesian grouping ("1.234.567,5").
func FormatNumber(v float64) string {
	return idPrinter.Sprint(number.Decimal(v, number.MaxFractionDigits(2)))
}

// FormatRupiah renders v as a Rupiah amount, e.g. "Rp1.050".
func FormatRupiah(v float64) string {
	return "Rp" + FormatNumber(v)
}

// Fixed2 renders v with exactly two decimals ("1050.00").
func Fixed2(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

// Round2 rounds v to two decimals.
func Round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

// FormatDuration renders minutes as "45m", "2h" or "2h 5m".
func FormatDuration(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	h, m := minutes/60, minutes%60
	if m == 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dh %dm", h, m)
}
