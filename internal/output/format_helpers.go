package output

import (
	"math"
	"strconv"

	money "github.com/rpgo/hullwhite/pkg/decimal"
	"github.com/shopspring/decimal"
)

// FormatCurrency formats a decimal as USD currency with 2 decimals.
func FormatCurrency(amount decimal.Decimal) string { return money.NewMoneyFromDecimal(amount).Format() }

// FormatRate renders a short rate as a percentage with 3 decimals.
func FormatRate(rate float64) string {
	if math.IsNaN(rate) || math.IsInf(rate, 0) {
		return FormatFloat(rate, 0)
	}
	return strconv.FormatFloat(rate*100, 'f', 3, 64) + "%"
}

// FormatFloat prints v with prec decimals, or +Inf/-Inf/NaN.
func FormatFloat(v float64, prec int) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "+Inf"
	case math.IsInf(v, -1):
		return "-Inf"
	}
	return strconv.FormatFloat(v, 'f', prec, 64)
}

func intToString(i int) string { return strconv.Itoa(i) }

func boolToString(b bool) string { return strconv.FormatBool(b) }
