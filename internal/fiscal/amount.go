package fiscal

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// NoData is the display placeholder for undefined values.
const NoData = "—"

var display = message.NewPrinter(language.MustParse("es-AR"))

// ParseAmount converts a textual amount into a float. Source documents mix
// "1.234,56", "1234.56" and "1234,56" spellings; anything unparseable
// coerces to zero, never an error.
func ParseAmount(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}

	var b strings.Builder
	for _, ch := range s {
		if (ch >= '0' && ch <= '9') || ch == '.' || ch == ',' || ch == '-' {
			b.WriteRune(ch)
		}
	}
	s = b.String()

	hasComma := strings.Contains(s, ",")
	hasDot := strings.Contains(s, ".")
	switch {
	case hasComma && hasDot:
		// Dots are thousands separators, comma is the decimal mark
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	case hasComma:
		s = strings.ReplaceAll(s, ",", ".")
	}

	val, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return val
}

// FormatNumber renders a value with es-AR thousands separators and no
// decimal places.
func FormatNumber(v float64) string {
	return display.Sprint(number.Decimal(v, number.MaxFractionDigits(0)))
}

// FormatMoney renders a full amount with currency prefix, e.g. "$ 1.234.567".
func FormatMoney(v float64) string {
	return "$ " + FormatNumber(v)
}

// FormatMoneyMillions renders an amount scaled to millions with one decimal,
// e.g. "$ 12,3 M".
func FormatMoneyMillions(v float64) string {
	m := v / 1_000_000
	return "$ " + display.Sprint(number.Decimal(m, number.MinFractionDigits(1), number.MaxFractionDigits(1))) + " M"
}

// FormatPercent renders a ratio as a whole percentage, or the no-data
// placeholder when the ratio is undefined.
func FormatPercent(ratio float64, ok bool) string {
	if !ok {
		return NoData
	}
	return display.Sprint(number.Percent(ratio, number.MaxFractionDigits(0)))
}
