package fiscal

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want float64
	}{
		{"plain integer", "1234", 1234},
		{"dot decimal", "1234.56", 1234.56},
		{"comma decimal", "1234,56", 1234.56},
		{"both separators", "1.234.567,89", 1234567.89},
		{"currency noise", "$ 1.234,50", 1234.50},
		{"negative", "-500,25", -500.25},
		{"empty", "", 0},
		{"whitespace only", "   ", 0},
		{"garbage", "sin datos", 0},
		{"partial garbage coerces", "..,,", 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, ParseAmount(tc.in), 1e-9)
		})
	}
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "1.234.567", FormatNumber(1234567))
	assert.Equal(t, "0", FormatNumber(0))
}

func TestFormatMoney(t *testing.T) {
	got := FormatMoney(1500000)
	assert.True(t, strings.HasPrefix(got, "$ "), "got %q", got)
	assert.Contains(t, got, "1.500.000")
}

func TestFormatMoneyMillions(t *testing.T) {
	got := FormatMoneyMillions(12_300_000)
	assert.True(t, strings.HasPrefix(got, "$ "), "got %q", got)
	assert.True(t, strings.HasSuffix(got, " M"), "got %q", got)
	assert.Contains(t, got, "12,3")
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, NoData, FormatPercent(0, false))

	got := FormatPercent(0.75, true)
	assert.Contains(t, got, "75")
	assert.NotEqual(t, NoData, got)
}
