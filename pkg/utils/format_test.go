package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrencySymbol(t *testing.T) {
	assert.Equal(t, "£", CurrencySymbol("GBP"))
	assert.Equal(t, "£", CurrencySymbol("gbp"))
	assert.Equal(t, "$", CurrencySymbol("USD"))
	assert.Equal(t, "€", CurrencySymbol("EUR"))
	assert.Equal(t, "C$", CurrencySymbol("CAD"))
	assert.Equal(t, "XYZ", CurrencySymbol("XYZ"), "unknown code passes through")
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		currency string
		want     string
	}{
		{"whole value", 250, "GBP", "£250"},
		{"rounds to whole units", 701.97, "GBP", "£702"},
		{"thousand separators", 1234567, "USD", "$1,234,567"},
		{"negative sign before symbol", -1234.6, "GBP", "-£1,235"},
		{"positive half rounds up", 0.5, "GBP", "£1"},
		{"negative half rounds toward zero", -0.5, "GBP", "£0"},
		{"negative half above a thousand", -1234.5, "GBP", "-£1,234"},
		{"zero", 0, "EUR", "€0"},
		{"exactly one thousand", 1000, "GBP", "£1,000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCurrency(tt.value, tt.currency))
		})
	}
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "15", FormatNumber(15))
	assert.Equal(t, "7.5", FormatNumber(7.5))
	assert.Equal(t, "600", FormatNumber(600))
	assert.Equal(t, "0", FormatNumber(0))
}

func TestFormatHours(t *testing.T) {
	assert.Equal(t, "0h", FormatHours(0))
	assert.Equal(t, "45m", FormatHours(45))
	assert.Equal(t, "2h", FormatHours(120))
	assert.Equal(t, "2h 30m", FormatHours(150))
	assert.Equal(t, "10h", FormatHours(600))
}

func TestFormatPeriodDisplay(t *testing.T) {
	assert.Equal(t, "monthly", FormatPeriodDisplay("monthly"))
	assert.Equal(t, "quarterly", FormatPeriodDisplay("quarterly"))
	assert.Equal(t, "12 months", FormatPeriodDisplay("yearly"))
	assert.Equal(t, "24 months", FormatPeriodDisplay("24months"))
	assert.Equal(t, "weekly", FormatPeriodDisplay("weekly"))
}

func TestFormatDurationMs(t *testing.T) {
	assert.Equal(t, "-", FormatDurationMs(0))
	assert.Equal(t, "850ms", FormatDurationMs(850))
	assert.Equal(t, "2.5s", FormatDurationMs(2500))
	assert.Equal(t, "1m 5s", FormatDurationMs(65000))
}
