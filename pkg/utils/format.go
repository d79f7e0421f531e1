package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// currencySymbols maps ISO currency codes to display symbols. Unknown codes
// fall through to the code itself.
var currencySymbols = map[string]string{
	"GBP": "£",
	"USD": "$",
	"EUR": "€",
	"CAD": "C$",
	"AUD": "A$",
	"JPY": "¥",
	"CHF": "CHF",
	"CNY": "¥",
	"INR": "₹",
}

// CurrencySymbol returns the display symbol for a currency code.
func CurrencySymbol(currencyCode string) string {
	if symbol, ok := currencySymbols[strings.ToUpper(currencyCode)]; ok {
		return symbol
	}
	return currencyCode
}

// FormatCurrency renders a monetary value with its currency symbol, no
// decimal places and thousand separators, preserving the negative sign:
// FormatCurrency(-1234.6, "GBP") == "-£1,235".
func FormatCurrency(value float64, currencyCode string) string {
	symbol := CurrencySymbol(currencyCode)
	// Halves round toward positive infinity, so -0.5 displays as £0 and 0.5
	// as £1.
	rounded := int64(math.Floor(value + 0.5))
	formatted := groupThousands(absInt64(rounded))
	if rounded < 0 {
		return "-" + symbol + formatted
	}
	return symbol + formatted
}

// FormatNumber renders a float with the shortest representation that
// round-trips, the way calculation operands appear in formula traces
// (15 not 15.00, but 7.5 stays 7.5).
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatHours renders minutes as "Xh Ym", dropping zero components.
func FormatHours(minutes float64) string {
	if minutes == 0 {
		return "0h"
	}
	hours := int(minutes) / 60
	mins := int(minutes) % 60

	if hours == 0 {
		return fmt.Sprintf("%dm", mins)
	}
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, mins)
}

// FormatPeriodDisplay renders a billing period for display.
func FormatPeriodDisplay(period string) string {
	switch period {
	case "monthly":
		return "monthly"
	case "quarterly":
		return "quarterly"
	case "yearly":
		return "12 months"
	case "24months":
		return "24 months"
	default:
		return period
	}
}

// FormatDate renders a date as "2 Jan 2006" (UK short form).
func FormatDate(t time.Time) string {
	return t.Format("2 Jan 2006")
}

// FormatDurationMs renders an execution duration in milliseconds as a short
// human-readable string.
func FormatDurationMs(ms int64) string {
	if ms <= 0 {
		return "-"
	}
	if ms < 1000 {
		return fmt.Sprintf("%dms", ms)
	}
	if ms < 60000 {
		return fmt.Sprintf("%.1fs", float64(ms)/1000)
	}
	minutes := ms / 60000
	seconds := (ms % 60000) / 1000
	return fmt.Sprintf("%dm %ds", minutes, seconds)
}

// groupThousands inserts comma separators into a non-negative integer.
func groupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

func absInt64(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
