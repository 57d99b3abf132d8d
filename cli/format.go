// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

// FormatRupees formats an amount with thousands separators.
// e.g., 1161695.38 -> "₹1,161,695.38"
func FormatRupees(v float64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	s := humanize.CommafWithDigits(v, 2)
	// CommafWithDigits trims trailing zeros; keep paise aligned.
	if i := strings.IndexByte(s, '.'); i == -1 {
		s += ".00"
	} else if len(s)-i == 2 {
		s += "0"
	}
	return sign + "₹" + s
}

// FormatPercent formats a percentage value.
func FormatPercent(v float64) string {
	return fmt.Sprintf("%.2f%%", v)
}

// FormatYears formats a tenure in years.
func FormatYears(years float64) string {
	if years == 1 {
		return "1 year"
	}
	return humanize.Ftoa(years) + " years"
}
