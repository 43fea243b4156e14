// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"time"

	"kasa/internal/ledger"
)

// FormatAmount formats a money amount to two decimals, e.g. 50 -> "50.00".
func FormatAmount(v float32) string {
	return fmt.Sprintf("%.2f", v)
}

// FormatSigned formats an amount with an explicit sign, e.g. "+200.00".
func FormatSigned(v float32) string {
	if v < 0 {
		return fmt.Sprintf("-%.2f", -v)
	}
	return fmt.Sprintf("+%.2f", v)
}

// FormatDate renders a date as DD.MM.YYYY.
func FormatDate(t time.Time) string {
	return t.Format(ledger.DateLayout)
}

// ParseDate parses a DD.MM.YYYY date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(ledger.DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q (want DD.MM.YYYY): %w", s, err)
	}
	return t, nil
}
