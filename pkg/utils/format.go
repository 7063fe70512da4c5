package utils

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var englishPrinter = message.NewPrinter(language.English)

// FormatBillions renders a dollar amount in billions to one decimal place,
// e.g. 3_100_000_000_000 -> "$3100.0B".
func FormatBillions(amount float64) string {
	return fmt.Sprintf("$%.1fB", amount/1e9)
}

// FormatCount renders an integer with thousands separators, e.g. 164000 ->
// "164,000".
func FormatCount(n int64) string {
	return englishPrinter.Sprintf("%d", n)
}

// Timestamp returns the current local time in RFC 3339 format, used as the
// analysis timestamp on every result.
func Timestamp() string {
	return time.Now().Format(time.RFC3339)
}
