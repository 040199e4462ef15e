package web

import (
	"strconv"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.BritishEnglish)

// formatEUR renders an amount with exactly two fraction digits for table cells.
func formatEUR(v float64) string {
	return printer.Sprintf("%v", number.Decimal(v,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2)))
}

// formatDate matches the original UI's short date cells, e.g. "01 Jun 2025".
func formatDate(t time.Time) string {
	return t.Format("02 Jan 2006")
}

// inputAmount renders an amount for a numeric form input, free of grouping.
func inputAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
