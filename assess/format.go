package assess

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var inr = message.NewPrinter(language.MustParse("en-IN"))

// FormatINR renders an amount as a rupee string with en-IN digit grouping,
// e.g. 23140 -> "₹23,140".
func FormatINR(amount int) string {
	return inr.Sprintf("₹%d", amount)
}
