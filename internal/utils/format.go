// internal/utils/format.go
package utils

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var amountPrinter = message.NewPrinter(language.English)

// FormatAmount renders an integer amount with thousands grouping,
// e.g. 6000 -> "6,000".
func FormatAmount(amount int64) string {
	return amountPrinter.Sprintf("%d", amount)
}

// ParseAmount parses an applicant-typed amount. The public form re-inserts
// thousands separators on every keystroke, so anything that is not a digit is
// stripped before parsing.
func ParseAmount(input string) (int64, bool) {
	var b strings.Builder
	for _, r := range input {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0, false
	}
	n, err := strconv.ParseInt(b.String(), 10, 64)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
