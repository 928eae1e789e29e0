// Package core holds the domain model: the typed expense row, the closed
// option enumerations for its categorical fields, and money formatting.
package core

import (
	"fmt"
	"math"
	"strings"
)

// FormatEuros renders an amount for display the way the app does:
// French grouping (NBSP thousands separator), comma decimals, trailing
// euro sign. Zero and non-finite amounts render empty, matching how the
// table blanks cells that carry no value.
//
// Examples:
//
//	FormatEuros(1234.5) -> "1 234,50 €"
//	FormatEuros(0)      -> ""
func FormatEuros(v float64) string {
	if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return ""
	}
	neg := v < 0
	cents := int64(math.Round(math.Abs(v) * 100))
	intPart := cents / 100
	fracPart := cents % 100

	digits := fmt.Sprintf("%d", intPart)
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString("\u00a0")
		}
		b.WriteString(digits[i : i+3])
	}
	out := fmt.Sprintf("%s,%02d\u00a0€", b.String(), fracPart)
	if neg {
		return "-" + out
	}
	return out
}
