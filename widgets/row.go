package widgets

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// SpreadRow places left and right at opposite ends of a width-wide line.
// Left is truncated first when both do not fit.
func SpreadRow(left, right string, width int) string {
	if width <= 0 {
		return ""
	}
	rightW := ansi.StringWidth(right)
	if rightW >= width {
		return ansi.Truncate(right, width, "")
	}
	left = ansi.Truncate(left, max(0, width-rightW-1), "…")
	gap := width - ansi.StringWidth(left) - rightW
	return left + strings.Repeat(" ", max(1, gap)) + right
}
