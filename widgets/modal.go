package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Tone picks the border of a popup card.
type Tone int

const (
	ToneNormal Tone = iota
	// ToneDanger marks dialogs that block the screen until answered.
	ToneDanger
)

var (
	popupBorder  = lipgloss.Color("#585b70")
	dangerBorder = lipgloss.Color("#f38ba8")
)

// PopupCard frames body as a modal card.
func PopupCard(body string, tone Tone) string {
	border := popupBorder
	if tone == ToneDanger {
		border = dangerBorder
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(1, 2).
		Render(body)
}

// RenderPopup draws body as a card centred on a width x height canvas made
// from base. Cells outside the card keep the base content, so stacked modals
// stay visible beneath the top one.
func RenderPopup(base, body string, tone Tone, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	rows := canvas(base, width, height)
	card := strings.Split(PopupCard(body, tone), "\n")

	cardW := 0
	for _, l := range card {
		cardW = max(cardW, ansi.StringWidth(l))
	}
	cardW = min(cardW, width)
	x := max(0, (width-cardW)/2)
	y := max(0, (height-len(card))/2)

	for i, l := range card {
		row := y + i
		if row >= height {
			break
		}
		rows[row] = ansi.Cut(rows[row], 0, x) + fit(l, cardW) + ansi.Cut(rows[row], x+cardW, width)
	}
	return strings.Join(rows, "\n")
}

func canvas(s string, width, height int) []string {
	rows := strings.Split(s, "\n")
	if len(rows) > height {
		rows = rows[:height]
	}
	for len(rows) < height {
		rows = append(rows, "")
	}
	for i := range rows {
		rows[i] = fit(rows[i], width)
	}
	return rows
}

// fit truncates or pads s to exactly width columns.
func fit(s string, width int) string {
	s = ansi.Truncate(s, width, "")
	if w := ansi.StringWidth(s); w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}
