package core

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const footerMore = "…"

var (
	footerKeyStyle  = lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Background(colorMantle)
	footerDescStyle = lipgloss.NewStyle().Foreground(colorMuted).Background(colorMantle)
	footerOffStyle  = lipgloss.NewStyle().Foreground(colorTabOff).Faint(true).Background(colorMantle)
	footerGap       = lipgloss.NewStyle().Background(colorMantle).Render("  ")
)

// footerHints turns the active scope's bindings into help entries, one per
// action. Commands that are disabled come back with Enabled() false.
func footerHints(m *Model, scope string) []key.Binding {
	bindings := m.keys.BindingsForScope(scope)
	out := make([]key.Binding, 0, len(bindings))
	seen := make(map[string]bool, len(bindings))
	for _, b := range bindings {
		if len(b.Keys) == 0 || seen[b.Action] {
			continue
		}
		seen[b.Action] = true
		kb := key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(strings.Join(b.Keys, "/"), b.Description))
		if off, _ := m.commands.Disabled(b.Action, m); off {
			kb.SetEnabled(false)
		}
		out = append(out, kb)
	}
	return out
}

// RenderFooter shows the shortcuts of the active scope. Hints that do not
// fit are dropped whole and replaced by a trailing ellipsis.
func RenderFooter(m Model) string {
	width := max(1, m.width)
	var line string
	used := 0
	for _, kb := range footerHints(&m, m.ActiveScope()) {
		h := kb.Help()
		hint := footerKeyStyle.Render(h.Key) + footerDescStyle.Render(" "+h.Desc)
		if !kb.Enabled() {
			hint = footerOffStyle.Render(h.Key + " " + h.Desc)
		}
		w := ansi.StringWidth(hint)
		if used > 0 {
			w += ansi.StringWidth(footerGap)
		}
		if used+w > width-ansi.StringWidth(footerMore)-1 {
			line += footerDescStyle.Render(" " + footerMore)
			break
		}
		if used > 0 {
			line += footerGap
		}
		line += hint
		used += w
	}
	if line == "" {
		line = footerDescStyle.Render("No shortcuts")
	}
	return renderBar(footerStyle, width, line, colorMantle)
}

func RenderStatusBar(m Model) string {
	msg := strings.TrimSpace(m.status)
	if msg == "" {
		msg = "Ready"
	}
	style := statusBarStyle
	if m.statusErr {
		style = statusErrBarStyle
	}
	return renderBar(style, max(1, m.width), msg, colorSurface0)
}

// renderBar fills one full-width line with bg.
func renderBar(style lipgloss.Style, width int, text string, bg lipgloss.TerminalColor) string {
	line := ansi.Truncate(strings.ReplaceAll(text, "\n", " "), width, "")
	if w := ansi.StringWidth(line); w < width {
		line += strings.Repeat(" ", width-w)
	}
	return style.Background(bg).Width(width).MaxWidth(width).Render(line)
}

func TrimToWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, "")
}

func ClipHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}
