package core

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestFooterListsScopeHints(t *testing.T) {
	m, _, _ := newTestModel(t, testState(t))
	m.width = 120

	got := ansi.Strip(RenderFooter(m))
	for _, want := range []string{"q quit", "p/enter profiles", "+ allowance", "v view all"} {
		if !strings.Contains(got, want) {
			t.Fatalf("footer missing %q: %q", want, got)
		}
	}
	if strings.Contains(got, "rename") {
		t.Fatalf("profile manager hints leaked into home: %q", got)
	}
	if w := ansi.StringWidth(RenderFooter(m)); w != 120 {
		t.Fatalf("footer width = %d", w)
	}
}

func TestFooterDropsWholeHintsWhenNarrow(t *testing.T) {
	m, _, _ := newTestModel(t, testState(t))
	m.width = 20

	got := ansi.Strip(RenderFooter(m))
	if !strings.Contains(got, "q quit") || !strings.Contains(got, footerMore) {
		t.Fatalf("narrow footer = %q", got)
	}
	if strings.Contains(got, "p/") {
		t.Fatalf("partial hint rendered: %q", got)
	}
}

func TestFooterMarksDisabledCommands(t *testing.T) {
	m, _, _ := newTestModel(t, testState(t))
	for _, kb := range footerHints(&m, ScopeHome) {
		h := kb.Help()
		switch h.Desc {
		case "allowance":
			if kb.Enabled() {
				t.Fatalf("allowance hint should be disabled")
			}
		default:
			if !kb.Enabled() {
				t.Fatalf("%s should be enabled", h.Desc)
			}
		}
	}
}

func TestFooterOneHintPerAction(t *testing.T) {
	m, _, _ := newTestModel(t, testState(t).OpenProfiles())
	seen := map[string]bool{}
	for _, kb := range footerHints(&m, ScopeProfiles) {
		d := kb.Help().Desc
		if seen[d] {
			t.Fatalf("duplicate hint %q", d)
		}
		seen[d] = true
	}
}
