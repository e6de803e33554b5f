package widgets

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestRenderPopupCentresCardOverBase(t *testing.T) {
	base := strings.TrimSuffix(strings.Repeat(strings.Repeat("x", 30)+"\n", 10), "\n")
	out := RenderPopup(base, "hi", ToneNormal, 30, 10)
	rows := strings.Split(out, "\n")
	if len(rows) != 10 {
		t.Fatalf("rows = %d, want 10", len(rows))
	}
	for i, r := range rows {
		if w := ansi.StringWidth(r); w != 30 {
			t.Fatalf("row %d width = %d", i, w)
		}
	}
	// The card is 5 rows by 8 columns: border, padding and the text.
	if rows[0] != strings.Repeat("x", 30) || rows[9] != strings.Repeat("x", 30) {
		t.Fatalf("rows outside the card should be untouched:\n%s", out)
	}
	mid := ansi.Strip(rows[4])
	if !strings.Contains(mid, "hi") {
		t.Fatalf("card text missing:\n%s", out)
	}
	if !strings.HasPrefix(mid, strings.Repeat("x", 11)) || !strings.HasSuffix(mid, strings.Repeat("x", 11)) {
		t.Fatalf("base should show on both sides of the card: %q", mid)
	}
}

func TestRenderPopupToneKeepsGeometry(t *testing.T) {
	normal := ansi.Strip(RenderPopup("", "Delete?", ToneNormal, 40, 12))
	danger := ansi.Strip(RenderPopup("", "Delete?", ToneDanger, 40, 12))
	if normal != danger {
		t.Fatalf("tone should only change colour:\n%s\n---\n%s", normal, danger)
	}
}

func TestRenderPopupClipsWideCard(t *testing.T) {
	out := RenderPopup("", strings.Repeat("w", 50), ToneNormal, 20, 6)
	for i, r := range strings.Split(out, "\n") {
		if w := ansi.StringWidth(r); w != 20 {
			t.Fatalf("row %d width = %d, want 20", i, w)
		}
	}
}

func TestRenderPopupEmptyCanvas(t *testing.T) {
	if got := RenderPopup("base", "card", ToneNormal, 0, 5); got != "" {
		t.Fatalf("zero width should render nothing, got %q", got)
	}
}
