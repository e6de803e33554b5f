package core

import (
	"testing"

	"github.com/jask/allowance/internal/home"
)

var pickerProfiles = []home.Profile{
	{ID: "1", Name: "Sarah"},
	{ID: "2", Name: "James"},
	{ID: "3", Name: "Jamie"},
}

func TestProfilePickerCursorBounds(t *testing.T) {
	p := NewProfilePicker(pickerProfiles)
	p.CursorUp()
	if p.Cursor() != 0 {
		t.Fatalf("cursor should clamp at 0")
	}
	for i := 0; i < 5; i++ {
		p.CursorDown()
	}
	if p.Cursor() != 2 {
		t.Fatalf("cursor should clamp at last row, got %d", p.Cursor())
	}
}

func TestProfilePickerFilterAndBackspace(t *testing.T) {
	p := NewProfilePicker(pickerProfiles)
	p.AppendQuery("j")
	p.AppendQuery("a")
	if got := len(p.Items()); got != 2 {
		t.Fatalf("expected 2 matches for ja, got %d", got)
	}
	p.CursorDown()
	cur, _ := p.Current()
	if cur.ID != "3" {
		t.Fatalf("expected Jamie under cursor, got %+v", cur)
	}
	p.Backspace()
	p.Backspace()
	p.Backspace()
	if p.Query() != "" || len(p.Items()) != 3 {
		t.Fatalf("expected cleared query, got %q with %d items", p.Query(), len(p.Items()))
	}
}

func TestProfilePickerFollowsProfileAcrossRefresh(t *testing.T) {
	p := NewProfilePicker(pickerProfiles)
	p.CursorDown()
	p.CursorDown()

	// Sarah removed: Jamie moves up a row but keeps the cursor.
	p.SetProfiles(pickerProfiles[1:])
	cur, ok := p.Current()
	if !ok || cur.ID != "3" {
		t.Fatalf("cursor should stay on Jamie, got %+v", cur)
	}

	// Jamie removed: cursor clamps to the new last row.
	p.SetProfiles(pickerProfiles[1:2])
	cur, _ = p.Current()
	if cur.ID != "2" {
		t.Fatalf("cursor should clamp to James, got %+v", cur)
	}
}

func TestIsPrintableKey(t *testing.T) {
	for _, k := range []string{"a", "Z", "/", "é"} {
		if !IsPrintableKey(k) {
			t.Fatalf("%q should be printable", k)
		}
	}
	for _, k := range []string{"", "enter", "ctrl+c", "\x7f"} {
		if IsPrintableKey(k) {
			t.Fatalf("%q should not be printable", k)
		}
	}
}
