package core

import (
	"unicode/utf8"

	"github.com/jask/allowance/internal/home"
)

// ProfilePicker is the cursor and filter state of the profile manager list.
// The cursor follows the highlighted profile id across refreshes.
type ProfilePicker struct {
	profiles []home.Profile
	filtered []home.Profile
	query    string
	cursor   int
}

func NewProfilePicker(profiles []home.Profile) *ProfilePicker {
	p := &ProfilePicker{}
	p.SetProfiles(profiles)
	return p
}

func (p *ProfilePicker) Query() string {
	if p == nil {
		return ""
	}
	return p.query
}

func (p *ProfilePicker) Cursor() int {
	if p == nil {
		return 0
	}
	return p.cursor
}

func (p *ProfilePicker) Items() []home.Profile {
	if p == nil {
		return nil
	}
	return append([]home.Profile(nil), p.filtered...)
}

// SetProfiles refreshes the list, keeping the cursor on the same profile
// when it is still visible.
func (p *ProfilePicker) SetProfiles(profiles []home.Profile) {
	if p == nil {
		return
	}
	current, had := p.Current()
	p.profiles = append([]home.Profile(nil), profiles...)
	p.rebuild()
	if had {
		p.Focus(current.ID)
	}
}

func (p *ProfilePicker) SetQuery(q string) {
	if p == nil {
		return
	}
	p.query = q
	p.rebuild()
}

func (p *ProfilePicker) AppendQuery(s string) {
	p.SetQuery(p.Query() + s)
}

func (p *ProfilePicker) Backspace() {
	q := p.Query()
	if q == "" {
		return
	}
	_, size := utf8.DecodeLastRuneInString(q)
	p.SetQuery(q[:len(q)-size])
}

// Focus moves the cursor onto id if it is in the filtered list.
func (p *ProfilePicker) Focus(id string) {
	if p == nil {
		return
	}
	for i, prof := range p.filtered {
		if prof.ID == id {
			p.cursor = i
			return
		}
	}
}

func (p *ProfilePicker) CursorUp() {
	if p == nil {
		return
	}
	if p.cursor > 0 {
		p.cursor--
	}
}

func (p *ProfilePicker) CursorDown() {
	if p == nil {
		return
	}
	maxIdx := len(p.filtered) - 1
	if maxIdx < 0 {
		p.cursor = 0
		return
	}
	if p.cursor < maxIdx {
		p.cursor++
	}
}

func (p *ProfilePicker) Current() (home.Profile, bool) {
	if p == nil || len(p.filtered) == 0 {
		return home.Profile{}, false
	}
	idx := min(max(p.cursor, 0), len(p.filtered)-1)
	return p.filtered[idx], true
}

func (p *ProfilePicker) rebuild() {
	p.filtered = home.MatchProfiles(p.profiles, p.query)
	maxIdx := len(p.filtered) - 1
	if maxIdx < 0 {
		p.cursor = 0
	} else if p.cursor > maxIdx {
		p.cursor = maxIdx
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
}

// IsPrintableKey reports whether a key name is a single printable rune.
func IsPrintableKey(keyName string) bool {
	r, size := utf8.DecodeRuneInString(keyName)
	return size == len(keyName) && r >= 32 && r != 127 && r != utf8.RuneError
}
