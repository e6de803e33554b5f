package screens

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/allowance/core"
	"github.com/jask/allowance/internal/home"
	"github.com/jask/allowance/widgets"
)

// ProfilesScreen is the "Manage Profiles" modal.
type ProfilesScreen struct {
	keys      *core.KeyRegistry
	display   core.Display
	picker    *core.ProfilePicker
	filtering bool
}

func NewProfilesScreen(keys *core.KeyRegistry, display core.Display) *ProfilesScreen {
	return &ProfilesScreen{keys: keys, display: display, picker: core.NewProfilePicker(nil)}
}

func (s *ProfilesScreen) Title() string { return "Manage Profiles" }

func (s *ProfilesScreen) Scope() string {
	if s.filtering {
		return core.ScopeProfileFilter
	}
	return core.ScopeProfiles
}

func (s *ProfilesScreen) Update(msg tea.KeyMsg, st home.State) (home.Action, tea.Cmd) {
	s.picker.SetProfiles(st.Profiles())
	if s.filtering {
		return s.updateFilter(msg), nil
	}

	scope := s.Scope()
	switch {
	case s.keys.IsAction(msg, "row-up", scope):
		s.picker.CursorUp()
	case s.keys.IsAction(msg, "row-down", scope):
		s.picker.CursorDown()
	case s.keys.IsAction(msg, "select", scope):
		return s.selectCurrent(), nil
	case s.keys.IsAction(msg, "edit", scope):
		if p, ok := s.picker.Current(); ok {
			return home.OpenEdit{ID: p.ID}, nil
		}
	case s.keys.IsAction(msg, "remove", scope):
		if p, ok := s.picker.Current(); ok {
			return home.RequestRemove{ID: p.ID}, nil
		}
	case s.keys.IsAction(msg, "add", scope):
		return home.AddProfile{}, nil
	case s.keys.IsAction(msg, "filter", scope):
		s.filtering = true
	case s.keys.IsAction(msg, "close", scope):
		s.resetFilter()
		return home.DismissProfiles{}, nil
	}
	return nil, nil
}

// updateFilter treats printable keys as query text so names containing
// shortcut letters can still be typed.
func (s *ProfilesScreen) updateFilter(msg tea.KeyMsg) home.Action {
	scope := s.Scope()
	switch {
	case msg.Type == tea.KeyBackspace:
		s.picker.Backspace()
	case msg.Type == tea.KeySpace:
		s.picker.AppendQuery(" ")
	case msg.Type == tea.KeyRunes && core.IsPrintableKey(msg.String()):
		s.picker.AppendQuery(msg.String())
	case s.keys.IsAction(msg, "select", scope):
		return s.selectCurrent()
	case s.keys.IsAction(msg, "row-up", scope):
		s.picker.CursorUp()
	case s.keys.IsAction(msg, "row-down", scope):
		s.picker.CursorDown()
	case s.keys.IsAction(msg, "close", scope):
		s.resetFilter()
	}
	return nil
}

func (s *ProfilesScreen) selectCurrent() home.Action {
	p, ok := s.picker.Current()
	if !ok {
		return nil
	}
	s.resetFilter()
	return home.SelectProfile{ID: p.ID}
}

func (s *ProfilesScreen) resetFilter() {
	s.filtering = false
	s.picker.SetQuery("")
}

func (s *ProfilesScreen) View(st home.State, width, height int) string {
	s.picker.SetProfiles(st.Profiles())
	inner := min(max(24, width-8), 56)
	selectedID := st.Selected().ID

	lines := []string{core.TitleStyle.Render(s.Title())}
	if s.filtering || s.picker.Query() != "" {
		lines = append(lines, core.MutedStyle.Render("/ ")+s.picker.Query())
	}
	lines = append(lines, "")

	items := s.picker.Items()
	if len(items) == 0 {
		lines = append(lines, core.MutedStyle.Render("No matching profiles"))
	}
	for i, p := range items {
		marker := "  "
		name := p.Name
		if i == s.picker.Cursor() {
			marker = core.CursorStyle.Render("› ")
			name = core.CursorStyle.Render(name)
		}
		if p.ID == selectedID {
			name += core.SelectedStyle.Render(" ●")
		}
		balance := core.MutedStyle.Render(home.FormatAmount(s.display.CurrencySymbol, p.Balance))
		lines = append(lines, widgets.SpreadRow(marker+"("+home.Initial(p.Name)+") "+name, balance, inner))
	}

	lines = append(lines, "",
		core.SelectedStyle.Render(s.keys.Label("add", core.ScopeProfiles)+"  + Add New Profile"),
		core.MutedStyle.Render(strings.Join([]string{
			s.keys.Label("edit", core.ScopeProfiles) + " rename",
			s.keys.Label("remove", core.ScopeProfiles) + " delete",
			s.keys.Label("close", core.ScopeProfiles) + " close",
		}, " · ")),
	)
	return core.ClipHeight(strings.Join(lines, "\n"), height)
}
