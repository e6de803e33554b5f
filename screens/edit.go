package screens

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/allowance/core"
	"github.com/jask/allowance/internal/home"
)

// EditScreen is the rename modal. The text field mirrors the edit session's
// pending name; every change is reported back as home.UpdateField.
type EditScreen struct {
	keys  *core.KeyRegistry
	input textinput.Model
}

func NewEditScreen(keys *core.KeyRegistry) *EditScreen {
	inp := textinput.New()
	inp.Placeholder = "Enter new name"
	inp.Prompt = "name> "
	inp.Focus()
	return &EditScreen{keys: keys, input: inp}
}

func (s *EditScreen) Title() string { return "Edit Profile" }
func (s *EditScreen) Scope() string { return core.ScopeEdit }

func (s *EditScreen) Update(msg tea.KeyMsg, st home.State) (home.Action, tea.Cmd) {
	edit, ok := st.Edit()
	if !ok {
		return nil, nil
	}
	s.sync(edit)

	switch {
	case s.keys.IsAction(msg, "save", s.Scope()):
		return home.CommitEdit{}, nil
	case s.keys.IsAction(msg, "cancel", s.Scope()):
		return home.CancelEdit{}, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	if v := s.input.Value(); v != edit.PendingName {
		return home.UpdateField{Text: v}, cmd
	}
	return nil, cmd
}

func (s *EditScreen) View(st home.State, width, height int) string {
	if edit, ok := st.Edit(); ok {
		s.sync(edit)
	}
	s.input.Width = min(max(16, width-16), 40)
	lines := []string{
		core.TitleStyle.Render(s.Title()),
		"",
		s.input.View(),
		"",
		core.MutedStyle.Render(strings.Join([]string{
			s.keys.Label("cancel", s.Scope()) + " Cancel",
			s.keys.Label("save", s.Scope()) + " Save",
		}, "    ")),
	}
	return core.ClipHeight(strings.Join(lines, "\n"), height)
}

// sync reseeds the field when a new session starts or the draft changed
// outside this screen.
func (s *EditScreen) sync(edit home.EditSession) {
	if s.input.Value() == edit.PendingName {
		return
	}
	s.input.SetValue(edit.PendingName)
	s.input.CursorEnd()
}
