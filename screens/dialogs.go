package screens

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/allowance/core"
	"github.com/jask/allowance/internal/home"
)

// ConfirmScreen asks before a profile is deleted. It resolves exactly one
// way: confirm or cancel.
type ConfirmScreen struct {
	keys *core.KeyRegistry
}

func NewConfirmScreen(keys *core.KeyRegistry) *ConfirmScreen {
	return &ConfirmScreen{keys: keys}
}

func (s *ConfirmScreen) Title() string { return home.ConfirmRemoveTitle }
func (s *ConfirmScreen) Scope() string { return core.ScopeConfirm }

func (s *ConfirmScreen) Update(msg tea.KeyMsg, st home.State) (home.Action, tea.Cmd) {
	switch {
	case s.keys.IsAction(msg, "confirm", s.Scope()):
		return home.ConfirmRemove{}, nil
	case s.keys.IsAction(msg, "decline", s.Scope()):
		return home.CancelRemove{}, nil
	}
	return nil, nil
}

func (s *ConfirmScreen) View(st home.State, width, height int) string {
	lines := []string{core.DangerStyle.Render(s.Title()), "", home.ConfirmRemoveMessage}
	if id, ok := st.PendingRemoval(); ok {
		if p, found := st.Profile(id); found {
			lines = append(lines, core.MutedStyle.Render(p.Name))
		}
	}
	lines = append(lines, "", core.MutedStyle.Render(strings.Join([]string{
		s.keys.Label("decline", s.Scope()) + " Cancel",
		s.keys.Label("confirm", s.Scope()) + " Delete",
	}, "    ")))
	return core.ClipHeight(strings.Join(lines, "\n"), height)
}

// NoticeScreen shows a blocking message such as the last-profile error.
type NoticeScreen struct {
	keys *core.KeyRegistry
}

func NewNoticeScreen(keys *core.KeyRegistry) *NoticeScreen {
	return &NoticeScreen{keys: keys}
}

func (s *NoticeScreen) Title() string { return "Notice" }
func (s *NoticeScreen) Scope() string { return core.ScopeNotice }

func (s *NoticeScreen) Update(msg tea.KeyMsg, st home.State) (home.Action, tea.Cmd) {
	if s.keys.IsAction(msg, "dismiss", s.Scope()) {
		return home.DismissNotice{}, nil
	}
	return nil, nil
}

func (s *NoticeScreen) View(st home.State, width, height int) string {
	n, ok := st.Notice()
	if !ok {
		return ""
	}
	lines := []string{
		core.DangerStyle.Render(n.Title),
		"",
		n.Message,
		"",
		core.MutedStyle.Render(s.keys.Label("dismiss", s.Scope()) + " OK"),
	}
	return core.ClipHeight(strings.Join(lines, "\n"), height)
}

// Overlays builds the modal screens keyed by the modal they render.
func Overlays(keys *core.KeyRegistry, display core.Display) map[home.ModalKind]core.Screen {
	return map[home.ModalKind]core.Screen{
		home.ModalProfiles: NewProfilesScreen(keys, display),
		home.ModalEdit:     NewEditScreen(keys),
		home.ModalConfirm:  NewConfirmScreen(keys),
		home.ModalNotice:   NewNoticeScreen(keys),
	}
}
