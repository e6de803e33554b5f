package core

import (
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/allowance/internal/home"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case StatusMsg:
		m.status = msg.Text
		m.statusErr = msg.IsErr
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}

		scope := m.ActiveScope()
		if m.state.ActiveModal() == home.ModalNone {
			if m.keys.IsAction(msg, "quit", scope) {
				m.quitting = true
				return m, tea.Quit
			}
		}
		for _, id := range m.commands.IDs(scope) {
			if m.keys.IsAction(msg, id, scope) {
				return m, m.commands.Execute(id, &m)
			}
		}

		screen := m.ActiveScreen()
		if screen == nil {
			return m, nil
		}
		action, cmd := screen.Update(msg, m.state)
		if action != nil {
			m.apply(action)
		}
		return m, cmd
	}
	return m, nil
}

// apply runs a through the reducer and reports visible outcomes in the
// status bar.
func (m *Model) apply(a home.Action) {
	prev := m.state
	m.state = home.Reduce(prev, a)
	slog.Debug("action", "type", fmt.Sprintf("%T", a), "modal", string(m.state.ActiveModal()))

	switch a.(type) {
	case home.AddProfile:
		if added := len(m.state.Profiles()) - len(prev.Profiles()); added > 0 {
			p := m.state.Profiles()[len(m.state.Profiles())-1]
			slog.Info("profile added", "id", p.ID)
			m.SetStatus("Added profile " + p.Name)
		}
	case home.ConfirmRemove:
		if id, ok := prev.PendingRemoval(); ok {
			if _, still := m.state.Profile(id); !still {
				gone, _ := prev.Profile(id)
				slog.Info("profile removed", "id", id)
				m.SetStatus("Removed " + gone.Name)
			}
		}
	case home.CommitEdit:
		if e, ok := prev.Edit(); ok {
			before, _ := prev.Profile(e.TargetID)
			after, _ := m.state.Profile(e.TargetID)
			if before.Name != after.Name {
				slog.Info("profile renamed", "id", e.TargetID)
				m.SetStatus("Renamed to " + after.Name)
			}
		}
	case home.SelectProfile:
		if prev.Selected().ID != m.state.Selected().ID {
			m.SetStatus("Viewing " + m.state.Selected().Name)
		}
	}
}
