package core

import (
	"errors"
	"fmt"
	"slices"

	tea "github.com/charmbracelet/bubbletea"
)

// Command is a home screen affordance that is not a state transition, such
// as the allowance button.
type Command struct {
	ID          string
	Name        string
	Description string
	Scopes      []string
	Execute     func(m *Model) tea.Cmd
	Disabled    func(m *Model) (bool, string)
}

type CommandRegistry struct {
	commands map[string]Command
}

func NewCommandRegistry(cmds []Command) *CommandRegistry {
	reg := &CommandRegistry{commands: map[string]Command{}}
	for _, c := range cmds {
		reg.Register(c)
	}
	return reg
}

func (r *CommandRegistry) Register(c Command) {
	if c.ID == "" {
		return
	}
	r.commands[c.ID] = c
}

// IDs lists commands available in scope, sorted for stable key matching.
func (r *CommandRegistry) IDs(scope string) []string {
	if r == nil {
		return nil
	}
	out := make([]string, 0, len(r.commands))
	for id, c := range r.commands {
		if scopeMatch(scope, c.Scopes) {
			out = append(out, id)
		}
	}
	slices.Sort(out)
	return out
}

// Disabled reports whether command id is currently unavailable, and why.
func (r *CommandRegistry) Disabled(id string, m *Model) (bool, string) {
	if r == nil {
		return false, ""
	}
	c, ok := r.commands[id]
	if !ok || c.Disabled == nil {
		return false, ""
	}
	disabled, reason := c.Disabled(m)
	if disabled && reason == "" {
		reason = c.Name + " is disabled"
	}
	return disabled, reason
}

// Execute runs command id. A disabled command reports its reason as an
// error in the status bar.
func (r *CommandRegistry) Execute(id string, m *Model) tea.Cmd {
	if r == nil {
		return nil
	}
	c, ok := r.commands[id]
	if !ok {
		return ErrorCmd(fmt.Errorf("unknown command %q", id))
	}
	if disabled, reason := r.Disabled(id, m); disabled {
		return ErrorCmd(errors.New(reason))
	}
	if c.Execute == nil {
		return nil
	}
	return c.Execute(m)
}

// DefaultCommands wires the balance card and expense header buttons.
func DefaultCommands() []Command {
	return []Command{
		{
			ID:          CommandTopUp,
			Name:        "Add allowance",
			Description: "Send allowance to the selected profile",
			Scopes:      []string{ScopeHome},
			Disabled: func(m *Model) (bool, string) {
				return true, "Allowance top-ups are not available yet"
			},
		},
		{
			ID:          CommandToggleExpenses,
			Name:        "View all",
			Description: "Show every expense instead of the latest few",
			Scopes:      []string{ScopeHome},
			Execute: func(m *Model) tea.Cmd {
				t, ok := m.base.(ExpenseToggler)
				if !ok {
					return nil
				}
				if t.ToggleAllExpenses() {
					return StatusCmd("Showing all expenses")
				}
				return StatusCmd("Showing latest expenses")
			},
		},
	}
}
