package core

import "strings"

const (
	ScopeHome          = "home"
	ScopeProfiles      = "screen:profiles"
	ScopeProfileFilter = "screen:profiles:filter"
	ScopeEdit          = "screen:edit"
	ScopeConfirm       = "screen:confirm"
	ScopeNotice        = "screen:notice"
)

const (
	CommandTopUp          = "top-up-allowance"
	CommandToggleExpenses = "toggle-all-expenses"
)

func DefaultKeyBindings() []KeyBinding {
	return []KeyBinding{
		{Keys: []string{"q"}, Action: "quit", Description: "quit", Scopes: []string{ScopeHome}},
		{Keys: []string{"p", "enter"}, Action: "open-profiles", Description: "profiles", Scopes: []string{ScopeHome}},
		{Keys: []string{"+"}, Action: CommandTopUp, Description: "allowance", Scopes: []string{ScopeHome}},
		{Keys: []string{"v"}, Action: CommandToggleExpenses, Description: "view all", Scopes: []string{ScopeHome}},
		{Keys: []string{"k", "up"}, Action: "row-up", Description: "up", Scopes: []string{ScopeProfiles, ScopeProfileFilter}},
		{Keys: []string{"j", "down"}, Action: "row-down", Description: "down", Scopes: []string{ScopeProfiles, ScopeProfileFilter}},
		{Keys: []string{"enter"}, Action: "select", Description: "switch", Scopes: []string{ScopeProfiles, ScopeProfileFilter}},
		{Keys: []string{"e"}, Action: "edit", Description: "rename", Scopes: []string{ScopeProfiles}},
		{Keys: []string{"d", "x"}, Action: "remove", Description: "delete", Scopes: []string{ScopeProfiles}},
		{Keys: []string{"a"}, Action: "add", Description: "add profile", Scopes: []string{ScopeProfiles}},
		{Keys: []string{"/"}, Action: "filter", Description: "filter", Scopes: []string{ScopeProfiles}},
		{Keys: []string{"esc"}, Action: "close", Description: "close", Scopes: []string{ScopeProfiles, ScopeProfileFilter}},
		{Keys: []string{"enter"}, Action: "save", Description: "save", Scopes: []string{ScopeEdit}},
		{Keys: []string{"esc"}, Action: "cancel", Description: "cancel", Scopes: []string{ScopeEdit}},
		{Keys: []string{"y", "enter"}, Action: "confirm", Description: "delete", Scopes: []string{ScopeConfirm}},
		{Keys: []string{"n", "esc"}, Action: "decline", Description: "keep", Scopes: []string{ScopeConfirm}},
		{Keys: []string{"enter", "esc"}, Action: "dismiss", Description: "ok", Scopes: []string{ScopeNotice}},
	}
}

// DefaultKeybindingsByAction is the [keys] table form of bindings. Action
// names are unique per key set, so feeding the table back through
// ApplyActionKeybindings reproduces bindings.
func DefaultKeybindingsByAction(bindings []KeyBinding) map[string][]string {
	out := make(map[string][]string, len(bindings))
	for _, b := range bindings {
		if strings.TrimSpace(b.Action) == "" || len(b.Keys) == 0 {
			continue
		}
		if _, exists := out[b.Action]; exists {
			continue
		}
		out[b.Action] = append([]string(nil), b.Keys...)
	}
	return out
}

// ApplyActionKeybindings replaces the keys of every binding whose action has
// an override, e.g. from the [keys] table of the config file.
func ApplyActionKeybindings(bindings []KeyBinding, actionKeys map[string][]string) []KeyBinding {
	out := make([]KeyBinding, 0, len(bindings))
	for _, b := range bindings {
		next := KeyBinding{
			Keys:        append([]string(nil), b.Keys...),
			Action:      b.Action,
			Description: b.Description,
			Scopes:      append([]string(nil), b.Scopes...),
		}
		if keys, ok := actionKeys[b.Action]; ok && len(keys) > 0 {
			next.Keys = append([]string(nil), keys...)
		}
		out = append(out, next)
	}
	return out
}
