package core

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/allowance/internal/home"
	"github.com/jask/allowance/widgets"
)

// Screen is one layer of the parent home UI. Screens translate keys into
// home actions; they never mutate home.State themselves.
type Screen interface {
	Update(msg tea.KeyMsg, st home.State) (home.Action, tea.Cmd)
	View(st home.State, width, height int) string
	Scope() string
	Title() string
}

// Display holds currency presentation settings.
type Display struct {
	CurrencySymbol string
	CurrencyCode   string
}

type Model struct {
	width     int
	height    int
	state     home.State
	base      Screen
	overlays  map[home.ModalKind]Screen
	keys      *KeyRegistry
	commands  *CommandRegistry
	status    string
	statusErr bool
	quitting  bool
}

// ExpenseToggler is implemented by base screens that can expand their
// expense list.
type ExpenseToggler interface {
	ToggleAllExpenses() bool
}

func NewModel(state home.State, base Screen, overlays map[home.ModalKind]Screen, keys *KeyRegistry, commands *CommandRegistry) Model {
	return Model{
		state:    state,
		base:     base,
		overlays: overlays,
		keys:     keys,
		commands: commands,
		status:   "Ready",
		width:    100,
		height:   32,
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) State() home.State { return m.state }

func (m *Model) SetStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

// ActiveScreen is the screen receiving keys: the topmost visible modal, or
// the base screen when none is open.
func (m Model) ActiveScreen() Screen {
	if s, ok := m.overlays[m.state.ActiveModal()]; ok && s != nil {
		return s
	}
	return m.base
}

func (m Model) ActiveScope() string {
	if s := m.ActiveScreen(); s != nil {
		return s.Scope()
	}
	return "app"
}

type overlay struct {
	kind   home.ModalKind
	screen Screen
}

// visibleOverlays lists open modals bottom to top.
func (m Model) visibleOverlays() []overlay {
	var out []overlay
	add := func(kind home.ModalKind) {
		if s, ok := m.overlays[kind]; ok && s != nil {
			out = append(out, overlay{kind: kind, screen: s})
		}
	}
	if m.state.ProfileModalVisible() {
		add(home.ModalProfiles)
	}
	if m.state.EditModalVisible() {
		add(home.ModalEdit)
	}
	if _, ok := m.state.PendingRemoval(); ok {
		add(home.ModalConfirm)
	}
	if _, ok := m.state.Notice(); ok {
		add(home.ModalNotice)
	}
	return out
}

// popupTone gives blocking dialogs a danger border.
func popupTone(kind home.ModalKind) widgets.Tone {
	switch kind {
	case home.ModalConfirm, home.ModalNotice:
		return widgets.ToneDanger
	}
	return widgets.ToneNormal
}
