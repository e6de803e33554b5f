package home

import (
	"errors"
	"slices"
)

const (
	DefaultProfileName  = "Teen"
	DefaultProfileImage = "https://wallpapers.com/images/hd/placeholder-profile-icon-20tehfawxt5eihco.jpg"
)

// ErrEmptyCatalog is returned when a state is seeded without any profile.
var ErrEmptyCatalog = errors.New("home: at least one profile is required")

// Options controls how new profiles are created.
type Options struct {
	IDs          IDSource
	DefaultName  string
	DefaultImage string
}

func (o Options) withDefaults() Options {
	if o.IDs == nil {
		o.IDs = UUIDSource{}
	}
	if o.DefaultName == "" {
		o.DefaultName = DefaultProfileName
	}
	if o.DefaultImage == "" {
		o.DefaultImage = DefaultProfileImage
	}
	return o
}

// State is the whole parent home screen. It is a value: every operation
// returns the next State and leaves the receiver untouched.
//
// Invariants: profiles is never empty and selected.ID is always present in
// profiles.
type State struct {
	opts     Options
	profiles []Profile
	selected Profile
	expenses []Expense

	profileModal bool
	editModal    bool
	edit         *EditSession

	pendingRemoval string
	notice         *Notice
}

// New seeds a state. The first profile starts selected.
func New(profiles []Profile, expenses []Expense, opts Options) (State, error) {
	if len(profiles) == 0 {
		return State{}, ErrEmptyCatalog
	}
	s := State{
		opts:     opts.withDefaults(),
		profiles: slices.Clone(profiles),
		expenses: slices.Clone(expenses),
	}
	s.selected = s.profiles[0]
	return s, nil
}

func (s State) Profiles() []Profile { return slices.Clone(s.profiles) }

func (s State) Selected() Profile { return s.selected }

func (s State) Profile(id string) (Profile, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return Profile{}, false
	}
	return s.profiles[i], true
}

func (s State) ProfileModalVisible() bool { return s.profileModal }

func (s State) EditModalVisible() bool { return s.editModal }

// Edit returns the open edit session, if any.
func (s State) Edit() (EditSession, bool) {
	if s.edit == nil {
		return EditSession{}, false
	}
	return *s.edit, true
}

// PendingRemoval returns the id waiting for delete confirmation.
func (s State) PendingRemoval() (string, bool) {
	return s.pendingRemoval, s.pendingRemoval != ""
}

func (s State) Notice() (Notice, bool) {
	if s.notice == nil {
		return Notice{}, false
	}
	return *s.notice, true
}

// Blocked reports whether a confirmation or notice must be resolved before
// anything else is accepted.
func (s State) Blocked() bool {
	return s.notice != nil || s.pendingRemoval != ""
}

// ActiveModal returns the topmost visible modal.
func (s State) ActiveModal() ModalKind {
	switch {
	case s.notice != nil:
		return ModalNotice
	case s.pendingRemoval != "":
		return ModalConfirm
	case s.editModal:
		return ModalEdit
	case s.profileModal:
		return ModalProfiles
	default:
		return ModalNone
	}
}

func (s State) indexOf(id string) int {
	return slices.IndexFunc(s.profiles, func(p Profile) bool { return p.ID == id })
}

// withProfiles installs a fresh profile slice so the receiver's backing
// array is never written to.
func (s State) withProfiles(profiles []Profile) State {
	s.profiles = profiles
	return s
}
