package home

import (
	"slices"
	"strings"
)

var (
	NoticeLastProfile = Notice{Title: "Error", Message: "You must keep at least one profile"}

	ConfirmRemoveTitle   = "Delete Profile"
	ConfirmRemoveMessage = "Are you sure you want to delete this profile?"
)

// Add appends a placeholder profile with a fresh id.
func (s State) Add() State {
	id := s.opts.IDs.NewID()
	for id == "" || s.indexOf(id) >= 0 {
		id = s.opts.IDs.NewID()
	}
	next := make([]Profile, 0, len(s.profiles)+1)
	next = append(next, s.profiles...)
	next = append(next, Profile{
		ID:    id,
		Name:  s.opts.DefaultName,
		Image: s.opts.DefaultImage,
	})
	return s.withProfiles(next)
}

// RequestRemove starts removal of id. With a single profile left it raises
// NoticeLastProfile instead of asking for confirmation.
func (s State) RequestRemove(id string) State {
	if s.indexOf(id) < 0 {
		return s
	}
	if len(s.profiles) <= 1 {
		n := NoticeLastProfile
		s.notice = &n
		return s
	}
	s.pendingRemoval = id
	return s
}

// ConfirmRemove deletes the profile awaiting confirmation. Selection moves
// to the first remaining profile when the selected one goes away.
func (s State) ConfirmRemove() State {
	id := s.pendingRemoval
	s.pendingRemoval = ""
	i := s.indexOf(id)
	if i < 0 {
		return s
	}
	if len(s.profiles) <= 1 {
		n := NoticeLastProfile
		s.notice = &n
		return s
	}
	s = s.withProfiles(slices.Delete(slices.Clone(s.profiles), i, i+1))
	if s.selected.ID == id {
		s.selected = s.profiles[0]
	}
	if s.edit != nil && s.edit.TargetID == id {
		s.edit = nil
		s.editModal = false
	}
	return s
}

// CancelRemove dismisses the confirmation without touching the profiles.
func (s State) CancelRemove() State {
	s.pendingRemoval = ""
	return s
}

// DismissNotice closes the blocking notice.
func (s State) DismissNotice() State {
	s.notice = nil
	return s
}

// Rename sets the name of id. Blank names and calls made outside an edit
// session are ignored.
func (s State) Rename(id, name string) State {
	if s.edit == nil || s.edit.TargetID == "" {
		return s
	}
	if strings.TrimSpace(name) == "" {
		return s
	}
	i := s.indexOf(id)
	if i < 0 {
		return s
	}
	next := slices.Clone(s.profiles)
	next[i].Name = name
	s = s.withProfiles(next)
	if s.selected.ID == id {
		s.selected = next[i]
	}
	return s
}

// Select focuses id and closes the profile manager.
func (s State) Select(id string) State {
	i := s.indexOf(id)
	if i < 0 {
		return s
	}
	s.selected = s.profiles[i]
	s.profileModal = false
	return s
}
