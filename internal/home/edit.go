package home

// OpenEdit starts a rename of id seeded with its current name.
func (s State) OpenEdit(id string) State {
	p, ok := s.Profile(id)
	if !ok {
		return s
	}
	s.edit = &EditSession{TargetID: p.ID, PendingName: p.Name}
	s.editModal = true
	return s
}

// UpdateField replaces the draft name. Any text is accepted here.
func (s State) UpdateField(text string) State {
	if s.edit == nil {
		return s
	}
	s.edit = &EditSession{TargetID: s.edit.TargetID, PendingName: text}
	return s
}

// CommitEdit applies the draft through Rename and closes the edit modal,
// whether or not the rename took effect.
func (s State) CommitEdit() State {
	if s.edit != nil {
		s = s.Rename(s.edit.TargetID, s.edit.PendingName)
	}
	return s.closeEdit()
}

// CancelEdit drops the draft.
func (s State) CancelEdit() State {
	return s.closeEdit()
}

func (s State) closeEdit() State {
	s.edit = nil
	s.editModal = false
	return s
}
