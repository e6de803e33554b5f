package home

// OpenProfiles shows the profile manager (header avatar tap).
func (s State) OpenProfiles() State {
	s.profileModal = true
	return s
}

// DismissProfiles hides the profile manager (backdrop tap). An edit modal
// sitting on top is treated as cancelled.
func (s State) DismissProfiles() State {
	s.profileModal = false
	return s.closeEdit()
}
