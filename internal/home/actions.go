package home

// Action is a user intent fed to Reduce.
type Action interface {
	isAction()
}

type (
	OpenProfiles    struct{}
	DismissProfiles struct{}
	SelectProfile   struct{ ID string }
	AddProfile      struct{}
	RequestRemove   struct{ ID string }
	ConfirmRemove   struct{}
	CancelRemove    struct{}
	DismissNotice   struct{}
	OpenEdit        struct{ ID string }
	UpdateField     struct{ Text string }
	CommitEdit      struct{}
	CancelEdit      struct{}
)

func (OpenProfiles) isAction()    {}
func (DismissProfiles) isAction() {}
func (SelectProfile) isAction()   {}
func (AddProfile) isAction()      {}
func (RequestRemove) isAction()   {}
func (ConfirmRemove) isAction()   {}
func (CancelRemove) isAction()    {}
func (DismissNotice) isAction()   {}
func (OpenEdit) isAction()        {}
func (UpdateField) isAction()     {}
func (CommitEdit) isAction()      {}
func (CancelEdit) isAction()      {}

// Reduce applies a to s. While a notice or removal confirmation is showing
// only the action that resolves it is accepted; everything else returns s
// unchanged.
func Reduce(s State, a Action) State {
	if s.notice != nil {
		if _, ok := a.(DismissNotice); ok {
			return s.DismissNotice()
		}
		return s
	}
	if s.pendingRemoval != "" {
		switch a.(type) {
		case ConfirmRemove:
			return s.ConfirmRemove()
		case CancelRemove:
			return s.CancelRemove()
		}
		return s
	}

	switch a := a.(type) {
	case OpenProfiles:
		return s.OpenProfiles()
	case DismissProfiles:
		return s.DismissProfiles()
	case SelectProfile:
		return s.Select(a.ID)
	case AddProfile:
		return s.Add()
	case RequestRemove:
		return s.RequestRemove(a.ID)
	case OpenEdit:
		return s.OpenEdit(a.ID)
	case UpdateField:
		return s.UpdateField(a.Text)
	case CommitEdit:
		return s.CommitEdit()
	case CancelEdit:
		return s.CancelEdit()
	}
	return s
}

// ReduceAll folds actions over s in order.
func ReduceAll(s State, actions ...Action) State {
	for _, a := range actions {
		s = Reduce(s, a)
	}
	return s
}
