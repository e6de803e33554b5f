package home

// Profile is a child whose allowance the parent manages.
type Profile struct {
	ID      string
	Name    string
	Image   string
	Balance int64
}

// Expense is a past spend shown for context.
type Expense struct {
	ID          string
	Category    string
	Description string
	Amount      int64
	Date        string // display label, e.g. "Friday" or "2023-10-20"
}

// EditSession is the draft state of a rename.
type EditSession struct {
	TargetID    string
	PendingName string
}

// Notice is a blocking message the user has to dismiss.
type Notice struct {
	Title   string
	Message string
}

type ModalKind string

const (
	ModalNone     ModalKind = ""
	ModalProfiles ModalKind = "profiles"
	ModalEdit     ModalKind = "edit"
	ModalConfirm  ModalKind = "confirm"
	ModalNotice   ModalKind = "notice"
)
