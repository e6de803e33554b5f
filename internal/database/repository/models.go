package repository

// Profile represents a profiles row.
type Profile struct {
	ID        string
	Name      string
	Image     string
	Balance   int64
	SortOrder int
}

// Expense represents an expenses row.
type Expense struct {
	ID          string
	Category    string
	Description string
	Amount      int64
	DateLabel   string
	SortOrder   int
}
