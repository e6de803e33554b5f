package home

import "slices"

// Expenses returns the catalog in seed order. It is the same list whatever
// profile is selected.
func (s State) Expenses() []Expense { return slices.Clone(s.expenses) }

// ExpenseTotal sums every expense in the catalog.
func (s State) ExpenseTotal() int64 {
	var total int64
	for _, e := range s.expenses {
		total += e.Amount
	}
	return total
}
