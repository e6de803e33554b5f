package repository

import (
	"context"
	"database/sql"
)

// ExpenseRepo reads the expense catalog.
type ExpenseRepo struct {
	db *sql.DB
}

func NewExpenseRepo(db *sql.DB) *ExpenseRepo { return &ExpenseRepo{db: db} }

func (r *ExpenseRepo) Insert(ctx context.Context, e Expense) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO expenses(id, category, description, amount, date_label, sort_order)
	VALUES (?, ?, ?, ?, ?, ?);
	`, e.ID, e.Category, e.Description, e.Amount, e.DateLabel, e.SortOrder)
	return err
}

// List returns expenses in insertion order. No sort beyond that is applied.
func (r *ExpenseRepo) List(ctx context.Context) ([]Expense, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, category, description, amount, date_label, sort_order FROM expenses ORDER BY sort_order, rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Expense
	for rows.Next() {
		var e Expense
		if err := rows.Scan(&e.ID, &e.Category, &e.Description, &e.Amount, &e.DateLabel, &e.SortOrder); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
