package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jask/allowance/internal/database/repository"
	"github.com/jask/allowance/internal/home"
)

// ErrNoProfiles is returned when the seed catalog holds no profiles.
var ErrNoProfiles = errors.New("seed catalog has no profiles")

// Catalog is the seed data handed to the home screen once at startup.
type Catalog struct {
	Profiles []home.Profile
	Expenses []home.Expense
}

// LoadCatalog opens the catalog at path (MemoryPath when empty), applies the
// embedded migrations and reads every profile and expense. Nothing is
// written back afterwards.
func LoadCatalog(ctx context.Context, path string) (Catalog, error) {
	db, err := Open(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("open catalog: %w", err)
	}
	defer db.Close()

	if err := RunMigrations(db); err != nil {
		return Catalog{}, err
	}
	return ReadCatalog(ctx, db)
}

// ReadCatalog reads a migrated catalog database.
func ReadCatalog(ctx context.Context, db *sql.DB) (Catalog, error) {
	profiles, err := repository.NewProfileRepo(db).List(ctx)
	if err != nil {
		return Catalog{}, fmt.Errorf("list profiles: %w", err)
	}
	if len(profiles) == 0 {
		return Catalog{}, ErrNoProfiles
	}
	expenses, err := repository.NewExpenseRepo(db).List(ctx)
	if err != nil {
		return Catalog{}, fmt.Errorf("list expenses: %w", err)
	}

	c := Catalog{
		Profiles: make([]home.Profile, 0, len(profiles)),
		Expenses: make([]home.Expense, 0, len(expenses)),
	}
	for _, p := range profiles {
		c.Profiles = append(c.Profiles, home.Profile{ID: p.ID, Name: p.Name, Image: p.Image, Balance: p.Balance})
	}
	for _, e := range expenses {
		c.Expenses = append(c.Expenses, home.Expense{
			ID:          e.ID,
			Category:    e.Category,
			Description: e.Description,
			Amount:      e.Amount,
			Date:        e.DateLabel,
		})
	}
	return c, nil
}
