package app

import (
	"fmt"

	"github.com/jask/allowance/core"
	"github.com/jask/allowance/internal/config"
	"github.com/jask/allowance/internal/database"
	"github.com/jask/allowance/internal/home"
	"github.com/jask/allowance/screens"
)

// NewModel seeds the home state from catalog and assembles the UI around it.
func NewModel(cfg config.Config, catalog database.Catalog) (core.Model, error) {
	state, err := home.New(catalog.Profiles, catalog.Expenses, home.Options{
		IDs:          home.SourceByName(cfg.Profile.IDSource),
		DefaultName:  cfg.Profile.DefaultName,
		DefaultImage: cfg.Profile.DefaultImage,
	})
	if err != nil {
		return core.Model{}, fmt.Errorf("seed home state: %w", err)
	}

	keys := core.NewKeyRegistry(core.ApplyActionKeybindings(core.DefaultKeyBindings(), cfg.Keys))
	display := core.Display{CurrencySymbol: cfg.UI.CurrencySymbol, CurrencyCode: cfg.UI.CurrencyCode}

	return core.NewModel(
		state,
		screens.NewHomeScreen(keys, display),
		screens.Overlays(keys, display),
		keys,
		core.NewCommandRegistry(core.DefaultCommands()),
	), nil
}
