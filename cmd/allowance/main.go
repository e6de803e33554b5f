package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/BurntSushi/toml"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/allowance/app"
	"github.com/jask/allowance/core"
	"github.com/jask/allowance/internal/config"
	"github.com/jask/allowance/internal/database"
	"github.com/jask/allowance/internal/logging"
)

func main() {
	configPath := flag.String("config", "", "config file (default ~/.config/allowance/config.toml)")
	seedPath := flag.String("seed", "", "seed catalog sqlite file (default in-memory sample data)")
	printKeys := flag.Bool("keys", false, "print the default key bindings as a [keys] table and exit")
	flag.Parse()

	if *printKeys {
		if err := printKeyTable(); err != nil {
			log.Fatalf("keys: %v", err)
		}
		return
	}

	ctx := context.Background()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *seedPath != "" {
		cfg.Seed.Path = *seedPath
	}

	closer, err := logging.Setup(cfg.Log.Path, cfg.Log.Level)
	if err != nil {
		log.Fatalf("logging: %v", err)
	}
	defer closer.Close()

	catalog, err := database.LoadCatalog(ctx, cfg.Seed.Path)
	if err != nil {
		slog.Error("load seed catalog", "path", cfg.Seed.Path, "err", err)
		log.Fatalf("seed: %v", err)
	}
	slog.Info("seed catalog loaded", "path", cfg.Seed.Path, "profiles", len(catalog.Profiles), "expenses", len(catalog.Expenses))

	model, err := app.NewModel(cfg, catalog)
	if err != nil {
		log.Fatalf("model: %v", err)
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		slog.Error("program exited", "err", err)
		fmt.Printf("error: %v\n", err)
		os.Exit(1)
	}
}

func printKeyTable() error {
	table := struct {
		Keys map[string][]string `toml:"keys"`
	}{Keys: core.DefaultKeybindingsByAction(core.DefaultKeyBindings())}
	return toml.NewEncoder(os.Stdout).Encode(table)
}
