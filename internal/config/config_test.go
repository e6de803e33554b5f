package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("ALLOWANCE_CONFIG", "")
	return home
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, ":memory:", cfg.Seed.Path)
	require.Equal(t, "Teen", cfg.Profile.DefaultName)
	require.Equal(t, "uuid", cfg.Profile.IDSource)
	require.Equal(t, "₱", cfg.UI.CurrencySymbol)
	require.Equal(t, "PHP", cfg.UI.CurrencyCode)
	require.Empty(t, cfg.Keys)
}

func TestLoadFileAndEnv(t *testing.T) {
	home := isolate(t)
	dir := filepath.Join(home, ".config", "allowance")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	body := `
[ui]
currency_symbol = "$"
currency_code = "USD"

[profile]
default_name = "Kid"

[keys]
quit = ["ctrl+q"]
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(body), 0o644))
	t.Setenv("ALLOWANCE_SEED_PATH", "/tmp/catalog.db")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "$", cfg.UI.CurrencySymbol)
	require.Equal(t, "USD", cfg.UI.CurrencyCode)
	require.Equal(t, "Kid", cfg.Profile.DefaultName)
	require.Equal(t, "/tmp/catalog.db", cfg.Seed.Path)
	require.Equal(t, []string{"ctrl+q"}, cfg.Keys["quit"])
}

func TestLoadExplicitPath(t *testing.T) {
	home := isolate(t)
	path := filepath.Join(home, "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte("[log]\nlevel = \"debug\"\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadMissingExplicitPathFails(t *testing.T) {
	home := isolate(t)
	_, err := Load(filepath.Join(home, "nope.toml"))
	require.Error(t, err)
}
