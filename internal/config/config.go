package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Seed    SeedConfig
	Profile ProfileConfig
	UI      UIConfig
	Log     LogConfig
	Keys    map[string][]string
}

// SeedConfig points at the catalog the screen is seeded from.
type SeedConfig struct {
	Path string
}

// ProfileConfig holds the placeholders used for newly added profiles.
type ProfileConfig struct {
	DefaultName  string `mapstructure:"default_name"`
	DefaultImage string `mapstructure:"default_image"`
	IDSource     string `mapstructure:"id_source"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	CurrencySymbol string `mapstructure:"currency_symbol"`
	CurrencyCode   string `mapstructure:"currency_code"`
}

// LogConfig controls the log file. The terminal belongs to the UI.
type LogConfig struct {
	Path  string
	Level string
}

// Load reads configuration from file and env. Env var overrides use prefix ALLOWANCE_.
// An explicit path wins over ALLOWANCE_CONFIG.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("seed.path", ":memory:")
	v.SetDefault("profile.default_name", "Teen")
	v.SetDefault("profile.default_image", "https://wallpapers.com/images/hd/placeholder-profile-icon-20tehfawxt5eihco.jpg")
	v.SetDefault("profile.id_source", "uuid")
	v.SetDefault("ui.currency_symbol", "₱")
	v.SetDefault("ui.currency_code", "PHP")
	v.SetDefault("log.path", filepath.Join(os.TempDir(), "allowance.log"))
	v.SetDefault("log.level", "")

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv("ALLOWANCE_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "allowance"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("ALLOWANCE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		// a missing default file is fine, a broken or missing explicit one is not
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
