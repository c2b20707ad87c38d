// Package config loads and saves wallet settings from a TOML file.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all wallet configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Storage    StorageConfig    `toml:"storage"`
	Server     ServerConfig     `toml:"server"`
	Log        LogConfig        `toml:"log"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// GeneralConfig holds projection defaults.
type GeneralConfig struct {
	HorizonEndDay        int     `toml:"horizon_end_day"`
	DefaultSavingGoal    float64 `toml:"default_saving_goal"`
	DefaultDailySpending float64 `toml:"default_daily_spending"`
	CurrencySymbol       string  `toml:"currency_symbol"`
}

// StorageConfig says where history and inputs live.
type StorageConfig struct {
	DataDir        string `toml:"data_dir,omitempty"`
	HistoryBackend string `toml:"history_backend"`
}

// ServerConfig holds web form settings.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			HorizonEndDay:        30,
			DefaultSavingGoal:    700,
			DefaultDailySpending: 7,
			CurrencySymbol:       "€",
		},
		Storage: StorageConfig{
			HistoryBackend: "csv",
		},
		Server: ServerConfig{
			Addr: "127.0.0.1:8501",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "wallet")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "wallet")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// DefaultDataDir returns the XDG-compliant data directory.
func DefaultDataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "wallet")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "wallet")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	return LoadFrom(ConfigPath())
}

// LoadFrom reads the config at path, applies env overrides and validates it.
func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err == nil {
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config: %w", err)
		}
	}

	applyEnv(&cfg)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	return SaveTo(ConfigPath(), cfg)
}

// SaveTo writes cfg to path.
func SaveTo(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	return ExistsAt(ConfigPath())
}

// ExistsAt reports whether a config file exists at path.
func ExistsAt(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Validate rejects settings the projection cannot work with.
func (c Config) Validate() error {
	if c.General.HorizonEndDay < 1 || c.General.HorizonEndDay > 31 {
		return fmt.Errorf("general.horizon_end_day must be between 1 and 31, got %d", c.General.HorizonEndDay)
	}
	switch c.Storage.HistoryBackend {
	case "csv", "sqlite":
	default:
		return fmt.Errorf("storage.history_backend must be \"csv\" or \"sqlite\", got %q", c.Storage.HistoryBackend)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be \"text\" or \"json\", got %q", c.Log.Format)
	}
	return nil
}

// DataDir returns the configured data directory or the XDG default.
func (c Config) DataDir() string {
	if c.Storage.DataDir != "" {
		return c.Storage.DataDir
	}
	return DefaultDataDir()
}

func applyEnv(cfg *Config) {
	if dir := os.Getenv("WALLET_DATA_DIR"); dir != "" {
		cfg.Storage.DataDir = dir
	}
	if lvl := os.Getenv("WALLET_LOG_LEVEL"); lvl != "" {
		cfg.Log.Level = lvl
	}
}
