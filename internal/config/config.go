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
	Store StoreConfig
	UI    UIConfig
	Log   LogConfig
}

// StoreConfig selects the durable key-value backend.
type StoreConfig struct {
	Backend string // json | sqlite | memory
	Path    string // data directory shared by the json and sqlite backends
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Theme string // classic | neon | mono
}

// LogConfig controls the file logger. An empty File disables logging.
type LogConfig struct {
	Level string
	File  string
}

const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Load reads configuration from file and env. Env var overrides use prefix FEEDBACK_.
// The result is not validated.
func Load() (Config, error) {
	home, _ := os.UserHomeDir()

	v := viper.New()

	v.SetDefault("store.backend", BackendJSON)
	v.SetDefault("store.path", filepath.Join(home, ".local", "share", "feedback"))
	v.SetDefault("ui.theme", "classic")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", filepath.Join(home, ".local", "state", "feedback", "feedback.log"))

	v.SetConfigType("toml")

	if cfgPath := os.Getenv("FEEDBACK_CONFIG"); cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(home, ".config", "feedback"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("FEEDBACK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Validate rejects unknown backends. Callers run it once flags have been
// applied on top of Load.
func (c Config) Validate() error {
	switch c.Store.Backend {
	case BackendJSON, BackendSQLite, BackendMemory:
	default:
		return fmt.Errorf("store.backend: unknown backend %q", c.Store.Backend)
	}
	if c.Store.Backend != BackendMemory && c.Store.Path == "" {
		return errors.New("store.path is required")
	}
	return nil
}
