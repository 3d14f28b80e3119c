package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config controls where state lives and which capabilities are active.
type Config struct {
	// DataDir holds tasks.json, users.json and session.json.
	DataDir string `mapstructure:"data_dir"`
	// AuthEnabled requires login and scopes tasks to the logged-in user.
	AuthEnabled bool `mapstructure:"auth_enabled"`
	// LogLevel is a logrus level name (debug, info, warn, error).
	LogLevel string `mapstructure:"log_level"`
}

// Default returns the configuration used when no config file exists:
// state under ~/.tasktracker, single-user mode, warnings only.
func Default() *Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return &Config{
		DataDir:     filepath.Join(home, ".tasktracker"),
		AuthEnabled: false,
		LogLevel:    "warn",
	}
}

// Load reads config.yaml from the default data directory, merged over
// Default(). A missing file is normal and yields the defaults.
func Load() (*Config, error) {
	return LoadFile(filepath.Join(Default().DataDir, "config.yaml"))
}

// LoadFile loads configuration from the given path merged over Default().
// Environment variables prefixed TASKTRACKER_ override file values.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("TASKTRACKER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetDefault("data_dir", cfg.DataDir)
	v.SetDefault("auth_enabled", cfg.AuthEnabled)
	v.SetDefault("log_level", cfg.LogLevel)

	if err := v.ReadInConfig(); err != nil {
		if !os.IsNotExist(err) {
			if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}
