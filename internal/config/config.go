// Package config provides configuration management for cmdheat
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"cmdheat/internal/command"
)

// Config holds all configuration for the application
type Config struct {
	Display DisplayConfig `mapstructure:"display"`
	History HistoryConfig `mapstructure:"history"`
	Fuzzy   FuzzyConfig   `mapstructure:"fuzzy"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// DisplayConfig holds report display settings
type DisplayConfig struct {
	Mode     string `mapstructure:"mode"`      // exact, fuzzy or heat
	Count    int    `mapstructure:"count"`     // rows to show
	BarWidth int    `mapstructure:"bar_width"` // bar canvas width, 0 = auto
}

// HistoryConfig holds history source settings
type HistoryConfig struct {
	Flavor string `mapstructure:"flavor"` // bash, zsh or empty for auto-detect
	File   string `mapstructure:"file"`   // explicit history file path
}

// FuzzyConfig holds fuzzy grouping settings
type FuzzyConfig struct {
	// Verbs extend a fuzzy signature past the first token. Tunable: the
	// boundary between "subcommand" and "argument" is a heuristic.
	Verbs []string `mapstructure:"verbs"`
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

var (
	// globalConfig holds the global configuration instance
	globalConfig *Config
)

// Load loads the configuration from file and environment variables.
// A missing config file is not an error; defaults apply.
func Load(path string) (*Config, error) {
	if path == "" {
		path = defaultConfigPath()
	}

	viper.SetConfigFile(path)
	viper.SetConfigType("yaml")

	setDefaults()

	viper.SetEnvPrefix("CMDHEAT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if !os.IsNotExist(err) {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	globalConfig = &cfg
	return &cfg, nil
}

// Get returns the global configuration instance
func Get() *Config {
	if globalConfig == nil {
		cfg, err := Load("")
		if err != nil {
			return &Config{}
		}
		return cfg
	}
	return globalConfig
}

// Set updates the global configuration
func Set(cfg *Config) {
	globalConfig = cfg
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("display.mode", "fuzzy")
	viper.SetDefault("display.count", 10)
	viper.SetDefault("display.bar_width", 8)

	viper.SetDefault("history.flavor", "")
	viper.SetDefault("history.file", "")

	viper.SetDefault("fuzzy.verbs", command.DefaultVerbs())

	viper.SetDefault("logging.level", "info")
}

// defaultConfigPath returns the default configuration file path
func defaultConfigPath() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "cmdheat", "config.yaml")
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".cmdheat.yaml"
	}
	return filepath.Join(homeDir, ".config", "cmdheat", "config.yaml")
}
