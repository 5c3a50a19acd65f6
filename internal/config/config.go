// Package config loads tada settings from TOML files and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

const (
	projectFileName = ".tada.toml"
	DefaultFile     = "todo.json"
)

// Themes lists the names accepted by Config.Theme.
var Themes = []string{"classic", "neon", "mono"}

type Config struct {
	// File is the JSON file holding the todo. Relative paths resolve
	// against the working directory.
	File     string `toml:"file"`
	Theme    string `toml:"theme"`
	LogLevel string `toml:"log_level"`
	NoColor  bool   `toml:"no_color"`
}

func Default() *Config {
	return &Config{
		File:     DefaultFile,
		Theme:    "classic",
		LogLevel: "warn",
	}
}

// Load loads configuration from multiple sources in priority order:
// 1. Defaults
// 2. User config file ($XDG_CONFIG_HOME/tada/config.toml)
// 3. Project config file (.tada.toml in dir)
// 4. Environment variables
//
// Command-line flags are applied on top by the caller.
func Load(dir string) (*Config, error) {
	return load(dir, os.Getenv, userConfigFile(os.Getenv))
}

func load(dir string, getenv func(string) string, userFile string) (*Config, error) {
	cfg := Default()

	if userFile != "" {
		if err := loadFile(cfg, userFile); err != nil {
			return nil, fmt.Errorf("loading user config file %s: %w", userFile, err)
		}
	}
	projectFile := filepath.Join(dir, projectFileName)
	if err := loadFile(cfg, projectFile); err != nil {
		return nil, fmt.Errorf("loading project config file %s: %w", projectFile, err)
	}

	loadFromEnv(cfg, getenv)
	return cfg, nil
}

// loadFile decodes path over cfg. A missing file is not an error.
func loadFile(cfg *Config, path string) error {
	_, err := toml.DecodeFile(path, cfg)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

func loadFromEnv(cfg *Config, getenv func(string) string) {
	if v := getenv("TADA_FILE"); v != "" {
		cfg.File = v
	}
	if v := getenv("TADA_THEME"); v != "" {
		cfg.Theme = v
	}
	if v := getenv("TADA_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if getenv("NO_COLOR") != "" || getenv("TADA_NO_COLOR") != "" {
		cfg.NoColor = true
	}
}

func userConfigFile(getenv func(string) string) string {
	if xdg := getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "tada", "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "tada", "config.toml")
}

// Validate checks that every field holds a usable value.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.File) == "" {
		return errors.New("file: must not be empty")
	}
	if !validTheme(c.Theme) {
		return fmt.Errorf("theme: %q is not one of %s", c.Theme, strings.Join(Themes, ", "))
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	return nil
}

func validTheme(name string) bool {
	for _, t := range Themes {
		if strings.EqualFold(t, name) {
			return true
		}
	}
	return false
}
