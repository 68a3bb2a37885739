// Package config persists the tool's global configuration under the
// user's home directory.
package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// Config is the global planview configuration.
type Config struct {
	CalendarPath string `json:"calendar_path,omitempty"`
}

// Dir returns the global planview config directory.
func Dir(homeDir string) string {
	return filepath.Join(homeDir, ".planview")
}

// Path returns the path to the global config.json.
func Path(homeDir string) string {
	return filepath.Join(Dir(homeDir), "config.json")
}

// CalendarFilePath returns the default location for the persisted
// calendar YAML.
func CalendarFilePath(homeDir string) string {
	return filepath.Join(Dir(homeDir), "calendar.yaml")
}

// Read reads the global configuration. Returns a zero config if the
// file does not exist.
func Read(homeDir string) (*Config, error) {
	data, err := os.ReadFile(Path(homeDir))
	if errors.Is(err, os.ErrNotExist) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Write writes the global configuration, creating the directory if
// needed.
func Write(homeDir string, cfg *Config) error {
	if err := os.MkdirAll(Dir(homeDir), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(Path(homeDir), data, 0644)
}
