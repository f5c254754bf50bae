// Package config holds the console settings that are resolved once at start-up:
// glyph profile, colour theme, log level and input history.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/gothello/gothello/core"
)

// RelPath is the location of the config file below the XDG config directories.
const RelPath = "gothello/config.yaml"

// HistoryRelPath is the location of the input history below the XDG data directory.
const HistoryRelPath = "gothello/history"

type Config struct {
	Profile  string `yaml:"profile" validate:"required,oneof=symbols ascii"`
	Theme    string `yaml:"theme" validate:"required,oneof=off green gray"`
	LogLevel string `yaml:"log-level" validate:"required,oneof=panic fatal error warn warning info debug trace"`
	History  bool   `yaml:"history"`
}

func NewConfig() *Config {
	return &Config{
		Profile:  "symbols",
		Theme:    "green",
		LogLevel: "info",
		History:  true,
	}
}

var validate = validator.New()

// Validate reports every invalid field, wrapped in core.ErrInvalidConfig.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", core.ErrInvalidConfig, err)
	}

	var details strings.Builder
	for _, e := range verrs {
		if details.Len() > 0 {
			details.WriteString("; ")
		}
		switch e.Tag() {
		case "required":
			details.WriteString(fmt.Sprintf("%s is required", e.Field()))
		case "oneof":
			details.WriteString(fmt.Sprintf("%s must be one of [%s], got %q", e.Field(), e.Param(), e.Value()))
		default:
			details.WriteString(fmt.Sprintf("%s failed %s validation", e.Field(), e.Tag()))
		}
	}
	return fmt.Errorf("%w: %s", core.ErrInvalidConfig, details.String())
}

// Load reads the config file at path over the defaults. An empty path means the file
// found in the XDG config directories, if any; a missing XDG file is not an error.
func Load(path string) (*Config, error) {
	cfg := NewConfig()

	if path == "" {
		found, err := xdg.SearchConfigFile(RelPath)
		if err != nil {
			return cfg, nil
		}
		path = found
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", core.ErrInvalidConfig, path, err)
	}
	return cfg, nil
}

// HistoryFile returns the readline history path, creating its directory.
// It returns "" when history is disabled.
func (c *Config) HistoryFile() (string, error) {
	if !c.History {
		return "", nil
	}
	path, err := xdg.DataFile(HistoryRelPath)
	if err != nil {
		return "", fmt.Errorf("history file: %w", err)
	}
	return path, nil
}
