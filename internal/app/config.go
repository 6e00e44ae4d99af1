package app

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Default configuration constants
const (
	DefaultMinutes = 10
	DefaultStyle   = "default"
	DefaultChannel = "amplitude"
	DefaultZone    = "America/Denver"
)

// Config holds the generator configuration. Flag-only settings carry no
// yaml tag; flag values override the config file.
type Config struct {
	Zone    string `yaml:"zone"`
	Epoch   int    `yaml:"epoch"`
	Minutes int    `yaml:"minutes"`
	Style   string `yaml:"style"`
	Channel string `yaml:"channel"`

	IERS       bool `yaml:"-"`
	DUT1       int  `yaml:"-"`
	DUT1Set    bool `yaml:"-"`
	LeapSecond int  `yaml:"-"`
	LeapSet    bool `yaml:"-"`
	JSON       bool `yaml:"-"`
	Verbose    bool `yaml:"-"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Zone:    DefaultZone,
		Minutes: DefaultMinutes,
		Style:   DefaultStyle,
		Channel: DefaultChannel,
		IERS:    true,
	}
}

// LoadConfig reads a YAML config file over the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}
