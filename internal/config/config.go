package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"nmeafield/internal/nmea"
)

type Config struct {
	// Source is the navigation system stamped on decoded records.
	Source string       `yaml:"source"`
	Output OutputConfig `yaml:"output"`
}

type OutputConfig struct {
	// Format is one of pretty, json or yaml.
	Format string `yaml:"format"`
	// Color is one of auto, on or off. Only pretty output is coloured.
	Color string `yaml:"color"`
}

var (
	formats = []string{"pretty", "json", "yaml"}
	colors  = []string{"auto", "on", "off"}
)

// Default returns the configuration used when no file is present.
func Default() Config {
	cfg := Config{}
	applyDefaults(&cfg)
	return cfg
}

// Load reads and validates a YAML config. When optional is true a missing
// file yields Default instead of an error.
func Load(path string, optional bool) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, err
	}

	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, err
	}
	applyDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	cfg.Source = strings.ToLower(strings.TrimSpace(cfg.Source))
	cfg.Output.Format = strings.ToLower(strings.TrimSpace(cfg.Output.Format))
	cfg.Output.Color = strings.ToLower(strings.TrimSpace(cfg.Output.Color))

	if cfg.Source == "" {
		cfg.Source = "gnss"
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = "pretty"
	}
	if cfg.Output.Color == "" {
		cfg.Output.Color = "auto"
	}
}

// Validate checks enumerated settings. It is also used after command-line
// overrides are applied.
func (c Config) Validate() error {
	if _, err := nmea.LookupSource(c.Source); err != nil {
		return fmt.Errorf("source %q is not a known navigation system", c.Source)
	}
	if !oneOf(c.Output.Format, formats) {
		return fmt.Errorf("output.format must be one of %s", strings.Join(formats, "|"))
	}
	if !oneOf(c.Output.Color, colors) {
		return fmt.Errorf("output.color must be one of %s", strings.Join(colors, "|"))
	}
	return nil
}

// NavSource resolves Source. Call Validate first.
func (c Config) NavSource() nmea.Source {
	s, err := nmea.LookupSource(c.Source)
	if err != nil {
		return nmea.SourceGNSS
	}
	return s
}

func oneOf(v string, allowed []string) bool {
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}
