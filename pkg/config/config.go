// Package config is a single flattened, YAML-backed configuration
// struct for the demo/diagnostics binary — the teacher's SimpleConfig
// idiom, not the many-nested-struct style it replaced. Only what
// genuinely varies at runtime lives here; the per-topic compile-time
// knobs (MAX_TOPICS, MAX_SUBSCRIBERS, each topic's ring depth N) stay
// Go constants at topic-declaration sites, since a YAML value can't
// resize a slice that was already allocated when topics were declared.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the process's runtime-mutable settings.
type Config struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`

	DiagnosticsEnabled bool   `yaml:"diagnostics_enabled"`
	DiagnosticsCron    string `yaml:"diagnostics_cron"`
}

// Defaults returns a Config with sensible defaults, matching the
// teacher's GetDefaults convention.
func Defaults() *Config {
	return &Config{
		LogLevel:           "info",
		LogFormat:          "text",
		DiagnosticsEnabled: false,
		DiagnosticsCron:    "@every 30s",
	}
}

// Load reads and parses path on top of Defaults: a field the file does
// not set keeps its default value. A missing file is not an error:
// Load returns Defaults()
// unchanged, so the binary runs with sane settings out of the box.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyMutable copies only the fields a hot-reload is allowed to
// touch (log level/format, diagnostics toggle, diagnostics cron
// schedule) from next into c. Compile-time topic knobs have no field
// here at all, so there is nothing for a reload to accidentally
// clobber.
func (c *Config) ApplyMutable(next *Config) {
	c.LogLevel = next.LogLevel
	c.LogFormat = next.LogFormat
	c.DiagnosticsEnabled = next.DiagnosticsEnabled
	c.DiagnosticsCron = next.DiagnosticsCron
}
