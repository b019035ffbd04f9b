// Package config provides configuration for the dns-compare tool.
//
// Configuration is optional: everything has a usable default and the CLI
// can run from flags and prompts alone. When a YAML file is given (by flag
// or via the DNS_COMPARE_CONFIG environment variable) it is decoded and
// then normalized by Validate.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/goccy/go-yaml"

	"github.com/benloeffel/dns-compare/internal/resolver"
)

// Resolver modes.
const (
	ModeDig    = "dig"    // shell out to the dig binary
	ModeClient = "client" // native resolution via miekg/dns
)

// Config is the full tool configuration.
type Config struct {
	Resolver    ResolverConfig `yaml:"resolver" json:"resolver"`
	Output      OutputConfig   `yaml:"output" json:"output"`
	History     HistoryConfig  `yaml:"history" json:"history"`
	API         APIConfig      `yaml:"api" json:"api"`
	Logging     LoggingConfig  `yaml:"logging" json:"logging"`
	RecordTypes []string       `yaml:"record_types" json:"record_types"`
}

// ResolverConfig selects and tunes the resolution mechanism.
type ResolverConfig struct {
	Mode    string `yaml:"mode" json:"mode"`       // "dig" or "client"
	Binary  string `yaml:"binary" json:"binary"`   // dig executable, dig mode only
	Timeout string `yaml:"timeout" json:"timeout"` // e.g. "5s", client mode only
}

// OutputConfig controls rendering and export.
type OutputConfig struct {
	Dir     string   `yaml:"dir" json:"dir"`         // export directory
	Formats []string `yaml:"formats" json:"formats"` // "csv", "json"
	NoColor bool     `yaml:"no_color" json:"no_color"`
}

// HistoryConfig enables the SQLite run history when Path is set.
type HistoryConfig struct {
	Path string `yaml:"path" json:"path"`
}

// APIConfig configures the history API server.
type APIConfig struct {
	Host   string `yaml:"host" json:"host"`
	Port   int    `yaml:"port" json:"port"`
	APIKey string `yaml:"api_key" json:"-"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level" json:"level"`
	Format string `yaml:"format" json:"format"` // "text" or "json"
}

// Load reads and validates the config at path. An empty path yields the
// validated defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ResolveConfigPath picks the config path: explicit flag first, then the
// DNS_COMPARE_CONFIG environment variable, else empty (defaults).
func ResolveConfigPath(flagValue string) string {
	if v := strings.TrimSpace(flagValue); v != "" {
		return v
	}
	return strings.TrimSpace(os.Getenv("DNS_COMPARE_CONFIG"))
}

// Validate validates and normalizes the configuration in place.
func (cfg *Config) Validate() error {
	// Resolver
	cfg.Resolver.Mode = strings.ToLower(strings.TrimSpace(cfg.Resolver.Mode))
	if cfg.Resolver.Mode == "" {
		cfg.Resolver.Mode = ModeDig
	}
	if cfg.Resolver.Mode != ModeDig && cfg.Resolver.Mode != ModeClient {
		return fmt.Errorf("resolver.mode must be %q or %q", ModeDig, ModeClient)
	}
	if cfg.Resolver.Binary == "" {
		cfg.Resolver.Binary = "dig"
	}
	if cfg.Resolver.Timeout == "" {
		cfg.Resolver.Timeout = "5s"
	}
	if _, err := time.ParseDuration(cfg.Resolver.Timeout); err != nil {
		return fmt.Errorf("resolver.timeout is not a duration: %w", err)
	}

	// Output
	if cfg.Output.Dir == "" {
		cfg.Output.Dir = "logs"
	}
	if len(cfg.Output.Formats) == 0 {
		cfg.Output.Formats = []string{"csv"}
	}
	for i, f := range cfg.Output.Formats {
		f = strings.ToLower(strings.TrimSpace(f))
		if f != "csv" && f != "json" {
			return fmt.Errorf("output.formats: unsupported format %q", cfg.Output.Formats[i])
		}
		cfg.Output.Formats[i] = f
	}

	// API
	if cfg.API.Host == "" {
		cfg.API.Host = "127.0.0.1"
	}
	if cfg.API.Port == 0 {
		cfg.API.Port = 8053
	}
	if cfg.API.Port < 0 || cfg.API.Port > 65535 {
		return errors.New("api.port must be 1..65535")
	}

	// Logging
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "INFO"
	}
	cfg.Logging.Level = strings.ToUpper(cfg.Logging.Level)
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}

	// Record types
	if len(cfg.RecordTypes) == 0 {
		for _, t := range resolver.DefaultRecordTypes() {
			cfg.RecordTypes = append(cfg.RecordTypes, string(t))
		}
		return nil
	}
	for i, s := range cfg.RecordTypes {
		t, err := resolver.ParseRecordType(s)
		if err != nil {
			return fmt.Errorf("record_types: %w", err)
		}
		cfg.RecordTypes[i] = string(t)
	}
	return nil
}

// Types returns the configured record types. Only valid after Validate.
func (cfg *Config) Types() []resolver.RecordType {
	types := make([]resolver.RecordType, len(cfg.RecordTypes))
	for i, s := range cfg.RecordTypes {
		types[i] = resolver.RecordType(s)
	}
	return types
}

// ResolverTimeout returns the parsed resolver timeout. Only valid after
// Validate.
func (cfg *Config) ResolverTimeout() time.Duration {
	d, _ := time.ParseDuration(cfg.Resolver.Timeout)
	return d
}
