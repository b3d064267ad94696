// File: config.go
// Title: Core Configuration Management Implementation
// Description: Implements the Config type for loading, parsing, and
//              accessing scanparse configuration from TOML and YAML files
//              with environment variable overrides. Materializes the typed
//              Settings consumed by the engine and CLI.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-12
// Modified: 2025-08-12
//
// Change History:
// - 2025-08-12 v0.1.0: Initial implementation with TOML/YAML support

package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	sperror "github.com/msto63/scanparse/core/error"
)

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML

	// FormatAuto auto-detects format from file extension
	FormatAuto
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// EnvPrefix is the prefix for environment variable overrides
const EnvPrefix = "SCANPARSE"

// Config represents a configuration instance with thread-safe access
type Config struct {
	mu        sync.RWMutex
	data      map[string]interface{}
	filePath  string
	format    Format
	envPrefix string
}

// New creates an empty configuration
func New() *Config {
	return &Config{
		data:      make(map[string]interface{}),
		format:    FormatTOML,
		envPrefix: EnvPrefix,
	}
}

// LoadFile loads configuration from the given file
// The format is auto-detected from the file extension
func LoadFile(path string) (*Config, error) {
	cfg := New()
	if err := cfg.loadFile(path, FormatAuto); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadFile reads and parses a configuration file into the data map
func (c *Config) loadFile(path string, format Format) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return sperror.Wrap(err, "cannot read configuration file").
			WithCode(sperror.CodeConfigError).
			WithDetail("path", path)
	}

	if format == FormatAuto {
		format = detectFormat(path)
	}

	data := make(map[string]interface{})

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(raw, &data); err != nil {
			return sperror.Wrap(err, "cannot parse YAML configuration").
				WithCode(sperror.CodeInvalidConfig).
				WithDetail("path", path)
		}
	default:
		if err := toml.Unmarshal(raw, &data); err != nil {
			return sperror.Wrap(err, "cannot parse TOML configuration").
				WithCode(sperror.CodeInvalidConfig).
				WithDetail("path", path)
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = data
	c.filePath = path
	c.format = format

	return nil
}

// detectFormat determines the format from the file extension
func detectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// FilePath returns the path the configuration was loaded from
func (c *Config) FilePath() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filePath
}

// Get returns the value at the given dot-notation key, e.g. "output.color"
// Environment overrides take precedence: SCANPARSE_OUTPUT_COLOR
func (c *Config) Get(key string) (interface{}, bool) {
	if env, ok := c.envOverride(key); ok {
		return env, true
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	parts := strings.Split(key, ".")
	current := interface{}(c.data)

	for _, part := range parts {
		m, ok := toStringMap(current)
		if !ok {
			return nil, false
		}
		current, ok = m[part]
		if !ok {
			return nil, false
		}
	}

	return current, true
}

// toStringMap normalizes the map types produced by the TOML and YAML parsers
func toStringMap(v interface{}) (map[string]interface{}, bool) {
	switch m := v.(type) {
	case map[string]interface{}:
		return m, true
	default:
		return nil, false
	}
}

// envOverride checks for an environment variable override of the key
func (c *Config) envOverride(key string) (string, bool) {
	name := c.envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	return os.LookupEnv(name)
}

// GetString returns the string value at the key, or the fallback
func (c *Config) GetString(key, fallback string) string {
	v, ok := c.Get(key)
	if !ok {
		return fallback
	}

	switch s := v.(type) {
	case string:
		return s
	default:
		return fallback
	}
}

// GetBool returns the boolean value at the key, or the fallback
func (c *Config) GetBool(key string, fallback bool) bool {
	v, ok := c.Get(key)
	if !ok {
		return fallback
	}

	switch b := v.(type) {
	case bool:
		return b
	case string:
		parsed, err := strconv.ParseBool(b)
		if err != nil {
			return fallback
		}
		return parsed
	default:
		return fallback
	}
}

// GetInt returns the integer value at the key, or the fallback
func (c *Config) GetInt(key string, fallback int) int {
	v, ok := c.Get(key)
	if !ok {
		return fallback
	}

	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	case string:
		parsed, err := strconv.Atoi(n)
		if err != nil {
			return fallback
		}
		return parsed
	default:
		return fallback
	}
}

// Settings holds the typed configuration consumed by the engine and CLI
type Settings struct {
	// LogLevel is the minimum log level name (trace..fatal)
	LogLevel string

	// LogFormat is the log output format name (json, text, console)
	LogFormat string

	// Color enables colorized tree rendering
	Color bool

	// KeepGoing continues past syntax errors instead of failing fast
	KeepGoing bool

	// MaxLineLength bounds the accepted input line length in runes
	MaxLineLength int
}

// DefaultSettings returns the settings used without a configuration file
func DefaultSettings() Settings {
	return Settings{
		LogLevel:      "info",
		LogFormat:     "text",
		Color:         false,
		KeepGoing:     false,
		MaxLineLength: 4096,
	}
}

// Settings materializes typed settings from the configuration
// Missing keys keep their defaults
func (c *Config) Settings() Settings {
	s := DefaultSettings()

	s.LogLevel = c.GetString("log.level", s.LogLevel)
	s.LogFormat = c.GetString("log.format", s.LogFormat)
	s.Color = c.GetBool("output.color", s.Color)
	s.KeepGoing = c.GetBool("run.keep_going", s.KeepGoing)
	s.MaxLineLength = c.GetInt("run.max_line_length", s.MaxLineLength)

	return s
}

// Discover searches the standard locations for a configuration file
// Returns the empty string when none exists
func Discover() string {
	candidates := []string{
		"scanparse.toml",
		"scanparse.yaml",
		filepath.Join("configs", "scanparse.toml"),
	}

	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates,
			filepath.Join(home, ".config", "scanparse", "scanparse.toml"))
	}

	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
	}

	return ""
}
