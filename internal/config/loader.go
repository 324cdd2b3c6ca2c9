package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "MANIFESTVIEW_"

// ConfigPaths defines the config file search paths in priority order
var ConfigPaths = []string{
	"./.manifestview.yaml",               // Project-specific config (highest priority)
	"~/.config/manifestview/config.yaml", // User config
	"/etc/manifestview/config.yaml",      // System config (lowest priority)
}

// Loader handles configuration loading with priority merging
type Loader struct {
	configPaths []string
	warn        func(format string, args ...interface{})
}

// NewLoader creates a new config loader
func NewLoader() *Loader {
	return &Loader{
		configPaths: ConfigPaths,
		warn: func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, "Warning: "+format+"\n", args...)
		},
	}
}

// WithPaths replaces the search paths, highest priority first
func (l *Loader) WithPaths(paths ...string) *Loader {
	l.configPaths = paths
	return l
}

// WithWarnings routes warnings about unreadable config files
func (l *Loader) WithWarnings(warn func(format string, args ...interface{})) *Loader {
	l.warn = warn
	return l
}

// LoadConfig loads configuration from multiple sources with priority order:
// 1. Command line flags (handled by caller)
// 2. Environment variables
// 3. ./.manifestview.yaml
// 4. ~/.config/manifestview/config.yaml
// 5. /etc/manifestview/config.yaml
// 6. Built-in defaults
func (l *Loader) LoadConfig(customPath string) (*Config, error) {
	config := DefaultConfig()

	// A custom path replaces the search paths
	if customPath != "" {
		if err := validateConfigPath(customPath); err != nil {
			return nil, fmt.Errorf("invalid config path: %w", err)
		}
		if err := l.loadFromFile(config, customPath); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", customPath, err)
		}
	} else {
		// Lowest priority first, so later files win
		for i := len(l.configPaths) - 1; i >= 0; i-- {
			expandedPath := expandPath(l.configPaths[i])
			if !fileExists(expandedPath) {
				continue
			}
			if err := l.loadFromFile(config, expandedPath); err != nil {
				l.warn("failed to load config from %s: %v", expandedPath, err)
			}
		}
	}

	if err := l.applyEnvOverrides(config); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// loadFromFile decodes a YAML file over the existing config. Keys absent
// from the file keep their current value, so files layer over defaults and
// over each other; theme_tokens entries are merged.
func (l *Loader) loadFromFile(config *Config, path string) error {
	// #nosec G304 - path is validated by validateConfigPath() or comes from the fixed search paths
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	// Decode into a copy so a broken file leaves config untouched
	next := *config
	next.ThemeTokens = make(map[string]string, len(config.ThemeTokens))
	for k, v := range config.ThemeTokens {
		next.ThemeTokens[k] = v
	}
	if err := yaml.Unmarshal(data, &next); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}
	if next.ThemeTokens == nil {
		next.ThemeTokens = make(map[string]string)
	}

	*config = next
	return nil
}

// applyEnvOverrides applies environment variable overrides to the config
func (l *Loader) applyEnvOverrides(config *Config) error {
	envMappings := map[string]func(string) error{
		// UI Config
		"UI_THEME":      func(v string) error { config.UI.Theme = v; return nil },
		"UI_COLOR_MODE": func(v string) error { config.UI.ColorMode = v; return nil },
		"UI_GLYPHS":     func(v string) error { config.UI.Glyphs = v; return nil },
		"UI_ALT_SCREEN": func(v string) error { return parseBool(v, &config.UI.AltScreen) },
		"UI_MAX_WIDTH":  func(v string) error { return parseInt(v, &config.UI.MaxWidth) },

		// Manifest Config
		"MANIFEST_PATH":     func(v string) error { config.Manifest.Path = v; return nil },
		"MANIFEST_WATCH":    func(v string) error { return parseBool(v, &config.Manifest.Watch) },
		"MANIFEST_DEBOUNCE": func(v string) error { return parseDuration(v, &config.Manifest.Debounce) },

		// Output Config
		"OUTPUT_DEFAULT_FORMAT": func(v string) error { config.Output.DefaultFormat = v; return nil },
		"OUTPUT_VERBOSE":        func(v string) error { return parseBool(v, &config.Output.Verbose) },
		"OUTPUT_WIDTH":          func(v string) error { return parseInt(v, &config.Output.Width) },

		// Theme tokens as "token=color;token=light,dark"
		"THEME_TOKENS": func(v string) error { return parseTokens(v, config.ThemeTokens) },
	}

	for name, setter := range envMappings {
		envVar := EnvPrefix + name
		if value := os.Getenv(envVar); value != "" {
			if err := setter(value); err != nil {
				return fmt.Errorf("invalid value for %s: %w", envVar, err)
			}
		}
	}

	return nil
}

// GetConfigPaths returns the list of configuration file paths that will be searched
func GetConfigPaths() []string {
	paths := make([]string, 0, len(ConfigPaths))
	for _, path := range ConfigPaths {
		paths = append(paths, expandPath(path))
	}
	return paths
}

// FindConfigFile finds the first existing config file in the search paths
func FindConfigFile() (string, bool) {
	for _, path := range ConfigPaths {
		expandedPath := expandPath(path)
		if fileExists(expandedPath) {
			return expandedPath, true
		}
	}
	return "", false
}

// Helper functions

// validateConfigPath validates that a config path is safe to read
func validateConfigPath(path string) error {
	cleanPath := filepath.Clean(path)

	if strings.Contains(cleanPath, "..") {
		return fmt.Errorf("path traversal not allowed")
	}

	ext := strings.ToLower(filepath.Ext(cleanPath))
	if ext != ".yaml" && ext != ".yml" {
		return fmt.Errorf("config file must have .yaml or .yml extension")
	}

	absPath, err := filepath.Abs(cleanPath)
	if err != nil {
		return fmt.Errorf("failed to resolve absolute path: %w", err)
	}

	if strings.HasPrefix(absPath, "/proc/") || strings.HasPrefix(absPath, "/sys/") {
		return fmt.Errorf("access to system files not allowed")
	}

	return nil
}

// expandPath expands ~ to home directory
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

// fileExists checks if a file exists
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Type conversion helpers

func parseInt(s string, dst *int) error {
	val, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	*dst = val
	return nil
}

func parseBool(s string, dst *bool) error {
	val, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	*dst = val
	return nil
}

func parseDuration(s string, dst *time.Duration) error {
	val, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*dst = val
	return nil
}

func parseTokens(s string, dst map[string]string) error {
	for _, pair := range strings.Split(s, ";") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		token, color, ok := strings.Cut(pair, "=")
		token = strings.TrimSpace(token)
		if !ok || token == "" {
			return fmt.Errorf("expected token=color, got %q", pair)
		}
		dst[token] = strings.TrimSpace(color)
	}
	return nil
}
