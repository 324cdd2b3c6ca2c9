package config

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// Config holds the complete application configuration
type Config struct {
	Version     string            `yaml:"version" json:"version"`
	UI          UIConfig          `yaml:"ui" json:"ui"`
	Manifest    ManifestConfig    `yaml:"manifest" json:"manifest"`
	Output      OutputConfig      `yaml:"output" json:"output"`
	ThemeTokens map[string]string `yaml:"theme_tokens" json:"theme_tokens"`
}

// UIConfig configures the terminal presentation
type UIConfig struct {
	Theme     string `yaml:"theme" json:"theme"`           // default|high-contrast|minimal
	ColorMode string `yaml:"color_mode" json:"color_mode"` // auto|never|ansi|ansi256|truecolor
	Glyphs    string `yaml:"glyphs" json:"glyphs"`         // unicode|ascii
	AltScreen bool   `yaml:"alt_screen" json:"alt_screen"` // run the viewer in the alternate screen
	MaxWidth  int    `yaml:"max_width" json:"max_width"`   // 0 uses the full terminal width
}

// ManifestConfig configures where manifests come from
type ManifestConfig struct {
	Path     string        `yaml:"path" json:"path"`         // used when no path argument is given
	Watch    bool          `yaml:"watch" json:"watch"`       // reload on change in the viewer
	Debounce time.Duration `yaml:"debounce" json:"debounce"` // quiet period before a reload
}

// OutputConfig configures headless output
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format" json:"default_format"` // text|json|markdown|csv
	Verbose       bool   `yaml:"verbose" json:"verbose"`               // default verbosity
	Width         int    `yaml:"width" json:"width"`                   // text table row limit, 0 for none
}

// Accepted values of the enumerated settings
var (
	validThemes     = []string{"default", "high-contrast", "minimal"}
	validColorModes = []string{"auto", "never", "ansi", "ansi256", "truecolor"}
	validGlyphs     = []string{"unicode", "ascii"}
	validFormats    = []string{"text", "json", "markdown", "csv"}
)

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Version: "1.0",
		UI: UIConfig{
			Theme:     "default",
			ColorMode: "auto",
			Glyphs:    "unicode",
			AltScreen: true,
			MaxWidth:  0,
		},
		Manifest: ManifestConfig{
			Path:     "",
			Watch:    false,
			Debounce: 150 * time.Millisecond,
		},
		Output: OutputConfig{
			DefaultFormat: "text",
			Verbose:       false,
			Width:         0,
		},
		ThemeTokens: make(map[string]string),
	}
}

// ASCIIGlyphs reports whether glyphs fall back to ASCII
func (c *Config) ASCIIGlyphs() bool {
	return c.UI.Glyphs == "ascii"
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.validateUIConfig(); err != nil {
		return err
	}
	if err := c.validateManifestConfig(); err != nil {
		return err
	}
	if err := c.validateOutputConfig(); err != nil {
		return err
	}
	return nil
}

// validateUIConfig validates presentation settings. Token names are
// checked when the theme is applied.
func (c *Config) validateUIConfig() error {
	if err := oneOf("ui.theme", c.UI.Theme, validThemes); err != nil {
		return err
	}
	if err := oneOf("ui.color_mode", c.UI.ColorMode, validColorModes); err != nil {
		return err
	}
	if err := oneOf("ui.glyphs", c.UI.Glyphs, validGlyphs); err != nil {
		return err
	}
	if c.UI.MaxWidth < 0 {
		return fmt.Errorf("ui.max_width must be non-negative")
	}
	return nil
}

// validateManifestConfig validates manifest settings
func (c *Config) validateManifestConfig() error {
	if c.Manifest.Debounce < 0 {
		return fmt.Errorf("manifest.debounce must be non-negative")
	}
	return nil
}

// validateOutputConfig validates output-related configuration
func (c *Config) validateOutputConfig() error {
	if err := oneOf("output.default_format", c.Output.DefaultFormat, validFormats); err != nil {
		return err
	}
	if c.Output.Width < 0 {
		return fmt.Errorf("output.width must be non-negative")
	}
	return nil
}

// oneOf accepts an empty value or one of valid
func oneOf(key, value string, valid []string) error {
	if value == "" || slices.Contains(valid, value) {
		return nil
	}
	return fmt.Errorf("invalid %s: %s (must be one of: %s)", key, value, strings.Join(valid, ", "))
}
