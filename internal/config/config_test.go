package config

import (
	"strings"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Version != "1.0" {
		t.Errorf("Expected version 1.0, got %s", cfg.Version)
	}
	if cfg.UI.Theme != "default" {
		t.Errorf("Expected theme default, got %s", cfg.UI.Theme)
	}
	if cfg.UI.ColorMode != "auto" {
		t.Errorf("Expected color mode auto, got %s", cfg.UI.ColorMode)
	}
	if cfg.ASCIIGlyphs() {
		t.Error("Expected unicode glyphs by default")
	}
	if !cfg.UI.AltScreen {
		t.Error("Expected alt screen by default")
	}
	if cfg.Manifest.Debounce != 150*time.Millisecond {
		t.Errorf("Expected debounce 150ms, got %v", cfg.Manifest.Debounce)
	}
	if cfg.Output.DefaultFormat != "text" {
		t.Errorf("Expected output format text, got %s", cfg.Output.DefaultFormat)
	}
	if cfg.ThemeTokens == nil {
		t.Error("Expected non-nil theme tokens")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config should be valid: %v", err)
	}
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"empty enums accepted", func(c *Config) {
			c.UI.Theme = ""
			c.UI.ColorMode = ""
			c.Output.DefaultFormat = ""
		}, ""},
		{"unknown theme", func(c *Config) { c.UI.Theme = "neon" }, "ui.theme"},
		{"unknown color mode", func(c *Config) { c.UI.ColorMode = "16" }, "ui.color_mode"},
		{"unknown glyphs", func(c *Config) { c.UI.Glyphs = "emoji" }, "ui.glyphs"},
		{"negative max width", func(c *Config) { c.UI.MaxWidth = -1 }, "ui.max_width"},
		{"negative debounce", func(c *Config) { c.Manifest.Debounce = -time.Second }, "manifest.debounce"},
		{"unknown format", func(c *Config) { c.Output.DefaultFormat = "xml" }, "output.default_format"},
		{"negative width", func(c *Config) { c.Output.Width = -5 }, "output.width"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()

			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Expected no error, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestASCIIGlyphs(t *testing.T) {
	cfg := DefaultConfig()
	cfg.UI.Glyphs = "ascii"
	if !cfg.ASCIIGlyphs() {
		t.Error("Expected ascii glyphs")
	}
}
