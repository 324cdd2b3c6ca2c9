package ui

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/yildizm/ManifestView/internal/render"
)

// Theme maps the styling tokens of the render tree to colors
type Theme struct {
	Name string

	// Tokens holds one color per token name used by the render tree
	Tokens map[string]lipgloss.AdaptiveColor

	// Colors not tied to a tree token
	Focus  lipgloss.AdaptiveColor
	Error  lipgloss.AdaptiveColor
	Status lipgloss.AdaptiveColor
}

// buildTheme creates a theme from [light, dark] pairs in token order:
// brand, brand hover, surface, stripe, border, muted, label, tab, active tab
func buildTheme(name string, brand, brandHover, surface, stripe, border, muted, label, tab, tabActive, focus, errorColor [2]string) Theme {
	pair := func(c [2]string) lipgloss.AdaptiveColor {
		return lipgloss.AdaptiveColor{Light: c[0], Dark: c[1]}
	}
	return Theme{
		Name: name,
		Tokens: map[string]lipgloss.AdaptiveColor{
			render.TokenBrand:      pair(brand),
			render.TokenBrandHover: pair(brandHover),
			render.TokenSurface:    pair(surface),
			render.TokenStripe:     pair(stripe),
			render.TokenBorder:     pair(border),
			render.TokenMuted:      pair(muted),
			render.TokenLabel:      pair(label),
			render.TokenTab:        pair(tab),
			render.TokenTabActive:  pair(tabActive),
		},
		Focus:  pair(focus),
		Error:  pair(errorColor),
		Status: pair(muted),
	}
}

// Available themes
var (
	DefaultTheme = buildTheme("default",
		[2]string{"#2B6CB0", "#63B3ED"}, [2]string{"#2C5282", "#90CDF4"}, [2]string{"#FFFFFF", "#1A202C"},
		[2]string{"#F7FAFC", "#2D3748"}, [2]string{"#E2E8F0", "#4A5568"}, [2]string{"#718096", "#A0AEC0"},
		[2]string{"#4A5568", "#CBD5E0"}, [2]string{"#2D3748", "#E2E8F0"}, [2]string{"#171923", "#F7FAFC"},
		[2]string{"#D69E2E", "#F6E05E"}, [2]string{"#C53030", "#FC8181"})

	HighContrastTheme = buildTheme("high-contrast",
		[2]string{"#000080", "#8080FF"}, [2]string{"#000000", "#FFFFFF"}, [2]string{"#FFFFFF", "#000000"},
		[2]string{"#DDDDDD", "#333333"}, [2]string{"#000000", "#FFFFFF"}, [2]string{"#444444", "#CCCCCC"},
		[2]string{"#000000", "#FFFFFF"}, [2]string{"#333333", "#DDDDDD"}, [2]string{"#000000", "#FFFFFF"},
		[2]string{"#CC6600", "#FFFF00"}, [2]string{"#CC0000", "#FF4444"})

	MinimalTheme = buildTheme("minimal",
		[2]string{"#2D3748", "#E2E8F0"}, [2]string{"#1A202C", "#F7FAFC"}, [2]string{"#FFFFFF", "#1A202C"},
		[2]string{"#FFFFFF", "#1A202C"}, [2]string{"#E2E8F0", "#2D3748"}, [2]string{"#A0AEC0", "#718096"},
		[2]string{"#718096", "#A0AEC0"}, [2]string{"#718096", "#A0AEC0"}, [2]string{"#2D3748", "#F7FAFC"},
		[2]string{"#4A5568", "#CBD5E0"}, [2]string{"#C53030", "#FC8181"})
)

var themes = map[string]*Theme{
	"default":       &DefaultTheme,
	"high-contrast": &HighContrastTheme,
	"minimal":       &MinimalTheme,
}

// Current active theme
var currentTheme = DefaultTheme

// GetTheme returns the current active theme
func GetTheme() Theme {
	return currentTheme
}

// SetTheme sets the active theme
func SetTheme(theme *Theme) {
	currentTheme = theme.Clone()
}

// SetThemeByName sets the theme by name
func SetThemeByName(name string) bool {
	theme, ok := themes[name]
	if !ok {
		return false
	}
	SetTheme(theme)
	return true
}

// GetAvailableThemes returns list of available theme names
func GetAvailableThemes() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clone copies the theme so overrides do not leak into the built-ins
func (t *Theme) Clone() Theme {
	out := *t
	out.Tokens = make(map[string]lipgloss.AdaptiveColor, len(t.Tokens))
	for k, v := range t.Tokens {
		out.Tokens[k] = v
	}
	return out
}

var hexColor = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Override replaces token colors. A value is either one hex color used for
// both backgrounds or "light,dark".
func (t *Theme) Override(tokens map[string]string) error {
	for token, value := range tokens {
		if _, ok := t.Tokens[token]; !ok {
			return fmt.Errorf("unknown theme token %q", token)
		}
		light, dark, found := strings.Cut(value, ",")
		light = strings.TrimSpace(light)
		dark = strings.TrimSpace(dark)
		if !found {
			dark = light
		}
		if !hexColor.MatchString(light) || !hexColor.MatchString(dark) {
			return fmt.Errorf("invalid color %q for token %s", value, token)
		}
		t.Tokens[token] = lipgloss.AdaptiveColor{Light: light, Dark: dark}
	}
	return nil
}

// Color modes accepted by SetColorMode
const (
	ColorAuto      = "auto"
	ColorNever     = "never"
	ColorANSI      = "ansi"
	ColorANSI256   = "ansi256"
	ColorTrueColor = "truecolor"
)

// ColorModes lists the accepted color modes
var ColorModes = []string{ColorAuto, ColorNever, ColorANSI, ColorANSI256, ColorTrueColor}

// SetColorMode pins the lipgloss color profile. Auto keeps terminal
// detection unless NO_COLOR is set.
func SetColorMode(mode string) error {
	switch mode {
	case ColorAuto, "":
		if IsColorDisabled() {
			lipgloss.SetColorProfile(termenv.Ascii)
		}
	case ColorNever:
		lipgloss.SetColorProfile(termenv.Ascii)
	case ColorANSI:
		lipgloss.SetColorProfile(termenv.ANSI)
	case ColorANSI256:
		lipgloss.SetColorProfile(termenv.ANSI256)
	case ColorTrueColor:
		lipgloss.SetColorProfile(termenv.TrueColor)
	default:
		return fmt.Errorf("unknown color mode %q", mode)
	}
	return nil
}

// IsColorDisabled checks if colors should be disabled
func IsColorDisabled() bool {
	return os.Getenv("NO_COLOR") != ""
}

// Token returns the foreground style of a token
func (t *Theme) Token(token string) lipgloss.Style {
	c, ok := t.Tokens[token]
	if !ok {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(c)
}

// Fill returns the background style of a token
func (t *Theme) Fill(token string) lipgloss.Style {
	c, ok := t.Tokens[token]
	if !ok {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Background(c)
}

// Focused marks the element under the cursor
func (t *Theme) Focused() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Focus).Bold(true).Underline(true)
}

// Common styles based on current theme
func GetStyles() *Styles {
	theme := GetTheme()

	return &Styles{
		Theme: theme,

		Title: lipgloss.NewStyle().
			Foreground(theme.Tokens[render.TokenBrand]).
			Bold(true).
			Padding(0, 1),

		Status: lipgloss.NewStyle().
			Foreground(theme.Status),

		Error: lipgloss.NewStyle().
			Foreground(theme.Error).
			Bold(true),

		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Tokens[render.TokenBorder]).
			Padding(0, 1),
	}
}

// Styles contains the styles of the program chrome around the tree
type Styles struct {
	Theme Theme

	Title  lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
	Frame  lipgloss.Style
}
