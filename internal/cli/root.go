package cli

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yildizm/ManifestView/internal/config"
	"github.com/yildizm/ManifestView/internal/glyph"
	"github.com/yildizm/ManifestView/internal/logger"
	"github.com/yildizm/ManifestView/internal/ui"
)

var (
	cfgFile     string
	verbose     bool
	noColor     bool
	asciiGlyphs bool
	themeName   string
	logFile     string

	globalConfig *config.Config
)

// skipConfigAnnotation marks commands that must run even when the config
// files are broken
const skipConfigAnnotation = "manifestview/skip-config"

// NewRootCommand creates the root command
func NewRootCommand(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "manifestview",
		Short: "Terminal renderer for declarative UI manifests",
		Long: `ManifestView renders declarative UI manifests in the terminal.

A manifest describes tabs whose screens hold a search panel, a filter
panel, a sortable results table and an accordion of detail tables.
Manifests are JSON (comments allowed) or YAML; without a path the
built-in demo manifest is shown.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !needsConfig(cmd) {
				return nil
			}
			cfg, err := loadGlobalConfig(cmd)
			if err != nil {
				return err
			}
			globalConfig = cfg
			return applyPresentation(cfg)
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVar(&asciiGlyphs, "ascii", false, "use ASCII glyphs (useful for Windows terminals)")
	rootCmd.PersistentFlags().StringVar(&themeName, "theme", "", "color theme ("+strings.Join(ui.GetAvailableThemes(), ", ")+")")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(newViewCommand())
	rootCmd.AddCommand(newRenderCommand())
	rootCmd.AddCommand(newCheckCommand())
	rootCmd.AddCommand(newConfigCommand())
	rootCmd.AddCommand(newVersionCommand(version, commit, date))

	return rootCmd
}

func newVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Show version information",
		Long:        "Display version number, build commit, date, and runtime information",
		Annotations: map[string]string{skipConfigAnnotation: "true"},
		Run: func(cmd *cobra.Command, args []string) {
			displayVersion := version
			displayCommit := commit
			displayDate := date

			if version == "dev" || version == "" {
				displayVersion = "development"
			}
			if commit == "none" || commit == "" {
				displayCommit = "local-build"
			}
			if date == "unknown" || date == "" {
				displayDate = "local-build"
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "ManifestView %s (%s) built on %s\n", displayVersion, displayCommit, displayDate)
			fmt.Fprintf(out, "Go version: %s\n", runtime.Version())
			fmt.Fprintf(out, "OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}

// needsConfig reports whether cmd and its parents all want the config
// loaded
func needsConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations[skipConfigAnnotation] == "true" {
			return false
		}
	}
	return true
}

// loadGlobalConfig loads the config files and applies the global flags on
// top of them
func loadGlobalConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.NewLoader().LoadConfig(cfgFile)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("theme") {
		cfg.UI.Theme = themeName
	}
	if flags.Changed("ascii") && asciiGlyphs {
		cfg.UI.Glyphs = "ascii"
	}
	if flags.Changed("no-color") && noColor {
		cfg.UI.ColorMode = ui.ColorNever
	}
	if flags.Changed("verbose") {
		cfg.Output.Verbose = verbose
	}
	return cfg, nil
}

// applyPresentation sets the process-wide glyph set, theme and color
// profile
func applyPresentation(cfg *config.Config) error {
	glyph.SetASCII(cfg.ASCIIGlyphs())

	name := cfg.UI.Theme
	if name == "" {
		name = "default"
	}
	if !ui.SetThemeByName(name) {
		return fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(ui.GetAvailableThemes(), ", "))
	}

	theme := ui.GetTheme()
	if err := theme.Override(cfg.ThemeTokens); err != nil {
		return fmt.Errorf("invalid theme_tokens: %w", err)
	}
	ui.SetTheme(&theme)

	return ui.SetColorMode(cfg.UI.ColorMode)
}

// GetGlobalConfig returns the loaded configuration, or the defaults when
// no command loaded one
func GetGlobalConfig() *config.Config {
	if globalConfig == nil {
		return config.DefaultConfig()
	}
	return globalConfig
}

// Global helpers
func isVerbose() bool {
	return GetGlobalConfig().Output.Verbose
}

// newLogger returns the command logger; Debug and Info follow --verbose
func newLogger(component string) *logger.Logger {
	return logger.NewWithCallback(component, isVerbose)
}
