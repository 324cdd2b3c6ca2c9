package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"github.com/yildizm/ManifestView/internal/manifest"
	"github.com/yildizm/ManifestView/internal/render"
	"github.com/yildizm/ManifestView/internal/ui"
)

var (
	viewWatch       bool
	viewTab         string
	viewNoAltScreen bool
)

func newViewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view [manifest]",
		Short: "Browse a manifest in the terminal",
		Long: `Open a manifest in the interactive viewer.

Tab and shift+tab move between controls, enter or space activates the
focused one, [ and ] switch tabs. With --watch the manifest is reloaded
whenever the file changes.

Examples:
  manifestview view
  manifestview view cases.manifest.json
  manifestview view --watch --tab Reports cases.manifest.yaml
  cat cases.manifest.json | manifestview view -`,
		Args: cobra.MaximumNArgs(1),
		RunE: runView,
	}

	cmd.Flags().BoolVarP(&viewWatch, "watch", "w", false, "reload the manifest when the file changes")
	cmd.Flags().StringVarP(&viewTab, "tab", "t", "", "tab to open, by index or title")
	cmd.Flags().BoolVar(&viewNoAltScreen, "no-alt-screen", false, "draw inline instead of in the alternate screen")

	return cmd
}

func runView(cmd *cobra.Command, args []string) error {
	cfg := GetGlobalConfig()

	// The viewer owns the terminal, so logs only go to --log-file.
	out, closeLog, err := openLogOutput(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()
	log := newLogger("view")
	log.SetOutput(out)

	src := resolveSource(args, cfg)
	m, err := loadManifest(src, log)
	if err != nil {
		return err
	}

	tab, err := resolveTab(m, viewTab)
	if err != nil {
		return err
	}

	watch := cfg.Manifest.Watch
	if cmd.Flags().Changed("watch") {
		watch = viewWatch
	}
	if watch && !src.IsFile() {
		log.Warn("--watch needs a manifest file, %s cannot be watched", src)
		watch = false
	}

	opts := ui.Options{
		Source:     sourcePath(src),
		InitialTab: tab,
		AltScreen:  cfg.UI.AltScreen && !viewNoAltScreen,
		InputTTY:   src.Path == manifest.StdinPath,
		MaxWidth:   cfg.UI.MaxWidth,
		Watch:      watch,
		Debounce:   cfg.Manifest.Debounce,
		Logger:     log,
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	session := render.NewSession(m, render.WithLogger(log))
	return ui.Run(ctx, session, opts)
}

// sourcePath is the path shown and watched by the viewer; empty for the
// demo and stdin
func sourcePath(src manifestSource) string {
	if src.IsFile() {
		return src.Path
	}
	return ""
}
