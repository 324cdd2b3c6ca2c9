package cli

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yildizm/ManifestView/internal/formatter"
	"github.com/yildizm/ManifestView/internal/manifest"
	"github.com/yildizm/ManifestView/internal/render"
	"github.com/yildizm/ManifestView/internal/table"
	"github.com/yildizm/ManifestView/internal/ui"
)

// formatTUI draws the snapshot with the viewer's own presenter
const formatTUI = "tui"

// renderOptions are the presets of one headless render
type renderOptions struct {
	tab        string
	sorts      []string
	open       []string
	closed     []string
	search     string
	filter     string
	format     string
	width      int
	outputFile string
}

func newRenderCommand() *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render [manifest]",
		Short: "Print one rendered view of a manifest",
		Long: `Render a manifest once and print it, without the interactive viewer.

The view starts from the initial state; the flags replay what a user
would have done before the snapshot: pick a tab, sort tables, open or
close accordion sections, type a search and choose a filter.

Examples:
  manifestview render cases.manifest.json
  manifestview render --tab 1 --sort results=subject:desc cases.manifest.json
  manifestview render --open siu --close general --format markdown
  manifestview render --format tui --width 100`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.tab, "tab", "t", "", "tab to render, by index or title")
	cmd.Flags().StringArrayVarP(&opts.sorts, "sort", "s", nil, "sort a table: id=column[:asc|:desc] (repeatable)")
	cmd.Flags().StringArrayVar(&opts.open, "open", nil, "open an accordion section by key (repeatable)")
	cmd.Flags().StringArrayVar(&opts.closed, "close", nil, "close an accordion section by key (repeatable)")
	cmd.Flags().StringVar(&opts.search, "search", "", "search box text")
	cmd.Flags().StringVar(&opts.filter, "filter", "", "filter selection ("+strings.Join(render.FilterOptions, ", ")+")")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format ("+strings.Join(append(slices.Clone(formatter.Formats), formatTUI), ", ")+")")
	cmd.Flags().IntVar(&opts.width, "width", 0, "maximum output width, 0 for none")
	cmd.Flags().StringVarP(&opts.outputFile, "output-file", "o", "", "save output to file instead of stdout")

	return cmd
}

func runRender(cmd *cobra.Command, args []string, opts *renderOptions) error {
	cfg := GetGlobalConfig()

	out, closeLog, err := openLogOutput(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer closeLog()
	log := newLogger("render")
	log.SetOutput(out)

	// Use config values if flags weren't explicitly set
	if !cmd.Flags().Changed("format") {
		opts.format = cfg.Output.DefaultFormat
	}
	if !cmd.Flags().Changed("width") {
		opts.width = cfg.Output.Width
	}

	m, err := loadManifest(resolveSource(args, cfg), log)
	if err != nil {
		return err
	}

	state, err := buildState(m, opts)
	if err != nil {
		return err
	}

	session := render.NewSession(m, render.WithState(state), render.WithLogger(log))
	data, err := renderView(session.View(), opts.format, opts.width)
	if err != nil {
		return err
	}

	if opts.outputFile != "" {
		if err := os.WriteFile(opts.outputFile, data, 0o600); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		log.Info("output written to %s", opts.outputFile)
		return nil
	}

	_, err = cmd.OutOrStdout().Write(data)
	return err
}

// renderView formats a rendered tree
func renderView(root *render.Element, format string, width int) ([]byte, error) {
	if format == formatTUI {
		return []byte(ui.Snapshot(root, width) + "\n"), nil
	}
	f, err := formatter.New(format, width)
	if err != nil {
		return nil, err
	}
	return f.Format(root)
}

// buildState turns the render flags into the state the session starts in
func buildState(m *manifest.Manifest, opts *renderOptions) (*render.State, error) {
	state := render.NewState()

	tab, err := resolveTab(m, opts.tab)
	if err != nil {
		return nil, err
	}
	state.SelectTab(tab)

	for _, spec := range opts.sorts {
		tableID, srt, err := parseSortFlag(spec)
		if err != nil {
			return nil, err
		}
		state.Sorts[tableID] = srt
	}

	for _, key := range opts.open {
		state.Open[key] = true
	}
	for _, key := range opts.closed {
		state.Open[key] = false
	}

	state.SetSearchText(opts.search)

	if opts.filter != "" {
		if !slices.Contains(render.FilterOptions, opts.filter) {
			return nil, fmt.Errorf("invalid filter %q (must be one of: %s)", opts.filter, strings.Join(render.FilterOptions, ", "))
		}
		state.SetFilter(opts.filter)
	}

	return state, nil
}

// parseSortFlag reads "tableID=column[:dir]". The table id may be empty for
// tables declared without one.
func parseSortFlag(spec string) (string, *table.Sort, error) {
	tableID, sortSpec, ok := strings.Cut(spec, "=")
	if !ok {
		return "", nil, fmt.Errorf("invalid --sort %q (expected id=column[:asc|:desc])", spec)
	}
	srt, err := table.ParseSort(sortSpec)
	if err != nil {
		return "", nil, fmt.Errorf("invalid --sort %q: %w", spec, err)
	}
	return tableID, srt, nil
}

// resolveTab maps a tab index or title to an index. Titles match case
// insensitively; an empty value selects the first tab.
func resolveTab(m *manifest.Manifest, value string) (int, error) {
	if value == "" {
		return 0, nil
	}
	if index, err := strconv.Atoi(value); err == nil {
		if index < 0 || index >= len(m.Tabs) {
			return 0, fmt.Errorf("tab index %d out of range (manifest has %d tabs)", index, len(m.Tabs))
		}
		return index, nil
	}
	for i, tab := range m.Tabs {
		if strings.EqualFold(tab.Title, value) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("no tab titled %q", value)
}
