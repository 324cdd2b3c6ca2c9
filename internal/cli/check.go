package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yildizm/ManifestView/internal/glyph"
	"github.com/yildizm/ManifestView/internal/manifest"
)

// errManifestInvalid is returned by check when any finding is an error
var errManifestInvalid = errors.New("manifest has errors")

// checkReport is the JSON output of check
type checkReport struct {
	Source   string             `json:"source"`
	Valid    bool               `json:"valid"`
	Findings []manifest.Finding `json:"findings"`
}

func newCheckCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "check [manifest]",
		Short: "Report problems in a manifest",
		Long: `Check a manifest for problems the renderer tolerates silently.

The renderer never rejects a manifest: malformed parts render as empty.
check reports those parts, along with tables that share a sort state and
accordion sections that open and close together. It exits with status 1
when any finding is an error.

Examples:
  manifestview check cases.manifest.json
  manifestview check --format json cases.manifest.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger("check")
			log.SetOutput(cmd.ErrOrStderr())

			src := resolveSource(args, GetGlobalConfig())
			m, err := loadManifest(src, log)
			if err != nil {
				return err
			}

			findings := manifest.Check(m)
			valid := !manifest.HasErrors(findings)

			out := cmd.OutOrStdout()
			switch format {
			case "json":
				if findings == nil {
					findings = []manifest.Finding{}
				}
				data, err := json.MarshalIndent(checkReport{Source: src.String(), Valid: valid, Findings: findings}, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal findings: %w", err)
				}
				fmt.Fprintln(out, string(data))
			case "text":
				if len(findings) == 0 {
					fmt.Fprintf(out, "%s: no problems found\n", src)
				}
				for _, f := range findings {
					fmt.Fprintf(out, "%s %s\n", glyph.Get(glyph.Bullet), f)
				}
			default:
				return fmt.Errorf("unsupported format: %s (use text or json)", format)
			}

			if !valid {
				return errManifestInvalid
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format (text, json)")

	return cmd
}
