package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/yildizm/ManifestView/internal/config"
	"github.com/yildizm/ManifestView/internal/logger"
	"github.com/yildizm/ManifestView/internal/manifest"
)

// manifestSource names where a manifest came from
type manifestSource struct {
	// Path is the file read, "-" for stdin, "" for the demo
	Path string
}

// IsFile reports whether the manifest lives in a file that can be watched
func (s manifestSource) IsFile() bool {
	return s.Path != "" && s.Path != manifest.StdinPath
}

// String returns the path, "stdin" or "demo"
func (s manifestSource) String() string {
	switch s.Path {
	case "":
		return "demo"
	case manifest.StdinPath:
		return "stdin"
	default:
		return s.Path
	}
}

// resolveSource picks the manifest path from the argument, then the config
// default. No path at all selects the demo.
func resolveSource(args []string, cfg *config.Config) manifestSource {
	if len(args) > 0 && args[0] != "" {
		return manifestSource{Path: args[0]}
	}
	if cfg != nil && cfg.Manifest.Path != "" {
		return manifestSource{Path: cfg.Manifest.Path}
	}
	return manifestSource{}
}

// loadManifest reads the manifest named by src
func loadManifest(src manifestSource, log *logger.Logger) (*manifest.Manifest, error) {
	if src.Path == "" {
		log.Debug("no manifest path given, using the demo manifest")
		return manifest.Demo(), nil
	}

	if src.IsFile() {
		info, err := os.Stat(src.Path)
		if err != nil {
			return nil, fmt.Errorf("manifest not found: %w", err)
		}
		if info.IsDir() {
			return nil, fmt.Errorf("manifest path %s is a directory", src.Path)
		}
	}

	m, err := manifest.Load(src.Path)
	if err != nil {
		return nil, err
	}
	log.InfoWithFields("manifest loaded", []logger.Field{logger.Path(src.String()), logger.Count(len(m.Tabs))})
	return m, nil
}

// openLogOutput returns where logs go: the --log-file when set, otherwise
// fallback. The returned close func is never nil.
func openLogOutput(fallback io.Writer) (io.Writer, func(), error) {
	if logFile == "" {
		return fallback, func() {}, nil
	}
	// #nosec G304 - log path is chosen by the user on the command line
	f, err := os.OpenFile(filepath.Clean(logFile), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}
