package ui

import (
	"time"

	"github.com/yildizm/ManifestView/internal/logger"
	"github.com/yildizm/ManifestView/internal/manifest"
)

// LoadFunc reads and parses a manifest file
type LoadFunc func(path string) (*manifest.Manifest, error)

// Options configure the interactive viewer
type Options struct {
	// Source is the manifest path shown in the status line and watched
	// for changes. Empty for the embedded demo or stdin.
	Source string

	// InitialTab is the tab selected on start
	InitialTab int

	AltScreen bool

	// InputTTY reads keys from the terminal instead of stdin, for
	// manifests piped on stdin
	InputTTY bool

	// MaxWidth caps the content width; 0 uses the full terminal
	MaxWidth int

	// Watch reloads the manifest when Source changes on disk
	Watch    bool
	Debounce time.Duration

	// Load reads Source on reload. Defaults to manifest.Load.
	Load LoadFunc

	Logger *logger.Logger
}

func (o *Options) loader() LoadFunc {
	if o.Load != nil {
		return o.Load
	}
	return manifest.Load
}
