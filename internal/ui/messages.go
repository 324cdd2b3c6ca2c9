package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/yildizm/ManifestView/internal/manifest"
)

// Messages posted by the manifest watcher
type manifestReloadedMsg struct {
	manifest *manifest.Manifest
	path     string
}

type manifestErrorMsg struct {
	err error
}

// CreateReloadCommand creates a tea command that reads the manifest again
func CreateReloadCommand(path string, load LoadFunc) tea.Cmd {
	return func() tea.Msg {
		m, err := load(path)
		if err != nil {
			return manifestErrorMsg{err: err}
		}
		return manifestReloadedMsg{manifest: m, path: path}
	}
}
