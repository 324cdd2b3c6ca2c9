package ui

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
	"github.com/yildizm/ManifestView/internal/logger"
)

// DefaultDebounce is the quiet period after the last write before a reload
const DefaultDebounce = 150 * time.Millisecond

// Watcher reloads a manifest file when it changes and posts the result to
// the program. It never touches the model; every change arrives as a
// message in the update loop.
type Watcher struct {
	path     string
	debounce time.Duration
	load     LoadFunc
	send     func(tea.Msg)
	log      *logger.Logger

	watcher *fsnotify.Watcher
}

// NewWatcher watches the directory holding path, so editors that replace
// the file on save are still seen
func NewWatcher(path string, debounce time.Duration, load LoadFunc, send func(tea.Msg), log *logger.Logger) (*Watcher, error) {
	if err := validateWatchPath(path); err != nil {
		return nil, fmt.Errorf("invalid manifest path: %w", err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		cleanupWatcher(fw, log)
		return nil, fmt.Errorf("failed to watch manifest: %w", err)
	}

	return &Watcher{
		path:     filepath.Clean(path),
		debounce: debounce,
		load:     load,
		send:     send,
		log:      log.WithComponent("watch"),
		watcher:  fw,
	}, nil
}

// Run blocks until ctx is done or the watcher fails
func (w *Watcher) Run(ctx context.Context) error {
	defer cleanupWatcher(w.watcher, w.log)

	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	w.log.Info("watching %s", w.path)
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if !w.relevant(event) {
				continue
			}
			w.log.DebugWithFields("manifest changed", []logger.Field{
				logger.Path(event.Name),
				logger.F("op", event.Op.String()),
			})
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounce, w.reload)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.log.Warn("watcher error: %v", err)
		}
	}
}

// relevant reports whether event touches the manifest with a change that
// can alter its content
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}

func (w *Watcher) reload() {
	w.send(CreateReloadCommand(w.path, w.load)())
}

// cleanupWatcher safely closes watcher with error logging
func cleanupWatcher(watcher *fsnotify.Watcher, log *logger.Logger) {
	if err := watcher.Close(); err != nil {
		log.Warn("failed to close watcher: %v", err)
	}
}

// validateWatchPath validates that a manifest path can be watched
func validateWatchPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("empty file path")
	}
	if path == "-" {
		return fmt.Errorf("cannot watch standard input")
	}
	return nil
}
