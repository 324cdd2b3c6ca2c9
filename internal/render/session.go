package render

import (
	"github.com/yildizm/ManifestView/internal/logger"
	"github.com/yildizm/ManifestView/internal/manifest"
)

// Session is one mounted manifest: the manifest, the state it owns and the
// tree last rendered from them. Events are applied one at a time and each
// one re-renders the whole tree. A Session is not safe for concurrent use;
// the terminal program drives it from its single update loop.
type Session struct {
	manifest *manifest.Manifest
	state    *State
	view     *Element
	log      *logger.Logger
}

// Option configures a Session
type Option func(*Session)

// WithLogger logs every applied event at debug level
func WithLogger(l *logger.Logger) Option {
	return func(s *Session) {
		s.log = l.WithComponent("session")
	}
}

// WithState mounts the manifest with a preset state instead of the initial
// one. The state is copied.
func WithState(st *State) Option {
	return func(s *Session) {
		if st != nil {
			s.state = st.Clone()
		}
	}
}

// NewSession mounts m with the initial state
func NewSession(m *manifest.Manifest, opts ...Option) *Session {
	if m == nil {
		m = &manifest.Manifest{}
	}
	s := &Session{manifest: m, state: NewState()}
	for _, opt := range opts {
		opt(s)
	}
	s.rerender()
	return s
}

// Manifest returns the mounted manifest
func (s *Session) Manifest() *manifest.Manifest {
	return s.manifest
}

// State returns a copy of the current state
func (s *Session) State() *State {
	return s.state.Clone()
}

// View returns the tree rendered from the current state. Callers must not
// modify it.
func (s *Session) View() *Element {
	return s.view
}

// Dispatch applies an event and re-renders. It reports whether the state
// changed.
func (s *Session) Dispatch(ev Event) bool {
	changed := s.state.Apply(ev)
	s.log.DebugWithFields("applied event", []logger.Field{
		logger.Event(ev),
		logger.F("changed", changed),
	})
	s.rerender()
	return changed
}

// Fire activates the element with the given key in the current view, as a
// click or keystroke on it would. value is what the user entered for inputs
// and selects and is ignored otherwise. Inert or unknown elements do
// nothing and Fire returns false.
func (s *Session) Fire(key, value string) bool {
	el := s.view.Find(key)
	if !el.Interactive() {
		s.log.Debug("ignored activation of inert element %q", key)
		return false
	}
	ev := *el.Event
	if el.Kind == KindTextInput || el.Kind == KindSelect {
		ev = ev.WithValue(value)
	}
	s.Dispatch(ev)
	return true
}

// Reload mounts a new manifest. State starts over, as on a fresh mount.
func (s *Session) Reload(m *manifest.Manifest) {
	if m == nil {
		m = &manifest.Manifest{}
	}
	s.manifest = m
	s.state = NewState()
	s.log.Info("manifest reloaded: %d tabs", len(m.Tabs))
	s.rerender()
}

func (s *Session) rerender() {
	s.view = Render(s.manifest, s.state)
}
