package ui

import (
	"context"
	"fmt"
	"slices"
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/yildizm/ManifestView/internal/glyph"
	"github.com/yildizm/ManifestView/internal/logger"
	"github.com/yildizm/ManifestView/internal/render"
	"github.com/yildizm/ManifestView/internal/ui/components"
)

// Model is the interactive viewer. It owns the session; every key press
// that activates an element goes through Session.Fire and the whole tree is
// drawn again from the new view.
type Model struct {
	session *render.Session
	opts    Options
	log     *logger.Logger

	keys     KeyMap
	help     help.Model
	input    textinput.Model
	viewport viewport.Model
	styles   *Styles

	// focus is the key of the element under the cursor. focusIndex is its
	// position in the focus ring, used when a re-render removes the key.
	focus      string
	focusIndex int
	typing     bool

	width    int
	height   int
	ready    bool
	quitting bool

	status string
	err    error
}

// NewModel creates the viewer for a mounted session
func NewModel(session *render.Session, opts Options) *Model {
	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = render.SearchPlaceholder
	input.CharLimit = 256

	m := &Model{
		session: session,
		opts:    opts,
		log:     opts.Logger.WithComponent("ui"),
		keys:    DefaultKeyMap,
		help:    help.New(),
		input:   input,
		styles:  GetStyles(),
	}
	if opts.InitialTab != 0 {
		m.fire(render.TabKey(opts.InitialTab), "")
	}
	m.status = m.sourceLabel()
	m.restoreFocus()
	return m
}

// Session returns the session driven by the model
func (m *Model) Session() *render.Session {
	return m.session
}

// Focus returns the key of the focused element
func (m *Model) Focus() string {
	return m.focus
}

// Typing reports whether key presses go to the search input
func (m *Model) Typing() bool {
	return m.typing
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and navigation
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowResize(msg)
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case manifestReloadedMsg:
		return m.handleReload(msg)
	case manifestErrorMsg:
		return m.handleReloadError(msg)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the model
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return m.body()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.viewport.View(),
		m.statusLine(),
		m.help.View(m.keys),
	)
}

// handleWindowResize sizes the viewport to the terminal minus the status
// line and help footer
func (m *Model) handleWindowResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width

	height := max(msg.Height-2, 1)
	if !m.ready {
		m.viewport = viewport.New(msg.Width, height)
		m.ready = true
	} else {
		m.viewport.Width = msg.Width
		m.viewport.Height = height
	}
	m.input.Width = max(m.contentWidth()/2-8, 10)
	m.refresh()
	return m, nil
}

// handleKeyPress routes a key to the search input while typing and to the
// key map otherwise
func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.typing {
		return m.handleTypingKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Next):
		m.moveFocus(1)
	case key.Matches(msg, m.keys.Previous):
		m.moveFocus(-1)
	case key.Matches(msg, m.keys.Activate):
		m.activate()
	case key.Matches(msg, m.keys.OptionNext):
		m.cycleOption(1)
	case key.Matches(msg, m.keys.OptionPrevious):
		m.cycleOption(-1)
	case key.Matches(msg, m.keys.TabNext):
		m.stepTab(1)
	case key.Matches(msg, m.keys.TabPrevious):
		m.stepTab(-1)
	case key.Matches(msg, m.keys.TabJump):
		n, _ := strconv.Atoi(msg.String())
		m.jumpTab(n - 1)
	case key.Matches(msg, m.keys.ScrollUp):
		m.viewport.HalfViewUp()
	case key.Matches(msg, m.keys.ScrollDown):
		m.viewport.HalfViewDown()
	}
	return m, nil
}

// handleTypingKey feeds the search input. Every change of its value is
// fired at the input element; tab and esc leave the input.
func (m *Model) handleTypingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Blur):
		m.setTyping(false)
		m.refresh()
		return m, nil
	case msg.Type == tea.KeyTab || msg.Type == tea.KeyShiftTab ||
		msg.Type == tea.KeyUp || msg.Type == tea.KeyDown:
		m.setTyping(false)
		if msg.Type == tea.KeyShiftTab || msg.Type == tea.KeyUp {
			m.moveFocus(-1)
		} else {
			m.moveFocus(1)
		}
		return m, nil
	case msg.Type == tea.KeyEnter:
		m.fire(render.KeySearchButton, "")
		return m, nil
	}

	var cmd tea.Cmd
	before := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if value := m.input.Value(); value != before {
		m.fire(render.KeySearchInput, value)
	} else {
		m.refresh()
	}
	return m, cmd
}

// handleReload mounts the reloaded manifest. State starts over.
func (m *Model) handleReload(msg manifestReloadedMsg) (tea.Model, tea.Cmd) {
	m.session.Reload(msg.manifest)
	m.err = nil
	m.status = "reloaded " + msg.path
	m.setTyping(false)
	m.input.SetValue("")
	m.focus, m.focusIndex = "", 0
	m.restoreFocus()
	m.refresh()
	return m, nil
}

// handleReloadError keeps the last good manifest on screen
func (m *Model) handleReloadError(msg manifestErrorMsg) (tea.Model, tea.Cmd) {
	m.err = msg.err
	m.log.Warn("reload failed: %v", msg.err)
	return m, nil
}

// fire activates an element and keeps focus on a live key
func (m *Model) fire(key, value string) bool {
	fired := m.session.Fire(key, value)
	if fired {
		m.restoreFocus()
		m.refresh()
	}
	return fired
}

// activate fires the focused element. On the search input it starts
// typing; on the filter select it advances to the next option.
func (m *Model) activate() {
	el := m.session.View().Find(m.focus)
	if el == nil {
		return
	}
	switch el.Kind {
	case render.KindTextInput:
		m.setTyping(true)
		m.refresh()
	case render.KindSelect:
		m.cycleOption(1)
	default:
		m.fire(m.focus, "")
	}
}

// cycleOption moves the focused select to a neighbouring option, wrapping
// around
func (m *Model) cycleOption(step int) {
	el := m.session.View().Find(m.focus)
	if el == nil || el.Kind != render.KindSelect || len(el.Children) == 0 {
		return
	}
	current := 0
	for i, opt := range el.Children {
		if opt.Selected {
			current = i
		}
	}
	n := len(el.Children)
	next := el.Children[((current+step)%n+n)%n]
	m.fire(el.Key, next.Value)
}

// stepTab selects the neighbouring tab without wrapping around
func (m *Model) stepTab(step int) {
	m.jumpTab(m.session.State().ActiveTab + step)
}

// jumpTab selects a tab by index; indices outside the manifest are ignored
func (m *Model) jumpTab(index int) {
	if index < 0 || index >= len(m.session.Manifest().Tabs) {
		return
	}
	m.fire(render.TabKey(index), "")
}

// moveFocus walks the focus ring of interactive elements in document order
func (m *Model) moveFocus(step int) {
	ring := m.session.View().Interactives()
	if len(ring) == 0 {
		m.focus, m.focusIndex = "", 0
		return
	}
	i := slices.IndexFunc(ring, func(el *render.Element) bool { return el.Key == m.focus })
	if i < 0 {
		i = min(m.focusIndex, len(ring)-1)
		if step > 0 {
			i--
		}
	}
	n := len(ring)
	i = ((i+step)%n + n) % n
	m.focus, m.focusIndex = ring[i].Key, i
	if ring[i].Kind == render.KindTextInput {
		m.setTyping(true)
	}
	m.refresh()
}

// restoreFocus keeps the focus on its key when it is still rendered, and
// on the same ring position otherwise
func (m *Model) restoreFocus() {
	ring := m.session.View().Interactives()
	if len(ring) == 0 {
		m.focus, m.focusIndex = "", 0
		return
	}
	if i := slices.IndexFunc(ring, func(el *render.Element) bool { return el.Key == m.focus }); i >= 0 {
		m.focusIndex = i
		return
	}
	i := min(m.focusIndex, len(ring)-1)
	m.focus, m.focusIndex = ring[i].Key, i
}

func (m *Model) setTyping(on bool) {
	m.typing = on
	if on {
		m.input.SetValue(m.session.State().SearchText)
		m.input.CursorEnd()
		m.input.Focus()
		return
	}
	m.input.Blur()
}

// refresh redraws the tree into the viewport
func (m *Model) refresh() {
	if m.ready {
		m.viewport.SetContent(m.body())
	}
}

// body draws the current view with the focus marked
func (m *Model) body() string {
	theme := m.styles.Theme
	frame := components.Frame{
		Painter: &theme,
		Width:   m.contentWidth(),
		Focus:   m.focus,
		Input: func(*render.Element) string {
			return m.input.View()
		},
	}
	if !m.typing {
		frame.Input = nil
	}
	return components.Render(m.session.View(), frame)
}

func (m *Model) contentWidth() int {
	w := m.width
	if m.opts.MaxWidth > 0 && (w == 0 || w > m.opts.MaxWidth) {
		w = m.opts.MaxWidth
	}
	return w
}

func (m *Model) statusLine() string {
	if m.err != nil {
		return m.styles.Error.Render(fmt.Sprintf("reload failed: %v", m.err))
	}
	line := m.status
	if m.focus != "" {
		line += " " + glyph.Get(glyph.Focus) + " " + m.focus
	}
	if m.typing {
		line += " (typing)"
	}
	return m.styles.Status.Render(line)
}

func (m *Model) sourceLabel() string {
	if m.opts.Source == "" {
		return "demo manifest"
	}
	return m.opts.Source
}

// Snapshot draws a tree without focus, for output outside the program
func Snapshot(root *render.Element, width int) string {
	theme := GetTheme()
	return components.Render(root, components.Frame{Painter: &theme, Width: width})
}

// Run runs the interactive viewer until the user quits
func Run(ctx context.Context, session *render.Session, opts Options) error {
	model := NewModel(session, opts)

	var programOpts []tea.ProgramOption
	if opts.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	if opts.InputTTY {
		programOpts = append(programOpts, tea.WithInputTTY())
	}
	programOpts = append(programOpts, tea.WithContext(ctx))
	p := tea.NewProgram(model, programOpts...)

	if opts.Watch && opts.Source != "" {
		w, err := NewWatcher(opts.Source, opts.Debounce, opts.loader(), p.Send, opts.Logger)
		if err != nil {
			return err
		}
		watchCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		go func() {
			if err := w.Run(watchCtx); err != nil {
				p.Send(manifestErrorMsg{err: err})
			}
		}()
	}

	_, err := p.Run()
	return err
}
