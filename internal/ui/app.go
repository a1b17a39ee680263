// Package ui provides the Bubble Tea terminal interface for vrcwatch.
package ui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"vrcwatch/internal/config"
	"vrcwatch/internal/event"
	"vrcwatch/internal/prefs"
	"vrcwatch/internal/state"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Store     *state.Store
	Rules     *event.Ruleset
	Config    *config.Config
	PollTick  time.Duration
	ThemeName string
	Follow    bool
	PrefsPath string
	Backlog   []string // journal lines from earlier today, shown above the live feed
}

// Model is the root application state for Bubble Tea.
type Model struct {
	ctx       context.Context
	store     *state.Store
	rules     *event.Ruleset
	config    *config.Config
	prefsPath string
	tick      time.Duration

	keys     keyMap
	theme    Theme
	width    int
	height   int
	ready    bool
	follow   bool
	showHelp bool

	snapshot    state.Snapshot
	lastUpdated time.Time
	backlog     []string

	viewport     viewport.Model
	lastRendered int // events already rendered into the viewport
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	// The UI never needs to redraw faster than twice a second, no matter how
	// aggressively the tail polls.
	tick := opts.PollTick
	if tick < 500*time.Millisecond {
		tick = 500 * time.Millisecond
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = themeOrder[0]
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	return Model{
		ctx:       ctx,
		store:     opts.Store,
		rules:     opts.Rules,
		config:    opts.Config,
		prefsPath: prefsPath,
		tick:      tick,
		keys:      defaultKeyMap(),
		theme:     GetTheme(themeName),
		follow:    opts.Follow,
		backlog:   opts.Backlog,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		tickCmd(m.tick),
	}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.initViewport()
		}
		m.ready = true
		m.resizeViewport()
		m.renderFeed(true)
		return m, nil

	case tickMsg:
		var cmds []tea.Cmd
		if m.store != nil {
			cmds = append(cmds, fetchSnapshotCmd(m.store))
		}
		cmds = append(cmds, tickCmd(m.tick))
		return m, tea.Batch(cmds...)

	case snapshotMsg:
		m.snapshot = state.Snapshot(msg)
		m.lastUpdated = time.Now()
		if m.ready {
			m.renderFeed(false)
		}
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderFeedBox())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help.
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()
		m.renderFeed(true)
		return m, nil

	case key.Matches(msg, m.keys.ToggleFollow):
		m.follow = !m.follow
		if m.follow {
			m.viewport.GotoBottom()
		}
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.follow = false
		m.viewport.LineUp(1)
	case key.Matches(msg, m.keys.Down):
		m.viewport.LineDown(1)
	case key.Matches(msg, m.keys.HalfPageUp):
		m.follow = false
		m.viewport.HalfViewUp()
	case key.Matches(msg, m.keys.HalfPageDown):
		m.viewport.HalfViewDown()
	case key.Matches(msg, m.keys.Top):
		m.follow = false
		m.viewport.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		m.follow = true
		m.viewport.GotoBottom()
	}

	return m, nil
}

func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name, Follow: m.follow})
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

// Run starts the Bubble Tea program and blocks until the user quits or the
// context is cancelled.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())

	if opts.Context != nil {
		go func() {
			<-opts.Context.Done()
			p.Quit()
		}()
	}

	_, err := p.Run()
	return err
}
