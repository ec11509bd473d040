package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/vovakirdan/cannonball/internal/core"
	"github.com/vovakirdan/cannonball/internal/engine"
	"github.com/vovakirdan/cannonball/internal/storage"
)

// MatchKeyMap defines the key bindings while watching a match.
type MatchKeyMap struct {
	Pause   key.Binding
	Restart key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MatchKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MatchKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Pause, k.Restart, k.Quit}}
}

// DefaultMatchKeyMap returns default key bindings.
func DefaultMatchKeyMap() MatchKeyMap {
	return MatchKeyMap{
		Pause: key.NewBinding(
			key.WithKeys("p", " "),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "rematch"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Model is the Bubble Tea model for running a bot match.
type Model struct {
	match    *engine.Match
	renderer *Renderer
	screen   *core.Screen
	store    *storage.Store
	config   core.RuntimeConfig
	names    [2]string
	keys     MatchKeyMap
	help     help.Model
	seed     int64
	endedBy  string
	paused   bool
	quitting bool
	saved    bool // Whether the result has been saved for the current match
}

// NewModel creates a new Bubble Tea model for a match between two bots.
// The store may be nil to skip result persistence.
func NewModel(match *engine.Match, name1, name2 string, store *storage.Store, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	match.Reset(cfg.TickRate, cfg.Seed)

	return Model{
		match: match,
		// The last row is reserved for the help footer.
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH-1),
		renderer: NewRenderer(match.Rules(), name1, name2),
		store:    store,
		config:   cfg,
		names:    [2]string{name1, name2},
		keys:     DefaultMatchKeyMap(),
		help:     help.New(),
		seed:     cfg.Seed,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height-1)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Pause):
		if !m.match.Over() {
			m.paused = !m.paused
		}

	case key.Matches(msg, m.keys.Restart):
		if m.match.Over() {
			m.seed = time.Now().UnixNano()
			m.match.Reset(m.config.TickRate, m.seed)
			m.paused = false
			m.saved = false
			m.endedBy = ""
		}
	}

	return m, nil
}

// handleTick advances the match by one tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.paused && !m.match.Over() {
		ev := m.match.Step()
		if ev.MatchOver {
			m.endedBy = endReason(m.match, ev)
		}
	}

	if m.match.Over() && !m.saved {
		m.saveResult()
		m.saved = true
	}

	return m, tickCmd(m.config.TickRate)
}

// saveResult persists the finished match. Best effort: a failed save never
// interrupts the session.
func (m *Model) saveResult() {
	if m.store == nil {
		return
	}

	snap := m.match.Snapshot()
	rules := m.match.Rules()

	//nolint:errcheck // Best-effort save, session continues regardless
	m.store.SaveMatch(storage.MatchResult{
		MatchID:   uuid.NewString(),
		Bot1:      m.names[0],
		Bot2:      m.names[1],
		Score1:    snap.Score1,
		Score2:    snap.Score2,
		Winner:    int(snap.Winner),
		Rounds:    snap.Round + 1,
		Bullets1:  snap.Cannons[0].ShotsFired,
		Bullets2:  snap.Cannons[1].ShotsFired,
		Duration:  rules.MatchSeconds - snap.TimeLeft,
		EndReason: m.endedBy,
		Seed:      m.seed,
	})
}

// endReason classifies how a match finished.
func endReason(match *engine.Match, ev engine.StepEvents) string {
	switch {
	case ev.Stalemate != engine.NoPlayer:
		return "stalemate"
	case ev.Goal != engine.NoPlayer:
		return "score"
	default:
		return "clock"
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.renderer.Render(m.screen, m.match.Snapshot(), m.paused)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for a local match.
func Run(match *engine.Match, name1, name2 string, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(match, name1, name2, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
