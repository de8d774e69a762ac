package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dmelnik/tui-snake/internal/config"
	"github.com/dmelnik/tui-snake/internal/core"
	"github.com/dmelnik/tui-snake/internal/game"
	"github.com/dmelnik/tui-snake/internal/game/level"
	"github.com/dmelnik/tui-snake/internal/storage"
)

// PlayOptions collects everything needed to start a game.
type PlayOptions struct {
	Config     config.SnakeConfig
	Catalog    level.Catalog
	StartLevel int // 0 uses the config's start level
	Runtime    core.RuntimeConfig
}

// PlayModel is the Bubble Tea model that drives one snake session.
type PlayModel struct {
	session    *game.Session
	cfg        config.SnakeConfig
	screen     *core.Screen
	store      *storage.Store
	keyMapper  *KeyMapper
	snap       game.Snapshot
	frame      core.InputFrame
	highScore  int
	standalone bool // No menu to return to; back quits the program
	quitting   bool
	backToMenu bool
	runSaved   bool // Whether the current run was already persisted
}

// NewPlayModel creates a play model and starts the session's first game.
func NewPlayModel(opts PlayOptions, store *storage.Store) (PlayModel, error) {
	startLevel := opts.StartLevel
	if startLevel <= 0 {
		startLevel = opts.Config.Levels.Start
	}
	if startLevel <= 0 {
		startLevel = 1
	}

	sessionOpts := []game.SessionOption{
		game.WithRules(opts.Config.Rules()),
		game.WithStartLevel(startLevel),
	}
	if opts.Catalog.Count() > 0 {
		sessionOpts = append(sessionOpts, game.WithCatalog(opts.Catalog))
	}

	session, err := game.NewSession(opts.Runtime.Seed, sessionOpts...)
	if err != nil {
		return PlayModel{}, err
	}

	m := PlayModel{
		session:   session,
		cfg:       opts.Config,
		screen:    core.NewScreen(opts.Runtime.ScreenW, opts.Runtime.ScreenH),
		store:     store,
		keyMapper: NewKeyMapper(),
		snap:      session.Snapshot(),
		frame:     core.NewInputFrame(),
	}
	if store != nil {
		if high, err := store.HighScore(); err == nil {
			m.highScore = high
		}
	}
	return m, nil
}

// Init starts the tick loop.
func (m PlayModel) Init() tea.Cmd {
	return tickCmd(m.cfg.ScaleInterval(m.snap.Interval))
}

// Update handles messages and updates the model state.
func (m PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// handleKey buffers keyboard input into the input frame. Steering stays
// buffered until the next tick consumes the frame; session commands take
// effect immediately and discard whatever was buffered with them.
func (m PlayModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapKeyToFrame(msg, &m.frame) {
		m.saveRun(storage.OutcomeQuit)
		m.snap = m.session.Quit()
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case m.frame.Has(core.ActionPause):
		m.frame.Clear()
		switch m.snap.Phase {
		case game.PhaseRunning:
			m.snap = m.session.Pause()
		case game.PhasePaused:
			m.snap = m.session.Resume()
		}

	case m.frame.Has(core.ActionRestart):
		m.frame.Clear()
		if m.snap.Phase.Terminal() {
			if snap, err := m.session.NewGame(); err == nil {
				m.snap = snap
				m.runSaved = false
			}
		}

	case m.frame.Has(core.ActionBack):
		m.frame.Clear()
		if m.snap.Phase.Terminal() || m.snap.Phase == game.PhasePaused {
			m.backToMenu = true
			if m.standalone {
				m.saveRun(storage.OutcomeQuit)
				m.quitting = true
				return m, tea.Quit
			}
		}
	}

	return m, nil
}

// handleTick advances the simulation one step and reschedules at the
// current level's pace.
func (m PlayModel) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	// The core swallows reversal ticks entirely; in timer-driven play the
	// snake should keep moving, so a reversal request becomes "straight".
	intent := m.frame.Intent()
	m.frame.Clear()
	if intent == m.snap.Heading.Opposite() {
		intent = core.DirNone
	}

	m.snap = m.session.Tick(intent)

	if m.snap.Phase.Terminal() && !m.runSaved {
		outcome := storage.OutcomeGameOver
		if m.snap.Phase == game.PhaseVictory {
			outcome = storage.OutcomeVictory
		}
		m.saveRun(outcome)
		if m.snap.Score > m.highScore {
			m.highScore = m.snap.Score
		}
	}

	return m, tickCmd(m.cfg.ScaleInterval(m.snap.Interval))
}

// saveRun persists the current run once.
func (m *PlayModel) saveRun(outcome string) {
	if m.runSaved || m.store == nil || m.snap.Score <= 0 {
		return
	}
	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveRun(m.snap.Score, m.snap.Level, outcome)
	m.runSaved = true
}

// View renders the current state.
func (m PlayModel) View() string {
	if m.quitting {
		return ""
	}
	drawSnapshot(m.screen, m.snap, m.session.LevelCount(), m.highScore)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if the user requested to quit entirely.
func (m PlayModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user requested to go back to the menu.
func (m PlayModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for direct (non-SSH) play.
func Run(opts PlayOptions, store *storage.Store) error {
	model, err := NewPlayModel(opts, store)
	if err != nil {
		return err
	}
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
