package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-chomp/internal/core"
	"github.com/vovakirdan/tui-chomp/internal/game"
	"github.com/vovakirdan/tui-chomp/internal/registry"
	"github.com/vovakirdan/tui-chomp/internal/storage"
)

// snapshotter is implemented by games that expose a full state snapshot.
// Used to enrich the run history with lives/pellets at round end.
type snapshotter interface {
	Snapshot() game.Snapshot
}

// Model drives one maze round in the local terminal: it collects key
// presses into the per-tick input frame, steps the game on each TickMsg,
// and records the result when the round ends.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	startedAt  time.Time
	quitting   bool
	runSaved   bool // Whether the run has been recorded for the current game over
}

// NewModel wraps a game for the local terminal loop.
func NewModel(g registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// An unset seed means the round should not be reproducible.
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       g,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		startedAt:  time.Now(),
	}
}

// Init resets the game and schedules the first tick.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey folds a key press into the frame for the next tick. Quit
// takes effect immediately; everything else waits for the tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.recordQuit()
		m.quitting = true
		return m, tea.Quit
	}

	switch msg.String() {
	case "up", "w":
		m.inputFrame.Set(core.ActionUp)
	case "down", "s":
		m.inputFrame.Set(core.ActionDown)
	case "left", "a":
		m.inputFrame.Set(core.ActionLeft)
	case "right", "d":
		m.inputFrame.Set(core.ActionRight)
	case "p", "esc":
		m.inputFrame.Set(core.ActionPause)
	case "r":
		if m.gameState.GameOver {
			m.inputFrame.Set(core.ActionRestart)
		}
	}

	return m, nil
}

// handleResize reshapes the buffer and restarts a live round so the
// maze re-centers on the new dimensions.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick advances the simulation one fixed step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// A restart re-seeds so the new round plays out differently.
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.runSaved = false
		m.startedAt = time.Now()
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Record the finished round once.
	if m.gameState.GameOver && !m.runSaved {
		m.recordRun()
		m.runSaved = true
	}

	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// recordRun persists the score and a run history row at round end.
func (m *Model) recordRun() {
	if m.store == nil {
		return
	}

	if m.gameState.Score > 0 {
		//nolint:errcheck // Best-effort save, game continues regardless
		m.store.SaveScore(m.game.ID(), m.gameState.Score)
	}

	outcome := storage.OutcomeLoss
	if m.gameState.Won {
		outcome = storage.OutcomeWin
	}
	run := storage.RunRecord{
		MazeID:   m.game.ID(),
		Outcome:  outcome,
		Score:    m.gameState.Score,
		Duration: int(time.Since(m.startedAt).Seconds()),
	}
	if s, ok := m.game.(snapshotter); ok {
		snap := s.Snapshot()
		run.LivesLeft = snap.Lives
		run.PelletsLeft = snap.Pellets + snap.Power
	}
	//nolint:errcheck // Best-effort save
	m.store.SaveRun(run)
}

// recordQuit records an abandoned round so the stats stay honest.
func (m *Model) recordQuit() {
	if m.store == nil || m.gameState.GameOver || m.runSaved {
		return
	}

	run := storage.RunRecord{
		MazeID:   m.game.ID(),
		Outcome:  storage.OutcomeQuit,
		Score:    m.gameState.Score,
		Duration: int(time.Since(m.startedAt).Seconds()),
	}
	if s, ok := m.game.(snapshotter); ok {
		snap := s.Snapshot()
		run.LivesLeft = snap.Lives
		run.PelletsLeft = snap.Pellets + snap.Power
	}
	//nolint:errcheck // Best-effort save
	m.store.SaveRun(run)
}

// View renders the game screen as styled text.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	return RenderScreen(m.screen)
}

// Run plays one terminal session of the given game, blocking until the
// user quits.
func Run(g registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(NewModel(g, store, cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
