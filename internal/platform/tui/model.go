package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-crossing/internal/assets"
	"github.com/vovakirdan/tui-crossing/internal/config"
	"github.com/vovakirdan/tui-crossing/internal/core"
	"github.com/vovakirdan/tui-crossing/internal/games/crossing"
)

// helpLines is the screen space kept free below the board for the help view.
const helpLines = 4

var (
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	loadingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

// spritesReadyMsg is sent once the sprite catalog reports loaded.
type spritesReadyMsg struct{}

// spritesFailedMsg is sent when the catalog could not be loaded.
type spritesFailedMsg struct {
	err error
}

// Options configures the terminal host.
type Options struct {
	Logger      *log.Logger
	SpritesPath string     // Empty loads the embedded catalog
	Clock       core.Clock // Defaults to the system clock
}

// Model is the Bubble Tea model for the crossing game.
// The game is created once the sprite catalog is loaded; until then
// only quit and help respond.
type Model struct {
	config      core.RuntimeConfig
	gameConfig  config.CrossingConfig
	catalog     *assets.Catalog
	ready       chan struct{}
	spritesPath string
	logger      *log.Logger
	clock       core.Clock

	screen    *core.Screen
	scheduler *FrameScheduler
	loop      *crossing.Loop

	keys     KeyMap
	help     help.Model
	loadErr  error
	quitting bool
}

// NewModel creates a new Bubble Tea model.
func NewModel(cfg core.RuntimeConfig, gameCfg config.CrossingConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	clock := opts.Clock
	if clock == nil {
		clock = core.SystemClock{}
	}

	catalog := assets.NewCatalog()
	ready := make(chan struct{})
	catalog.OnAllLoaded(func() { close(ready) })

	h := help.New()
	h.ShowAll = false

	return Model{
		config:      cfg,
		gameConfig:  gameCfg,
		catalog:     catalog,
		ready:       ready,
		spritesPath: opts.SpritesPath,
		logger:      logger,
		clock:       clock,
		screen:      core.NewScreen(cfg.ScreenW, core.Max(cfg.ScreenH-helpLines, 0)),
		scheduler:   NewFrameScheduler(cfg.TickRate),
		keys:        DefaultKeyMap(),
		help:        h,
	}
}

// Init starts loading sprites and waits for the catalog to report ready.
func (m Model) Init() tea.Cmd {
	return tea.Batch(loadSpritesCmd(m.catalog, m.spritesPath), waitSpritesCmd(m.ready))
}

// loadSpritesCmd loads the catalog off the update loop.
func loadSpritesCmd(catalog *assets.Catalog, path string) tea.Cmd {
	return func() tea.Msg {
		var err error
		if path == "" {
			err = catalog.LoadDefault()
		} else {
			err = catalog.LoadFile(path)
		}
		if err != nil {
			return spritesFailedMsg{err: err}
		}
		return nil
	}
}

// waitSpritesCmd blocks until the catalog's readiness callback fires.
func waitSpritesCmd(ready <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-ready
		return spritesReadyMsg{}
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case FrameMsg:
		m.scheduler.Dispatch(msg)
		return m, m.scheduler.Flush()

	case spritesReadyMsg:
		m.setupGame()
		return m, nil

	case spritesFailedMsg:
		m.loadErr = msg.err
		m.logger.Error("could not load sprites", "error", msg.err)
		return m, nil
	}

	return m, nil
}

// setupGame builds the session, renderer and loop from the loaded catalog.
func (m *Model) setupGame() {
	board := crossing.NewBoard(m.gameConfig, m.catalog)

	ids := append([]string{board.EnemySprite, board.PlayerSprite}, board.RowImages...)
	if err := m.catalog.Require(ids...); err != nil {
		m.logger.Warn("sprite missing, drawing placeholders", "error", err)
	}

	session := crossing.NewSession(board, m.gameConfig.Rules.LifeLimit, m.gameConfig.Enemies.Count, m.config.Seed)
	renderer := crossing.NewScreenRenderer(m.screen, m.catalog, board, m.gameConfig.Display)
	m.loop = crossing.NewLoop(session, renderer, m.scheduler, m.clock,
		crossing.WithLogger(m.logger),
		crossing.WithMaxFrameDelta(m.gameConfig.Loop.MaxFrameDelta),
	)
	m.loop.Render()

	m.logger.Info("sprites loaded", "count", len(m.catalog.List()), "sprite_width", board.SpriteWidth, "seed", m.config.Seed)
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		if m.loop != nil {
			m.loop.Halt()
		}
		return m, tea.Quit
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	// Game commands wait for the sprites
	if m.loop == nil {
		return m, nil
	}

	switch {
	case action.IsSessionCommand():
		m.runCommand(action)
	case action.IsMovement():
		d, _ := crossing.DirectionFor(action)
		m.loop.Move(d)
	}

	return m, m.scheduler.Flush()
}

// runCommand applies start, stop or reset to the loop.
func (m *Model) runCommand(action core.Action) {
	var changed bool
	switch action {
	case core.ActionStart:
		changed = m.loop.Start()
	case core.ActionStop:
		changed = m.loop.Stop()
	case core.ActionReset:
		changed = m.loop.Reset()
	}
	if !changed {
		m.logger.Debug("command ignored", "action", action, "phase", m.loop.Session().Phase())
	}
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, core.Max(msg.Height-helpLines, 0))
	m.help.Width = msg.Width

	if m.loop != nil {
		m.loop.Render()
	}
	return m, nil
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	dir := filepath.Join(os.Getenv("HOME"), ".crossing", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "dir", dir, "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("crossing_%s.txt", timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	footer := helpStyle.Render(m.help.View(m.keys))

	switch {
	case m.loadErr != nil:
		return errorStyle.Render(fmt.Sprintf("Could not load sprites: %v", m.loadErr)) + "\n\n" + footer
	case m.loop == nil:
		return loadingStyle.Render("Loading sprites...") + "\n\n" + footer
	}

	return RenderScreen(m.screen) + "\n" + footer
}

// Run starts the Bubble Tea program.
func Run(cfg core.RuntimeConfig, gameCfg config.CrossingConfig, opts Options) error {
	model := NewModel(cfg, gameCfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
