package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// footerHeight is the number of rows below the game screen.
const footerHeight = 1

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.MultiInputFrame
	gameState  core.GameState
	keys       *KeyMapper
	help       help.Model
	logger     *log.Logger
	status     string
	quitting   bool
	back       bool // Esc pressed: return to the menu instead of exiting
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = core.DefaultTickInterval
	}
	if logger == nil {
		logger = log.New(os.Stderr)
	}

	h := help.New()
	h.ShowAll = false

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-footerHeight, 1)),
		config:     cfg,
		inputFrame: core.NewMultiInputFrame(),
		keys:       NewKeyMapper(game.Players()),
		help:       h,
		logger:     logger,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.gameConfig())
	return tickCmd(m.config.TickInterval)
}

// gameConfig is the runtime config with the footer row taken off.
func (m Model) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = max(cfg.ScreenH-footerHeight, 1)
	return cfg
}

// Update handles messages and updates the model state.
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

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keys.MapKeyToMultiFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	if m.inputFrame.Any(core.ActionBack) {
		m.back = true
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-footerHeight, 1))
	m.help.Width = msg.Width

	// The board size is fixed, so a resize only matters for the too-small
	// check; restart unless the player is looking at a result.
	if !m.gameState.GameOver {
		m.game.Reset(m.gameConfig())
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	switch {
	case m.gameState.GameOver && !result.State.GameOver:
		m.status = ""
	case !m.gameState.GameOver && result.State.GameOver:
		m.logger.Debug("game over", "game", m.game.ID(), "score", result.State.Score)
	}
	m.gameState = result.State

	if len(result.Events) > 0 {
		m.status = describeEvents(result.Events, m.game.Players())
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickInterval)
}

// describeEvents turns tick events into a one-line status message.
func describeEvents(events []core.Event, players int) string {
	parts := make([]string, 0, len(events))
	for _, ev := range events {
		who := "You"
		if players != 1 {
			who = fmt.Sprintf("P%d", ev.Player)
		}
		switch ev.Kind {
		case core.EventAte:
			parts = append(parts, who+" ate")
		case core.EventDied:
			parts = append(parts, fmt.Sprintf("%s hit %s", who, ev.Detail))
		}
	}
	return strings.Join(parts, ", ")
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot", "err", err)
		return
	}
	m.status = "Saved " + path
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	footer := m.help.View(m.keys.Keys())
	if m.status != "" {
		footer = statusStyle.Render(m.status) + "  " + footer
	}
	return RenderScreen(m.screen) + "\n" + footer
}

// Result reports how a game session ended.
type Result struct {
	State core.GameState
	Back  bool // The player asked to return to the menu
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) (Result, error) {
	p := tea.NewProgram(
		NewModel(game, cfg, logger),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return Result{}, err
	}
	m, ok := final.(Model)
	if !ok {
		return Result{}, nil
	}
	return Result{State: m.gameState, Back: m.back}, nil
}
