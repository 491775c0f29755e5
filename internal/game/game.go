// Package game adapts the arena to the platform's registry.Game interface.
// One Game type serves every mode: a solo run, a two-player match on one
// keyboard, and the two attract modes.
package game

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/arena"
	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/demo"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Mode selects who controls the snakes.
type Mode string

const (
	ModeSolo   Mode = "solo"
	ModeVersus Mode = "versus"
	ModeDemo   Mode = "demo"
	ModeWander Mode = "wander"
)

// Settings carry the loaded configuration into newly created games.
type Settings struct {
	Config config.SnakeConfig
	Demo   config.DemoConfig
	Logger *log.Logger
}

// Package-level settings, set by the CLI before games are created
// (registry factories take no arguments).
var settings = defaultSettings()

func defaultSettings() Settings {
	return Settings{
		Config: config.DefaultSnakeConfig(),
		Demo:   config.DefaultDemoConfig(),
		Logger: log.New(io.Discard),
	}
}

// Configure replaces the settings used by games created afterwards.
func Configure(s Settings) {
	if s.Logger == nil {
		s.Logger = log.New(io.Discard)
	}
	settings = s
}

func init() {
	for _, m := range []Mode{ModeSolo, ModeVersus, ModeDemo, ModeWander} {
		m := m
		registry.Register(m.ID(), func() registry.Game {
			return New(m)
		})
	}
}

// ID returns the registry ID of a mode.
func (m Mode) ID() string {
	if m == ModeSolo {
		return "snake"
	}
	return "snake_" + string(m)
}

// show is an attract-mode driver.
type show interface {
	Tick() arena.Report
	Arena() *arena.Arena
	Scenario() demo.Scenario
}

// Game implements registry.Game for one mode.
type Game struct {
	mode     Mode
	settings Settings
	rng      *rand.Rand
	tick     uint64

	arena *arena.Arena
	show  show
	err   error // Set when the mode cannot start

	screenW  int
	screenH  int
	paused   bool
	tooSmall bool
}

// New creates a game in the given mode. Reset must be called before Step.
func New(mode Mode) *Game {
	return &Game{mode: mode}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.mode.ID()
}

// Title returns the display name.
func (g *Game) Title() string {
	switch g.mode {
	case ModeVersus:
		return "Snake: Versus"
	case ModeDemo:
		return "Snake: Demo"
	case ModeWander:
		return "Snake: Wander"
	default:
		return "Snake"
	}
}

// Players returns how many keyboard seats the mode reads.
func (g *Game) Players() int {
	switch g.mode {
	case ModeSolo:
		return 1
	case ModeVersus:
		return 2
	default:
		return 0
	}
}

// Mode returns the game's mode.
func (g *Game) Mode() Mode {
	return g.mode
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.settings = settings
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.paused = false
	g.err = nil
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tooSmall = g.screenW < MinWidth || g.screenH < MinHeight

	g.arena, g.show = nil, nil
	logger := g.settings.Logger
	seed := g.rng.Int63()
	res, _ := arena.ParseResolution(g.settings.Config.Resolution)

	switch g.mode {
	case ModeSolo:
		g.arena = arena.New(arena.Config{
			Players:    []arena.Start{startOf(g.settings.Config.Solo)},
			Resolution: res,
		}, arena.WithSeed(seed), arena.WithLogger(logger))
	case ModeVersus:
		starts := make([]arena.Start, 0, len(g.settings.Config.Versus))
		for _, p := range g.settings.Config.Versus {
			starts = append(starts, startOf(p))
		}
		g.arena = arena.New(arena.Config{Players: starts, Resolution: res},
			arena.WithSeed(seed), arena.WithLogger(logger))
	case ModeDemo:
		s, err := demo.NewScripted(demo.Scenarios(g.settings.Demo.Scripted), logger)
		g.setShow(s, err)
	case ModeWander:
		w, err := demo.NewWander(demo.Scenarios(g.settings.Demo.Wander), seed, logger)
		g.setShow(w, err)
	default:
		g.err = fmt.Errorf("game: unknown mode %q", g.mode)
	}

	if g.err != nil {
		logger.Error("cannot start game", "mode", g.mode, "err", g.err)
		return
	}
	logger.Info("game started", "mode", g.mode, "seed", cfg.Seed, "arena", g.arena.ID())
}

func (g *Game) setShow(s show, err error) {
	if err != nil {
		g.err = err
		return
	}
	g.show = s
	g.arena = s.Arena()
}

func startOf(p config.PlayerConfig) arena.Start {
	return arena.Start{Segments: p.Segments, Direction: p.Dir()}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.MultiInputFrame) core.StepResult {
	if g.arena == nil {
		return core.StepResult{State: g.State()}
	}
	g.tick++

	if in.Any(core.ActionRestart) && g.State().GameOver {
		g.Reset(core.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return core.StepResult{State: g.State()}
	}

	if in.Any(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused || g.tooSmall || g.State().GameOver {
		return core.StepResult{State: g.State()}
	}

	var report arena.Report
	if g.show != nil {
		report = g.show.Tick()
	} else {
		g.steer(in)
		report = g.arena.Tick()
	}

	return core.StepResult{State: g.State(), Events: events(report)}
}

// steer forwards each seat's direction actions, in order, to its snake.
func (g *Game) steer(in core.MultiInputFrame) {
	for i := 0; i < g.arena.Players(); i++ {
		frame := in.Player(core.PlayerID(i + 1))
		for _, a := range frame.Actions {
			if dir, ok := actionDirection(a); ok {
				g.arena.Steer(i, dir)
			}
		}
	}
}

func actionDirection(a core.Action) (snake.Direction, bool) {
	switch a {
	case core.ActionUp:
		return snake.Up, true
	case core.ActionDown:
		return snake.Down, true
	case core.ActionLeft:
		return snake.Left, true
	case core.ActionRight:
		return snake.Right, true
	}
	return snake.Direction{}, false
}

func events(r arena.Report) []core.Event {
	var evs []core.Event
	for i, o := range r.Outcomes {
		switch o.Kind {
		case snake.Ate:
			evs = append(evs, core.Event{Player: core.PlayerID(i + 1), Kind: core.EventAte})
		case snake.Died:
			evs = append(evs, core.Event{Player: core.PlayerID(i + 1), Kind: core.EventDied, Detail: o.Cause.String()})
		}
	}
	return evs
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{Paused: g.paused}
	if g.arena == nil {
		st.GameOver = g.err != nil
		return st
	}
	for _, s := range g.arena.Snakes() {
		st.Score = max(st.Score, s.Score())
	}
	// Attract modes restart on their own and are never over.
	st.GameOver = g.show == nil && g.arena.Over()
	return st
}

// Arena exposes the arena for inspection.
func (g *Game) Arena() *arena.Arena {
	return g.arena
}

// Err returns why the mode could not start, if it could not.
func (g *Game) Err() error {
	return g.err
}
