// Package demo drives the attract mode: arenas that play themselves, either
// replaying scripted scenarios step by step or letting snakes wander at
// random until they all die.
package demo

import (
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/arena"
	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// wanderTurnChance is the per-tick probability that a wandering snake picks
// a new random heading.
const wanderTurnChance = 0.1

// ErrNoScenarios is returned when a player is built without scenarios.
var ErrNoScenarios = errors.New("demo: no scenarios")

// Scenario is one attract-mode setup.
type Scenario struct {
	Name   string
	Snakes []arena.Start
	Steps  []Step // Scripted only
}

// Step is one scripted tick: the food for that tick and one heading per snake.
type Step struct {
	Food snake.Point
	Dirs []snake.Direction
}

// MakeSnake builds a straight chain of up to n cells with head first and the
// body trailing opposite to dir. The chain stops at the board edge.
func MakeSnake(head snake.Point, dir snake.Direction, n int) []snake.Point {
	segs := make([]snake.Point, 0, n)
	for i := 0; i < n; i++ {
		p := snake.Point{X: head.X - dir.DX*i, Y: head.Y - dir.DY*i}
		if !snake.InBounds(p) {
			break
		}
		segs = append(segs, p)
	}
	return segs
}

// Scenarios converts validated scenario configs.
func Scenarios(cfgs []config.ScenarioConfig) []Scenario {
	out := make([]Scenario, 0, len(cfgs))
	for _, c := range cfgs {
		sc := Scenario{Name: c.Name}
		for _, s := range c.Snakes {
			dir, _ := snake.ParseDirection(s.Direction)
			segs := s.Segments
			if s.Head != nil {
				segs = MakeSnake(*s.Head, dir, s.Length)
			}
			sc.Snakes = append(sc.Snakes, arena.Start{Segments: segs, Direction: dir})
		}
		for _, st := range c.Steps {
			step := Step{Food: st.Food}
			for _, d := range st.Dirs {
				dir, _ := snake.ParseDirection(d)
				step.Dirs = append(step.Dirs, dir)
			}
			sc.Steps = append(sc.Steps, step)
		}
		out = append(out, sc)
	}
	return out
}

func discardIfNil(l *log.Logger) *log.Logger {
	if l == nil {
		return log.New(io.Discard)
	}
	return l
}

// scriptedFood hands the arena whatever food the script says comes next.
type scriptedFood struct {
	next snake.Point
}

func (f *scriptedFood) Place(_ []*snake.Snake) (snake.Point, bool) {
	return f.next, true
}

// Scripted replays scenarios in order, forever. Snakes move one after
// another, so the second snake sees where the first one went.
type Scripted struct {
	scenarios []Scenario
	index     int
	step      int
	food      *scriptedFood
	arena     *arena.Arena
	logger    *log.Logger
}

// NewScripted creates a scripted player positioned at the first scenario.
func NewScripted(scenarios []Scenario, logger *log.Logger) (*Scripted, error) {
	if len(scenarios) == 0 {
		return nil, ErrNoScenarios
	}
	for _, sc := range scenarios {
		if len(sc.Steps) == 0 {
			return nil, fmt.Errorf("demo: scripted scenario %q has no steps", sc.Name)
		}
	}

	logger = discardIfNil(logger)
	s := &Scripted{
		scenarios: scenarios,
		food:      &scriptedFood{next: scenarios[0].Steps[0].Food},
		logger:    logger,
	}
	s.arena = arena.New(arena.Config{
		Players:    scenarios[0].Snakes,
		Resolution: arena.ResolveSequential,
	}, arena.WithPlacer(s.food), arena.WithLogger(logger))
	return s, nil
}

// Tick plays the current step. After the last step of a scenario the snakes
// are reset into the next one.
func (s *Scripted) Tick() arena.Report {
	sc := s.scenarios[s.index]
	step := sc.Steps[s.step]

	for i, d := range step.Dirs {
		s.arena.Steer(i, d)
	}
	s.food.next = sc.Steps[(s.step+1)%len(sc.Steps)].Food
	report := s.arena.Tick()

	if s.step == len(sc.Steps)-1 {
		s.index = (s.index + 1) % len(s.scenarios)
		s.step = 0
		next := s.scenarios[s.index]
		s.food.next = next.Steps[0].Food
		s.arena.Restart(next.Snakes)
		s.logger.Debug("demo scenario", "name", next.Name, "index", s.index)
	} else {
		s.step++
	}
	return report
}

// Arena returns the arena being played.
func (s *Scripted) Arena() *arena.Arena {
	return s.arena
}

// Scenario returns the scenario on the board.
func (s *Scripted) Scenario() Scenario {
	return s.scenarios[s.index]
}

// Index returns the position of the current scenario.
func (s *Scripted) Index() int {
	return s.index
}

// Wander lets scenario snakes roam: each tick every live snake turns to a
// random heading with a small probability. Food spawns at random. The next
// scenario starts as soon as the game is over.
type Wander struct {
	scenarios  []Scenario
	index      int
	rng        *rand.Rand
	turnChance float64
	arena      *arena.Arena
	logger     *log.Logger
}

// NewWander creates a wandering player positioned at the first scenario.
func NewWander(scenarios []Scenario, seed int64, logger *log.Logger) (*Wander, error) {
	if len(scenarios) == 0 {
		return nil, ErrNoScenarios
	}

	logger = discardIfNil(logger)
	w := &Wander{
		scenarios:  scenarios,
		rng:        rand.New(rand.NewSource(seed)),
		turnChance: wanderTurnChance,
		logger:     logger,
	}
	w.arena = arena.New(arena.Config{
		Players:    scenarios[0].Snakes,
		Resolution: arena.ResolveSequential,
	}, arena.WithSeed(seed), arena.WithLogger(logger))
	return w, nil
}

// Tick maybe turns each live snake, then advances the board.
func (w *Wander) Tick() arena.Report {
	for i, s := range w.arena.Snakes() {
		if !s.Alive() {
			continue
		}
		if w.rng.Float64() < w.turnChance {
			w.arena.Steer(i, snake.Directions[w.rng.Intn(len(snake.Directions))])
		}
	}

	report := w.arena.Tick()
	if report.Over {
		w.index = (w.index + 1) % len(w.scenarios)
		next := w.scenarios[w.index]
		w.arena.Restart(next.Snakes)
		w.logger.Debug("wander scenario", "name", next.Name, "index", w.index)
	}
	return report
}

// Arena returns the arena being played.
func (w *Wander) Arena() *arena.Arena {
	return w.arena
}

// Scenario returns the scenario on the board.
func (w *Wander) Scenario() Scenario {
	return w.scenarios[w.index]
}

// Index returns the position of the current scenario.
func (w *Wander) Index() int {
	return w.index
}
