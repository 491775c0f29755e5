// Package arena runs the game loop around the snake engine: it buffers
// direction intents, moves every live snake once per tick in a fixed order,
// respawns food and decides when the game is over.
package arena

import (
	"fmt"
	"io"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-snake/internal/snake"
)

// maxQueuedIntents bounds how many direction changes a player can queue
// ahead of the board. One is consumed per tick.
const maxQueuedIntents = 3

// Resolution selects how snakes moving in the same tick see each other.
type Resolution int

const (
	// ResolveSnapshot checks every snake against the other snakes as they
	// were before the tick, plus the cell each live rival is about to enter.
	// Two heads entering the same cell both die.
	ResolveSnapshot Resolution = iota

	// ResolveSequential moves snakes one after another; later snakes see the
	// bodies already committed by earlier ones this tick.
	ResolveSequential
)

// String returns the config name of the policy.
func (r Resolution) String() string {
	switch r {
	case ResolveSnapshot:
		return "snapshot"
	case ResolveSequential:
		return "sequential"
	default:
		return "unknown"
	}
}

// ParseResolution converts a config name to a Resolution.
func ParseResolution(s string) (Resolution, error) {
	switch s {
	case "", "snapshot":
		return ResolveSnapshot, nil
	case "sequential":
		return ResolveSequential, nil
	}
	return ResolveSnapshot, fmt.Errorf("arena: unknown resolution %q", s)
}

// Start is the initial chain and heading of one player.
type Start struct {
	Segments  []snake.Point
	Direction snake.Direction
}

// Config describes the players and the collision policy.
type Config struct {
	Players    []Start
	Resolution Resolution
}

// Report is the result of one tick.
type Report struct {
	Tick      uint64
	Outcomes  []snake.Outcome // One per player, in player order
	FoodMoved bool            // Food was eaten and placed somewhere else
	Food      snake.Point
	Over      bool
}

// Count returns how many players had an outcome of the given kind.
func (r Report) Count(k snake.Kind) int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Kind == k {
			n++
		}
	}
	return n
}

// Option configures an Arena.
type Option func(*Arena)

// WithLogger sets the logger used for game events.
func WithLogger(l *log.Logger) Option {
	return func(a *Arena) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithPlacer replaces the random food placer.
func WithPlacer(p FoodPlacer) Option {
	return func(a *Arena) {
		a.placer = p
	}
}

// WithSeed seeds the default random food placer.
func WithSeed(seed int64) Option {
	return func(a *Arena) {
		a.seed = seed
	}
}

// Arena owns the snakes of one session and the food they compete for.
// It is not safe for concurrent use; the platform drives it from a single
// tick loop.
type Arena struct {
	id      string
	cfg     Config
	snakes  []*snake.Snake
	intents [][]snake.Direction
	food    snake.Point
	placer  FoodPlacer
	seed    int64
	logger  *log.Logger
	tick    uint64
	over    bool
}

// New creates an arena with one snake per configured player and places the
// first food item.
func New(cfg Config, opts ...Option) *Arena {
	a := &Arena{
		id:     uuid.NewString(),
		cfg:    Config{Resolution: cfg.Resolution},
		seed:   1,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.placer == nil {
		a.placer = NewRandomPlacer(a.seed)
	}
	a.logger = a.logger.With("arena", a.id[:8])

	a.Restart(cfg.Players)
	return a
}

// Reset puts every snake back at its start. Snake pointers stay valid.
func (a *Arena) Reset() {
	a.Restart(a.cfg.Players)
}

// Restart puts the snakes at new starts. When the player count is unchanged
// the existing snakes are reset in place, so pointers held by callers stay
// valid.
func (a *Arena) Restart(players []Start) {
	starts := make([]Start, len(players))
	for i, p := range players {
		starts[i] = Start{Segments: slices.Clone(p.Segments), Direction: p.Direction}
	}
	a.cfg.Players = starts

	if len(a.snakes) != len(starts) {
		a.snakes = make([]*snake.Snake, len(starts))
		for i, st := range starts {
			a.snakes[i] = snake.New(st.Segments, st.Direction)
		}
	} else {
		for i, st := range starts {
			a.snakes[i].Reset(st.Segments, st.Direction)
		}
	}

	a.intents = make([][]snake.Direction, len(starts))
	a.tick = 0
	a.over = false
	a.placeFood()

	a.logger.Debug("arena reset", "players", len(starts), "resolution", a.cfg.Resolution, "food", a.food)
}

// Steer queues a direction change for a player. Intents are applied one per
// tick through the snake's reversal guard. Unknown players, non-unit
// directions, repeats, reversals of the last queued heading and overflow are
// dropped, so a rejected key never delays the next turn.
func (a *Arena) Steer(player int, dir snake.Direction) {
	if player < 0 || player >= len(a.snakes) || !dir.IsUnit() {
		return
	}
	q := a.intents[player]
	last := a.snakes[player].Direction()
	if len(q) > 0 {
		last = q[len(q)-1]
	}
	if dir == last || dir.IsReverseOf(last) || len(q) >= maxQueuedIntents {
		return
	}
	a.intents[player] = append(q, dir)
}

// Tick advances the board by one step.
func (a *Arena) Tick() Report {
	report := Report{
		Tick:     a.tick,
		Outcomes: make([]snake.Outcome, len(a.snakes)),
		Food:     a.food,
		Over:     a.over,
	}
	if a.over {
		return report
	}
	a.tick++
	report.Tick = a.tick

	for i, s := range a.snakes {
		if !s.Alive() || len(a.intents[i]) == 0 {
			continue
		}
		s.SetDirection(a.intents[i][0])
		a.intents[i] = a.intents[i][1:]
	}

	var frozen []snake.Body
	if a.cfg.Resolution == ResolveSnapshot {
		frozen = a.freeze()
	}

	eaten := false
	for i, s := range a.snakes {
		if !s.Alive() {
			continue
		}
		out := s.Move(a.food, a.obstaclesFor(i, frozen)...)
		report.Outcomes[i] = out

		switch out.Kind {
		case snake.Died:
			a.logger.Debug("snake died", "player", i+1, "cause", out.Cause, "head", s.Head(), "tick", a.tick)
		case snake.Ate:
			eaten = true
			a.logger.Debug("snake ate", "player", i+1, "score", s.Score(), "length", s.Len(), "tick", a.tick)
		}
	}

	if eaten {
		report.FoodMoved = true
		if !a.placeFood() {
			a.finish("board full")
		} else {
			a.logger.Debug("food respawned", "at", a.food, "tick", a.tick)
		}
	}
	if !a.anyAlive() {
		a.finish("all snakes dead")
	}

	report.Food = a.food
	report.Over = a.over
	return report
}

// freeze captures every snake's pre-tick body and the cell it is about to enter.
func (a *Arena) freeze() []snake.Body {
	frozen := make([]snake.Body, len(a.snakes))
	for i, s := range a.snakes {
		f := frozenBody{segments: s.Segments()}
		if s.Alive() && s.Len() > 0 {
			next := s.Head().Add(s.Direction())
			if snake.InBounds(next) {
				f.claim, f.claimed = next, true
			}
		}
		frozen[i] = f
	}
	return frozen
}

// obstaclesFor returns the bodies player i is checked against.
func (a *Arena) obstaclesFor(i int, frozen []snake.Body) []snake.Body {
	others := make([]snake.Body, 0, len(a.snakes)-1)
	for j, s := range a.snakes {
		if j == i {
			continue
		}
		if frozen != nil {
			others = append(others, frozen[j])
		} else {
			others = append(others, s)
		}
	}
	return others
}

func (a *Arena) placeFood() bool {
	p, ok := a.placer.Place(a.snakes)
	if !ok {
		a.food = snake.Point{X: -1, Y: -1}
		return false
	}
	a.food = p
	return true
}

func (a *Arena) anyAlive() bool {
	for _, s := range a.snakes {
		if s.Alive() {
			return true
		}
	}
	return false
}

func (a *Arena) finish(reason string) {
	if a.over {
		return
	}
	a.over = true

	scores := make([]int, len(a.snakes))
	for i, s := range a.snakes {
		scores[i] = s.Score()
	}
	a.logger.Info("game over", "reason", reason, "tick", a.tick, "scores", scores, "winner", a.Winner()+1)
}

// ID returns the session identifier used in log lines.
func (a *Arena) ID() string {
	return a.id
}

// Snakes returns the snakes in player order. The slice is a copy; the
// snakes are the live entities.
func (a *Arena) Snakes() []*snake.Snake {
	return slices.Clone(a.snakes)
}

// Snake returns player i's snake, or nil.
func (a *Arena) Snake(i int) *snake.Snake {
	if i < 0 || i >= len(a.snakes) {
		return nil
	}
	return a.snakes[i]
}

// Players returns the number of snakes.
func (a *Arena) Players() int {
	return len(a.snakes)
}

// Food returns the current food cell, or (-1,-1) when none could be placed.
func (a *Arena) Food() snake.Point {
	return a.food
}

// Resolution returns the collision policy in effect.
func (a *Arena) Resolution() Resolution {
	return a.cfg.Resolution
}

// TickCount returns the number of ticks since the last reset.
func (a *Arena) TickCount() uint64 {
	return a.tick
}

// Over reports whether the game has ended.
func (a *Arena) Over() bool {
	return a.over
}

// Winner returns the index of the leading player: live snakes beat dead
// ones, then the higher score wins. Returns -1 on a tie.
func (a *Arena) Winner() int {
	best := -1
	tied := false
	for i, s := range a.snakes {
		if best < 0 {
			best = i
			continue
		}
		switch cmp := compareSnakes(s, a.snakes[best]); {
		case cmp > 0:
			best, tied = i, false
		case cmp == 0:
			tied = true
		}
	}
	if tied {
		return -1
	}
	return best
}

func compareSnakes(x, y *snake.Snake) int {
	if x.Alive() != y.Alive() {
		if x.Alive() {
			return 1
		}
		return -1
	}
	return x.Score() - y.Score()
}

// frozenBody is a snake as it stood before the tick.
type frozenBody struct {
	segments []snake.Point
	claim    snake.Point
	claimed  bool
}

func (f frozenBody) Occupies(p snake.Point) bool {
	return (f.claimed && p == f.claim) || slices.Contains(f.segments, p)
}
