package snake

import "slices"

// Body is anything a moving snake can collide with.
// *Snake implements it over its current segments; the arena supplies frozen
// pre-tick views when resolving a tick against a snapshot.
type Body interface {
	Occupies(p Point) bool
}

// Snake is one agent on the board.
// It is mutated only through SetDirection, Move and Reset.
type Snake struct {
	segments  []Point // Head at index 0
	direction Direction
	alive     bool
	score     int
	cause     Cause
}

// New creates a live snake from an initial chain and heading.
// The chain is copied; later changes to the caller's slice do not reach the snake.
func New(segments []Point, dir Direction) *Snake {
	s := &Snake{}
	s.Reset(segments, dir)
	return s
}

// Reset returns the snake to the state New would produce, keeping its identity
// so holders of the pointer need not re-acquire it. An empty chain leaves the
// snake dead, since a live snake always has a head.
func (s *Snake) Reset(segments []Point, dir Direction) {
	s.segments = slices.Clone(segments)
	s.direction = dir
	s.alive = len(s.segments) > 0
	s.score = 0
	s.cause = CauseNone
}

// SetDirection changes the heading applied on the next move.
// A 180° reversal of the current heading is ignored.
func (s *Snake) SetDirection(dir Direction) {
	if dir.IsReverseOf(s.direction) {
		return
	}
	s.direction = dir
}

// Move advances the snake one cell.
//
// food is the current food cell; others are the bodies checked for
// cross-snake collisions. Neither is modified. A dead snake does nothing and
// returns an Outcome of kind None. On a collision the snake dies with its
// segments left exactly as they were.
func (s *Snake) Move(food Point, others ...Body) Outcome {
	if !s.alive {
		return Outcome{}
	}

	head := s.segments[0].Add(s.direction)

	if !InBounds(head) {
		return s.die(CauseWall)
	}

	// The tail vacates its cell this tick unless the snake grows.
	willEat := head == food
	check := s.segments
	if !willEat && len(check) > 1 {
		check = check[:len(check)-1]
	}
	if slices.Contains(check, head) {
		return s.die(CauseSelf)
	}

	for _, other := range others {
		if other != nil && other.Occupies(head) {
			return s.die(CauseOther)
		}
	}

	s.segments = slices.Insert(s.segments, 0, head)
	if willEat {
		s.score++
		return ate()
	}
	s.segments = s.segments[:len(s.segments)-1]
	return moved()
}

func (s *Snake) die(c Cause) Outcome {
	s.alive = false
	s.cause = c
	return died(c)
}

// Occupies reports whether any segment of the snake is on p. A nil snake
// occupies nothing.
func (s *Snake) Occupies(p Point) bool {
	if s == nil {
		return false
	}
	return slices.Contains(s.segments, p)
}

// Head returns the head cell. The snake must have at least one segment.
func (s *Snake) Head() Point {
	return s.segments[0]
}

// Segments returns a copy of the chain, head first.
func (s *Snake) Segments() []Point {
	return slices.Clone(s.segments)
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return len(s.segments)
}

// Direction returns the current heading.
func (s *Snake) Direction() Direction {
	return s.direction
}

// Alive reports whether the snake can still move.
func (s *Snake) Alive() bool {
	return s.alive
}

// Score returns the number of food items eaten since the last reset.
func (s *Snake) Score() int {
	return s.score
}

// DeathCause returns what killed the snake, or CauseNone while alive.
func (s *Snake) DeathCause() Cause {
	return s.cause
}

// Clone returns an independent copy of the snake.
func (s *Snake) Clone() *Snake {
	c := *s
	c.segments = slices.Clone(s.segments)
	return &c
}
