package arena

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/snake"
)

// FoodPlacer chooses where the next food item goes.
// Place returns false when no cell can take food.
type FoodPlacer interface {
	Place(snakes []*snake.Snake) (snake.Point, bool)
}

// RandomPlacer picks a uniformly random cell not covered by any snake.
// Dead snakes stay on the board, so their cells are excluded too.
type RandomPlacer struct {
	rng *rand.Rand
}

// NewRandomPlacer creates a placer with its own seeded RNG.
func NewRandomPlacer(seed int64) *RandomPlacer {
	return &RandomPlacer{rng: rand.New(rand.NewSource(seed))}
}

// Place implements FoodPlacer.
func (p *RandomPlacer) Place(snakes []*snake.Snake) (snake.Point, bool) {
	free := FreeCells(snakes)
	if len(free) == 0 {
		return snake.Point{X: -1, Y: -1}, false
	}
	return free[p.rng.Intn(len(free))], true
}

// FreeCells lists every board cell not occupied by a snake, row by row.
func FreeCells(snakes []*snake.Snake) []snake.Point {
	var occupied [snake.BoardSize][snake.BoardSize]bool
	for _, s := range snakes {
		for _, seg := range s.Segments() {
			if snake.InBounds(seg) {
				occupied[seg.Y][seg.X] = true
			}
		}
	}

	free := make([]snake.Point, 0, snake.BoardSize*snake.BoardSize)
	for y := 0; y < snake.BoardSize; y++ {
		for x := 0; x < snake.BoardSize; x++ {
			if !occupied[y][x] {
				free = append(free, snake.Point{X: x, Y: y})
			}
		}
	}
	return free
}

// FixedPlacer always proposes the same cell. Tests use it to pin food.
type FixedPlacer snake.Point

// Place implements FoodPlacer.
func (p FixedPlacer) Place(_ []*snake.Snake) (snake.Point, bool) {
	return snake.Point(p), true
}
