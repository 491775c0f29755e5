package game

import "github.com/vovakirdan/tui-snake/internal/snake"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
	StateFailed      GameStateType = "failed"
)

// PlayerSnapshot is one snake's observable state.
type PlayerSnapshot struct {
	Head   snake.Point
	Dir    snake.Direction
	Len    int
	Score  int
	Alive  bool
	Killed snake.Cause
}

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick     uint64
	Mode     Mode
	Scenario string // Attract modes only
	Players  []PlayerSnapshot
	Food     snake.Point
	Winner   int
	State    GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:   g.tick,
		Mode:   g.mode,
		Winner: -1,
		State:  StatePlaying,
	}

	switch {
	case g.arena == nil:
		snap.State = StateFailed
		return snap
	case g.tooSmall:
		snap.State = StatePausedSmall
	case g.State().GameOver:
		snap.State = StateGameOver
	case g.paused:
		snap.State = StatePaused
	}

	if g.show != nil {
		snap.Scenario = g.show.Scenario().Name
	}
	snap.Food = g.arena.Food()
	snap.Winner = g.arena.Winner()

	for _, s := range g.arena.Snakes() {
		p := PlayerSnapshot{
			Dir:    s.Direction(),
			Len:    s.Len(),
			Score:  s.Score(),
			Alive:  s.Alive(),
			Killed: s.DeathCause(),
		}
		if s.Len() > 0 {
			p.Head = s.Head()
		}
		snap.Players = append(snap.Players, p)
	}
	return snap
}
