package game

import (
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/arena"
	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

func runtimeCfg(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{Seed: seed, ScreenW: 80, ScreenH: 24}
}

// withSettings swaps the package settings for the duration of a test.
func withSettings(t *testing.T, mutate func(*Settings)) {
	t.Helper()
	s := defaultSettings()
	mutate(&s)
	Configure(s)
	t.Cleanup(func() { Configure(defaultSettings()) })
}

func input(p core.PlayerID, actions ...core.Action) core.MultiInputFrame {
	in := core.NewMultiInputFrame()
	for _, a := range actions {
		in.Set(p, a)
	}
	return in
}

func newGame(t *testing.T, mode Mode, seed int64) *Game {
	t.Helper()
	g := New(mode)
	g.Reset(runtimeCfg(seed))
	if g.Err() != nil {
		t.Fatalf("Reset(%s): %v", mode, g.Err())
	}
	return g
}

func TestModesRegistered(t *testing.T) {
	tests := []struct {
		id      string
		title   string
		players int
	}{
		{"snake", "Snake", 1},
		{"snake_versus", "Snake: Versus", 2},
		{"snake_demo", "Snake: Demo", 0},
		{"snake_wander", "Snake: Wander", 0},
	}

	for _, tt := range tests {
		g, err := registry.Create(tt.id)
		if err != nil {
			t.Fatalf("Create(%q): %v", tt.id, err)
		}
		if g.ID() != tt.id || g.Title() != tt.title || g.Players() != tt.players {
			t.Errorf("%s: got id %q title %q players %d", tt.id, g.ID(), g.Title(), g.Players())
		}
	}
}

func TestDeterminism(t *testing.T) {
	g1 := newGame(t, ModeSolo, 12345)
	g2 := newGame(t, ModeSolo, 12345)

	for i := 0; i < 30; i++ {
		in := core.NewMultiInputFrame()
		switch i {
		case 3:
			in.Set(core.Player1, core.ActionLeft)
		case 8:
			in.Set(core.Player1, core.ActionDown)
		case 12:
			in.Set(core.Player1, core.ActionRight)
		}
		g1.Step(in)
		g2.Step(in)
	}

	if s1, s2 := g1.Snapshot(), g2.Snapshot(); !reflect.DeepEqual(s1, s2) {
		t.Errorf("snapshots differ:\n%+v\n%+v", s1, s2)
	}
}

func TestSoloSteering(t *testing.T) {
	g := newGame(t, ModeSolo, 1)

	g.Step(input(core.Player1, core.ActionLeft))
	if head := g.Arena().Snake(0).Head(); head != (snake.Point{X: 9, Y: 10}) {
		t.Errorf("head = %v, want (9,10)", head)
	}

	// Up then Right in one frame are queued and applied on consecutive ticks.
	g.Step(input(core.Player1, core.ActionUp, core.ActionRight))
	if head := g.Arena().Snake(0).Head(); head != (snake.Point{X: 9, Y: 9}) {
		t.Errorf("head = %v, want (9,9)", head)
	}
	g.Step(core.NewMultiInputFrame())
	if head := g.Arena().Snake(0).Head(); head != (snake.Point{X: 10, Y: 9}) {
		t.Errorf("head = %v, want (10,9)", head)
	}
}

func TestVersusSeats(t *testing.T) {
	g := newGame(t, ModeVersus, 1)
	p1 := g.Arena().Snake(0).Head()
	p2 := g.Arena().Snake(1).Head()

	g.Step(input(core.Player2, core.ActionLeft))

	if got := g.Arena().Snake(0).Head(); got != p1.Add(snake.Up) {
		t.Errorf("player 1 should keep heading up, head %v", got)
	}
	if got := g.Arena().Snake(1).Head(); got != p2.Add(snake.Left) {
		t.Errorf("player 2 should turn left, head %v", got)
	}
}

func TestGameOverAndRestart(t *testing.T) {
	g := newGame(t, ModeSolo, 5)

	var died []core.Event
	for i := 0; i < 11; i++ {
		res := g.Step(core.NewMultiInputFrame())
		for _, ev := range res.Events {
			if ev.Kind == core.EventDied {
				died = append(died, ev)
			}
		}
	}

	if !g.State().GameOver {
		t.Fatal("expected game over after running into the top wall")
	}
	if len(died) != 1 || died[0].Player != core.Player1 || died[0].Detail != "wall" {
		t.Errorf("unexpected death events: %+v", died)
	}
	if snap := g.Snapshot(); snap.State != StateGameOver || snap.Players[0].Killed != snake.CauseWall {
		t.Errorf("unexpected snapshot: %+v", snap)
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Game Over") {
		t.Error("expected game over overlay")
	}

	g.Step(input(core.Player1, core.ActionRestart))
	if g.State().GameOver {
		t.Error("restart should start a new game")
	}
	if head := g.Arena().Snake(0).Head(); head != (snake.Point{X: 10, Y: 10}) {
		t.Errorf("restart head = %v", head)
	}
}

func TestRestartIgnoredWhilePlaying(t *testing.T) {
	g := newGame(t, ModeSolo, 5)
	arenaID := g.Arena().ID()

	g.Step(input(core.Player1, core.ActionRestart))
	if g.Arena().ID() != arenaID {
		t.Error("restart should only apply after game over")
	}
}

func TestPause(t *testing.T) {
	g := newGame(t, ModeSolo, 1)

	g.Step(input(core.Player1, core.ActionPause))
	if !g.State().Paused {
		t.Fatal("expected paused")
	}
	head := g.Arena().Snake(0).Head()
	g.Step(core.NewMultiInputFrame())
	if g.Arena().Snake(0).Head() != head {
		t.Error("snake moved while paused")
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Paused") {
		t.Error("expected pause overlay")
	}

	g.Step(input(core.Player1, core.ActionPause))
	if g.State().Paused || g.Arena().Snake(0).Head() == head {
		t.Error("expected the game to resume and move")
	}
}

func TestWindowTooSmall(t *testing.T) {
	g := New(ModeSolo)
	g.Reset(core.RuntimeConfig{Seed: 333, ScreenW: 30, ScreenH: 10})

	if snap := g.Snapshot(); snap.State != StatePausedSmall {
		t.Errorf("state = %s, want %s", snap.State, StatePausedSmall)
	}

	head := g.Arena().Snake(0).Head()
	g.Step(core.NewMultiInputFrame())
	if g.Arena().Snake(0).Head() != head {
		t.Error("snake moved in a window that is too small")
	}

	screen := core.NewScreen(30, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("expected too-small overlay")
	}
}

func TestRenderBoard(t *testing.T) {
	g := newGame(t, ModeSolo, 444)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.Row(0), "Snake") || !strings.Contains(screen.Row(0), "Score: 0") {
		t.Errorf("unexpected HUD %q", screen.Row(0))
	}

	left := (80 - boardW) / 2
	if r := screen.Get(left, hudHeight); r != '┌' {
		t.Errorf("expected frame corner at (%d,%d), got %q", left, hudHeight, r)
	}

	// Head at board (10,10).
	x, y := left+2+cellW*10, hudHeight+1+10
	cell := screen.GetCell(x, y)
	if cell.Rune != '@' || cell.Color != core.ColorBrightGreen {
		t.Errorf("expected green head at (%d,%d), got %q color %v", x, y, cell.Rune, cell.Color)
	}

	food := g.Arena().Food()
	fx, fy := left+2+cellW*food.X, hudHeight+1+food.Y
	if fc := screen.GetCell(fx, fy); fc.Rune != '*' || fc.Color != core.ColorRed {
		t.Errorf("expected red food at (%d,%d), got %q", fx, fy, fc.Rune)
	}
}

func TestVersusDraw(t *testing.T) {
	withSettings(t, func(s *Settings) {
		s.Config.Versus = []config.PlayerConfig{
			{Segments: []snake.Point{{X: 5, Y: 10}}, Direction: "right", Color: "green"},
			{Segments: []snake.Point{{X: 7, Y: 10}}, Direction: "left", Color: "blue"},
		}
	})
	g := newGame(t, ModeVersus, 9)
	if g.Arena().Resolution() != arena.ResolveSnapshot {
		t.Fatalf("expected snapshot resolution by default")
	}

	res := g.Step(core.NewMultiInputFrame())
	if len(res.Events) != 2 || !res.State.GameOver {
		t.Fatalf("expected both players to die: %+v", res)
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Draw!") {
		t.Error("expected draw overlay")
	}
	if g.Snapshot().Winner != -1 {
		t.Errorf("winner = %d, want -1", g.Snapshot().Winner)
	}
}

func TestSequentialResolutionFromConfig(t *testing.T) {
	withSettings(t, func(s *Settings) {
		s.Config.Resolution = "sequential"
	})
	g := newGame(t, ModeVersus, 9)
	if g.Arena().Resolution() != arena.ResolveSequential {
		t.Error("expected sequential resolution from config")
	}
}

func TestDemoModesRunForever(t *testing.T) {
	for _, mode := range []Mode{ModeDemo, ModeWander} {
		t.Run(string(mode), func(t *testing.T) {
			g := newGame(t, mode, 3)
			for i := 0; i < 500; i++ {
				res := g.Step(core.NewMultiInputFrame())
				if res.State.GameOver {
					t.Fatal("attract mode reported game over")
				}
			}
			if g.Snapshot().Scenario == "" {
				t.Error("expected a scenario name")
			}

			screen := core.NewScreen(80, 24)
			g.Render(screen)
			if !strings.Contains(screen.Row(0), g.Snapshot().Scenario) {
				t.Errorf("HUD should name the scenario: %q", screen.Row(0))
			}
		})
	}
}

func TestDemoWithoutScenarios(t *testing.T) {
	withSettings(t, func(s *Settings) {
		s.Demo = config.DemoConfig{}
	})
	g := New(ModeDemo)
	g.Reset(runtimeCfg(1))

	if g.Err() == nil {
		t.Fatal("expected an error")
	}
	if !g.State().GameOver || g.Snapshot().State != StateFailed {
		t.Error("failed mode should report game over")
	}
	g.Step(core.NewMultiInputFrame())

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Cannot start") {
		t.Error("expected error overlay")
	}
}

func TestEvents(t *testing.T) {
	r := arena.Report{Outcomes: []snake.Outcome{
		{Kind: snake.Ate},
		{Kind: snake.Died, Cause: snake.CauseOther},
	}}
	evs := events(r)
	want := []core.Event{
		{Player: core.Player1, Kind: core.EventAte},
		{Player: core.Player2, Kind: core.EventDied, Detail: "other"},
	}
	if !reflect.DeepEqual(evs, want) {
		t.Errorf("events = %+v, want %+v", evs, want)
	}
}

func TestScriptedDemoContinuesAfterDeaths(t *testing.T) {
	food := snake.Point{X: 0, Y: 19}
	crash := config.ScenarioConfig{
		Name:   "crash",
		Snakes: []config.SnakeSpec{{Segments: []snake.Point{{X: 10, Y: 0}}, Direction: "up"}},
		Steps: []config.StepConfig{
			{Food: food, Dirs: []string{"up"}},
			{Food: food, Dirs: []string{"up"}},
			{Food: food, Dirs: []string{"up"}},
		},
	}
	calm := crash
	calm.Name = "calm"
	calm.Snakes = []config.SnakeSpec{{Segments: []snake.Point{{X: 10, Y: 10}}, Direction: "up"}}

	withSettings(t, func(s *Settings) {
		s.Demo = config.DemoConfig{Scripted: []config.ScenarioConfig{crash, calm}}
	})
	g := newGame(t, ModeDemo, 1)

	g.Step(core.NewMultiInputFrame())
	if g.Arena().Snake(0).Alive() {
		t.Fatal("expected the first snake to hit the wall")
	}
	g.Step(core.NewMultiInputFrame())
	g.Step(core.NewMultiInputFrame())

	if got := g.Snapshot().Scenario; got != "calm" {
		t.Errorf("scenario = %q, want calm", got)
	}
	if !g.Arena().Snake(0).Alive() {
		t.Error("next scenario should start with a live snake")
	}
}

func TestOverlayFitsNarrowScreen(t *testing.T) {
	screen := core.NewScreen(12, 7)
	renderOverlay(screen, "Window too small", "Need 43x23")

	if r := screen.Get(0, 1); r != '┌' {
		t.Errorf("expected the box to start at the left edge, got %q", r)
	}
	if r := screen.Get(11, 1); r != '┐' {
		t.Errorf("expected the box to end at the right edge, got %q", r)
	}
	if row := screen.Row(2); !strings.Contains(row, "Wind") {
		t.Errorf("expected the text start to stay visible, got %q", row)
	}
}

func TestOverlayCentered(t *testing.T) {
	screen := core.NewScreen(80, 24)
	renderOverlay(screen, "Paused", "Press P to continue")

	// Box is 23 wide at x=28; "Paused" starts at center 39 minus 3.
	if got := string([]rune(screen.Row(10))[36:42]); got != "Paused" {
		t.Errorf("row 10 = %q", screen.Row(10))
	}
}
