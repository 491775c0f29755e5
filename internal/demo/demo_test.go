package demo

import (
	"errors"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-snake/internal/arena"
	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

func embedded(t *testing.T) config.DemoConfig {
	t.Helper()
	var cfg config.DemoConfig
	if err := yaml.Unmarshal(config.GetDefaultYAML("demo"), &cfg); err != nil {
		t.Fatalf("parse embedded demo: %v", err)
	}
	return cfg
}

func pt(x, y int) snake.Point {
	return snake.Point{X: x, Y: y}
}

func TestMakeSnake(t *testing.T) {
	tests := []struct {
		head snake.Point
		dir  snake.Direction
		n    int
		want []snake.Point
	}{
		{pt(10, 15), snake.Up, 3, []snake.Point{pt(10, 15), pt(10, 16), pt(10, 17)}},
		{pt(2, 2), snake.Right, 3, []snake.Point{pt(2, 2), pt(1, 2), pt(0, 2)}},
		{pt(5, 5), snake.Left, 1, []snake.Point{pt(5, 5)}},
		{pt(1, 2), snake.Right, 4, []snake.Point{pt(1, 2), pt(0, 2)}},
		{pt(18, 2), snake.Down, 7, []snake.Point{pt(18, 2), pt(18, 1), pt(18, 0)}},
	}
	for _, tt := range tests {
		got := MakeSnake(tt.head, tt.dir, tt.n)
		if len(got) != len(tt.want) {
			t.Fatalf("MakeSnake(%v, %v, %d) = %v", tt.head, tt.dir, tt.n, got)
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("MakeSnake(%v, %v, %d)[%d] = %v, want %v", tt.head, tt.dir, tt.n, i, got[i], tt.want[i])
			}
		}
	}
}

func TestScenariosFromConfig(t *testing.T) {
	cfg := embedded(t)
	scripted := Scenarios(cfg.Scripted)
	if len(scripted) != 5 {
		t.Fatalf("expected 5 scripted scenarios, got %d", len(scripted))
	}

	first := scripted[0]
	if len(first.Snakes) != 2 {
		t.Fatalf("expected 2 snakes, got %d", len(first.Snakes))
	}
	// Eight cells below (10,15) would leave the board; the chain stops at y=19.
	if got := first.Snakes[0].Segments; len(got) != 5 || got[0] != pt(10, 15) || got[4] != pt(10, 19) {
		t.Errorf("unexpected first snake: %v", got)
	}
	if first.Snakes[1].Direction != snake.Right {
		t.Errorf("expected second snake heading right, got %v", first.Snakes[1].Direction)
	}
	if first.Steps[0].Food != pt(10, 12) || first.Steps[0].Dirs[1] != snake.Right {
		t.Errorf("unexpected first step: %+v", first.Steps[0])
	}

	wander := Scenarios(cfg.Wander)
	if len(wander) != 6 || len(wander[0].Snakes) != 1 || len(wander[0].Snakes[0].Segments) != 6 {
		t.Errorf("unexpected wander scenarios: %+v", wander)
	}
}

func TestNewRequiresScenarios(t *testing.T) {
	if _, err := NewScripted(nil, nil); !errors.Is(err, ErrNoScenarios) {
		t.Errorf("NewScripted(nil) error = %v", err)
	}
	if _, err := NewWander(nil, 1, nil); !errors.Is(err, ErrNoScenarios) {
		t.Errorf("NewWander(nil) error = %v", err)
	}
	if _, err := NewScripted([]Scenario{{Name: "empty"}}, nil); err == nil {
		t.Error("expected error for scenario without steps")
	}
}

func TestScriptedFollowsSteps(t *testing.T) {
	sc := Scenario{
		Name: "test",
		Snakes: []arena.Start{
			{Segments: []snake.Point{pt(2, 2)}, Direction: snake.Right},
			{Segments: []snake.Point{pt(2, 10)}, Direction: snake.Right},
		},
		Steps: []Step{
			{Food: pt(3, 2), Dirs: []snake.Direction{snake.Right, snake.Right}},
			{Food: pt(5, 5), Dirs: []snake.Direction{snake.Down, snake.Right}},
		},
	}
	s, err := NewScripted([]Scenario{sc}, nil)
	if err != nil {
		t.Fatal(err)
	}
	a := s.Arena()
	first, second := a.Snake(0), a.Snake(1)

	if a.Food() != pt(3, 2) {
		t.Fatalf("initial food = %v, want (3,2)", a.Food())
	}

	r := s.Tick()
	if r.Outcomes[0].Kind != snake.Ate || r.Outcomes[1].Kind != snake.Moved {
		t.Fatalf("tick 1 outcomes: %v", r.Outcomes)
	}
	if a.Food() != pt(5, 5) {
		t.Errorf("food should advance to the next step, got %v", a.Food())
	}

	r = s.Tick()
	if first.Len() != 1 || first.Head() != pt(2, 2) {
		t.Errorf("scenario should restart after the last step, first snake at %v", first.Segments())
	}
	if r.Outcomes[0].Kind != snake.Moved {
		t.Errorf("tick 2 outcome: %v", r.Outcomes[0])
	}
	if a.Snake(0) != first || a.Snake(1) != second {
		t.Error("restart replaced the snakes")
	}
	if a.Food() != pt(3, 2) {
		t.Errorf("food should return to the first step, got %v", a.Food())
	}
}

func TestScriptedSecondSnakeSeesFirst(t *testing.T) {
	// Both heads want (3,5). The first snake moves first and takes it.
	sc := Scenario{
		Snakes: []arena.Start{
			{Segments: []snake.Point{pt(2, 5)}, Direction: snake.Right},
			{Segments: []snake.Point{pt(4, 5)}, Direction: snake.Left},
		},
		Steps: []Step{{Food: pt(0, 0), Dirs: []snake.Direction{snake.Right, snake.Left}}, {Food: pt(0, 0), Dirs: []snake.Direction{snake.Right, snake.Left}}},
	}
	s, err := NewScripted([]Scenario{sc}, nil)
	if err != nil {
		t.Fatal(err)
	}

	r := s.Tick()
	if r.Outcomes[0].Kind != snake.Moved {
		t.Errorf("first snake: %v", r.Outcomes[0])
	}
	if r.Outcomes[1] != (snake.Outcome{Kind: snake.Died, Cause: snake.CauseOther}) {
		t.Errorf("second snake: %v", r.Outcomes[1])
	}
}

func TestScriptedCyclesEmbeddedScenarios(t *testing.T) {
	scenarios := Scenarios(embedded(t).Scripted)
	s, err := NewScripted(scenarios, nil)
	if err != nil {
		t.Fatal(err)
	}

	total := 0
	for i, sc := range scenarios {
		if s.Index() != i {
			t.Fatalf("expected scenario %d, at %d", i, s.Index())
		}
		for range sc.Steps {
			s.Tick()
			total++
		}
	}
	if s.Index() != 0 {
		t.Errorf("expected to cycle back to scenario 0 after %d ticks, at %d", total, s.Index())
	}
	if s.Scenario().Name != scenarios[0].Name {
		t.Errorf("unexpected scenario %q", s.Scenario().Name)
	}
}

func TestWanderAdvancesWhenAllDead(t *testing.T) {
	scenarios := []Scenario{
		{Name: "doomed", Snakes: []arena.Start{{Segments: []snake.Point{pt(0, 0)}, Direction: snake.Up}}},
		{Name: "next", Snakes: []arena.Start{{Segments: []snake.Point{pt(10, 10)}, Direction: snake.Up}}},
	}
	w, err := NewWander(scenarios, 1, nil)
	if err != nil {
		t.Fatal(err)
	}
	w.turnChance = 0

	r := w.Tick()
	if !r.Over || r.Outcomes[0].Cause != snake.CauseWall {
		t.Fatalf("expected the snake to hit the wall, got %+v", r)
	}
	if w.Index() != 1 || w.Scenario().Name != "next" {
		t.Fatalf("expected next scenario, at %d", w.Index())
	}
	if head := w.Arena().Snake(0).Head(); head != pt(10, 10) {
		t.Errorf("next scenario not loaded, head at %v", head)
	}
	if w.Arena().Over() {
		t.Error("new scenario should not start over")
	}
}

func TestWanderSkipsScenarioWithoutBodies(t *testing.T) {
	offBoard := snake.Point{X: 25, Y: 5}
	scenarios := []Scenario{
		{Name: "off board", Snakes: []arena.Start{{Segments: MakeSnake(offBoard, snake.Up, 3), Direction: snake.Up}}},
		{Name: "next", Snakes: []arena.Start{{Segments: []snake.Point{pt(10, 10)}, Direction: snake.Up}}},
	}
	w, err := NewWander(scenarios, 1, nil)
	if err != nil {
		t.Fatal(err)
	}
	if w.Arena().Snake(0).Alive() {
		t.Fatal("a snake without segments should not be alive")
	}

	if r := w.Tick(); !r.Over {
		t.Fatalf("expected the empty scenario to end at once, got %+v", r)
	}
	if w.Index() != 1 || !w.Arena().Snake(0).Alive() {
		t.Errorf("expected the next scenario with a live snake, at %d", w.Index())
	}
}

func TestWanderDeterministic(t *testing.T) {
	scenarios := Scenarios(embedded(t).Wander)
	a, err := NewWander(scenarios, 42, nil)
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewWander(scenarios, 42, nil)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 300; i++ {
		ra, rb := a.Tick(), b.Tick()
		if ra.Food != rb.Food || a.Index() != b.Index() {
			t.Fatalf("tick %d diverged: food %v vs %v, scenario %d vs %d", i, ra.Food, rb.Food, a.Index(), b.Index())
		}
		for j, s := range a.Arena().Snakes() {
			if s.Len() > 0 && s.Head() != b.Arena().Snake(j).Head() {
				t.Fatalf("tick %d: snake %d diverged", i, j)
			}
		}
	}
}

func TestWanderTurnsAtRandom(t *testing.T) {
	scenarios := []Scenario{
		{Name: "open", Snakes: []arena.Start{{Segments: []snake.Point{pt(10, 10)}, Direction: snake.Up}}},
	}
	w, err := NewWander(scenarios, 7, nil)
	if err != nil {
		t.Fatal(err)
	}
	w.turnChance = 1

	turned := false
	for i := 0; i < 40; i++ {
		before := w.Arena().Snake(0).Direction()
		w.Tick()
		if w.Arena().Snake(0).Direction() != before {
			turned = true
			break
		}
	}
	if !turned {
		t.Error("expected at least one turn with turn chance 1")
	}
}
