package registry

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

type fakeGame struct {
	id      string
	players int
}

func (g *fakeGame) ID() string                                { return g.id }
func (g *fakeGame) Title() string                             { return strings.ToUpper(g.id) }
func (g *fakeGame) Players() int                              { return g.players }
func (g *fakeGame) Reset(core.RuntimeConfig)                  {}
func (g *fakeGame) Step(core.MultiInputFrame) core.StepResult { return core.StepResult{} }
func (g *fakeGame) Render(*core.Screen)                       {}
func (g *fakeGame) State() core.GameState                     { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("test_b", func() Game { return &fakeGame{id: "test_b", players: 2} })
	Register("test_a", func() Game { return &fakeGame{id: "test_a", players: 1} })

	if !Exists("test_a") || Exists("test_missing") {
		t.Fatal("Exists reports wrong membership")
	}

	g, err := Create("test_b")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID() != "test_b" {
		t.Errorf("created %q", g.ID())
	}

	if _, err := Create("test_missing"); err == nil {
		t.Error("expected error for unknown game")
	}

	var ids []string
	for _, info := range List() {
		if strings.HasPrefix(info.ID, "test_") {
			ids = append(ids, info.ID)
			if info.Title != strings.ToUpper(info.ID) {
				t.Errorf("%s: title %q", info.ID, info.Title)
			}
		}
		if info.ID == "test_b" && info.Players != 2 {
			t.Errorf("test_b: players %d", info.Players)
		}
	}
	if strings.Join(ids, ",") != "test_a,test_b" {
		t.Errorf("List not sorted: %v", ids)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test_dup", func() Game { return &fakeGame{id: "test_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("test_dup", func() Game { return &fakeGame{id: "test_dup"} })
}
