package bot

import (
	"testing"

	"gridsnake/internal/core"
	"gridsnake/internal/snake"
)

func TestGreedyHeadsForFood(t *testing.T) {
	cfg := snake.DefaultConfig()
	cfg.Foods = []core.Cell{{X: 30, Y: 20}}
	cfg.FoodCount = 1
	r, err := snake.NewRound(cfg, []string{"s"}, nil)
	if err != nil {
		t.Fatalf("NewRound: %v", err)
	}
	a, _ := r.Actor("s")

	d := Greedy(r, a, r.Occupied(), core.NewRNG(1))
	if d != core.Right {
		t.Fatalf("Greedy = %v, want right toward food", d)
	}
}

func TestGreedyAvoidsWall(t *testing.T) {
	cfg := snake.DefaultConfig()
	r, err := snake.NewRound(cfg, []string{"s"}, nil)
	if err != nil {
		t.Fatalf("NewRound: %v", err)
	}
	a, _ := r.Actor("s")
	a.Head = core.Cell{X: 10, Y: 0}
	a.Body = []core.Cell{{X: 10, Y: 1}, {X: 10, Y: 2}, {X: 10, Y: 3}}

	rng := core.NewRNG(7)
	for i := 0; i < 20; i++ {
		if d := Greedy(r, a, r.Occupied(), rng); d == core.Up || d == core.Down {
			t.Fatalf("Greedy = %v at the top wall", d)
		}
	}
}

func TestBotOutlivesStraightLine(t *testing.T) {
	cfg := snake.DefaultConfig()
	r, err := snake.NewRound(cfg, []string{"a"}, nil)
	if err != nil {
		t.Fatalf("NewRound: %v", err)
	}
	rng := core.NewRNG(3)
	// heading straight up from the middle row hits the wall on tick 21
	for i := 0; i < 40 && !r.Over(); i++ {
		r.Step(Commands(r, rng))
	}
	if r.Over() {
		t.Fatalf("bot crashed within 40 ticks: %v", r.Eliminations())
	}
}
