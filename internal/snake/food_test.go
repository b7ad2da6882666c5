package snake

import (
	"testing"

	"gridsnake/internal/core"
)

type seqRand struct {
	vals []int
	i    int
}

func (s *seqRand) IntN(n int) int {
	v := s.vals[s.i%len(s.vals)] % n
	s.i++
	return v
}

func TestNewFoodSetReplacesOutOfBounds(t *testing.T) {
	grid := core.NewGrid(10, 10)
	initial := []core.Cell{{X: 1, Y: 1}, {X: 35, Y: 35}, {X: 2, Y: 2}}
	fs := NewFoodSet(grid, initial, 5, &seqRand{vals: []int{7, 8}})

	if fs.Len() != 5 {
		t.Fatalf("food count = %d, want 5", fs.Len())
	}
	if fs.Cells()[0] != (core.Cell{X: 1, Y: 1}) || fs.Cells()[2] != (core.Cell{X: 2, Y: 2}) {
		t.Fatalf("in-bounds seeds must be kept, got %v", fs.Cells())
	}
	for _, c := range fs.Cells() {
		if !grid.InBounds(c) {
			t.Fatalf("food %v is off the board", c)
		}
	}
}

func TestEatRelocatesEveryMatch(t *testing.T) {
	grid := core.NewGrid(10, 10)
	at := core.Cell{X: 3, Y: 3}
	fs := NewFoodSet(grid, []core.Cell{at, {X: 0, Y: 0}, at}, 3, core.NewRNG(1))

	n := fs.Eat(at, grid, &seqRand{vals: []int{9, 9}})
	if n != 2 {
		t.Fatalf("eaten = %d, want 2", n)
	}
	if fs.Len() != 3 {
		t.Fatalf("food set must keep its cardinality, got %d", fs.Len())
	}
	for _, c := range fs.Cells() {
		if c == at {
			t.Fatal("eaten food must relocate")
		}
	}
}
