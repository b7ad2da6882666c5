package snake

import (
	"testing"

	"gridsnake/internal/core"
)

func TestNewActorTrailsBehindHead(t *testing.T) {
	a := NewActor("s", core.Cell{X: 20, Y: 20}, core.Up, 4)
	want := []core.Cell{{X: 20, Y: 21}, {X: 20, Y: 22}, {X: 20, Y: 23}, {X: 20, Y: 24}}
	if len(a.Body) != len(want) {
		t.Fatalf("body length = %d, want %d", len(a.Body), len(want))
	}
	for i, c := range want {
		if a.Body[i] != c {
			t.Fatalf("body[%d] = %v, want %v", i, a.Body[i], c)
		}
	}
	if !a.Alive {
		t.Fatal("new actors start alive")
	}
}

func TestAdvanceShiftsBodyAndPreservesLength(t *testing.T) {
	a := NewActor("s", core.Cell{X: 5, Y: 5}, core.Up, 3)
	a.Advance(a.NextHead())

	if a.Head != (core.Cell{X: 5, Y: 4}) {
		t.Fatalf("head = %v, want (5,4)", a.Head)
	}
	want := []core.Cell{{X: 5, Y: 5}, {X: 5, Y: 6}, {X: 5, Y: 7}}
	for i, c := range want {
		if a.Body[i] != c {
			t.Fatalf("body[%d] = %v, want %v", i, a.Body[i], c)
		}
	}
}

func TestGrowAddsExactlyOneSegment(t *testing.T) {
	a := NewActor("s", core.Cell{X: 5, Y: 5}, core.Up, 3)
	tail := a.Tail()
	a.Grow()
	if len(a.Body) != 4 {
		t.Fatalf("body length after grow = %d, want 4", len(a.Body))
	}
	a.Advance(a.NextHead())
	if len(a.Body) != 4 {
		t.Fatalf("advance must preserve grown length, got %d", len(a.Body))
	}
	if a.Tail() != tail {
		t.Fatalf("tail should stay put on the move after eating, got %v want %v", a.Tail(), tail)
	}
}

func TestTurnRejectsReversal(t *testing.T) {
	for _, d := range core.Directions {
		a := NewActor("s", core.Cell{X: 5, Y: 5}, d, 3)
		if a.Turn(core.Opposite(d)) {
			t.Fatalf("reversal from %v accepted", d)
		}
		if a.Direction != d {
			t.Fatalf("direction changed to %v after rejected reversal", a.Direction)
		}
		if !a.Turn(d) {
			t.Fatalf("turning to the current heading %v must be accepted", d)
		}
	}

	a := NewActor("s", core.Cell{X: 5, Y: 5}, core.Up, 3)
	if !a.Turn(core.Left) || a.Direction != core.Left {
		t.Fatal("orthogonal turn must be accepted")
	}
}

func TestStraightLineMovement(t *testing.T) {
	start := core.Cell{X: 10, Y: 30}
	a := NewActor("s", start, core.Up, 4)
	for k := 1; k <= 12; k++ {
		a.Advance(a.NextHead())
		want := start.Add(core.Unit(core.Up).Scale(k))
		if a.Head != want {
			t.Fatalf("after %d steps head = %v, want %v", k, a.Head, want)
		}
	}
}
