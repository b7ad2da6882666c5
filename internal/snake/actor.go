package snake

import "gridsnake/internal/core"

// Actor is a player-controlled snake: a head, a trailing body and a heading.
type Actor struct {
	Name      string
	Head      core.Cell
	Body      []core.Cell
	Direction core.Direction
	Alive     bool
}

// NewActor places an actor at head with bodyLen segments trailing behind it.
func NewActor(name string, head core.Cell, dir core.Direction, bodyLen int) *Actor {
	back := core.Unit(core.Opposite(dir))
	body := make([]core.Cell, bodyLen)
	for i := range body {
		body[i] = head.Add(back.Scale(i + 1))
	}
	return &Actor{Name: name, Head: head, Body: body, Direction: dir, Alive: true}
}

// NextHead returns the cell the head would enter this tick. It does not
// check bounds.
func (a *Actor) NextHead() core.Cell {
	return a.Head.Add(core.Unit(a.Direction))
}

// Advance moves the head to newHead and drags every body segment into the
// place of its predecessor. Body length is preserved.
func (a *Actor) Advance(newHead core.Cell) {
	if n := len(a.Body); n > 0 {
		copy(a.Body[1:], a.Body[:n-1])
		a.Body[0] = a.Head
	}
	a.Head = newHead
}

// Grow appends one segment at the tail. The new segment duplicates the
// current tail cell; the following Advance shifts the chain over it so the
// tail stays in place for that move.
func (a *Actor) Grow() {
	tail := a.Head
	if n := len(a.Body); n > 0 {
		tail = a.Body[n-1]
	}
	a.Body = append(a.Body, tail)
}

// Turn changes heading unless d is the exact reversal of the current one.
func (a *Actor) Turn(d core.Direction) bool {
	if d == core.Opposite(a.Direction) {
		return false
	}
	a.Direction = d
	return true
}

// Tail returns the last body segment, or the head for a bodiless actor.
func (a *Actor) Tail() core.Cell {
	if n := len(a.Body); n > 0 {
		return a.Body[n-1]
	}
	return a.Head
}

// Len returns the number of cells occupied by the actor, head included.
func (a *Actor) Len() int { return len(a.Body) + 1 }
