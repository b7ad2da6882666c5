package core

import "fmt"

// Cell is a board coordinate. It is comparable and usable as a map key.
type Cell struct {
	X, Y int
}

// Add returns the component-wise sum of c and o.
func (c Cell) Add(o Cell) Cell { return Cell{X: c.X + o.X, Y: c.Y + o.Y} }

// Scale multiplies both components by k.
func (c Cell) Scale(k int) Cell { return Cell{X: c.X * k, Y: c.Y * k} }

func (c Cell) String() string { return fmt.Sprintf("(%d,%d)", c.X, c.Y) }

// Direction is one of the four grid headings.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every heading in declaration order.
var Directions = [...]Direction{Up, Down, Left, Right}

// Opposite returns the heading rotated by 180 degrees.
func Opposite(d Direction) Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// Unit returns the one-cell offset for d. The y axis grows downwards.
func Unit(d Direction) Cell {
	switch d {
	case Up:
		return Cell{Y: -1}
	case Down:
		return Cell{Y: 1}
	case Left:
		return Cell{X: -1}
	default:
		return Cell{X: 1}
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("direction(%d)", uint8(d))
}
