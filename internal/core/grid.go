package core

// Grid describes the fixed dimensions of the playing board.
type Grid struct {
	W, H int
}

// NewGrid returns a grid with the given dimensions, clamped to at least 1x1.
func NewGrid(w, h int) Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return Grid{W: w, H: h}
}

// InBounds reports whether c lies on the board.
func (g Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.W && c.Y >= 0 && c.Y < g.H
}

// RandomCell picks a uniformly distributed in-bounds cell.
func (g Grid) RandomCell(r Rand) Cell {
	return Cell{X: r.IntN(g.W), Y: r.IntN(g.H)}
}
