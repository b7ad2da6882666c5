package snake

import "gridsnake/internal/core"

// FoodSet is a fixed-size list of food cells. Eaten food relocates instead of
// disappearing. Two foods may share a cell.
type FoodSet struct {
	cells []core.Cell
}

// NewFoodSet keeps the in-bounds cells of initial (up to count), replaces the
// rest with random cells and tops the set up to count.
func NewFoodSet(grid core.Grid, initial []core.Cell, count int, r core.Rand) *FoodSet {
	cells := make([]core.Cell, 0, count)
	for _, c := range initial {
		if len(cells) == count {
			break
		}
		if !grid.InBounds(c) {
			c = grid.RandomCell(r)
		}
		cells = append(cells, c)
	}
	for len(cells) < count {
		cells = append(cells, grid.RandomCell(r))
	}
	return &FoodSet{cells: cells}
}

// Cells exposes the current food positions.
func (f *FoodSet) Cells() []core.Cell { return f.cells }

// Len returns the fixed cardinality of the set.
func (f *FoodSet) Len() int { return len(f.cells) }

// Eat relocates every food at c to a random in-bounds cell and returns how
// many were eaten.
func (f *FoodSet) Eat(c core.Cell, grid core.Grid, r core.Rand) int {
	eaten := 0
	for i := range f.cells {
		if f.cells[i] == c {
			f.cells[i] = grid.RandomCell(r)
			eaten++
		}
	}
	return eaten
}
