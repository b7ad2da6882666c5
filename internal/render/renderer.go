package render

import (
	"image/color"

	"gridsnake/internal/core"
)

// Renderer is the drawing surface scenes paint on.
type Renderer interface {
	// Clear erases the whole surface.
	Clear()
	// FillCell paints board cell c of grid in col.
	FillCell(grid core.Grid, c core.Cell, col color.Color)
	// Text shows lines centered on the surface.
	Text(lines []string, col color.Color)
}
