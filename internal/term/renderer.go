// Package term hosts the game in a terminal using tcell. One board cell maps
// onto a block of character cells sized to the current terminal.
package term

import (
	"image/color"

	"gridsnake/internal/core"
	"gridsnake/internal/render"

	"github.com/gdamore/tcell/v2"
)

// Renderer paints onto a tcell screen. Changes become visible on Show.
type Renderer struct {
	screen tcell.Screen
}

// NewRenderer wraps s.
func NewRenderer(s tcell.Screen) *Renderer { return &Renderer{screen: s} }

// Clear fills the screen with the background color.
func (r *Renderer) Clear() {
	r.screen.Fill(' ', tcell.StyleDefault.Background(toColor(render.Background)))
}

// FillCell paints board cell c as a block of spaces with a colored background.
func (r *Renderer) FillCell(grid core.Grid, c core.Cell, col color.Color) {
	vw, vh := r.screen.Size()
	x, y, w, h := render.CellRect(vw, vh, grid, c)
	style := tcell.StyleDefault.Background(toColor(col))
	x0, y0 := int(x), int(y)
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			px, py := x0+dx, y0+dy
			if px >= vw || py >= vh {
				continue
			}
			r.screen.SetContent(px, py, ' ', nil, style)
		}
	}
}

// Text writes lines centered on the screen.
func (r *Renderer) Text(lines []string, col color.Color) {
	vw, vh := r.screen.Size()
	style := tcell.StyleDefault.
		Foreground(toColor(col)).
		Background(toColor(render.Background))
	top := (vh - len(lines)) / 2
	for i, line := range lines {
		runes := []rune(line)
		left := (vw - len(runes)) / 2
		if left < 0 {
			left = 0
		}
		for j, ch := range runes {
			r.screen.SetContent(left+j, top+i, ch, nil, style)
		}
	}
}

func toColor(c color.Color) tcell.Color {
	cr, cg, cb, _ := c.RGBA()
	return tcell.NewRGBColor(int32(cr>>8), int32(cg>>8), int32(cb>>8))
}
