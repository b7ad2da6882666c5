//go:build ebiten

package render

import (
	"image/color"

	"gridsnake/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Screen renders onto the ebiten frame image set with SetTarget.
type Screen struct {
	dst *ebiten.Image
}

// NewScreen returns a Screen without a target.
func NewScreen() *Screen { return &Screen{} }

// SetTarget selects the image the next draw calls paint on.
func (s *Screen) SetTarget(dst *ebiten.Image) { s.dst = dst }

// Clear fills the target with the background color.
func (s *Screen) Clear() {
	if s.dst == nil {
		return
	}
	s.dst.Fill(Background)
}

// FillCell paints cell c using the target's current size as the view.
func (s *Screen) FillCell(grid core.Grid, c core.Cell, col color.Color) {
	if s.dst == nil {
		return
	}
	b := s.dst.Bounds()
	x, y, w, h := CellRect(b.Dx(), b.Dy(), grid, c)
	vector.DrawFilledRect(s.dst, float32(x), float32(y), float32(w), float32(h), col, false)
}

// Text draws lines centered on the target.
func (s *Screen) Text(lines []string, col color.Color) {
	if s.dst == nil {
		return
	}
	face := basicfont.Face7x13
	b := s.dst.Bounds()
	lineH := face.Metrics().Height.Ceil()
	top := (b.Dy() - lineH*len(lines)) / 2
	for i, line := range lines {
		bounds := text.BoundString(face, line)
		x := (b.Dx() - bounds.Dx()) / 2
		text.Draw(s.dst, line, face, x, top+lineH*(i+1), col)
	}
}
