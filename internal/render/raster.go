package render

import (
	"image"
	"image/color"
	"image/draw"
	"strings"

	"gridsnake/internal/core"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Raster is an in-memory Renderer backed by an RGBA image. It is used by the
// headless tools and by tests.
type Raster struct {
	img   *image.RGBA
	lines []string
}

// NewRaster allocates a w x h pixel surface.
func NewRaster(w, h int) *Raster {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	r := &Raster{img: image.NewRGBA(image.Rect(0, 0, w, h))}
	r.Clear()
	return r
}

// Image exposes the backing image.
func (r *Raster) Image() *image.RGBA { return r.img }

// Lines returns the text drawn since the last Clear.
func (r *Raster) Lines() []string { return r.lines }

// Clear fills the surface with the background color.
func (r *Raster) Clear() {
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(Background), image.Point{}, draw.Src)
	r.lines = r.lines[:0]
}

// FillCell paints cell c using the current surface size as the view.
func (r *Raster) FillCell(grid core.Grid, c core.Cell, col color.Color) {
	b := r.img.Bounds()
	x, y, w, h := CellRect(b.Dx(), b.Dy(), grid, c)
	rect := image.Rect(int(x), int(y), int(x)+w, int(y)+h).Intersect(b)
	draw.Draw(r.img, rect, image.NewUniform(col), image.Point{}, draw.Src)
}

// Text draws lines centered on the surface with the basic 7x13 face.
func (r *Raster) Text(lines []string, col color.Color) {
	r.lines = append(r.lines, lines...)
	face := basicfont.Face7x13
	d := &font.Drawer{Dst: r.img, Src: image.NewUniform(col), Face: face}
	b := r.img.Bounds()
	lineH := face.Metrics().Height.Ceil()
	top := (b.Dy() - lineH*len(lines)) / 2
	for i, line := range lines {
		width := d.MeasureString(line).Ceil()
		d.Dot = fixed.P((b.Dx()-width)/2, top+lineH*(i+1))
		d.DrawString(line)
	}
}

// AtCell returns the color at the center of cell c.
func (r *Raster) AtCell(grid core.Grid, c core.Cell) color.RGBA {
	b := r.img.Bounds()
	x, y, w, h := CellRect(b.Dx(), b.Dy(), grid, c)
	return r.img.RGBAAt(int(x)+w/2, int(y)+h/2)
}

// String renders the surface's text as a single block, mostly for logs.
func (r *Raster) String() string { return strings.Join(r.lines, "\n") }
