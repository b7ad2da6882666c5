package render

import (
	"math"

	"gridsnake/internal/core"
)

// CellRect maps board cell c onto a view of viewW x viewH pixels. The origin
// uses the exact fractional pitch while the size is rounded up so
// neighbouring cells leave no gaps. It is recomputed on every call, so
// callers pick up resizes automatically.
func CellRect(viewW, viewH int, grid core.Grid, c core.Cell) (x, y float64, w, h int) {
	if grid.W <= 0 || grid.H <= 0 {
		return 0, 0, 0, 0
	}
	pw := float64(viewW) / float64(grid.W)
	ph := float64(viewH) / float64(grid.H)
	return pw * float64(c.X), ph * float64(c.Y), int(math.Ceil(pw)), int(math.Ceil(ph))
}
