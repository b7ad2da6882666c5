package input

import "gridsnake/internal/core"

// Layout binds the four headings to keys.
type Layout struct {
	Name                  string
	Up, Down, Left, Right Key
}

// Built-in layouts, assigned to actors in join order.
var (
	Arrows = Layout{Name: "arrows", Up: KeyArrowUp, Down: KeyArrowDown, Left: KeyArrowLeft, Right: KeyArrowRight}
	WASD   = Layout{Name: "wasd", Up: KeyW, Down: KeyS, Left: KeyA, Right: KeyD}
)

// Layouts lists the built-in layouts in assignment order.
func Layouts() []Layout { return []Layout{Arrows, WASD} }

// Direction maps k to a heading when it belongs to the layout.
func (l Layout) Direction(k Key) (core.Direction, bool) {
	switch {
	case k.Is(l.Up):
		return core.Up, true
	case k.Is(l.Down):
		return core.Down, true
	case k.Is(l.Left):
		return core.Left, true
	case k.Is(l.Right):
		return core.Right, true
	}
	return core.Up, false
}

// AnyDirection resolves k against every built-in layout.
func AnyDirection(k Key) (core.Direction, bool) {
	for _, l := range Layouts() {
		if d, ok := l.Direction(k); ok {
			return d, true
		}
	}
	return core.Up, false
}
