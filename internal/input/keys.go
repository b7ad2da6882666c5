// Package input turns host key events into per-actor headings and scene
// navigation. Hosts translate their native key codes into Key names and
// publish them on a Hub.
package input

import "strings"

// Key is a host-independent key name.
type Key string

// Keys understood by the built-in layouts and scenes.
const (
	KeyArrowUp    Key = "ArrowUp"
	KeyArrowDown  Key = "ArrowDown"
	KeyArrowLeft  Key = "ArrowLeft"
	KeyArrowRight Key = "ArrowRight"
	KeyW          Key = "w"
	KeyA          Key = "a"
	KeyS          Key = "s"
	KeyD          Key = "d"
	KeyEnter      Key = "Enter"
	KeyEscape     Key = "Escape"
)

// Is reports whether k names the same key as o, ignoring case.
func (k Key) Is(o Key) bool { return strings.EqualFold(string(k), string(o)) }
