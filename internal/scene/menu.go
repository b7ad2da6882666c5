package scene

import (
	"fmt"
	"time"

	"gridsnake/internal/core"
	"gridsnake/internal/input"
	"gridsnake/internal/render"
)

// Menu lets the players pick how many snakes take part in the next round.
type Menu struct {
	env      *Env
	options  []int
	selected int

	keys        []input.Key
	chosen      int
	next        Scene
	unsubscribe func()
}

// NewMenu builds a start menu offering one or two players and subscribes it
// to the env's input hub.
func NewMenu(env *Env) *Menu {
	m := &Menu{env: env, options: []int{1, 2}}
	m.unsubscribe = env.Hub.Subscribe(m.onKey)
	return m
}

func (m *Menu) onKey(k input.Key) {
	m.keys = append(m.keys, k)
}

// Selected returns the highlighted player count.
func (m *Menu) Selected() int { return m.options[m.selected] }

// CalcLogic applies the keys buffered since the last tick.
func (m *Menu) CalcLogic() {
	for _, k := range m.keys {
		if m.chosen > 0 {
			break
		}
		if k.Is(input.KeyEnter) {
			m.chosen = m.Selected()
			continue
		}
		d, ok := input.AnyDirection(k)
		if !ok {
			continue
		}
		switch d {
		case core.Up:
			m.selected = (m.selected + len(m.options) - 1) % len(m.options)
		case core.Down:
			m.selected = (m.selected + 1) % len(m.options)
		}
	}
	m.keys = m.keys[:0]
}

// Draw lists the options and marks the highlighted one.
func (m *Menu) Draw(r render.Renderer) {
	r.Clear()
	lines := []string{"SNAKE", ""}
	for i, n := range m.options {
		marker := "  "
		if i == m.selected {
			marker = "> "
		}
		label := "players"
		if n == 1 {
			label = "player"
		}
		lines = append(lines, fmt.Sprintf("%s%d %s", marker, n, label))
	}
	lines = append(lines, "", "Up/Down to choose, Enter to start")
	r.Text(lines, render.Message)
}

// TickLength returns the menu's logic interval.
func (m *Menu) TickLength() time.Duration {
	if m.env.MenuTick <= 0 {
		return DefaultMenuTick
	}
	return m.env.MenuTick
}

// NextScene builds the round once a player count has been confirmed.
func (m *Menu) NextScene() Scene {
	if m.chosen == 0 {
		return nil
	}
	if m.next == nil {
		rs, err := NewRoundScene(m.env, m.chosen)
		if err != nil {
			m.env.Log.Error("round setup failed", "players", m.chosen, "error", err)
			m.chosen = 0
			return nil
		}
		m.next = rs
	}
	return m.next
}

// Destroy unsubscribes the menu from the hub.
func (m *Menu) Destroy() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
}
