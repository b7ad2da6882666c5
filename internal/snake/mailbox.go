package snake

import "gridsnake/internal/core"

// Mailbox holds at most one pending heading for an actor. Later writes
// replace earlier ones; Pop hands the command over and clears the slot.
type Mailbox struct {
	dir     core.Direction
	pending bool
}

// Put stores d, replacing any unconsumed command.
func (m *Mailbox) Put(d core.Direction) {
	m.dir = d
	m.pending = true
}

// Pop returns the pending command, if any, and empties the slot.
func (m *Mailbox) Pop() (core.Direction, bool) {
	if !m.pending {
		return core.Up, false
	}
	m.pending = false
	return m.dir, true
}

// Drain pops every mailbox into a command map for Round.Step. Empty
// mailboxes are left out of the result.
func Drain(boxes map[string]*Mailbox) map[string]core.Direction {
	cmds := make(map[string]core.Direction, len(boxes))
	for name, box := range boxes {
		if d, ok := box.Pop(); ok {
			cmds[name] = d
		}
	}
	return cmds
}
