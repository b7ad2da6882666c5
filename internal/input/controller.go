package input

import "gridsnake/internal/snake"

// Controller writes the headings of one layout into an actor's mailbox.
type Controller struct {
	Layout Layout
	Box    *snake.Mailbox
}

// Handle stores the heading for k, if k belongs to the controller's layout.
// Reversals are filtered by the engine when the command is applied.
func (c *Controller) Handle(k Key) {
	if d, ok := c.Layout.Direction(k); ok {
		c.Box.Put(d)
	}
}

// Bind subscribes the controller to h.
func (c *Controller) Bind(h *Hub) (unsubscribe func()) {
	return h.Subscribe(c.Handle)
}
