package input

// Handler receives published keys.
type Handler func(Key)

type subscription struct {
	id int
	fn Handler
}

// Hub fans key events out to subscribed handlers in subscription order. It
// is meant to be used from the single goroutine that runs the host loop.
type Hub struct {
	subs   []subscription
	nextID int
}

// NewHub returns an empty hub.
func NewHub() *Hub { return &Hub{} }

// Subscribe registers fn and returns a function that removes it again.
// Calling the returned function more than once is harmless.
func (h *Hub) Subscribe(fn Handler) (unsubscribe func()) {
	h.nextID++
	id := h.nextID
	h.subs = append(h.subs, subscription{id: id, fn: fn})
	return func() { h.remove(id) }
}

// Publish delivers k to every current subscriber.
func (h *Hub) Publish(k Key) {
	subs := append([]subscription(nil), h.subs...)
	for _, s := range subs {
		s.fn(k)
	}
}

// Len returns the number of active subscriptions.
func (h *Hub) Len() int { return len(h.subs) }

func (h *Hub) remove(id int) {
	for i, s := range h.subs {
		if s.id == id {
			h.subs = append(h.subs[:i], h.subs[i+1:]...)
			return
		}
	}
}
