package input

import (
	"testing"

	"gridsnake/internal/core"
	"gridsnake/internal/snake"
)

func TestLayoutsMatchCaseInsensitively(t *testing.T) {
	if d, ok := WASD.Direction("W"); !ok || d != core.Up {
		t.Fatalf("WASD.Direction(W) = %v, %v", d, ok)
	}
	if d, ok := Arrows.Direction("arrowleft"); !ok || d != core.Left {
		t.Fatalf("Arrows.Direction(arrowleft) = %v, %v", d, ok)
	}
	if _, ok := Arrows.Direction(KeyW); ok {
		t.Fatal("arrow layout must ignore wasd keys")
	}
	if d, ok := AnyDirection(KeyS); !ok || d != core.Down {
		t.Fatalf("AnyDirection(s) = %v, %v", d, ok)
	}
}

func TestHubUnsubscribe(t *testing.T) {
	h := NewHub()
	var a, b []Key
	unsubA := h.Subscribe(func(k Key) { a = append(a, k) })
	h.Subscribe(func(k Key) { b = append(b, k) })

	h.Publish(KeyEnter)
	unsubA()
	unsubA()
	h.Publish(KeyEscape)

	if len(a) != 1 || len(b) != 2 {
		t.Fatalf("deliveries a=%v b=%v", a, b)
	}
	if h.Len() != 1 {
		t.Fatalf("active subscriptions = %d, want 1", h.Len())
	}
}

func TestHubToleratesUnsubscribeDuringPublish(t *testing.T) {
	h := NewHub()
	calls := 0
	var unsub func()
	unsub = h.Subscribe(func(Key) { calls++; unsub() })
	h.Subscribe(func(Key) { calls++ })

	h.Publish(KeyEnter)
	if calls != 2 {
		t.Fatalf("calls = %d, want 2", calls)
	}
}

func TestControllersRouteToOwnMailbox(t *testing.T) {
	h := NewHub()
	var first, second snake.Mailbox
	c1 := &Controller{Layout: Arrows, Box: &first}
	c2 := &Controller{Layout: WASD, Box: &second}
	c1.Bind(h)
	c2.Bind(h)

	h.Publish(KeyArrowLeft)
	h.Publish(KeyD)
	h.Publish(KeyArrowDown)

	if d, ok := first.Pop(); !ok || d != core.Down {
		t.Fatalf("first mailbox = %v, %v; want latest arrow key", d, ok)
	}
	if d, ok := second.Pop(); !ok || d != core.Right {
		t.Fatalf("second mailbox = %v, %v", d, ok)
	}
}
