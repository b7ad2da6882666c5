package term

import (
	"context"
	"log/slog"
	"time"

	"gridsnake/internal/input"
	"gridsnake/internal/scene"

	"github.com/gdamore/tcell/v2"
)

// Host runs the scene scheduler against a tcell screen. Key events arrive on
// a channel and are handled on the same goroutine that runs the frames.
type Host struct {
	screen tcell.Screen
	hub    *input.Hub
	sched  *scene.Scheduler
	frame  time.Duration
	log    *slog.Logger
}

// NewHost builds a host that starts on the menu. frame is the interval of the
// frame callback; logic still runs at each scene's own tick length.
func NewHost(screen tcell.Screen, env *scene.Env, frame time.Duration) *Host {
	if frame <= 0 {
		frame = 16 * time.Millisecond
	}
	return &Host{
		screen: screen,
		hub:    env.Hub,
		sched:  scene.NewScheduler(scene.NewMenu(env), NewRenderer(screen), env.Log),
		frame:  frame,
		log:    env.Log,
	}
}

// Run processes input and frames until ctx is done or the player quits.
func (h *Host) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go h.screen.ChannelEvents(events, quit)
	defer close(quit)

	ticker := time.NewTicker(h.frame)
	defer ticker.Stop()

	h.sched.Start(time.Now())
	h.log.Info("terminal host started", "frame", h.frame)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if isQuit(ev) {
					h.log.Info("terminal host stopped")
					return nil
				}
				if k, ok := KeyFor(ev); ok {
					h.hub.Publish(k)
				}
			case *tcell.EventResize:
				h.screen.Sync()
			}
		case now := <-ticker.C:
			if h.sched.Frame(now) > 0 {
				h.screen.Show()
			}
		}
	}
}

// Close releases the active scene.
func (h *Host) Close() { h.sched.Close() }
