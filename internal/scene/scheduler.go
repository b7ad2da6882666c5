package scene

import (
	"log/slog"
	"time"

	"gridsnake/internal/core"
	"gridsnake/internal/logging"
	"gridsnake/internal/render"
)

// Scheduler runs scene logic at the active scene's fixed tick length,
// independently of how often the host calls Frame, and coalesces every batch
// of logic ticks into a single draw.
type Scheduler struct {
	active   Scene
	clock    *core.FixedStep
	renderer render.Renderer
	log      *slog.Logger
}

// NewScheduler makes first the active scene.
func NewScheduler(first Scene, r render.Renderer, log *slog.Logger) *Scheduler {
	if log == nil {
		log = logging.Discard()
	}
	return &Scheduler{
		active:   first,
		clock:    core.NewFixedStep(first.TickLength()),
		renderer: r,
		log:      log,
	}
}

// Start sets the reference time for the first tick.
func (s *Scheduler) Start(now time.Time) { s.clock.Reset(now) }

// Active returns the current scene.
func (s *Scheduler) Active() Scene { return s.active }

// Frame is the host's per-frame callback. It runs every logic tick that is
// due at now, draws once if any ran, then switches scenes when the active
// one asks for it. It returns the number of logic ticks run.
func (s *Scheduler) Frame(now time.Time) int {
	steps := 0
	for s.clock.ShouldStep(now) {
		s.active.CalcLogic()
		steps++
	}
	if steps == 0 {
		return 0
	}
	s.active.Draw(s.renderer)

	if next := s.active.NextScene(); next != nil && next != s.active {
		s.switchTo(next, now)
	}
	return steps
}

// Close destroys the active scene. The host calls it on shutdown.
func (s *Scheduler) Close() {
	if s.active != nil {
		s.active.Destroy()
	}
}

func (s *Scheduler) switchTo(next Scene, now time.Time) {
	s.active.Destroy()
	s.active = next
	s.clock.SetStep(next.TickLength())
	s.clock.Reset(now)
	s.log.Debug("scene switched", "scene", sceneName(next), "tick", s.clock.Step())
}

func sceneName(sc Scene) string {
	switch sc.(type) {
	case *Menu:
		return "menu"
	case *RoundScene:
		return "round"
	}
	return "custom"
}
