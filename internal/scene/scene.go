// Package scene drives the game: a fixed-timestep scheduler runs the active
// scene's logic and rendering and hands control from one scene to the next.
package scene

import (
	"log/slog"
	"time"

	"gridsnake/internal/input"
	"gridsnake/internal/logging"
	"gridsnake/internal/render"
	"gridsnake/internal/snake"
)

// DefaultMenuTick is the logic interval of the start menu.
const DefaultMenuTick = 50 * time.Millisecond

// Scene is one screen of the game.
type Scene interface {
	// CalcLogic advances the scene by one logic tick.
	CalcLogic()
	// Draw paints the current state.
	Draw(r render.Renderer)
	// TickLength is the logic interval the scheduler should use.
	TickLength() time.Duration
	// NextScene returns the scene to switch to, or nil to stay.
	NextScene() Scene
	// Destroy releases the scene's input subscriptions.
	Destroy()
}

// Env carries what scenes need to build each other.
type Env struct {
	Hub      *input.Hub
	Config   snake.Config
	Log      *slog.Logger
	MenuTick time.Duration

	rounds int64
}

// NewEnv returns an Env with a fresh hub.
func NewEnv(cfg snake.Config, log *slog.Logger) *Env {
	if log == nil {
		log = logging.Discard()
	}
	return &Env{Hub: input.NewHub(), Config: cfg, Log: log, MenuTick: DefaultMenuTick}
}

// nextSeed derives a distinct seed for every round played in this Env.
func (e *Env) nextSeed() int64 {
	seed := e.Config.Seed + e.rounds
	e.rounds++
	return seed
}
