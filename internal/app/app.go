//go:build ebiten

package app

import (
	"time"

	"gridsnake/internal/input"
	"gridsnake/internal/render"
	"gridsnake/internal/scene"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var watchedKeys = []struct {
	key  ebiten.Key
	name input.Key
}{
	{ebiten.KeyArrowUp, input.KeyArrowUp},
	{ebiten.KeyArrowDown, input.KeyArrowDown},
	{ebiten.KeyArrowLeft, input.KeyArrowLeft},
	{ebiten.KeyArrowRight, input.KeyArrowRight},
	{ebiten.KeyW, input.KeyW},
	{ebiten.KeyA, input.KeyA},
	{ebiten.KeyS, input.KeyS},
	{ebiten.KeyD, input.KeyD},
	{ebiten.KeyEnter, input.KeyEnter},
	{ebiten.KeyNumpadEnter, input.KeyEnter},
}

// Game adapts the scene scheduler to the ebiten.Game interface. Update
// publishes key presses; Draw is the frame callback that drives the
// scheduler.
type Game struct {
	hub     *input.Hub
	sched   *scene.Scheduler
	screen  *render.Screen
	started bool
}

// New constructs a Game that starts on the menu.
func New(env *scene.Env) *Game {
	screen := render.NewScreen()
	return &Game{
		hub:    env.Hub,
		sched:  scene.NewScheduler(scene.NewMenu(env), screen, env.Log),
		screen: screen,
	}
}

// Update handles per-tick input.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	for _, k := range watchedKeys {
		if inpututil.IsKeyJustPressed(k.key) {
			g.hub.Publish(k.name)
		}
	}
	return nil
}

// Draw runs the scheduler against the current frame.
func (g *Game) Draw(screen *ebiten.Image) {
	now := time.Now()
	if !g.started {
		g.sched.Start(now)
		g.started = true
	}
	g.screen.SetTarget(screen)
	g.sched.Frame(now)
}

// Layout follows the window size so the board scales with resizes.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// Close releases the active scene.
func (g *Game) Close() { g.sched.Close() }
