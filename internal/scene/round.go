package scene

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"gridsnake/internal/input"
	"gridsnake/internal/render"
	"gridsnake/internal/snake"
)

// ErrNoLayout is returned when more players are requested than there are
// keyboard layouts.
var ErrNoLayout = errors.New("no keyboard layout left for player")

// RoundScene plays one snake round. Each actor is steered through its own
// mailbox, fed by a controller subscribed to the hub.
type RoundScene struct {
	env   *Env
	round *snake.Round
	boxes map[string]*snake.Mailbox
	log   *slog.Logger

	unsubs []func()
	toMenu bool
	next   Scene
}

// NewRoundScene starts a round for the given number of players, named
// snake_1, snake_2 and so on.
func NewRoundScene(env *Env, players int) (*RoundScene, error) {
	layouts := input.Layouts()
	if players > len(layouts) {
		return nil, fmt.Errorf("%d players: %w", players, ErrNoLayout)
	}
	names := make([]string, players)
	for i := range names {
		names[i] = fmt.Sprintf("snake_%d", i+1)
	}
	cfg := env.Config
	cfg.Seed = env.nextSeed()
	round, err := snake.NewRound(cfg, names, nil)
	if err != nil {
		return nil, err
	}

	rs := &RoundScene{
		env:   env,
		round: round,
		boxes: make(map[string]*snake.Mailbox, players),
		log:   env.Log.With("round", round.ID().String()),
	}
	for i, name := range names {
		box := &snake.Mailbox{}
		rs.boxes[name] = box
		ctrl := &input.Controller{Layout: layouts[i], Box: box}
		rs.unsubs = append(rs.unsubs, ctrl.Bind(env.Hub))
	}
	rs.unsubs = append(rs.unsubs, env.Hub.Subscribe(rs.onKey))

	g := round.Grid()
	rs.log.Info("round started", "players", names, "width", g.W, "height", g.H, "seed", cfg.Seed)
	return rs, nil
}

// Round exposes the simulated round.
func (rs *RoundScene) Round() *snake.Round { return rs.round }

func (rs *RoundScene) onKey(k input.Key) {
	if k.Is(input.KeyEnter) && rs.round.Over() {
		rs.toMenu = true
	}
}

// CalcLogic drains every mailbox and steps the round until it is over.
func (rs *RoundScene) CalcLogic() {
	if rs.round.Over() {
		return
	}
	for _, e := range rs.round.Step(snake.Drain(rs.boxes)) {
		rs.log.Info("actor eliminated", "actor", e.Name, "reason", e.Reason.String(), "tick", e.Tick)
	}
	if rs.round.Over() {
		rs.log.Info("round over", "eliminated", rs.round.Eliminated(), "ticks", rs.round.Tick())
	}
}

// Draw paints the board and the end-of-round message once someone has been
// eliminated.
func (rs *RoundScene) Draw(r render.Renderer) {
	DrawBoard(r, rs.round)
	if rs.round.Over() {
		r.Text([]string{
			"Game over!",
			"Eliminated: " + strings.Join(rs.round.Eliminated(), ", "),
			"Press Enter for menu",
		}, render.Message)
	}
}

// DrawBoard clears r and paints food, then each actor's head and body.
func DrawBoard(r render.Renderer, round *snake.Round) {
	r.Clear()
	g := round.Grid()
	for _, f := range round.Foods() {
		r.FillCell(g, f, render.Food)
	}
	for i, a := range round.Actors() {
		colors := render.ColorsFor(i)
		r.FillCell(g, a.Head, colors.Head)
		for _, c := range a.Body {
			r.FillCell(g, c, colors.Body)
		}
	}
}

// TickLength returns the configured simulation interval.
func (rs *RoundScene) TickLength() time.Duration { return rs.round.Config().TickLength }

// NextScene returns a fresh menu once the round is over and Enter was pressed.
func (rs *RoundScene) NextScene() Scene {
	if !rs.toMenu {
		return nil
	}
	if rs.next == nil {
		rs.next = NewMenu(rs.env)
	}
	return rs.next
}

// Destroy unsubscribes the controllers and the scene's own key handler.
func (rs *RoundScene) Destroy() {
	for _, unsub := range rs.unsubs {
		unsub()
	}
	rs.unsubs = nil
}
