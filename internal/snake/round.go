package snake

import (
	"fmt"

	"gridsnake/internal/core"

	"github.com/google/uuid"
)

// Reason records why an actor was eliminated.
type Reason uint8

const (
	// Wall means the head left the board.
	Wall Reason = iota
	// Crash means the head entered a cell occupied by a body or head.
	Crash
	// HeadOn means two or more heads landed on the same cell.
	HeadOn
)

func (r Reason) String() string {
	switch r {
	case Wall:
		return "wall"
	case Crash:
		return "crash"
	case HeadOn:
		return "head-on"
	}
	return fmt.Sprintf("reason(%d)", uint8(r))
}

// Elimination is one entry of the round's append-only elimination log.
type Elimination struct {
	Name   string
	Reason Reason
	Tick   int
}

// Round owns the board, the actors in join order and the food set, and
// advances them one tick at a time.
type Round struct {
	id     uuid.UUID
	cfg    Config
	grid   core.Grid
	actors []*Actor
	byName map[string]*Actor
	food   *FoodSet
	rng    core.Rand

	eliminated []Elimination
	tick       int
}

// NewRound seeds one actor per name on the shared middle row, evenly spaced
// along x and facing up. A nil rng falls back to a generator seeded from
// cfg.Seed.
func NewRound(cfg Config, names []string, rng core.Rand) (*Round, error) {
	if err := cfg.Validate(len(names)); err != nil {
		return nil, fmt.Errorf("new round: %w", err)
	}
	if rng == nil {
		rng = core.NewRNG(cfg.Seed)
	}
	grid := cfg.Grid()
	r := &Round{
		id:     uuid.New(),
		cfg:    cfg,
		grid:   grid,
		actors: make([]*Actor, 0, len(names)),
		byName: make(map[string]*Actor, len(names)),
		rng:    rng,
	}
	row := grid.H / 2
	for i, name := range names {
		if name == "" {
			return nil, fmt.Errorf("new round: actor %d: %w", i, ErrEmptyActorName)
		}
		if _, dup := r.byName[name]; dup {
			return nil, fmt.Errorf("new round: %q: %w", name, ErrDuplicateName)
		}
		x := grid.W * (i + 1) / (len(names) + 1)
		a := NewActor(name, core.Cell{X: x, Y: row}, core.Up, cfg.BodyLength)
		r.actors = append(r.actors, a)
		r.byName[name] = a
	}
	r.food = NewFoodSet(grid, cfg.Foods, cfg.FoodCount, rng)
	return r, nil
}

// ID identifies the round in logs.
func (r *Round) ID() uuid.UUID { return r.id }

// Grid returns the board.
func (r *Round) Grid() core.Grid { return r.grid }

// Config returns the configuration the round was built with.
func (r *Round) Config() Config { return r.cfg }

// Actors returns the actors in join order.
func (r *Round) Actors() []*Actor { return r.actors }

// Actor looks up an actor by name.
func (r *Round) Actor(name string) (*Actor, bool) {
	a, ok := r.byName[name]
	return a, ok
}

// Foods exposes the current food cells.
func (r *Round) Foods() []core.Cell { return r.food.Cells() }

// Tick returns the number of completed Step calls.
func (r *Round) Tick() int { return r.tick }

// Eliminations returns the elimination log, first-eliminated first.
func (r *Round) Eliminations() []Elimination { return r.eliminated }

// Eliminated returns the eliminated actor names, first-eliminated first.
func (r *Round) Eliminated() []string {
	names := make([]string, len(r.eliminated))
	for i, e := range r.eliminated {
		names[i] = e.Name
	}
	return names
}

// Over reports whether any actor has been eliminated.
func (r *Round) Over() bool { return len(r.eliminated) > 0 }

// Step runs one simulation tick with the given per-actor headings and
// returns the eliminations it produced. Unknown names are ignored and actors
// without a command keep their heading.
func (r *Round) Step(commands map[string]core.Direction) []Elimination {
	before := len(r.eliminated)
	r.tick++

	for _, a := range r.actors {
		if d, ok := commands[a.Name]; ok && a.Alive {
			a.Turn(d)
		}
	}

	occupied := r.Occupied()
	for _, a := range r.actors {
		if !a.Alive {
			continue
		}
		next := a.NextHead()
		if !r.grid.InBounds(next) {
			r.eliminate(a, Wall)
			continue
		}
		if _, hit := occupied[next]; hit {
			r.eliminate(a, Crash)
			if r.cfg.AbortOnCrash {
				return r.eliminated[before:]
			}
			continue
		}
		for n := r.food.Eat(next, r.grid, r.rng); n > 0; n-- {
			a.Grow()
		}
		a.Advance(next)
	}

	r.resolveHeadOn()
	return r.eliminated[before:]
}

// Occupied snapshots the cells blocking the next tick: every living actor's
// head and body except its tail, which vacates as the actor moves.
func (r *Round) Occupied() map[core.Cell]struct{} {
	set := make(map[core.Cell]struct{})
	for _, a := range r.actors {
		if !a.Alive {
			continue
		}
		set[a.Head] = struct{}{}
		if n := len(a.Body); n > 0 {
			for _, c := range a.Body[:n-1] {
				set[c] = struct{}{}
			}
		}
	}
	return set
}

func (r *Round) resolveHeadOn() {
	heads := make(map[core.Cell]int, len(r.actors))
	for _, a := range r.actors {
		if a.Alive {
			heads[a.Head]++
		}
	}
	var colliding []*Actor
	for _, a := range r.actors {
		if a.Alive && heads[a.Head] > 1 {
			colliding = append(colliding, a)
		}
	}
	for _, a := range colliding {
		r.eliminate(a, HeadOn)
	}
}

func (r *Round) eliminate(a *Actor, reason Reason) {
	if !a.Alive {
		return
	}
	a.Alive = false
	r.eliminated = append(r.eliminated, Elimination{Name: a.Name, Reason: reason, Tick: r.tick})
}
