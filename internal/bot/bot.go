// Package bot steers actors without a keyboard. It is used by the headless
// runner to play rounds end to end.
package bot

import (
	"gridsnake/internal/core"
	"gridsnake/internal/snake"
)

// Greedy picks a heading for a that avoids walls and occupied cells and
// moves toward the nearest food. Ties are broken with rng. When every move is
// fatal it keeps the current heading.
func Greedy(r *snake.Round, a *snake.Actor, occupied map[core.Cell]struct{}, rng core.Rand) core.Direction {
	grid := r.Grid()
	target, hasFood := nearest(a.Head, r.Foods())

	best := a.Direction
	bestScore := -1
	ties := 0
	for _, d := range core.Directions {
		if d == core.Opposite(a.Direction) {
			continue
		}
		next := a.Head.Add(core.Unit(d))
		if !grid.InBounds(next) {
			continue
		}
		if _, hit := occupied[next]; hit {
			continue
		}
		score := grid.W + grid.H
		if hasFood {
			score -= manhattan(next, target)
		}
		switch {
		case score > bestScore:
			best, bestScore, ties = d, score, 1
		case score == bestScore:
			ties++
			if rng.IntN(ties) == 0 {
				best = d
			}
		}
	}
	return best
}

// Commands runs Greedy for every living actor of r.
func Commands(r *snake.Round, rng core.Rand) map[string]core.Direction {
	occupied := r.Occupied()
	cmds := make(map[string]core.Direction, len(r.Actors()))
	for _, a := range r.Actors() {
		if a.Alive {
			cmds[a.Name] = Greedy(r, a, occupied, rng)
		}
	}
	return cmds
}

func nearest(from core.Cell, cells []core.Cell) (core.Cell, bool) {
	var best core.Cell
	bestDist := -1
	for _, c := range cells {
		if d := manhattan(from, c); bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}
	return best, bestDist >= 0
}

func manhattan(a, b core.Cell) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
