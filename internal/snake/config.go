package snake

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"gridsnake/internal/core"
)

// MinBodyLength is the shortest body an actor may start with.
const MinBodyLength = 3

// Config controls the board, food and collision policy of a round.
type Config struct {
	Width  int
	Height int

	// FoodCount is the fixed number of food cells on the board.
	FoodCount int
	// Foods seeds the initial food layout. Out-of-bounds entries are replaced
	// with random cells and the list is topped up to FoodCount.
	Foods []core.Cell

	BodyLength int
	TickLength time.Duration

	// AbortOnCrash stops the whole tick at the first body collision, leaving
	// later actors unmoved and skipping head-to-head resolution.
	AbortOnCrash bool

	Seed int64
}

// DefaultFoods is the classic five-cell opening layout for a 40x40 board.
func DefaultFoods() []core.Cell {
	return []core.Cell{{X: 5, Y: 5}, {X: 5, Y: 7}, {X: 9, Y: 12}, {X: 35, Y: 35}, {X: 27, Y: 17}}
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:      40,
		Height:     40,
		FoodCount:  5,
		Foods:      DefaultFoods(),
		BodyLength: 4,
		TickLength: 200 * time.Millisecond,
		Seed:       1,
	}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["foods"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.FoodCount = parsed
		}
	}
	if v, ok := cfg["food_cells"]; ok {
		if cells, err := ParseCells(v); err == nil {
			c.Foods = cells
		}
	}
	if v, ok := cfg["body"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.BodyLength = parsed
		}
	}
	if v, ok := cfg["tick_ms"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.TickLength = time.Duration(parsed) * time.Millisecond
		}
	}
	if v, ok := cfg["abort_on_crash"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.AbortOnCrash = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}

// ParseCells parses a list such as "5:5,5:7,9:12".
func ParseCells(s string) ([]core.Cell, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	cells := make([]core.Cell, 0, len(parts))
	for _, p := range parts {
		xy := strings.SplitN(strings.TrimSpace(p), ":", 2)
		if len(xy) != 2 {
			return nil, fmt.Errorf("cell %q: want x:y", p)
		}
		x, err := strconv.Atoi(xy[0])
		if err != nil {
			return nil, fmt.Errorf("cell %q: %w", p, err)
		}
		y, err := strconv.Atoi(xy[1])
		if err != nil {
			return nil, fmt.Errorf("cell %q: %w", p, err)
		}
		cells = append(cells, core.Cell{X: x, Y: y})
	}
	return cells, nil
}

// Grid returns the board described by the config.
func (c Config) Grid() core.Grid { return core.NewGrid(c.Width, c.Height) }

// Validate checks that n actors can be seeded on the configured board.
func (c Config) Validate(n int) error {
	if c.BodyLength < MinBodyLength {
		return fmt.Errorf("body length %d: %w", c.BodyLength, ErrBodyTooShort)
	}
	if c.FoodCount <= 0 {
		return ErrNoFood
	}
	if c.Width <= 0 || c.Height <= 0 || c.Height/2+c.BodyLength >= c.Height {
		return fmt.Errorf("%dx%d with body %d: %w", c.Width, c.Height, c.BodyLength, ErrGridTooSmall)
	}
	if n >= c.Width {
		return fmt.Errorf("%d actors on width %d: %w", n, c.Width, ErrTooManyActors)
	}
	return nil
}
