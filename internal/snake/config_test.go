package snake

import (
	"errors"
	"testing"
	"time"

	"gridsnake/internal/core"
)

func TestFromMapOverrides(t *testing.T) {
	c := FromMap(map[string]string{
		"w":              "64",
		"h":              "64",
		"foods":          "3",
		"food_cells":     "1:2, 3:4",
		"tick_ms":        "150",
		"abort_on_crash": "true",
		"seed":           "9",
		"body":           "nope",
	})
	if c.Width != 64 || c.Height != 64 {
		t.Fatalf("size = %dx%d, want 64x64", c.Width, c.Height)
	}
	if c.FoodCount != 3 {
		t.Fatalf("food count = %d", c.FoodCount)
	}
	if len(c.Foods) != 2 || c.Foods[1] != (core.Cell{X: 3, Y: 4}) {
		t.Fatalf("food cells = %v", c.Foods)
	}
	if c.TickLength != 150*time.Millisecond {
		t.Fatalf("tick = %v", c.TickLength)
	}
	if !c.AbortOnCrash || c.Seed != 9 {
		t.Fatalf("abort=%v seed=%d", c.AbortOnCrash, c.Seed)
	}
	if c.BodyLength != DefaultConfig().BodyLength {
		t.Fatal("unparsable values must keep the default")
	}
}

func TestParseCellsRejectsMalformed(t *testing.T) {
	if _, err := ParseCells("1-2"); err == nil {
		t.Fatal("expected error for missing separator")
	}
	if _, err := ParseCells("a:2"); err == nil {
		t.Fatal("expected error for non-numeric coordinate")
	}
}

func TestValidate(t *testing.T) {
	c := DefaultConfig()
	if err := c.Validate(2); err != nil {
		t.Fatalf("default config should accept two actors: %v", err)
	}

	short := c
	short.BodyLength = 2
	if err := short.Validate(1); !errors.Is(err, ErrBodyTooShort) {
		t.Fatalf("expected ErrBodyTooShort, got %v", err)
	}

	flat := c
	flat.Height = 8
	if err := flat.Validate(1); !errors.Is(err, ErrGridTooSmall) {
		t.Fatalf("expected ErrGridTooSmall, got %v", err)
	}

	narrow := c
	narrow.Width = 3
	if err := narrow.Validate(3); !errors.Is(err, ErrTooManyActors) {
		t.Fatalf("expected ErrTooManyActors, got %v", err)
	}

	hungry := c
	hungry.FoodCount = 0
	if err := hungry.Validate(1); !errors.Is(err, ErrNoFood) {
		t.Fatalf("expected ErrNoFood, got %v", err)
	}
}
