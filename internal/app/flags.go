package app

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"gridsnake/internal/snake"

	"github.com/joho/godotenv"
)

// Config represents the command-line parameters shared by the entry points.
type Config struct {
	Width        int
	Height       int
	Foods        int
	TickMS       int
	Scale        int
	FrameMS      int
	Seed         int64
	AbortOnCrash bool

	LogLevel  string
	LogFormat string
	LogFile   string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	d := snake.DefaultConfig()
	return &Config{
		Width:     d.Width,
		Height:    d.Height,
		Foods:     d.FoodCount,
		TickMS:    int(d.TickLength / time.Millisecond),
		Scale:     16,
		FrameMS:   16,
		Seed:      d.Seed,
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// LoadEnv reads the given dotenv files (".env" when none are named) and then
// applies SNAKE_* variables on top of the current values. Missing files are
// not an error; variables already set in the process win over file values.
func (c *Config) LoadEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load env: %w", err)
	}
	for _, v := range []struct {
		key string
		dst *int
	}{
		{"SNAKE_WIDTH", &c.Width},
		{"SNAKE_HEIGHT", &c.Height},
		{"SNAKE_FOODS", &c.Foods},
		{"SNAKE_TICK_MS", &c.TickMS},
		{"SNAKE_SCALE", &c.Scale},
		{"SNAKE_FRAME_MS", &c.FrameMS},
	} {
		if err := envInt(v.key, v.dst); err != nil {
			return err
		}
	}
	if s, ok := lookup("SNAKE_SEED"); ok {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return fmt.Errorf("SNAKE_SEED: %w", err)
		}
		c.Seed = n
	}
	if s, ok := lookup("SNAKE_ABORT_ON_CRASH"); ok {
		b, err := strconv.ParseBool(s)
		if err != nil {
			return fmt.Errorf("SNAKE_ABORT_ON_CRASH: %w", err)
		}
		c.AbortOnCrash = b
	}
	if s, ok := lookup("SNAKE_LOG_LEVEL"); ok {
		c.LogLevel = s
	}
	if s, ok := lookup("SNAKE_LOG_FORMAT"); ok {
		c.LogFormat = s
	}
	if s, ok := lookup("SNAKE_LOG_FILE"); ok {
		c.LogFile = s
	}
	return nil
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "board width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "board height in cells")
	fs.IntVar(&c.Foods, "foods", c.Foods, "number of food cells")
	fs.IntVar(&c.TickMS, "tick", c.TickMS, "simulation tick length in milliseconds")
	fs.IntVar(&c.Scale, "scale", c.Scale, "initial window pixels per cell")
	fs.IntVar(&c.FrameMS, "frame", c.FrameMS, "terminal frame interval in milliseconds")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for food placement")
	fs.BoolVar(&c.AbortOnCrash, "abort-on-crash", c.AbortOnCrash, "stop the whole tick at the first body collision")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "debug, info, warn or error")
	fs.StringVar(&c.LogFormat, "log-format", c.LogFormat, "text or json")
	fs.StringVar(&c.LogFile, "log-file", c.LogFile, "write logs to this file instead of stderr")
}

// Round converts the parameters into a round configuration.
func (c *Config) Round() snake.Config {
	rc := snake.DefaultConfig()
	rc.Width = c.Width
	rc.Height = c.Height
	rc.FoodCount = c.Foods
	rc.TickLength = time.Duration(c.TickMS) * time.Millisecond
	rc.Seed = c.Seed
	rc.AbortOnCrash = c.AbortOnCrash
	return rc
}

// Frame returns the terminal frame interval.
func (c *Config) Frame() time.Duration {
	if c.FrameMS <= 0 {
		return 16 * time.Millisecond
	}
	return time.Duration(c.FrameMS) * time.Millisecond
}

func lookup(key string) (string, bool) {
	s, ok := os.LookupEnv(key)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

func envInt(key string, dst *int) error {
	s, ok := lookup(key)
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = n
	return nil
}
