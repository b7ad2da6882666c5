package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"strings"

	"gridsnake/internal/bot"
	"gridsnake/internal/core"
	"gridsnake/internal/logging"
	"gridsnake/internal/render"
	"gridsnake/internal/scene"
	"gridsnake/internal/snake"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func main() {
	rounds := flag.Int("rounds", 10, "number of rounds to play")
	players := flag.Int("players", 2, "bots per round")
	maxTicks := flag.Int("max-ticks", 5000, "tick limit per round")
	seed := flag.Int64("seed", 1, "base seed; round i uses seed+i")
	snapshot := flag.String("png", "", "write the final board of the last round to this PNG file")
	scale := flag.Int("scale", 8, "pixels per cell in the PNG snapshot")
	logLevel := flag.String("log-level", "info", "debug, info, warn or error")
	logFormat := flag.String("log-format", "text", "text or json")
	var overrides kvList
	flag.Var(&overrides, "set", "round parameter override in key=value form (repeatable)")
	flag.Parse()

	logger, err := logging.New(os.Stderr, *logLevel, *logFormat)
	if err != nil {
		log.Fatal(err)
	}

	kv := map[string]string{}
	for _, o := range overrides {
		parts := strings.SplitN(o, "=", 2)
		if len(parts) != 2 {
			log.Fatalf("override %q: want key=value", o)
		}
		kv[parts[0]] = parts[1]
	}
	cfg := snake.FromMap(kv)

	names, err := botNames(*players)
	if err != nil {
		log.Fatalf("-players: %v", err)
	}

	reasons := map[snake.Reason]int{}
	timeouts := 0
	var last *snake.Round
	for i := 0; i < *rounds; i++ {
		cfg.Seed = *seed + int64(i)
		r, err := snake.NewRound(cfg, names, core.NewRNG(cfg.Seed))
		if err != nil {
			log.Fatal(err)
		}
		pilot := core.NewRNG(cfg.Seed ^ 0x5eed)
		for r.Tick() < *maxTicks && !r.Over() {
			r.Step(bot.Commands(r, pilot))
		}
		for _, e := range r.Eliminations() {
			reasons[e.Reason]++
		}
		if !r.Over() {
			timeouts++
		}
		logger.Info("round finished",
			"round", r.ID().String(),
			"seed", cfg.Seed,
			"ticks", r.Tick(),
			"eliminated", r.Eliminated(),
			"lengths", lengths(r),
		)
		last = r
	}

	fmt.Printf("rounds=%d wall=%d crash=%d head-on=%d timeouts=%d\n",
		*rounds, reasons[snake.Wall], reasons[snake.Crash], reasons[snake.HeadOn], timeouts)

	if *snapshot != "" && last != nil {
		if err := writeSnapshot(*snapshot, last, *scale); err != nil {
			log.Fatal(err)
		}
	}
}

func botNames(n int) ([]string, error) {
	if n < 0 {
		return nil, fmt.Errorf("negative player count %d", n)
	}
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("bot_%d", i+1)
	}
	return names, nil
}

func lengths(r *snake.Round) []int {
	out := make([]int, len(r.Actors()))
	for i, a := range r.Actors() {
		out[i] = a.Len()
	}
	return out
}

func writeSnapshot(path string, r *snake.Round, scale int) error {
	if scale <= 0 {
		scale = 1
	}
	g := r.Grid()
	raster := render.NewRaster(g.W*scale, g.H*scale)
	scene.DrawBoard(raster, r)
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, raster.Image()); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
