package app

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadEnvLayersFileEnvAndFlags(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snake.env")
	if err := os.WriteFile(path, []byte("SNAKE_HEIGHT=64\nSNAKE_WIDTH=10\nSNAKE_ABORT_ON_CRASH=true\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		os.Unsetenv("SNAKE_HEIGHT")
		os.Unsetenv("SNAKE_ABORT_ON_CRASH")
	})
	t.Setenv("SNAKE_WIDTH", "50")

	cfg := NewConfig()
	if err := cfg.LoadEnv(path); err != nil {
		t.Fatalf("LoadEnv: %v", err)
	}
	if cfg.Height != 64 {
		t.Fatalf("height = %d, want 64 from file", cfg.Height)
	}
	if cfg.Width != 50 {
		t.Fatalf("width = %d, process env must win over file", cfg.Width)
	}
	if !cfg.AbortOnCrash {
		t.Fatal("abort-on-crash not picked up from file")
	}

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-width", "30", "-tick", "120"}); err != nil {
		t.Fatal(err)
	}
	rc := cfg.Round()
	if rc.Width != 30 || rc.Height != 64 {
		t.Fatalf("round size = %dx%d, want 30x64", rc.Width, rc.Height)
	}
	if rc.TickLength != 120*time.Millisecond {
		t.Fatalf("tick = %v", rc.TickLength)
	}
	if !rc.AbortOnCrash {
		t.Fatal("round config lost abort-on-crash")
	}
}

func TestLoadEnvMissingFileIsFine(t *testing.T) {
	cfg := NewConfig()
	if err := cfg.LoadEnv(filepath.Join(t.TempDir(), "absent.env")); err != nil {
		t.Fatalf("LoadEnv: %v", err)
	}
	if cfg.Width != 40 || cfg.TickMS != 200 {
		t.Fatalf("defaults changed: %+v", cfg)
	}
}

func TestLoadEnvRejectsGarbage(t *testing.T) {
	t.Setenv("SNAKE_TICK_MS", "fast")
	if err := NewConfig().LoadEnv(filepath.Join(t.TempDir(), "absent.env")); err == nil {
		t.Fatal("expected parse error")
	}
}
