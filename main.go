package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/google/uuid"

	"github.com/pthm-cable/transformutils/config"
	"github.com/pthm-cable/transformutils/scene"
	"github.com/pthm-cable/transformutils/viewer"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics")
	logStats := flag.Bool("log-stats", false, "Output stats via slog")
	logEvery := flag.Int("log-every", -1, "Ticks between state log lines (-1 = use config, 0 = off)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N ticks (0 = unlimited)")

	flag.Parse()

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	if *logEvery >= 0 {
		cfg.Telemetry.LogEvery = *logEvery
	}

	// Set up seed
	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	// Set up slog (JSON to stdout), tagged with a run ID
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With("run", uuid.NewString())
	slog.SetDefault(logger)

	opts := scene.Options{
		Seed:      rngSeed,
		OutputDir: *outputDir,
		LogStats:  *logStats,
	}

	if *headless {
		if err := runHeadless(cfg, opts, *maxTicks); err != nil {
			slog.Error("headless run failed", "error", err)
			os.Exit(1)
		}
		return
	}

	if err := runWindow(cfg, opts, *maxTicks); err != nil {
		slog.Error("viewer failed", "error", err)
		os.Exit(1)
	}
}

// runHeadless steps the scene without graphics.
func runHeadless(cfg *config.Config, opts scene.Options, maxTicks int) error {
	s, err := scene.New(cfg, opts)
	if err != nil {
		return err
	}

	slog.Info("starting headless run",
		"seed", opts.Seed,
		"objects", len(s.Handles()),
		"max_ticks", maxTicks,
		"dt", cfg.Physics.DT,
	)

	for maxTicks <= 0 || int(s.Tick()) < maxTicks {
		s.Step()
	}
	slog.Info("max ticks reached", "tick", s.Tick(), "sim_time", s.SimTime())

	return s.Close()
}

// runWindow opens a raylib window and runs the interactive viewer.
func runWindow(cfg *config.Config, opts scene.Options, maxTicks int) error {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "Transform Utils")
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))
	rl.SetExitKey(rl.KeyEscape)

	s, err := scene.New(cfg, opts)
	if err != nil {
		return err
	}
	v := viewer.New(s)

	for !rl.WindowShouldClose() {
		v.Update()
		v.Draw()

		if maxTicks > 0 && int(s.Tick()) >= maxTicks {
			break
		}
	}

	return s.Close()
}
