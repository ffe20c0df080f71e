package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/fishtank/config"
	"github.com/pthm-cable/fishtank/game"
	"github.com/pthm-cable/fishtank/telemetry"
	"github.com/pthm-cable/fishtank/terminal"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics")
	term := flag.Bool("terminal", false, "Run in the terminal instead of a window")
	logStats := flag.Bool("log-stats", false, "Output stats via slog")
	statsWindow := flag.Int("stats-window", 0, "Stats window size in ticks (0 = use config)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N ticks (0 = unlimited)")
	predator := flag.Bool("predator", false, "Start with the predator hunting")
	stepsPerFrame := flag.Int("steps-per-frame", 1, "Initial simulation ticks per rendered frame")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()
	if *statsWindow > 0 {
		cfg.Telemetry.WindowTicks = *statsWindow
	}
	if *predator {
		cfg.Predator.Enabled = true
	}

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	output, err := telemetry.NewOutputManager(*outputDir)
	if err != nil {
		slog.Error("failed to create output directory", "error", err)
		os.Exit(1)
	}
	if err := output.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config snapshot", "error", err)
		os.Exit(1)
	}

	g := game.New(game.Options{
		Config:   cfg,
		Seed:     rngSeed,
		LogStats: *logStats,
		Output:   output,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	code := 0
	switch {
	case *headless:
		slog.Info("starting headless simulation",
			"seed", rngSeed,
			"stats_window", cfg.Telemetry.WindowTicks,
			"max_ticks", *maxTicks,
		)
		ticks := runHeadless(ctx, g, *maxTicks)
		slog.Info("simulation finished", "ticks", ticks, "captured", g.Captured(), "fish", g.Population())

	case *term:
		if err := runTerminal(ctx, g, cfg, rngSeed, *maxTicks); err != nil {
			slog.Error("terminal viewer failed", "error", err)
			code = 1
		}

	default:
		runWindow(g, cfg, rngSeed, *maxTicks, *stepsPerFrame)
	}

	stop()
	if err := output.Close(); err != nil {
		slog.Error("failed to close output files", "error", err)
		code = 1
	}
	os.Exit(code)
}

// runTerminal owns the tcell screen for the lifetime of the viewer.
func runTerminal(ctx context.Context, g *game.Game, cfg *config.Config, seed int64, maxTicks int) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	return terminal.NewViewer(screen, g, seed).Run(ctx, cfg.Screen.TargetFPS, maxTicks)
}
