package main

import (
	"context"
	"log/slog"

	"github.com/pthm-cable/fishtank/game"
)

// runHeadless steps the game as fast as possible until ctx is done or
// maxTicks ticks have run (0 = unlimited). It returns the ticks stepped.
func runHeadless(ctx context.Context, g *game.Game, maxTicks int) int {
	ran := 0
	for {
		select {
		case <-ctx.Done():
			slog.Info("simulation interrupted", "tick", g.TickCount())
			return ran
		default:
		}

		g.Step()
		ran++

		if maxTicks > 0 && g.TickCount() >= maxTicks {
			slog.Info("max ticks reached", "tick", g.TickCount())
			return ran
		}
	}
}
