package terminal

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/fishtank/camera"
	"github.com/pthm-cable/fishtank/game"
	"github.com/pthm-cable/fishtank/water"
)

// Viewer runs the tank in a terminal. The pointer acts as the threat; keys
// issue the same actions as the window buttons.
type Viewer struct {
	screen tcell.Screen
	game   *game.Game
	cam    *camera.Camera
	field  *water.Field
	frame  Frame

	paused bool
	start  time.Time
}

// NewViewer wraps an initialized screen. The caller owns the screen and
// calls Fini.
func NewViewer(screen tcell.Screen, g *game.Game, seed int64) *Viewer {
	w, h := g.WorldSize()
	cols, rows := screen.Size()
	v := &Viewer{
		screen: screen,
		game:   g,
		cam:    camera.New(float64(cols), float64(rows*rowScale), w, h),
		field:  water.NewField(seed),
		start:  time.Now(),
	}
	v.frame.Resize(cols, rows)
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()
	return v
}

// Run ticks the game at fps until ctx is done, the user quits, or maxTicks
// ticks have run (0 means no limit).
func (v *Viewer) Run(ctx context.Context, fps, maxTicks int) error {
	if fps <= 0 {
		return fmt.Errorf("fps must be positive, got %d", fps)
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	snap := v.game.Snapshot()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if !v.handle(ev) {
				return nil
			}
		case <-ticker.C:
			if !v.paused {
				snap = v.game.Tick()
				if maxTicks > 0 && snap.Tick >= maxTicks {
					slog.Info("max ticks reached", "tick", snap.Tick)
					return nil
				}
			} else {
				snap = v.game.Snapshot()
			}
			v.draw(&snap)
		}
	}
}

// handle applies one event and reports whether the viewer should keep running.
func (v *Viewer) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		action, cmd := keyBinding(ev)
		switch cmd {
		case cmdQuit:
			return false
		case cmdPause:
			v.paused = !v.paused
		}
		v.game.Apply(action)

	case *tcell.EventMouse:
		col, row := ev.Position()
		wx, wy := v.cam.ScreenToWorld(float64(col)+0.5, (float64(row)+0.5)*rowScale)
		if v.cam.InWorld(wx, wy) {
			v.game.SetThreatPosition(wx, wy)
		} else {
			v.game.ClearThreat()
		}

	case *tcell.EventResize:
		v.screen.Sync()
		cols, rows := v.screen.Size()
		v.frame.Resize(cols, rows)
		v.cam.Resize(float64(cols), float64(rows*rowScale))
	}
	return true
}

func (v *Viewer) draw(snap *game.Snapshot) {
	Compose(&v.frame, snap, v.cam, v.field, time.Since(v.start).Seconds())
	DrawLegend(&v.frame)
	if v.paused {
		v.frame.Text(v.frame.Cols-8, 0, " PAUSED ", hudStyle)
	}
	v.frame.Blit(v.screen)
	v.screen.Show()
}
