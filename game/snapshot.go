package game

import (
	"cmp"
	"slices"

	"github.com/pthm-cable/fishtank/components"
	"github.com/pthm-cable/fishtank/systems"
)

// FishView is the render state of one fish.
type FishView struct {
	ID        uint32
	X, Y      float64
	Heading   float64
	Size      float64
	Color     components.Color
	EyeClosed bool
	Escaping  bool
	Hooked    bool
}

// PredatorView is the render state of the predator.
type PredatorView struct {
	X, Y      float64
	Heading   float64
	Size      float64
	Color     components.Color
	EyeClosed bool
	Captures  int
}

// LureView is the render state of one lure.
type LureView struct {
	X, Y float64
	Size float64
	Kind components.LureKind
}

// LineView is the fishing line, drawn from the top edge down to the hook.
type LineView struct {
	Active bool
	X      float64 // left edge
	Width  float64
	EndY   float64
}

// Snapshot is a read-only copy of everything a renderer needs for one frame.
type Snapshot struct {
	Tick          int
	Captured      int
	Width, Height float64

	Predator *PredatorView // nil while disabled
	Fish     []FishView    // sorted by ID
	Lures    []LureView
	Line     LineView
	Threat   systems.Threat

	ThreatRadius float64
}

// Snapshot copies the current tank state.
func (g *Game) Snapshot() Snapshot {
	w, h := g.WorldSize()
	s := Snapshot{
		Tick:     g.tick,
		Captured: g.captured,
		Width:    w,
		Height:   h,
		Fish:     make([]FishView, 0, g.fish),
		Lures:    make([]LureView, 0, g.lures),
		Threat:   g.threat,

		ThreatRadius: g.cfg.Threat.Radius,
	}

	query := g.fishFilter.Query()
	for query.Next() {
		pos, mot, body, blink, agent, hook := query.Get()
		s.Fish = append(s.Fish, FishView{
			ID:        agent.ID,
			X:         pos.X,
			Y:         pos.Y,
			Heading:   mot.Heading,
			Size:      body.Size,
			Color:     body.Color,
			EyeClosed: blink.EyeClosed,
			Escaping:  agent.Escaping,
			Hooked:    hook.Hooked,
		})
	}
	slices.SortFunc(s.Fish, func(a, b FishView) int { return cmp.Compare(a.ID, b.ID) })

	lq := g.lureFilter.Query()
	for lq.Next() {
		pos, lure := lq.Get()
		s.Lures = append(s.Lures, LureView{X: pos.X, Y: pos.Y, Size: lure.Size, Kind: lure.Kind})
	}

	if p := g.predatorView(); p.Active() {
		s.Predator = &PredatorView{
			X:         p.Pos.X,
			Y:         p.Pos.Y,
			Heading:   p.Motion.Heading,
			Size:      p.Body.Size,
			Color:     p.Body.Color,
			EyeClosed: p.Blink.EyeClosed,
			Captures:  p.Hunter.Captures,
		}
	}

	if g.fishing.Active {
		s.Line = LineView{
			Active: true,
			X:      g.fishing.LineX,
			Width:  g.cfg.Line.Width,
			EndY:   g.fishing.HookY,
		}
	}
	return s
}
