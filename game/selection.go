package game

import (
	"github.com/pthm-cable/fishtank/components"
	"github.com/pthm-cable/fishtank/systems"
)

// pickTolerance widens the hit circle so small fish stay clickable.
const pickTolerance = 5

// FishDetail is a copy of one fish's components for the inspector.
type FishDetail struct {
	Position components.Position
	Motion   components.Motion
	Body     components.Body
	Blink    components.Blink
	Agent    components.Agent
	Hook     components.Hook
}

// Components lists the detail's components in display order.
func (d *FishDetail) Components() []any {
	return []any{&d.Agent, &d.Position, &d.Motion, &d.Body, &d.Hook, &d.Blink}
}

// FishAt returns the ID of the fish whose body covers (x, y) in world units,
// preferring the closest when bodies overlap.
func (g *Game) FishAt(x, y float64) (uint32, bool) {
	var (
		best  uint32
		found bool
		bestD float64
	)
	query := g.fishFilter.Query()
	for query.Next() {
		pos, _, body, _, agent, _ := query.Get()
		d := systems.Distance(x, y, pos.X, pos.Y)
		if d > body.Size+pickTolerance {
			continue
		}
		if !found || d < bestD {
			best, bestD, found = agent.ID, d, true
		}
	}
	return best, found
}

// InspectFish copies the components of the fish with the given ID. It
// reports false once the fish has been captured.
func (g *Game) InspectFish(id uint32) (FishDetail, bool) {
	var (
		d     FishDetail
		found bool
	)
	query := g.fishFilter.Query()
	for query.Next() {
		pos, mot, body, blink, agent, hook := query.Get()
		if agent.ID != id {
			continue
		}
		d = FishDetail{
			Position: *pos,
			Motion:   *mot,
			Body:     *body,
			Blink:    *blink,
			Agent:    *agent,
			Hook:     *hook,
		}
		found = true
	}
	return d, found
}
