package game

// removeCaught deletes fish the predator took this tick. Removal waits until
// the fish query has finished because the world is locked while iterating.
func (g *Game) removeCaught() {
	for _, c := range g.caught {
		g.world.RemoveEntity(c.entity)
		g.fish--
		g.captured++
	}
	g.caught = g.caught[:0]
}

// removeConsumedLures deletes every lure eaten this tick.
func (g *Game) removeConsumedLures() {
	for i, ref := range g.lureRefs {
		if !ref.Consumed {
			continue
		}
		e := g.lureEntities[i]
		if g.world.Alive(e) {
			g.world.RemoveEntity(e)
			g.lures--
		}
	}
}
