package systems

import "slices"

// PeerGrid buckets a peer snapshot into square cells so the avoidance pass
// only scans fish in the cells around its own position.
type PeerGrid struct {
	cellSize float64
	cols     int
	rows     int
	peers    []Peer
	cells    [][]int // indices into peers

	idx []int
	out []Peer
}

// Reset rebuilds the grid over peers for a width x height tank.
// The grid keeps a reference to peers until the next Reset.
func (g *PeerGrid) Reset(peers []Peer, width, height, cellSize float64) {
	if cellSize <= 0 {
		cellSize = max(width, height, 1)
	}
	cols := int(width/cellSize) + 1
	rows := int(height/cellSize) + 1

	if cols*rows != len(g.cells) {
		g.cells = make([][]int, cols*rows)
	}
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
	g.cellSize, g.cols, g.rows = cellSize, cols, rows
	g.peers = peers

	for i, p := range peers {
		c := g.cellIndex(p.X, p.Y)
		g.cells[c] = append(g.cells[c], i)
	}
}

// Len returns the number of peers in the grid.
func (g *PeerGrid) Len() int {
	return len(g.peers)
}

// Near returns the peers whose cells overlap the square of half-width radius
// around (x, y). Results keep snapshot order and may include peers slightly
// farther than radius; callers apply their own distance test.
// The returned slice is reused by the next call.
func (g *PeerGrid) Near(x, y, radius float64) []Peer {
	g.out = g.out[:0]
	if len(g.peers) == 0 {
		return g.out
	}
	c0, r0 := g.cell(x-radius, y-radius)
	c1, r1 := g.cell(x+radius, y+radius)

	g.idx = g.idx[:0]
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			g.idx = append(g.idx, g.cells[row*g.cols+col]...)
		}
	}
	// Later peers overwrite earlier ones in AvoidPeers.
	slices.Sort(g.idx)

	for _, i := range g.idx {
		g.out = append(g.out, g.peers[i])
	}
	return g.out
}

func (g *PeerGrid) cellIndex(x, y float64) int {
	col, row := g.cell(x, y)
	return row*g.cols + col
}

// cell clamps a position to the grid. Fish outside the tank land in the edge cells.
func (g *PeerGrid) cell(x, y float64) (int, int) {
	col := int(x / g.cellSize)
	row := int(y / g.cellSize)
	return clampInt(col, 0, g.cols-1), clampInt(row, 0, g.rows-1)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
