package brush

import (
	"math"
	"math/rand"
	"sort"

	"github.com/katalvlaran/autotile/wangid"
)

// resolveRegion commits a tile for every cell of the region, inside-out.
// Explicitly painted cells resolve first, then remaining cells by
// Manhattan distance to the centroid of the painted cells, so each later
// cell derives its constraints from as many committed neighbors as
// possible. Cells with no eligible variant are left untouched.
// Complexity: O(N log N + N·V·8) for N cells and V variants.
func resolveRegion(m TileMap, ts TileSet, cells map[Position]bool, paint map[Position]int, rng *rand.Rand) {
	for _, pos := range orderCells(cells, paint) {
		desired := desiredFromNeighbors(m, ts, pos)
		if c, ok := paint[pos]; ok {
			desired = applyPaintColor(desired, c, ts.Kind())
		}
		if tile, ok := BestMatch(ts, desired, desired.Mask(), rng); ok {
			m.SetCell(pos.X, pos.Y, tile)
		}
		// No match is a silent no-op: the existing cell stays.
	}
}

// orderCells sorts the region by (explicitly painted first, Manhattan
// distance to the paint centroid ascending). The underlying (Y, X)
// order pins ties so resolution is deterministic.
// Complexity: O(N log N).
func orderCells(cells map[Position]bool, paint map[Position]int) []Position {
	var cx, cy float64
	if len(paint) > 0 {
		for p := range paint {
			cx += float64(p.X)
			cy += float64(p.Y)
		}
		cx /= float64(len(paint))
		cy /= float64(len(paint))
	}
	centroidDist := func(p Position) float64 {
		return math.Abs(float64(p.X)-cx) + math.Abs(float64(p.Y)-cy)
	}

	ordered := sortedPositions(cells)
	sort.SliceStable(ordered, func(i, j int) bool {
		_, inI := paint[ordered[i]]
		_, inJ := paint[ordered[j]]
		if inI != inJ {
			return inI
		}
		return centroidDist(ordered[i]) < centroidDist(ordered[j])
	})

	return ordered
}

// desiredFromNeighbors builds a cell's constraint WangId by copying, for
// each direction, the already-committed neighbor's color at the opposite
// slot — the shared edge or corner. Directions without a resolvable
// neighbor stay 0 (don't care).
// Complexity: O(8).
func desiredFromNeighbors(m TileMap, ts TileSet, pos Position) wangid.WangId {
	var desired wangid.WangId
	for d := wangid.Direction(0); d < wangid.NumDirections; d++ {
		nb := pos.Neighbor(d)
		tile, ok := m.CellAt(nb.X, nb.Y)
		if !ok {
			continue
		}
		id, ok := ts.WangIdOf(tile)
		if !ok {
			continue
		}
		desired = desired.WithColor(d, id.ColorAt(d.Opposite()))
	}
	return desired
}

// applyPaintColor overwrites the active slots of desired with color.
// Active slots are the diagonals for corner sets, the cardinals for edge
// sets, and all eight for mixed sets.
// Complexity: O(8).
func applyPaintColor(desired wangid.WangId, color int, kind Kind) wangid.WangId {
	for d := wangid.Direction(0); d < wangid.NumDirections; d++ {
		switch kind {
		case KindCorner:
			if !d.IsDiagonal() {
				continue
			}
		case KindEdge:
			if d.IsDiagonal() {
				continue
			}
		}
		desired = desired.WithColor(d, color)
	}
	return desired
}
