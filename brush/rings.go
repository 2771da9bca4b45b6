package brush

import (
	"sort"

	"github.com/katalvlaran/autotile/wangid"
)

// ExpandRings walks outward from the paint region, ring by ring, and
// assigns a bridging color to every border cell whose existing terrain
// sits more than one transition away from the painted color. The result
// maps each such cell to the intermediate color to paint there.
//
// Behavior:
//  1. The first frontier is the 8-connected neighborhood of positions;
//     the positions themselves start visited.
//  2. Each frontier cell is classified by its dominant color. Cells that
//     are empty, already match the active "from" color, sit at distance
//     ≤ 1, or are Unreachable contribute nothing.
//  3. Otherwise the cell records the next hop: the color adjacent to
//     "from" (distance exactly 1) that minimizes the remaining distance
//     to the cell's color, scanned in ascending color order.
//  4. Cells that recorded a hop seed the next ring. After each ring the
//     active "from" color becomes the first hop recorded that ring, so
//     deeper rings bridge onward from the inserted color.
//
// Frontiers are scanned in (Y, X) order; the expansion is fully
// deterministic.
//
// Complexity: O(R·C) over R visited ring cells and C colors,
// Memory: O(R).
func ExpandRings(m TileMap, ts TileSet, positions []Position, color int) map[Position]int {
	intermediates := make(map[Position]int)
	if m == nil || ts == nil || len(positions) == 0 {
		return intermediates
	}

	visited := make(map[Position]bool, len(positions))
	for _, p := range positions {
		visited[p] = true
	}
	frontier := make(map[Position]bool)
	for _, p := range positions {
		for d := wangid.Direction(0); d < wangid.NumDirections; d++ {
			if nb := p.Neighbor(d); !visited[nb] {
				frontier[nb] = true
			}
		}
	}

	from := color
	for len(frontier) > 0 {
		next := make(map[Position]bool)
		ringFrom := 0

		for _, pos := range sortedPositions(frontier) {
			if visited[pos] {
				continue
			}
			visited[pos] = true

			dominant := dominantColorAt(m, ts, pos)
			if dominant == 0 || dominant == from {
				continue // empty terrain, or already the active color
			}
			dist := ts.ColorDistance(from, dominant)
			if dist < 0 {
				continue // unreachable pair: nothing can bridge it
			}
			if dist <= 1 {
				continue // a direct transition tile exists
			}
			hop, ok := nextColorOnPath(ts, from, dominant)
			if !ok {
				continue
			}
			intermediates[pos] = hop
			if ringFrom == 0 {
				ringFrom = hop
			}
			for d := wangid.Direction(0); d < wangid.NumDirections; d++ {
				if nb := pos.Neighbor(d); !visited[nb] {
					next[nb] = true
				}
			}
		}

		frontier = next
		// Deeper rings transition from the inserted color, not from the
		// originally painted one.
		if ringFrom != 0 {
			from = ringFrom
		}
	}

	return intermediates
}

// nextColorOnPath returns the next color on the shortest transition path
// from → to: the candidate at distance exactly 1 from "from" minimizing
// the remaining distance to "to". Colors are scanned in ascending index
// order and the first minimizer wins ties. ok=false when from and to are
// already within distance 1 or no adjacent color leads toward to.
// Complexity: O(ColorCount).
func nextColorOnPath(ts TileSet, from, to int) (hop int, ok bool) {
	if ts.ColorDistance(from, to) <= 1 {
		return 0, false
	}

	const inf = int(^uint(0) >> 1)
	bestRemaining := inf
	for c := 1; c <= ts.ColorCount(); c++ {
		if c == from || ts.ColorDistance(from, c) != 1 {
			continue
		}
		remaining := ts.ColorDistance(c, to)
		if remaining < 0 || remaining >= bestRemaining {
			continue
		}
		hop, bestRemaining = c, remaining
	}

	return hop, hop != 0
}

// dominantColorAt reports the dominant color of the tile currently at
// pos, or 0 for empty cells and tiles foreign to the set.
// Complexity: O(1).
func dominantColorAt(m TileMap, ts TileSet, pos Position) int {
	tile, ok := m.CellAt(pos.X, pos.Y)
	if !ok {
		return 0
	}
	id, ok := ts.WangIdOf(tile)
	if !ok {
		return 0
	}
	return id.DominantColor()
}

// sortedPositions returns the set's members ordered by (Y, X).
// Map iteration order is randomized in Go; every scan that can influence
// output goes through here.
// Complexity: O(n log n).
func sortedPositions(set map[Position]bool) []Position {
	out := make([]Position, 0, len(set))
	for p := range set {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}
