package brush

import (
	"github.com/katalvlaran/autotile/wangid"
)

// SmartPaint paints color onto the given positions of m, inserting
// intermediate color rings wherever the surrounding terrain cannot
// transition directly, then resolves concrete tiles for the whole
// affected footprint.
//
// Behavior:
//  1. Desired colors: every position gets color; ExpandRings contributes
//     bridging colors for border cells that need them.
//  2. The affected region is the union of all desired cells with their
//     8-connected neighborhoods.
//  3. resolveRegion commits tiles inside-out via BestMatch.
//
// SmartPaint mutates m in place and runs to completion; algorithmic
// degradation (unreachable colors, unmatched cells) is silent by
// contract. Only nil collaborators yield an error. The caller must not
// mutate the same region concurrently.
//
// Complexity: O(N log N + N·V·8) for N affected cells and V variants.
func SmartPaint(m TileMap, ts TileSet, positions []Position, color int, opts ...Option) error {
	if m == nil {
		return ErrNilMap
	}
	if ts == nil {
		return ErrNilTileSet
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if len(positions) == 0 {
		return nil
	}
	rng := o.Rand
	if rng == nil {
		rng = rngFromSeed(0)
	}

	// 1) Desired colors: the user's cells, then bridge rings.
	paint := make(map[Position]int, len(positions))
	for _, p := range positions {
		paint[p] = color
	}
	for pos, ringColor := range ExpandRings(m, ts, positions, color) {
		if _, ok := paint[pos]; !ok {
			paint[pos] = ringColor
		}
	}

	// 2) Affected footprint: desired cells plus a one-cell border.
	affected := make(map[Position]bool, len(paint)*2)
	for p := range paint {
		affected[p] = true
		for d := wangid.Direction(0); d < wangid.NumDirections; d++ {
			affected[p.Neighbor(d)] = true
		}
	}

	// 3) Commit tiles inside-out.
	resolveRegion(m, ts, affected, paint, rng)

	return nil
}
