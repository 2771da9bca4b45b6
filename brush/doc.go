// Package brush implements a Wang-tile smart paint brush with indirect
// transition support.
//
// What:
//
//   - BestMatch picks the catalog variant best fitting a desired WangId
//     under a hard mask, with distance-weighted soft costs and a
//     probability-weighted tie-break.
//   - ExpandRings inserts intermediate color rings wherever the painted
//     color has no direct transition to the existing terrain, so the
//     matcher only ever sees distance ≤ 1 seams.
//   - SmartPaint composes the two over the full affected footprint,
//     re-deriving every cell's constraints from committed neighbors.
//
// Why:
//
//   - Classic autotile matchers fail when Grass↔Dirt and Grass↔Sand
//     tiles exist but Dirt↔Sand tiles do not. Painting Sand into Dirt
//     should auto-insert the Grass border instead of placing nothing.
//
// Collaborators:
//
//   - TileSet and TileMap are host capabilities (see types.go); any
//     catalog or grid implementing them is substitutable. The brush
//     performs no bounds clamping and no catalog validation.
//
// Determinism:
//
//   - Every traversal order is pinned; the only randomness is the
//     tie-break draw, fed by an injectable seedable source (WithRand,
//     WithSeed). A fixed seed yields bit-identical maps.
//
// Errors:
//
//   - ErrNilMap, ErrNilTileSet: nil collaborators.
//   - Everything else degrades silently: unreachable color pairs skip
//     bridging, unmatched cells keep their existing tile.
//
// Complexity: one paint is O(N log N + N·V·8) for N affected cells and
// V catalog variants; memory O(N).
package brush
