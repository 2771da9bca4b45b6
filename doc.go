// Package autotile resolves which concrete tile to place at each cell
// of a Wang-tiled map, including indirect transitions: painting a color
// with no direct transition tile to its neighbors auto-inserts the
// intermediate color rings that bridge the gap.
//
// 🚀 What is autotile?
//
//	A small, deterministic library for tile-based maps:
//		• wangid — packed 8-slot color descriptors + the 8-direction model
//		• brush  — constrained tile matching, BFS ring expansion, SmartPaint
//		• grid   — a reference in-memory tile map
//
// ✨ Why choose autotile?
//
//   - Capability-based – bring your own catalog and map; two small
//     interfaces make any host substitutable
//   - Deterministic – every traversal order is pinned and the only
//     randomness is an injectable, seedable tie-break
//   - Pure Go – no cgo, no hidden deps
//   - Honest degradation – unreachable colors and unmatched cells are
//     silent no-ops, never panics
//
// Quick ASCII example, painting Sand (S) into Dirt (D) when only
// Grass (G) transitions to both:
//
//	D D D D D            D D D D D
//	D D D D D            D G G G D
//	D D S D D    ──►     D G S G D
//	D D D D D            D G G G D
//	D D D D D            D D D D D
//
// One Grass ring appears automatically; every seam the matcher then
// sees is a direct, distance-1 transition.
//
// Dive into brush/doc.go for the algorithm and wangid/doc.go for the
// bit layout external tilesets must agree on.
//
//	go get github.com/katalvlaran/autotile
package autotile
