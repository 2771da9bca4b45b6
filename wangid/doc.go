// Package wangid defines the packed per-direction color descriptor used
// by Wang-tile matching, plus the fixed 8-direction neighbor model.
//
// What:
//
//   - WangId packs 8 color slots (one per compass direction, 8 bits each)
//     into a single uint64 for cheap equality and masking.
//   - Direction enumerates the 8 neighbors in clockwise order from Top,
//     with grid offsets and the opposite-direction mapping.
//
// Why:
//
//   - Autotiling: a cell's desired colors and a tile's authored colors
//     share one value type, so "does this tile fit here" is two ANDs.
//   - External tilesets agree on the exact slot order and width, so the
//     bit layout is part of the public contract and never changes.
//
// Layout:
//
//	slot i occupies bits [8·i, 8·i+8), i = int(Direction).
//	Color 0 is the only "don't care" value; colors 1..255 are opaque IDs.
//
// Complexity: every operation is O(1) or a fixed 8-slot scan.
package wangid
