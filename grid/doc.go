// Package grid provides a reference in-memory tile map implementing the
// brush.TileMap capability.
//
// What:
//
//   - Grid stores one opaque tile per cell in row-major order; empty
//     cells report ok=false.
//   - Fill seeds a uniform terrain, the usual starting point before
//     painting.
//
// Why:
//
//   - The paint brush only requires the TileMap contract; embedding
//     hosts bring their own map. Tests, examples, and small tools need
//     a concrete one.
//
// Bounds:
//
//   - The brush performs no clamping, so bounds policy belongs to the
//     map. Grid drops out-of-range writes and reports out-of-range
//     reads as empty.
//
// Errors:
//
//   - ErrBadDimensions: non-positive width or height.
//
// Complexity: all accessors are O(1); construction and Fill are O(W×H).
package grid
