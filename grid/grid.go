package grid

import (
	"errors"

	"github.com/katalvlaran/autotile/brush"
)

// ErrBadDimensions indicates a non-positive width or height.
var ErrBadDimensions = errors.New("grid: width and height must be positive")

// Grid is a rectangular in-memory tile map. Cells hold opaque tiles;
// a nil cell is empty. Grid implements brush.TileMap.
type Grid struct {
	width, height int
	cells         []brush.Tile // row-major: index y*width + x
}

// New constructs an empty width×height Grid.
// Returns ErrBadDimensions when either dimension is < 1.
// Complexity: O(W×H) memory, O(1) time beyond allocation.
func New(width, height int) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, ErrBadDimensions
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]brush.Tile, width*height),
	}, nil
}

// Size returns the grid dimensions.
// Complexity: O(1).
func (g *Grid) Size() (width, height int) {
	return g.width, g.height
}

// InBounds reports whether (x, y) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// CellAt returns the tile at (x, y). ok is false for empty cells and
// out-of-range coordinates.
// Complexity: O(1).
func (g *Grid) CellAt(x, y int) (brush.Tile, bool) {
	if !g.InBounds(x, y) {
		return nil, false
	}
	t := g.cells[g.index(x, y)]
	return t, t != nil
}

// SetCell places a tile at (x, y). Out-of-range writes are dropped:
// the brush does not clamp, and this map's bounds policy is to ignore
// spill beyond its edges. A nil tile clears the cell.
// Complexity: O(1).
func (g *Grid) SetCell(x, y int, t brush.Tile) {
	if !g.InBounds(x, y) {
		return
	}
	g.cells[g.index(x, y)] = t
}

// Fill sets every cell to t, replacing existing content.
// Complexity: O(W×H).
func (g *Grid) Fill(t brush.Tile) {
	for i := range g.cells {
		g.cells[i] = t
	}
}

// index maps (x, y) to its row-major slot: y*width + x.
// Complexity: O(1).
func (g *Grid) index(x, y int) int {
	return y*g.width + x
}
