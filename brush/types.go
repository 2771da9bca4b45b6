// Package brush defines the capability contracts, options, and sentinel
// errors for the smart paint brush.
package brush

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/autotile/wangid"
)

// Unreachable is the ColorDistance sentinel for color pairs that no
// chain of direct-transition tiles connects.
const Unreachable = -1

// Sentinel errors for brush operations.
var (
	// ErrNilMap is returned when a nil TileMap is passed.
	ErrNilMap = errors.New("brush: tile map is nil")
	// ErrNilTileSet is returned when a nil TileSet is passed.
	ErrNilTileSet = errors.New("brush: tile set is nil")
)

// Tile is an opaque placeable tile reference owned by the host map and
// tileset. The brush only moves Tiles between the two; it never
// inspects them.
type Tile any

// Variant pairs one authored WangId with its placeable Tile. A tileset
// lists rotated and reflected duplicates as separate Variants sharing a
// Tile semantics but carrying distinct WangIds.
type Variant struct {
	ID   wangid.WangId
	Tile Tile
}

// Kind classifies a tileset by which WangId slots it authors.
type Kind int

const (
	// KindCorner authors only the four diagonal slots.
	KindCorner Kind = iota
	// KindEdge authors only the four cardinal slots.
	KindEdge
	// KindMixed authors all eight slots.
	KindMixed
)

// String returns the tileset kind name.
func (k Kind) String() string {
	switch k {
	case KindCorner:
		return "corner"
	case KindEdge:
		return "edge"
	case KindMixed:
		return "mixed"
	}
	return "Kind(?)"
}

// TileSet is the host-provided tile catalog capability. Implementations
// must be immutable for the duration of a paint operation.
//
// ColorDistance must be symmetric, return 0 for identical colors, and
// Unreachable when no transition path exists. The brush assumes a
// well-formed catalog; it validates nothing (tileset authoring owns
// that).
type TileSet interface {
	// Variants enumerates every (WangId, Tile) pair, including
	// pre-computed rotated/reflected duplicates. Enumeration order is
	// part of the tie-break contract of BestMatch.
	Variants() []Variant

	// WangIdOf resolves a placed tile back to its WangId, or ok=false
	// for tiles foreign to this set.
	WangIdOf(t Tile) (wangid.WangId, bool)

	// ColorDistance returns the shortest transition-path length between
	// two colors, or Unreachable.
	ColorDistance(a, b int) int

	// ColorCount returns the number of colors; colors are 1-based.
	ColorCount() int

	// Probability returns the configured selection weight of a variant.
	Probability(v Variant) float64

	// Kind reports which slots this set authors.
	Kind() Kind
}

// TileMap is the host-provided grid capability. Size is informational
// only: the brush performs no bounds clamping, so enforcing bounds is
// the implementation's responsibility.
type TileMap interface {
	// CellAt returns the tile at (x, y), or ok=false for empty cells.
	CellAt(x, y int) (Tile, bool)

	// SetCell places a tile at (x, y).
	SetCell(x, y int, t Tile)

	// Size returns the map dimensions.
	Size() (width, height int)
}

// Position addresses one grid cell.
type Position struct {
	X, Y int
}

// Neighbor returns the adjacent position in direction d.
// Complexity: O(1).
func (p Position) Neighbor(d wangid.Direction) Position {
	dx, dy := d.Offset()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Option configures a paint operation via functional arguments.
type Option func(*Options)

// Options holds tunable parameters for SmartPaint.
type Options struct {
	// Rand is the source for BestMatch's weighted tie-break. A nil Rand
	// falls back to a fixed deterministic stream (see rng.go); there is
	// no hidden time-based seeding.
	Rand *rand.Rand
}

// DefaultOptions returns Options with the deterministic defaults.
func DefaultOptions() Options {
	return Options{Rand: nil}
}

// WithRand sets a custom random source for tie-breaking.
// A nil source is ignored and the deterministic default stays.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// WithSeed derives the random source from a fixed seed, for
// reproducible paints without constructing a *rand.Rand by hand.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rand = rngFromSeed(seed)
	}
}
