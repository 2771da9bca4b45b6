package brush_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/autotile/brush"
	"github.com/katalvlaran/autotile/grid"
	"github.com/katalvlaran/autotile/wangid"
)

// terrainSet is a minimal in-memory TileSet for tests: a handful of
// colors, an explicit adjacency list, and every variant whose colors
// are pairwise within distance 1 of each other.
type terrainSet struct {
	kind     brush.Kind
	colors   int
	dist     [][]int // [a][b], 1-based; brush.Unreachable when disconnected
	variants []brush.Variant
	probs    map[brush.Tile]float64
}

func (s *terrainSet) Variants() []brush.Variant { return s.variants }

func (s *terrainSet) WangIdOf(t brush.Tile) (wangid.WangId, bool) {
	for _, v := range s.variants {
		if v.Tile == t {
			return v.ID, true
		}
	}
	return 0, false
}

func (s *terrainSet) ColorDistance(a, b int) int { return s.dist[a][b] }

func (s *terrainSet) ColorCount() int { return s.colors }

func (s *terrainSet) Probability(v brush.Variant) float64 {
	if p, ok := s.probs[v.Tile]; ok {
		return p
	}
	return 1
}

func (s *terrainSet) Kind() brush.Kind { return s.kind }

// uniformTile returns the solid tile of the given color, the usual seed
// terrain for a test map.
func (s *terrainSet) uniformTile(color int) brush.Tile {
	want := uniformID(s.kind, color)
	for _, v := range s.variants {
		if v.ID == want {
			return v.Tile
		}
	}
	panic(fmt.Sprintf("terrainSet: no uniform tile for color %d", color))
}

// uniformID builds the WangId of a solid tile under the given kind.
func uniformID(kind brush.Kind, color int) wangid.WangId {
	var id wangid.WangId
	for d := wangid.Direction(0); d < wangid.NumDirections; d++ {
		if activeSlot(kind, d) {
			id = id.WithColor(d, color)
		}
	}
	return id
}

func activeSlot(kind brush.Kind, d wangid.Direction) bool {
	switch kind {
	case brush.KindCorner:
		return d.IsDiagonal()
	case brush.KindEdge:
		return !d.IsDiagonal()
	}
	return true
}

// newTerrainSet builds a terrainSet of the given kind. adjacency lists
// the color pairs with direct transition tiles; distances are shortest
// paths over that list. The variant catalog holds every assignment of
// colors to active slots whose colors lie pairwise within distance 1,
// i.e. exactly the transition tiles a direct matcher could use.
func newTerrainSet(kind brush.Kind, colors int, adjacency [][2]int) *terrainSet {
	s := &terrainSet{
		kind:   kind,
		colors: colors,
		dist:   distMatrix(colors, adjacency),
		probs:  map[brush.Tile]float64{},
	}

	active := make([]wangid.Direction, 0, wangid.NumDirections)
	for d := wangid.Direction(0); d < wangid.NumDirections; d++ {
		if activeSlot(kind, d) {
			active = append(active, d)
		}
	}

	assign := make([]int, len(active))
	var emit func(i int)
	emit = func(i int) {
		if i == len(active) {
			var id wangid.WangId
			name := kind.String()
			for j, d := range active {
				id = id.WithColor(d, assign[j])
				name = fmt.Sprintf("%s-%d", name, assign[j])
			}
			s.variants = append(s.variants, brush.Variant{ID: id, Tile: name})
			return
		}
		for c := 1; c <= colors; c++ {
			compatible := true
			for j := 0; j < i; j++ {
				d := s.dist[assign[j]][c]
				if d < 0 || d > 1 {
					compatible = false
					break
				}
			}
			if compatible {
				assign[i] = c
				emit(i + 1)
			}
		}
	}
	emit(0)

	return s
}

// withDuplicates doubles the catalog with renamed copies of every
// variant, forcing the weighted tie-break on every match.
func (s *terrainSet) withDuplicates() *terrainSet {
	dup := *s
	dup.variants = make([]brush.Variant, 0, len(s.variants)*2)
	dup.variants = append(dup.variants, s.variants...)
	for _, v := range s.variants {
		dup.variants = append(dup.variants, brush.Variant{
			ID:   v.ID,
			Tile: fmt.Sprintf("%v#2", v.Tile),
		})
	}
	return &dup
}

// distMatrix computes all-pairs shortest paths over the adjacency list;
// disconnected pairs get brush.Unreachable.
func distMatrix(colors int, adjacency [][2]int) [][]int {
	const inf = 1 << 20
	d := make([][]int, colors+1)
	for i := range d {
		d[i] = make([]int, colors+1)
		for j := range d[i] {
			if i != j {
				d[i][j] = inf
			}
		}
	}
	for _, e := range adjacency {
		d[e[0]][e[1]] = 1
		d[e[1]][e[0]] = 1
	}
	for k := 1; k <= colors; k++ {
		for i := 1; i <= colors; i++ {
			for j := 1; j <= colors; j++ {
				if d[i][k]+d[k][j] < d[i][j] {
					d[i][j] = d[i][k] + d[k][j]
				}
			}
		}
	}
	for i := range d {
		for j := range d[i] {
			if d[i][j] >= inf {
				d[i][j] = brush.Unreachable
			}
		}
	}
	return d
}

// newFilledGrid returns a w×h grid pre-filled with the solid tile of
// the given color.
func newFilledGrid(tb testing.TB, s *terrainSet, w, h, color int) *grid.Grid {
	tb.Helper()
	g, err := grid.New(w, h)
	require.NoError(tb, err)
	g.Fill(s.uniformTile(color))
	return g
}

// dominantAt resolves the committed tile at (x, y) to its dominant
// color, or 0 when the cell is empty.
func dominantAt(g *grid.Grid, s *terrainSet, x, y int) int {
	tile, ok := g.CellAt(x, y)
	if !ok {
		return 0
	}
	id, ok := s.WangIdOf(tile)
	if !ok {
		return 0
	}
	return id.DominantColor()
}

// rngSeeded returns a fresh deterministic source for one assertion.
func rngSeeded(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// chebyshev is the ring number of (x, y) around (cx, cy).
func chebyshev(x, y, cx, cy int) int {
	dx, dy := x-cx, y-cy
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	if dx > dy {
		return dx
	}
	return dy
}
