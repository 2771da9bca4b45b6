package brush

import (
	"math/rand"

	"github.com/katalvlaran/autotile/wangid"
)

// weightedTile is one minimum-penalty candidate with its draw weight.
type weightedTile struct {
	tile   Tile
	weight float64
}

// BestMatch searches ts for the variant that best fits desired under
// mask and returns its tile, or ok=false when no variant qualifies.
//
// Behavior:
//  1. Hard filter: a variant is eligible only if its WangId, masked by
//     mask, equals desired masked by mask.
//  2. Soft cost: each unmasked slot where desired is nonzero and differs
//     from the candidate adds ColorDistance(desired, candidate) to the
//     penalty; an Unreachable pair rejects the candidate outright.
//  3. The minimum-penalty candidates tie-break by a cumulative-weight
//     draw over Probability. A non-positive total weight deterministically
//     selects the last-enumerated candidate.
//
// rng may be nil; a fixed deterministic stream is used then.
//
// Complexity: O(V·8) over V variants, Memory: O(ties).
func BestMatch(ts TileSet, desired, mask wangid.WangId, rng *rand.Rand) (Tile, bool) {
	if ts == nil {
		return nil, false
	}

	const inf = int(^uint(0) >> 1)
	bestPenalty := inf
	var (
		candidates []weightedTile
		total      float64
	)

	for _, v := range ts.Variants() {
		if v.ID&mask != desired&mask {
			continue
		}
		penalty, valid := softPenalty(ts, desired, v.ID)
		if !valid {
			continue
		}
		if penalty < bestPenalty {
			bestPenalty = penalty
			candidates = candidates[:0]
			total = 0
		}
		if penalty == bestPenalty {
			w := ts.Probability(v)
			candidates = append(candidates, weightedTile{tile: v.Tile, weight: w})
			total += w
		}
	}

	if len(candidates) == 0 {
		return nil, false
	}
	return drawWeighted(candidates, total, rng), true
}

// softPenalty sums color distances over slots where desired is nonzero
// and differs from the candidate. valid=false when any such pair is
// Unreachable.
// Complexity: O(8).
func softPenalty(ts TileSet, desired, candidate wangid.WangId) (penalty int, valid bool) {
	for d := wangid.Direction(0); d < wangid.NumDirections; d++ {
		want := desired.ColorAt(d)
		got := candidate.ColorAt(d)
		if want == 0 || want == got {
			continue
		}
		dist := ts.ColorDistance(want, got)
		if dist < 0 {
			return 0, false
		}
		penalty += dist
	}
	return penalty, true
}

// drawWeighted samples one candidate: a uniform draw in [0, total]
// walked against the cumulative weights, falling back to the last
// candidate (also the deterministic pick when total ≤ 0).
// Complexity: O(len(candidates)).
func drawWeighted(candidates []weightedTile, total float64, rng *rand.Rand) Tile {
	last := candidates[len(candidates)-1].tile
	if total <= 0 {
		return last
	}
	if rng == nil {
		rng = rngFromSeed(0)
	}
	r := rng.Float64() * total
	cumulative := 0.0
	for _, c := range candidates {
		cumulative += c.weight
		if r <= cumulative {
			return c.tile
		}
	}
	return last
}
