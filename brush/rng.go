// Package brush - RNG policy for the weighted tie-break.
//
// Goals:
//   - Determinism: same seed ⇒ identical paints across platforms.
//   - Encapsulation: one RNG factory; no time-based sources hidden anywhere.
//   - Safety: no panics, no logging.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand
//     across concurrent paint calls.
package brush

import "math/rand"

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0
// or no RNG at all. The value is arbitrary but stable to keep
// reproducible defaults.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}
