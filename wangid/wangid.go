package wangid

import (
	"fmt"
	"strings"
)

const (
	slotBits = 8
	slotMask = 0xFF
)

// WangId is the packed 8-slot color descriptor of a tile or of a cell's
// desired constraints. The zero WangId constrains nothing.
type WangId uint64

// FromSlots builds a WangId from 8 colors in Direction order.
// Colors are truncated to 8 bits; callers own range discipline.
// Complexity: O(1).
func FromSlots(colors [NumDirections]int) WangId {
	var w WangId
	for d := Direction(0); d < NumDirections; d++ {
		w = w.WithColor(d, colors[d])
	}
	return w
}

// ColorAt returns the color stored at direction d (0 = unconstrained).
// Complexity: O(1).
func (w WangId) ColorAt(d Direction) int {
	return int(w>>(uint(d)*slotBits)) & slotMask
}

// WithColor returns a copy of w with the slot at d replaced by color.
// Complexity: O(1).
func (w WangId) WithColor(d Direction, color int) WangId {
	shift := uint(d) * slotBits
	return (w &^ (slotMask << shift)) | WangId(color&slotMask)<<shift
}

// Mask derives the hard-constraint mask of w: slot i is 0xFF iff w's
// slot i is nonzero. Masked comparisons treat zero slots as don't-care.
// Complexity: O(1) — fixed 8-slot scan.
func (w WangId) Mask() WangId {
	var m WangId
	for d := Direction(0); d < NumDirections; d++ {
		if w.ColorAt(d) != 0 {
			m = m.WithColor(d, slotMask)
		}
	}
	return m
}

// DominantColor returns the most frequent nonzero slot color, or 0 when
// every slot is empty. Ties resolve to the color appearing first in
// slot order, keeping the result independent of map iteration.
// Complexity: O(1) — fixed 8×8 scan.
func (w WangId) DominantColor() int {
	best, bestCount := 0, 0
	for d := Direction(0); d < NumDirections; d++ {
		c := w.ColorAt(d)
		if c == 0 {
			continue
		}
		count := 0
		for e := Direction(0); e < NumDirections; e++ {
			if w.ColorAt(e) == c {
				count++
			}
		}
		if count > bestCount {
			best, bestCount = c, count
		}
	}
	return best
}

// String renders the slots in Direction order, e.g. "[1 1 0 2 2 2 0 1]".
func (w WangId) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for d := Direction(0); d < NumDirections; d++ {
		if d > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%d", w.ColorAt(d))
	}
	b.WriteByte(']')
	return b.String()
}
