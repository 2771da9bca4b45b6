package wangid

// Direction identifies one of the 8 neighbor slots, clockwise from Top.
type Direction int

const (
	// Top is the cell directly above (0, -1).
	Top Direction = iota
	// TopRight is the diagonal neighbor at (+1, -1).
	TopRight
	// Right is the cell at (+1, 0).
	Right
	// BottomRight is the diagonal neighbor at (+1, +1).
	BottomRight
	// Bottom is the cell directly below (0, +1).
	Bottom
	// BottomLeft is the diagonal neighbor at (-1, +1).
	BottomLeft
	// Left is the cell at (-1, 0).
	Left
	// TopLeft is the diagonal neighbor at (-1, -1).
	TopLeft
)

// NumDirections is the fixed slot count of the neighbor model.
const NumDirections = 8

// offsets holds the (dx, dy) grid offset per Direction, in slot order.
var offsets = [NumDirections][2]int{
	{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
}

// Opposite returns the direction pointing back at this one.
// A cell's color at d must equal its d-neighbor's color at d.Opposite():
// the two slots name the same shared edge or corner.
// Complexity: O(1).
func (d Direction) Opposite() Direction {
	return (d + NumDirections/2) % NumDirections
}

// Offset returns the grid displacement of the neighbor in direction d.
// Complexity: O(1).
func (d Direction) Offset() (dx, dy int) {
	return offsets[d][0], offsets[d][1]
}

// IsDiagonal reports whether d is one of the four corner directions.
// Complexity: O(1).
func (d Direction) IsDiagonal() bool {
	return d%2 == 1
}

// String returns the compass name of d.
func (d Direction) String() string {
	names := [NumDirections]string{
		"Top", "TopRight", "Right", "BottomRight",
		"Bottom", "BottomLeft", "Left", "TopLeft",
	}
	if d < 0 || d >= NumDirections {
		return "Direction(?)"
	}
	return names[d]
}
