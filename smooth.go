package outline

import "slices"

// Smooth applies one pass of a 3-point weighted average to a closed point
// sequence: each point is replaced by (prev + 2*curr + next)/4, with prev
// and next wrapping around the polygon. A single pass rounds corners
// without collapsing the shape; callers wanting stronger smoothing invoke
// it repeatedly.
//
// Sequences of fewer than three points return an unmodified copy. A
// sequence of coincident points is a fixed point of the average.
func Smooth(points []Point) []Point {
	n := len(points)
	if n < 3 {
		return slices.Clone(points)
	}
	out := make([]Point, n)
	for i, curr := range points {
		prev := points[(i+n-1)%n]
		next := points[(i+1)%n]
		out[i] = Point{
			X: (prev.X + 2*curr.X + next.X) / 4,
			Y: (prev.Y + 2*curr.Y + next.Y) / 4,
		}
	}
	return out
}
