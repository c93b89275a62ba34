package outline

import "slices"

// Simplify reduces the number of points in a sequence using the
// Douglas-Peucker algorithm with the given tolerance epsilon, in model
// units. Points whose perpendicular distance to the chord between the
// recursion endpoints is below epsilon are dropped; the first and last
// point are always kept.
//
// The sequence is treated as open: the closing edge of a polygon is not a
// candidate chord, so the seam between the last and first point is never
// simplified away. Sequences of fewer than three points, or a
// non-positive epsilon, return an unmodified copy.
func Simplify(points []Point, epsilon float64) []Point {
	if len(points) < 3 || epsilon <= 0 {
		return slices.Clone(points)
	}
	keep := make([]bool, len(points))
	keep[0] = true
	keep[len(points)-1] = true
	douglasPeucker(points, 0, len(points)-1, epsilon, keep)
	out := make([]Point, 0, len(points))
	for i, k := range keep {
		if k {
			out = append(out, points[i])
		}
	}
	return out
}

// douglasPeucker marks the points between start and end that survive
// simplification. It finds the point with maximum distance to the chord
// from start to end; if that exceeds epsilon the point is kept and both
// halves are processed recursively, otherwise the whole range collapses to
// its endpoints.
func douglasPeucker(points []Point, start, end int, epsilon float64, keep []bool) {
	if end <= start+1 {
		return
	}
	chord := Segment{A: points[start], B: points[end]}
	maxDist := 0.0
	index := -1
	for i := start + 1; i < end; i++ {
		if d := chord.Distance(points[i]); d > maxDist {
			maxDist = d
			index = i
		}
	}
	if maxDist > epsilon {
		douglasPeucker(points, start, index, epsilon, keep)
		keep[index] = true
		douglasPeucker(points, index, end, epsilon, keep)
	}
}
