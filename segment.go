package outline

import "math"

// Segment is a line segment between two points. It is the shared primitive
// behind hit-testing, Douglas-Peucker simplification, and export-time
// validation.
type Segment struct {
	A Point
	B Point
}

// Length returns the length of the segment.
func (s Segment) Length() float64 {
	return s.B.Sub(s.A).Hypot()
}

// Eval returns the point at parameter t, where t=0 is A and t=1 is B.
func (s Segment) Eval(t float64) Point {
	return s.A.Lerp(s.B, t)
}

// Translate returns the segment with both endpoints shifted by v.
func (s Segment) Translate(v Vec2) Segment {
	return Segment{
		A: s.A.Translate(v),
		B: s.B.Translate(v),
	}
}

// Nearest returns the squared distance from pt to the segment, along with
// the parameter t of the closest point. The projection of pt onto the line
// through A and B is clamped to the segment, so a query beyond either
// endpoint measures against that endpoint rather than the infinite line.
func (s Segment) Nearest(pt Point) (distSq, t float64) {
	d := s.B.Sub(s.A)
	dotp := d.Dot(pt.Sub(s.A))
	dSquared := d.Dot(d)
	if dotp <= 0.0 {
		return pt.Sub(s.A).Hypot2(), 0.0
	} else if dotp >= dSquared {
		return pt.Sub(s.B).Hypot2(), 1.0
	} else {
		t := dotp / dSquared
		dist := pt.Sub(s.Eval(t)).Hypot2()
		return dist, t
	}
}

// Distance returns the distance from pt to the closest point on the segment.
func (s Segment) Distance(pt Point) float64 {
	distSq, _ := s.Nearest(pt)
	return math.Sqrt(distSq)
}
