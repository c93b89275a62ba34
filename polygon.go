package outline

import (
	"errors"
	"iter"
	"slices"
)

// ErrTooFewPoints is returned by [Polygon.RemoveAt] when removing a point
// would reduce the polygon below three points.
var ErrTooFewPoints = errors.New("outline: polygon must keep at least 3 points")

// ContourKind distinguishes an outer boundary from an inner detail contour.
type ContourKind uint8

const (
	Outer ContourKind = iota
	Inner
)

func (k ContourKind) String() string {
	switch k {
	case Outer:
		return "outer"
	case Inner:
		return "inner"
	default:
		return "unknown"
	}
}

// Polygon is an ordered, implicitly closed sequence of points in model
// space: the edge from the last point back to the first is implied. It is
// the sole durable entity of the editor.
//
// Adjacent coincident points are legal; they can occur transiently during a
// drag and are never deduplicated. The only structural invariant is that
// destructive edits keep at least three points.
type Polygon struct {
	// Points is the boundary, in model space.
	Points []Point
	// SourceWidth and SourceHeight are the dimensions of the coordinate
	// space the points were extracted in.
	SourceWidth  float64
	SourceHeight float64
	// Kind tags the contour as an outer boundary or inner detail.
	Kind ContourKind
}

// NewPolygon returns a polygon owning a copy of points.
func NewPolygon(points []Point, sourceWidth, sourceHeight float64, kind ContourKind) *Polygon {
	return &Polygon{
		Points:       slices.Clone(points),
		SourceWidth:  sourceWidth,
		SourceHeight: sourceHeight,
		Kind:         kind,
	}
}

// Len returns the number of points.
func (p *Polygon) Len() int {
	return len(p.Points)
}

// At returns the point at index i.
func (p *Polygon) At(i int) Point {
	return p.Points[i]
}

// SetAt replaces the point at index i. There is no geometric constraint;
// self-intersecting outlines are permitted.
func (p *Polygon) SetAt(i int, pt Point) {
	p.Points[i] = pt
}

// InsertAfter inserts pt on the edge between index i and (i+1) mod n. The
// new point becomes index i+1, shifting later indices.
func (p *Polygon) InsertAfter(i int, pt Point) {
	p.Points = slices.Insert(p.Points, i+1, pt)
}

// RemoveAt removes the point at index i. It refuses with [ErrTooFewPoints],
// leaving the polygon untouched, if the removal would drop the length
// below three.
func (p *Polygon) RemoveAt(i int) error {
	if len(p.Points) <= 3 {
		return ErrTooFewPoints
	}
	p.Points = slices.Delete(p.Points, i, i+1)
	return nil
}

// Edge returns the closed edge starting at index i, pairing it with index
// (i+1) mod n.
func (p *Polygon) Edge(i int) Segment {
	return Segment{
		A: p.Points[i],
		B: p.Points[(i+1)%len(p.Points)],
	}
}

// Edges iterates over all closed edges, keyed by the index of each edge's
// first point.
func (p *Polygon) Edges() iter.Seq2[int, Segment] {
	return func(yield func(int, Segment) bool) {
		for i := range p.Points {
			if !yield(i, p.Edge(i)) {
				return
			}
		}
	}
}

// Bounds returns the bounding box of all points. It returns the zero
// rectangle for an empty polygon.
func (p *Polygon) Bounds() Rect {
	if len(p.Points) == 0 {
		return Rect{}
	}
	r := NewRectFromPoints(p.Points[0], p.Points[0])
	for _, pt := range p.Points[1:] {
		r = r.ExtendBy(pt)
	}
	return r
}

// ClonePoints returns a deep copy of the point sequence.
func (p *Polygon) ClonePoints() []Point {
	return slices.Clone(p.Points)
}
