package outline

// NearestPoint returns the index of the polygon point closest to query
// whose display-space distance is within radiusPx. The scan is by
// ascending index, so on an exact tie the lowest index wins. The reported
// second value is false when no point is within the radius.
//
// query is in display space; radiusPx is a pixel radius, which keeps the
// hit target visually constant regardless of zoom.
func NearestPoint(p *Polygon, tr Transform, query Point, radiusPx float64) (int, bool) {
	best := radiusPx * radiusPx
	idx := -1
	for i, pt := range p.Points {
		if d := tr.ToDisplay(pt).DistanceSquared(query); d < best {
			best = d
			idx = i
		}
	}
	return idx, idx >= 0
}

// NearestEdge returns the index of the closed edge closest to query whose
// display-space perpendicular distance, clamped to the segment, is within
// radiusPx. Like [NearestPoint] the scan is stable by index.
//
// Callers that need point-over-edge priority (a point lying exactly on an
// edge should hit as a point) must call NearestPoint first.
func NearestEdge(p *Polygon, tr Transform, query Point, radiusPx float64) (int, bool) {
	best := radiusPx * radiusPx
	idx := -1
	for i, edge := range p.Edges() {
		display := Segment{A: tr.ToDisplay(edge.A), B: tr.ToDisplay(edge.B)}
		if d, _ := display.Nearest(query); d < best {
			best = d
			idx = i
		}
	}
	return idx, idx >= 0
}
