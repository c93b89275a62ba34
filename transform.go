package outline

// Zoom factors outside this range produce degenerate rendering, so all zoom
// mutations clamp into it.
const (
	MinZoom = 0.1
	MaxZoom = 5.0
)

// Transform maps model space to display space as
//
//	display = model*Zoom + Pan
//
// componentwise. It is derived state: recomputed on load via
// [FitToContent], mutated by pan and zoom gestures, and never serialized
// with the polygon.
type Transform struct {
	Zoom float64
	Pan  Vec2
}

// ToDisplay maps a model-space point to display space.
func (tr Transform) ToDisplay(pt Point) Point {
	return Point{
		X: pt.X*tr.Zoom + tr.Pan.X,
		Y: pt.Y*tr.Zoom + tr.Pan.Y,
	}
}

// ToModel maps a display-space point back to model space.
func (tr Transform) ToModel(pt Point) Point {
	return Point{
		X: (pt.X - tr.Pan.X) / tr.Zoom,
		Y: (pt.Y - tr.Pan.Y) / tr.Zoom,
	}
}

// ToModelVec maps a display-space displacement to model space. Unlike
// [Transform.ToModel] it is unaffected by the pan offset.
func (tr Transform) ToModelVec(v Vec2) Vec2 {
	return v.Div(tr.Zoom)
}

// Translate returns the transform panned by delta, in display units.
func (tr Transform) Translate(delta Vec2) Transform {
	tr.Pan = tr.Pan.Add(delta)
	return tr
}

// ZoomAt multiplies the zoom by factor, clamped to [MinZoom, MaxZoom], and
// adjusts the pan so the model point currently under pivot (a display-space
// point) stays fixed on screen. This is what makes scroll-to-zoom feel
// anchored under the cursor.
func (tr Transform) ZoomAt(factor float64, pivot Point) Transform {
	newZoom := clampZoom(tr.Zoom * factor)
	anchor := tr.ToModel(pivot)
	return Transform{
		Zoom: newZoom,
		Pan: Vec2{
			X: pivot.X - anchor.X*newZoom,
			Y: pivot.Y - anchor.Y*newZoom,
		},
	}
}

// FitToContent returns a transform that fits bounds inside the viewport
// shrunk by padding on each side, centered. The zoom is the smaller of the
// two per-axis scales, clamped like any other zoom.
func FitToContent(bounds Rect, viewport Size, padding float64) Transform {
	availW := viewport.Width - 2*padding
	availH := viewport.Height - 2*padding
	zoom := MaxZoom
	if bounds.Width() > 0 {
		zoom = min(zoom, availW/bounds.Width())
	}
	if bounds.Height() > 0 {
		zoom = min(zoom, availH/bounds.Height())
	}
	zoom = clampZoom(zoom)
	center := bounds.Center()
	return Transform{
		Zoom: zoom,
		Pan: Vec2{
			X: viewport.Width/2 - center.X*zoom,
			Y: viewport.Height/2 - center.Y*zoom,
		},
	}
}

func clampZoom(zoom float64) float64 {
	return min(max(zoom, MinZoom), MaxZoom)
}
