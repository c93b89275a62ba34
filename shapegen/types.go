package shapegen

import (
	"fmt"

	"github.com/photoforge/outline"
)

// Extraction is the outline-extraction result returned by the backend: an
// ordered boundary traced from an uploaded photo, in the coordinate space
// of the (possibly downscaled) source image.
type Extraction struct {
	// Outline is the ordered boundary as [x, y] pairs.
	Outline [][2]float64 `json:"outline"`
	// Width and Height are the dimensions of the coordinate space the
	// points were extracted in.
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	// PointCount is redundant with len(Outline); it exists for display.
	PointCount int `json:"point_count"`
	// Type tags the contour, "outer" (default) or "inner".
	Type string `json:"type,omitempty"`
}

// Points returns a fresh copy of the outline as model-space points. The
// editor must never alias the decoded response.
func (ex *Extraction) Points() []outline.Point {
	pts := make([]outline.Point, len(ex.Outline))
	for i, xy := range ex.Outline {
		pts[i] = outline.Pt(xy[0], xy[1])
	}
	return pts
}

// Kind maps the extraction's type tag onto a contour kind.
func (ex *Extraction) Kind() outline.ContourKind {
	if ex.Type == "inner" {
		return outline.Inner
	}
	return outline.Outer
}

// GenerateRequest asks the backend to extrude an edited outline into a
// solid object.
type GenerateRequest struct {
	// Outline is the current point sequence, as [x, y] pairs.
	Outline [][2]float64 `json:"outline"`
	// Thickness is the extrusion height, in millimeters.
	Thickness float64 `json:"thickness"`
	// BaseSize is the diameter of the base the shape sits on, in
	// millimeters; zero means no base.
	BaseSize float64 `json:"base_size,omitempty"`
	// MaxDimension caps the longest side of the generated object, in
	// millimeters.
	MaxDimension float64 `json:"max_dimension"`
	// Invert swaps solid and hole interpretation of inner contours.
	Invert bool `json:"invert,omitempty"`
}

// OutlineFromPoints converts model-space points into the wire form.
func OutlineFromPoints(pts []outline.Point) [][2]float64 {
	out := make([][2]float64, len(pts))
	for i, pt := range pts {
		out[i] = [2]float64{pt.X, pt.Y}
	}
	return out
}

// GenerateResult is the backend's answer to a generation request. On
// success Artifact references the generated file; on failure Error carries
// a human-readable message.
type GenerateResult struct {
	Artifact string `json:"artifact,omitempty"`
	Error    string `json:"error,omitempty"`
}

// GenerateError is a generation failure reported by the backend, as
// opposed to a transport failure.
type GenerateError struct {
	Message string
}

func (e *GenerateError) Error() string {
	return fmt.Sprintf("shapegen: generation failed: %s", e.Message)
}
