package shapegen

import (
	"errors"
	"fmt"

	"github.com/photoforge/outline"
)

// ErrDegenerateOutline reports an outline whose points are all collinear
// (or coincident); extruding it would produce a zero-volume object.
var ErrDegenerateOutline = errors.New("shapegen: outline is degenerate")

// degenerateEps is the model-space tolerance under which an outline counts
// as collinear.
const degenerateEps = 1e-6

// ValidateOutline checks a point sequence before it is submitted for
// generation: at least three points, and not all of them on one line. The
// collinearity test measures every point's clamped distance to the
// segment spanning the outline's extremes, the same primitive hit-testing
// and simplification use.
func ValidateOutline(pts []outline.Point) error {
	if len(pts) < 3 {
		return fmt.Errorf("shapegen: outline has %d points, need at least 3", len(pts))
	}

	// The point farthest from pts[0] spans the widest chord.
	far := 0
	for i, pt := range pts {
		if pt.DistanceSquared(pts[0]) > pts[far].DistanceSquared(pts[0]) {
			far = i
		}
	}
	chord := outline.Segment{A: pts[0], B: pts[far]}
	for _, pt := range pts {
		if chord.Distance(pt) > degenerateEps {
			return nil
		}
	}
	return ErrDegenerateOutline
}
