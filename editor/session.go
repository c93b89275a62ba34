package editor

import (
	"log/slog"
	"slices"

	"github.com/photoforge/outline"
)

// DefaultHitRadius is the pointer hit radius in display pixels.
const DefaultHitRadius = 8.0

// fitPadding is the margin, in display pixels, kept around a freshly
// loaded outline.
const fitPadding = 24.0

// Session is one interactive outline-editing session. It owns the active
// polygon, a pristine copy of the loaded points, the viewport transform,
// both history stacks, and the pointer interaction state. All of that
// resets when a new outline is loaded.
//
// A session is single-threaded: every operation completes synchronously
// within one input-event handling turn, and history recording always
// precedes mutation.
type Session struct {
	poly     *outline.Polygon
	original []outline.Point
	view     outline.Transform
	viewport outline.Size
	history  History

	state State
	// hot is the point or edge index the current hover or drag targets.
	hot int
	// last is the previous pointer position in display space, for
	// incremental drag deltas.
	last outline.Point

	// HitRadius is the pointer hit radius in display pixels. The zero
	// value falls back to DefaultHitRadius.
	HitRadius float64
}

// NewSession returns an empty session for the given viewport size.
func NewSession(viewport outline.Size) *Session {
	return &Session{
		viewport:  viewport,
		HitRadius: DefaultHitRadius,
	}
}

// Load replaces the session's outline with a copy of points and resets
// the viewport transform, the history, and the interaction state.
func (s *Session) Load(points []outline.Point, sourceWidth, sourceHeight float64, kind outline.ContourKind) {
	s.poly = outline.NewPolygon(points, sourceWidth, sourceHeight, kind)
	s.original = slices.Clone(points)
	s.history.Reset()
	s.state = Idle
	s.hot = -1
	s.Fit()
	Logger().Info("outline loaded",
		slog.Int("points", len(points)),
		slog.String("kind", kind.String()))
}

// Polygon returns the active polygon, or nil before the first Load. The
// returned polygon is owned by the session; mutate it only through the
// session's operations.
func (s *Session) Polygon() *outline.Polygon {
	return s.poly
}

// Points returns a deep copy of the current point sequence, for handing to
// the generation collaborator.
func (s *Session) Points() []outline.Point {
	if s.poly == nil {
		return nil
	}
	return s.poly.ClonePoints()
}

// View returns the current viewport transform.
func (s *Session) View() outline.Transform {
	return s.view
}

// SetViewport records a new viewport size and refits the outline.
func (s *Session) SetViewport(viewport outline.Size) {
	s.viewport = viewport
	s.Fit()
}

// Fit recomputes the transform so the whole outline is visible, centered,
// with a small padding.
func (s *Session) Fit() {
	if s.poly == nil || s.poly.Len() == 0 {
		s.view = outline.Transform{Zoom: 1}
		return
	}
	s.view = outline.FitToContent(s.poly.Bounds(), s.viewport, fitPadding)
}

// CanUndo reports whether an undo snapshot is available.
func (s *Session) CanUndo() bool { return s.history.CanUndo() }

// CanRedo reports whether a redo snapshot is available.
func (s *Session) CanRedo() bool { return s.history.CanRedo() }

// hitRadius returns the configured hit radius, defaulting when unset.
func (s *Session) hitRadius() float64 {
	if s.HitRadius > 0 {
		return s.HitRadius
	}
	return DefaultHitRadius
}

// record pushes an undo snapshot of the current points. Always called
// before the mutation it protects.
func (s *Session) record() {
	s.history.Record(s.poly.Points)
}

// MovePoint sets point i to pt (model space) as a single transactional
// edit.
func (s *Session) MovePoint(i int, pt outline.Point) {
	if s.poly == nil {
		return
	}
	s.record()
	s.poly.SetAt(i, pt)
	Logger().Debug("move point", slog.Int("index", i))
}

// MoveEdge translates both endpoints of edge i by delta (model space) as a
// single transactional edit. During a drag gesture the snapshot is taken
// once at gesture start instead; see PointerDown.
func (s *Session) MoveEdge(i int, delta outline.Vec2) {
	if s.poly == nil {
		return
	}
	s.record()
	s.translateEdge(i, delta)
	Logger().Debug("move edge", slog.Int("index", i))
}

func (s *Session) translateEdge(i int, delta outline.Vec2) {
	j := (i + 1) % s.poly.Len()
	s.poly.SetAt(i, s.poly.At(i).Translate(delta))
	s.poly.SetAt(j, s.poly.At(j).Translate(delta))
}

// InsertOnEdge inserts pt (model space) on the edge between i and
// (i+1) mod n.
func (s *Session) InsertOnEdge(i int, pt outline.Point) {
	if s.poly == nil {
		return
	}
	s.record()
	s.poly.InsertAfter(i, pt)
	Logger().Debug("insert point", slog.Int("edge", i))
}

// RemovePoint deletes point i. If the polygon is at its three-point
// minimum the edit is refused with [outline.ErrTooFewPoints] and neither
// the polygon nor the history stacks change.
func (s *Session) RemovePoint(i int) error {
	if s.poly == nil || s.poly.Len() <= 3 {
		Logger().Warn("remove point refused", slog.Int("index", i))
		return outline.ErrTooFewPoints
	}
	s.record()
	if err := s.poly.RemoveAt(i); err != nil {
		return err
	}
	Logger().Debug("remove point", slog.Int("index", i))
	return nil
}

// Simplify runs Douglas-Peucker over the outline with a tolerance given in
// display pixels; the model-space epsilon is tolerance divided by the
// current zoom, so the visual effect is constant across zoom levels.
//
// On outlines below three points this is a no-op, but it still records
// history, consistent with every other operation.
func (s *Session) Simplify(tolerancePx float64) {
	if s.poly == nil {
		return
	}
	s.record()
	before := s.poly.Len()
	s.poly.Points = outline.Simplify(s.poly.Points, tolerancePx/s.view.Zoom)
	s.hot = -1
	Logger().Info("simplify",
		slog.Int("before", before),
		slog.Int("after", s.poly.Len()))
}

// Smooth applies one pass of 3-point corner smoothing as a single
// history-recorded step.
func (s *Session) Smooth() {
	if s.poly == nil {
		return
	}
	s.record()
	s.poly.Points = outline.Smooth(s.poly.Points)
	Logger().Debug("smooth", slog.Int("points", s.poly.Len()))
}

// Reset restores the outline to the points it was loaded with, as an
// undoable edit.
func (s *Session) Reset() {
	if s.poly == nil {
		return
	}
	s.record()
	s.poly.Points = slices.Clone(s.original)
	s.hot = -1
	Logger().Info("reset to original", slog.Int("points", len(s.original)))
}

// Undo restores the most recent snapshot, replacing the point sequence
// wholesale. An empty undo stack, including a session before the first
// Load, is reported via [ErrNothingToUndo] and leaves everything
// unchanged.
func (s *Session) Undo() error {
	if s.poly == nil {
		return ErrNothingToUndo
	}
	restored, err := s.history.Undo(s.poly.Points)
	if err != nil {
		Logger().Warn("undo with empty history")
		return err
	}
	s.poly.Points = restored
	s.hot = -1
	s.state = Idle
	return nil
}

// Redo restores the most recently undone state.
func (s *Session) Redo() error {
	if s.poly == nil {
		return ErrNothingToRedo
	}
	restored, err := s.history.Redo(s.poly.Points)
	if err != nil {
		Logger().Warn("redo with empty history")
		return err
	}
	s.poly.Points = restored
	s.hot = -1
	s.state = Idle
	return nil
}
