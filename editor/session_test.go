package editor

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/photoforge/outline"
)

func newTestSession(points []outline.Point) *Session {
	s := NewSession(outline.Size{Width: 800, Height: 600})
	s.Load(points, 100, 100, outline.Outer)
	return s
}

func hexagon() []outline.Point {
	return pts(0, 0, 20, 0, 30, 10, 20, 20, 0, 20, -10, 10)
}

func TestSessionLoadResetsEverything(t *testing.T) {
	s := newTestSession(hexagon())
	s.MovePoint(2, outline.Pt(99, 99))
	if !s.CanUndo() {
		t.Fatal("want undo history after an edit")
	}

	s.Load(pts(0, 0, 10, 0, 5, 10), 50, 50, outline.Outer)
	if s.CanUndo() || s.CanRedo() {
		t.Fatal("want empty history after load")
	}
	if s.State() != Idle {
		t.Fatalf("got state %v after load, want idle", s.State())
	}
	if s.Polygon().Len() != 3 {
		t.Fatalf("got %d points, want 3", s.Polygon().Len())
	}
}

func TestSessionLoadCopiesInput(t *testing.T) {
	input := pts(0, 0, 10, 0, 5, 10)
	s := newTestSession(input)
	input[0] = outline.Pt(42, 42)
	diff(t, outline.Pt(0, 0), s.Polygon().At(0))
}

func TestSessionMovePointUndoRedo(t *testing.T) {
	original := hexagon()
	s := newTestSession(original)

	s.MovePoint(2, outline.Pt(31, 11))
	moved := s.Points()

	if err := s.Undo(); err != nil {
		t.Fatal(err)
	}
	diff(t, original, s.Polygon().Points)

	if err := s.Redo(); err != nil {
		t.Fatal(err)
	}
	diff(t, moved, s.Polygon().Points)
}

func TestSessionMoveEdge(t *testing.T) {
	s := newTestSession(pts(0, 0, 10, 0, 10, 10, 0, 10))
	s.MoveEdge(3, outline.Vec(-2, 1))
	// Edge 3 joins index 3 and index 0.
	diff(t, outline.Pt(-2, 11), s.Polygon().At(3))
	diff(t, outline.Pt(-2, 1), s.Polygon().At(0))
	diff(t, outline.Pt(10, 0), s.Polygon().At(1))
}

func TestSessionRemovePointAtMinimum(t *testing.T) {
	s := newTestSession(pts(0, 0, 10, 0, 5, 10))
	err := s.RemovePoint(1)
	if !errors.Is(err, outline.ErrTooFewPoints) {
		t.Fatalf("got %v, want ErrTooFewPoints", err)
	}
	if s.CanUndo() {
		t.Fatal("refused edit must not record history")
	}
	diff(t, pts(0, 0, 10, 0, 5, 10), s.Polygon().Points)
}

func TestSessionSimplifyRecordsHistory(t *testing.T) {
	s := newTestSession(pts(0, 0, 5, 0.01, 10, -0.01, 15, 0.02, 20, 0, 10, 30))
	before := s.Points()

	// Viewport fitting chose some zoom; a 1px tolerance maps to 1/zoom in
	// model units, so use a tolerance that guarantees collapse of the
	// near-collinear run.
	s.Simplify(2 * s.View().Zoom)
	if s.Polygon().Len() >= len(before) {
		t.Fatalf("got %d points, want fewer than %d", s.Polygon().Len(), len(before))
	}

	if err := s.Undo(); err != nil {
		t.Fatal(err)
	}
	diff(t, before, s.Polygon().Points)
}

func TestSessionSmoothUndo(t *testing.T) {
	original := pts(0, 0, 10, 0, 10, 10, 0, 10)
	s := newTestSession(original)
	s.Smooth()
	diff(t, pts(2.5, 2.5, 7.5, 2.5, 7.5, 7.5, 2.5, 7.5), s.Polygon().Points)
	if err := s.Undo(); err != nil {
		t.Fatal(err)
	}
	diff(t, original, s.Polygon().Points)
}

func TestSessionReset(t *testing.T) {
	original := hexagon()
	s := newTestSession(original)
	s.MovePoint(0, outline.Pt(50, 50))
	s.Smooth()
	beforeReset := s.Points()
	s.Reset()
	diff(t, original, s.Polygon().Points)

	// Reset itself is undoable.
	if err := s.Undo(); err != nil {
		t.Fatal(err)
	}
	diff(t, beforeReset, s.Polygon().Points)
	if err := s.Redo(); err != nil {
		t.Fatal(err)
	}
	diff(t, original, s.Polygon().Points)
}

func TestSessionBeforeLoad(t *testing.T) {
	// Every operation on a session that has not loaded an outline yet is
	// a no-op; undo and redo report their usual sentinels. With the
	// extraction call being asynchronous, a keybinding can fire before
	// the load resolves.
	s := NewSession(outline.Size{Width: 800, Height: 600})

	if err := s.Undo(); !errors.Is(err, ErrNothingToUndo) {
		t.Fatalf("got %v, want ErrNothingToUndo", err)
	}
	if err := s.Redo(); !errors.Is(err, ErrNothingToRedo) {
		t.Fatalf("got %v, want ErrNothingToRedo", err)
	}
	if err := s.RemovePoint(0); !errors.Is(err, outline.ErrTooFewPoints) {
		t.Fatalf("got %v, want ErrTooFewPoints", err)
	}

	s.MovePoint(0, outline.Pt(1, 1))
	s.MoveEdge(0, outline.Vec(1, 1))
	s.InsertOnEdge(0, outline.Pt(1, 1))
	s.Simplify(2)
	s.Smooth()
	s.Reset()
	s.Scroll(2, outline.Pt(0, 0))
	s.PointerDown(outline.Pt(0, 0))
	s.PointerMove(outline.Pt(5, 5))
	s.PointerUp(outline.Pt(5, 5))
	s.DoubleClick(outline.Pt(5, 5))
	s.SecondaryClick(outline.Pt(5, 5))

	if s.Polygon() != nil {
		t.Fatal("want nil polygon before load")
	}
	if s.Points() != nil {
		t.Fatal("want nil points before load")
	}
	if s.CanUndo() || s.CanRedo() {
		t.Fatal("want empty history before load")
	}
	if st := s.State(); st != Idle {
		t.Fatalf("got state %v before load, want idle", st)
	}
}

func TestSessionUndoEmpty(t *testing.T) {
	s := newTestSession(hexagon())
	if err := s.Undo(); !errors.Is(err, ErrNothingToUndo) {
		t.Fatalf("got %v, want ErrNothingToUndo", err)
	}
	if err := s.Redo(); !errors.Is(err, ErrNothingToRedo) {
		t.Fatalf("got %v, want ErrNothingToRedo", err)
	}
}

func TestSessionFitCentersOutline(t *testing.T) {
	s := newTestSession(pts(0, 0, 100, 0, 100, 50, 0, 50))
	tr := s.View()
	center := tr.ToDisplay(outline.Pt(50, 25))
	diff(t, outline.Pt(400, 300), center, cmpopts.EquateApprox(0, 1e-9))
}
