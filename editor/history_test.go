package editor

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/photoforge/outline"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func pts(coords ...float64) []outline.Point {
	out := make([]outline.Point, 0, len(coords)/2)
	for i := 0; i+1 < len(coords); i += 2 {
		out = append(out, outline.Pt(coords[i], coords[i+1]))
	}
	return out
}

func TestHistoryUndoRedo(t *testing.T) {
	var h History
	before := pts(0, 0, 10, 0, 10, 10)
	after := pts(0, 0, 10, 5, 10, 10)

	h.Record(before)
	restored, err := h.Undo(after)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, before, restored)

	redone, err := h.Redo(restored)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, after, redone)
}

func TestHistoryEmpty(t *testing.T) {
	var h History
	if _, err := h.Undo(nil); !errors.Is(err, ErrNothingToUndo) {
		t.Fatalf("got %v, want ErrNothingToUndo", err)
	}
	if _, err := h.Redo(nil); !errors.Is(err, ErrNothingToRedo) {
		t.Fatalf("got %v, want ErrNothingToRedo", err)
	}
}

func TestHistoryRecordClearsRedo(t *testing.T) {
	var h History
	h.Record(pts(0, 0))
	if _, err := h.Undo(pts(1, 1)); err != nil {
		t.Fatal(err)
	}
	if !h.CanRedo() {
		t.Fatal("want redo available after undo")
	}

	// A fresh edit invalidates the redo stack.
	h.Record(pts(2, 2))
	if h.CanRedo() {
		t.Fatal("want redo cleared after new record")
	}
}

func TestHistorySnapshotsAreDeepCopies(t *testing.T) {
	var h History
	current := pts(0, 0, 10, 0, 10, 10)
	h.Record(current)
	current[0] = outline.Pt(99, 99)

	restored, err := h.Undo(current)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, outline.Pt(0, 0), restored[0])
}

func TestHistoryCap(t *testing.T) {
	var h History
	for i := range maxSnapshots + 10 {
		h.Record(pts(float64(i), 0))
	}
	// The stack holds the newest maxSnapshots entries; the oldest were
	// dropped.
	for i := maxSnapshots + 9; i > 9; i-- {
		restored, err := h.Undo(nil)
		if err != nil {
			t.Fatalf("undo %d: %v", i, err)
		}
		diff(t, pts(float64(i), 0), restored)
	}
	if _, err := h.Undo(nil); !errors.Is(err, ErrNothingToUndo) {
		t.Fatalf("got %v, want exhausted history", err)
	}
}
