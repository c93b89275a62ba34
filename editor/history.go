package editor

import (
	"errors"
	"slices"

	"github.com/photoforge/outline"
)

var (
	// ErrNothingToUndo reports an undo with an empty undo stack. It is an
	// informational no-op, not a failure.
	ErrNothingToUndo = errors.New("editor: nothing to undo")
	// ErrNothingToRedo reports a redo with an empty redo stack.
	ErrNothingToRedo = errors.New("editor: nothing to redo")
)

// maxSnapshots bounds history growth. When the undo stack is full the
// oldest snapshot is dropped.
const maxSnapshots = 256

// History holds undo and redo stacks of point-sequence snapshots. Each
// snapshot is a deep copy taken before a mutating operation; restores
// replace the sequence wholesale so that index drift from inserts and
// deletes between snapshots cannot corrupt state.
type History struct {
	undo [][]outline.Point
	redo [][]outline.Point
}

// Record pushes a deep copy of points onto the undo stack and clears the
// redo stack. Call it before mutating, never after.
func (h *History) Record(points []outline.Point) {
	if len(h.undo) == maxSnapshots {
		h.undo = slices.Delete(h.undo, 0, 1)
	}
	h.undo = append(h.undo, slices.Clone(points))
	h.redo = h.redo[:0]
}

// Undo pushes a copy of current onto the redo stack and returns the most
// recent snapshot, which the caller must adopt wholesale. It returns
// [ErrNothingToUndo] when the undo stack is empty.
func (h *History) Undo(current []outline.Point) ([]outline.Point, error) {
	if len(h.undo) == 0 {
		return nil, ErrNothingToUndo
	}
	h.redo = append(h.redo, slices.Clone(current))
	top := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	return top, nil
}

// Redo is the mirror of [History.Undo], using the redo stack.
func (h *History) Redo(current []outline.Point) ([]outline.Point, error) {
	if len(h.redo) == 0 {
		return nil, ErrNothingToRedo
	}
	h.undo = append(h.undo, slices.Clone(current))
	top := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	return top, nil
}

// CanUndo reports whether the undo stack is non-empty.
func (h *History) CanUndo() bool { return len(h.undo) > 0 }

// CanRedo reports whether the redo stack is non-empty.
func (h *History) CanRedo() bool { return len(h.redo) > 0 }

// Reset discards both stacks. Called when a new outline is loaded.
func (h *History) Reset() {
	h.undo = nil
	h.redo = nil
}
