package editor

import (
	"log/slog"

	"github.com/photoforge/outline"
)

// State is the interaction state of a session. Pointer events drive the
// transitions; every handler runs synchronously on the thread that
// received the input.
type State uint8

const (
	// Idle means no hover target and no gesture in progress.
	Idle State = iota
	// HoverPoint means the pointer rests within the hit radius of a point.
	HoverPoint
	// HoverEdge means the pointer rests within the hit radius of an edge.
	HoverEdge
	// DraggingPoint means a point follows the pointer.
	DraggingPoint
	// DraggingEdge means both endpoints of an edge follow the pointer.
	DraggingEdge
	// Panning means the viewport follows the pointer.
	Panning
)

func (st State) String() string {
	switch st {
	case Idle:
		return "idle"
	case HoverPoint:
		return "hover-point"
	case HoverEdge:
		return "hover-edge"
	case DraggingPoint:
		return "dragging-point"
	case DraggingEdge:
		return "dragging-edge"
	case Panning:
		return "panning"
	default:
		return "unknown"
	}
}

// State returns the current interaction state.
func (s *Session) State() State {
	return s.state
}

// Hot returns the index of the current hover or drag target. Whether it
// names a point or an edge follows from the state; during Idle and
// Panning the second value is false.
func (s *Session) Hot() (int, bool) {
	switch s.state {
	case HoverPoint, HoverEdge, DraggingPoint, DraggingEdge:
		return s.hot, s.hot >= 0
	case Idle, Panning:
		return -1, false
	default:
		return -1, false
	}
}

// PointerMove handles pointer motion at pos (display space). In hover
// states it re-runs hit-testing; in drag states it applies the incremental
// movement since the previous event; while panning it shifts the
// viewport.
func (s *Session) PointerMove(pos outline.Point) {
	if s.poly == nil {
		return
	}
	switch s.state {
	case Idle, HoverPoint, HoverEdge:
		s.updateHover(pos)
	case DraggingPoint:
		s.poly.SetAt(s.hot, s.view.ToModel(pos))
	case DraggingEdge:
		// Incremental delta since the last event; deltas accumulate
		// additively over one continuous gesture.
		delta := s.view.ToModelVec(pos.Sub(s.last))
		s.translateEdge(s.hot, delta)
	case Panning:
		s.view = s.view.Translate(pos.Sub(s.last))
	}
	s.last = pos
}

// updateHover hit-tests pos and moves between Idle, HoverPoint, and
// HoverEdge. Points are checked before edges, so a point lying exactly on
// an edge is hovered as a point.
func (s *Session) updateHover(pos outline.Point) {
	if i, ok := outline.NearestPoint(s.poly, s.view, pos, s.hitRadius()); ok {
		s.state, s.hot = HoverPoint, i
		return
	}
	if i, ok := outline.NearestEdge(s.poly, s.view, pos, s.hitRadius()); ok {
		s.state, s.hot = HoverEdge, i
		return
	}
	s.state, s.hot = Idle, -1
}

// PointerDown handles a primary-button press at pos (display space). Over
// a point it begins DraggingPoint, over an edge DraggingEdge, capturing
// the single undo snapshot for the whole gesture at transition entry.
// Over empty space it begins Panning.
func (s *Session) PointerDown(pos outline.Point) {
	if s.poly == nil {
		return
	}
	switch s.state {
	case DraggingPoint, DraggingEdge, Panning:
		// Already in a gesture; a second press changes nothing.
	case Idle, HoverPoint, HoverEdge:
		if i, ok := outline.NearestPoint(s.poly, s.view, pos, s.hitRadius()); ok {
			s.record()
			s.state, s.hot = DraggingPoint, i
		} else if i, ok := outline.NearestEdge(s.poly, s.view, pos, s.hitRadius()); ok {
			s.record()
			s.state, s.hot = DraggingEdge, i
		} else {
			s.state, s.hot = Panning, -1
		}
		Logger().Debug("pointer down", slog.String("state", s.state.String()))
	}
	s.last = pos
}

// PointerUp ends any drag or pan gesture, returning to Idle regardless of
// whether any net movement occurred. The subsequent PointerMove
// re-establishes hover.
func (s *Session) PointerUp(pos outline.Point) {
	switch s.state {
	case DraggingPoint, DraggingEdge, Panning:
		s.state, s.hot = Idle, -1
	case Idle, HoverPoint, HoverEdge:
		// Nothing to end.
	}
	s.last = pos
}

// PointerLeave is PointerUp for a pointer that left the surface
// mid-gesture.
func (s *Session) PointerLeave() {
	switch s.state {
	case DraggingPoint, DraggingEdge, Panning:
		s.state, s.hot = Idle, -1
	case Idle, HoverPoint, HoverEdge:
		s.state, s.hot = Idle, -1
	}
}

// DoubleClick inserts a point on the edge under pos, as one history
// entry, and returns to Idle. It is ignored during drag gestures.
func (s *Session) DoubleClick(pos outline.Point) {
	if s.poly == nil {
		return
	}
	switch s.state {
	case DraggingPoint, DraggingEdge:
		return
	case Idle, HoverPoint, HoverEdge, Panning:
	}
	// A double-click right on a vertex is not an insertion.
	if _, ok := outline.NearestPoint(s.poly, s.view, pos, s.hitRadius()); ok {
		return
	}
	if i, ok := outline.NearestEdge(s.poly, s.view, pos, s.hitRadius()); ok {
		s.InsertOnEdge(i, s.view.ToModel(pos))
	}
	s.state, s.hot = Idle, -1
}

// SecondaryClick deletes the point under pos, as one history entry, and
// returns to Idle. The deletion is refused silently at the three-point
// minimum. It is ignored during drag gestures.
func (s *Session) SecondaryClick(pos outline.Point) {
	if s.poly == nil {
		return
	}
	switch s.state {
	case DraggingPoint, DraggingEdge:
		return
	case Idle, HoverPoint, HoverEdge, Panning:
	}
	if i, ok := outline.NearestPoint(s.poly, s.view, pos, s.hitRadius()); ok {
		_ = s.RemovePoint(i) // refusal is already logged
	}
	s.state, s.hot = Idle, -1
}

// Scroll zooms by factor anchored at pivot (display space). It never
// changes the interaction state, so zooming mid-drag is legal.
func (s *Session) Scroll(factor float64, pivot outline.Point) {
	if s.poly == nil {
		return
	}
	s.view = s.view.ZoomAt(factor, pivot)
}
