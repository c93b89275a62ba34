// Package editor implements the interactive outline-editing session: the
// pointer-driven interaction state machine, the transactional edit
// operations, and undo/redo history over a single active outline.
//
// A [Session] owns everything one edited outline needs (the polygon, a
// pristine copy of the loaded points, the viewport transform, and both
// history stacks), so there is no shared module-level editor state. The
// UI layer holds a session, feeds it display-space pointer events
// ([Session.PointerMove], [Session.PointerDown], ...), and re-renders from
// [Session.Polygon] and [Session.View] after each event.
//
// Every mutating operation records an undo snapshot before touching the
// polygon; drag gestures record exactly one snapshot at gesture start, so
// a whole drag undoes in one step.
package editor
