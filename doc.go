// Package outline provides the geometric core of an interactive outline
// editor: a polygon model for machine-traced boundaries, the viewport
// transform between model space and a 2D display surface, hit-testing
// against points and edges, and the two point-sequence algorithms the
// editor exposes: Douglas-Peucker simplification and corner smoothing.
//
// # Model and display space
//
// An outline's points live in model space, the coordinate system they were
// extracted in. [Transform] maps them onto a display surface as
// display = model*zoom + pan, and supports fit-to-view ([FitToContent])
// and anchored zooming ([Transform.ZoomAt]).
//
// # Polygons
//
// [Polygon] is an ordered, implicitly closed point sequence. Edits are
// plain index operations ([Polygon.SetAt], [Polygon.InsertAfter],
// [Polygon.RemoveAt]); the package deliberately imposes no geometric
// constraints beyond a minimum of three points, as the editor is a
// freeform tool, not a constraint solver. History recording and
// re-rendering are the caller's concern; see the editor package.
//
// # Hit-testing
//
// [NearestPoint] and [NearestEdge] answer pointer queries in display
// space with a pixel radius, so hit targets stay visually constant across
// zoom levels. Distance to an edge is perpendicular distance clamped to
// the segment, shared with simplification via [Segment.Nearest].
package outline
