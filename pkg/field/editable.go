package field

import "github.com/pesislab/kentta/pkg/geom"

// EditablePoints are the user-draggable control points of the home path,
// the runner's path from third base toward home. A nil entry means "not
// yet initialized": the engine materializes all three from the profile's
// default path the first time any of them is needed.
type EditablePoints struct {
	HomePathStart *geom.Point
	HomePathMid   *geom.Point
	HomePathEnd   *geom.Point
}

// Initialized reports whether all three points are set.
func (e EditablePoints) Initialized() bool {
	return e.HomePathStart != nil && e.HomePathMid != nil && e.HomePathEnd != nil
}

// Reset clears all points back to the uninitialized state. Called when
// the field profile changes or the user discards their edits.
func (e *EditablePoints) Reset() {
	e.HomePathStart = nil
	e.HomePathMid = nil
	e.HomePathEnd = nil
}

// Materialize fills any nil point from the given defaults and returns
// the resulting fully-set points. The receiver is not modified; callers
// that want the materialized values stored back (the state container
// does) assign the result themselves.
func (e EditablePoints) Materialize(start, mid, end geom.Point) EditablePoints {
	out := e
	if out.HomePathStart == nil || out.HomePathMid == nil || out.HomePathEnd == nil {
		s, m, n := start, mid, end
		out.HomePathStart = &s
		out.HomePathMid = &m
		out.HomePathEnd = &n
	}
	return out
}
