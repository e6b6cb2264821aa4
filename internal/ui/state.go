package ui

import (
	"fmt"
	"sync"
	"time"

	"github.com/pesislab/kentta/internal/underlay"
	"github.com/pesislab/kentta/pkg/field"
	"github.com/pesislab/kentta/pkg/geom"
	"github.com/pesislab/kentta/pkg/render"
)

// EventType identifies state changes observers can subscribe to.
type EventType int

const (
	EventProfileChanged EventType = iota
	EventPointsChanged
	EventBallMoved
	EventMeasuresChanged
	EventViewChanged
	EventUnderlayChanged
)

// EventListener is called synchronously after a state mutation.
type EventListener func(data interface{})

// HandleID names one of the draggable home-path handles.
type HandleID int

const (
	HandleNone HandleID = iota - 1
	HandleStart
	HandleMid
	HandleEnd
)

// StateSnapshot captures a copy of the state data for rendering without
// requiring the UI to hold locks while laying out widgets.
type StateSnapshot struct {
	Profile   *field.Profile
	Points    field.EditablePoints
	Geometry  *field.DerivedGeometry
	LastError error

	Ball *geom.Point
	Hit  *field.HitInfo

	ShowMeasurements bool
	DragHandle       HandleID
	HoverHandle      HandleID
	SnapPoint        *geom.Point

	Measures []geom.Segment
	Underlay *underlay.Underlay
	Theme    render.ColorTheme

	Status      string
	LastUpdated time.Time
}

// State tracks the mutable state shared between the Gio event loop and
// everything observing the diagram. All mutation goes through setters
// that take the lock and notify listeners after releasing it.
type State struct {
	mu sync.RWMutex

	profile  *field.Profile
	points   field.EditablePoints
	geometry *field.DerivedGeometry
	scale    float64

	lastError error

	ball *geom.Point
	hit  *field.HitInfo

	showMeasurements bool
	dragHandle       HandleID
	hoverHandle      HandleID
	snapPoint        *geom.Point

	measures []geom.Segment
	und      *underlay.Underlay
	theme    render.ColorTheme

	status      string
	lastUpdated time.Time

	listeners map[EventType][]EventListener
}

// NewState returns a baseline State for the given profile.
func NewState(p *field.Profile) *State {
	s := &State{
		profile:          p,
		scale:            1,
		showMeasurements: true,
		dragHandle:       HandleNone,
		hoverHandle:      HandleNone,
		theme:            render.CurrentTheme,
		status:           "Ready",
		lastUpdated:      time.Now(),
		listeners:        make(map[EventType][]EventListener),
	}
	s.recalculate()
	return s
}

// On registers an event listener for the specified event type.
func (s *State) On(event EventType, listener EventListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners[event] = append(s.listeners[event], listener)
}

// Emit triggers all listeners for the specified event type.
func (s *State) Emit(event EventType, data interface{}) {
	s.mu.RLock()
	listeners := s.listeners[event]
	s.mu.RUnlock()

	for _, listener := range listeners {
		listener(data)
	}
}

// recalculate rederives geometry from the current profile and points.
// Callers hold the write lock.
func (s *State) recalculate() {
	g, err := field.Calculate(s.profile, s.points, s.scale)
	if err != nil {
		s.lastError = err
		return
	}
	s.geometry = g
	s.lastError = nil
}

// Snapshot returns a copy of the mutable state for rendering.
func (s *State) Snapshot() StateSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	measuresCopy := make([]geom.Segment, len(s.measures))
	copy(measuresCopy, s.measures)

	var undCopy *underlay.Underlay
	if s.und != nil {
		u := *s.und
		undCopy = &u
	}

	return StateSnapshot{
		Profile: s.profile,
		Points: field.EditablePoints{
			HomePathStart: clonePoint(s.points.HomePathStart),
			HomePathMid:   clonePoint(s.points.HomePathMid),
			HomePathEnd:   clonePoint(s.points.HomePathEnd),
		},
		Geometry:         s.geometry,
		LastError:        s.lastError,
		Ball:             clonePoint(s.ball),
		Hit:              cloneHit(s.hit),
		ShowMeasurements: s.showMeasurements,
		DragHandle:       s.dragHandle,
		HoverHandle:      s.hoverHandle,
		SnapPoint:        clonePoint(s.snapPoint),
		Measures:         measuresCopy,
		Underlay:         undCopy,
		Theme:            s.theme,
		Status:           s.status,
		LastUpdated:      s.lastUpdated,
	}
}

// SetProfile switches the active profile and discards handle edits,
// which only make sense against the geometry they were made on.
func (s *State) SetProfile(p *field.Profile) error {
	if p == nil {
		return fmt.Errorf("nil profile")
	}
	s.mu.Lock()
	s.profile = p
	s.points = field.EditablePoints{}
	s.recalculate()
	if s.ball != nil {
		s.rederiveHit()
	}
	s.status = "Profile: " + p.Name
	s.lastUpdated = time.Now()
	err := s.lastError
	s.mu.Unlock()

	s.Emit(EventProfileChanged, p.Name)
	return err
}

// Profile returns the active profile.
func (s *State) Profile() *field.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile
}

// SetScale records the pixels-per-meter scale the diagram is being
// rendered at and rederives geometry carrying it.
func (s *State) SetScale(scale float64) error {
	s.mu.Lock()
	s.scale = scale
	s.recalculate()
	s.lastUpdated = time.Now()
	err := s.lastError
	s.mu.Unlock()

	s.Emit(EventViewChanged, scale)
	return err
}

// MoveHandle drags one home-path handle to a new field position. The
// first move materializes all three handles from the default path so
// the untouched ones hold still.
func (s *State) MoveHandle(h HandleID, pos geom.Point) error {
	s.mu.Lock()
	if s.geometry == nil {
		s.mu.Unlock()
		return fmt.Errorf("no geometry to edit")
	}

	prev := s.points
	if !s.points.Initialized() {
		s.points = field.EditablePoints{
			HomePathStart: clonePoint(s.geometry.Points.HomePathStart),
			HomePathMid:   clonePoint(s.geometry.Points.HomePathMid),
			HomePathEnd:   clonePoint(s.geometry.Points.HomePathEnd),
		}
	}
	switch h {
	case HandleStart:
		s.points.HomePathStart = &pos
	case HandleMid:
		s.points.HomePathMid = &pos
	case HandleEnd:
		s.points.HomePathEnd = &pos
	default:
		s.points = prev
		s.mu.Unlock()
		return fmt.Errorf("unknown handle %d", h)
	}

	s.recalculate()
	if s.lastError != nil {
		err := s.lastError
		s.points = prev
		s.recalculate()
		s.mu.Unlock()
		return err
	}
	s.lastUpdated = time.Now()
	s.mu.Unlock()

	s.Emit(EventPointsChanged, h)
	return nil
}

// ResetPoints discards handle edits and returns to the profile's
// default home path.
func (s *State) ResetPoints() {
	s.mu.Lock()
	s.points = field.EditablePoints{}
	s.recalculate()
	s.status = "Path reset"
	s.lastUpdated = time.Now()
	s.mu.Unlock()

	s.Emit(EventPointsChanged, HandleNone)
}

// SetBall places or clears the ball marker and rederives the hit angle.
func (s *State) SetBall(pos *geom.Point) {
	s.mu.Lock()
	s.ball = clonePoint(pos)
	s.rederiveHit()
	s.lastUpdated = time.Now()
	s.mu.Unlock()

	s.Emit(EventBallMoved, clonePoint(pos))
}

// rederiveHit recomputes the hit info for the current ball. Callers
// hold the write lock.
func (s *State) rederiveHit() {
	s.hit = nil
	if s.ball == nil {
		return
	}
	if hit, err := field.HitAngle(s.profile, *s.ball); err == nil {
		s.hit = &hit
	}
}

// ToggleMeasurements flips measurement visibility and reports the new
// value.
func (s *State) ToggleMeasurements() bool {
	s.mu.Lock()
	s.showMeasurements = !s.showMeasurements
	shown := s.showMeasurements
	s.lastUpdated = time.Now()
	s.mu.Unlock()

	s.Emit(EventViewChanged, shown)
	return shown
}

// SetShowMeasurements sets measurement visibility.
func (s *State) SetShowMeasurements(show bool) {
	s.mu.Lock()
	if s.showMeasurements == show {
		s.mu.Unlock()
		return
	}
	s.showMeasurements = show
	s.lastUpdated = time.Now()
	s.mu.Unlock()

	s.Emit(EventViewChanged, show)
}

// SetDragHandle records which handle a drag currently holds.
func (s *State) SetDragHandle(h HandleID) {
	s.mu.Lock()
	if s.dragHandle == h {
		s.mu.Unlock()
		return
	}
	s.dragHandle = h
	s.lastUpdated = time.Now()
	s.mu.Unlock()

	s.Emit(EventViewChanged, h)
}

// SetHoverHandle records which handle the pointer rests on.
func (s *State) SetHoverHandle(h HandleID) {
	s.mu.Lock()
	if s.hoverHandle == h {
		s.mu.Unlock()
		return
	}
	s.hoverHandle = h
	s.lastUpdated = time.Now()
	s.mu.Unlock()

	s.Emit(EventViewChanged, h)
}

// SetSnapPoint shows or clears the snap indicator during a drag.
func (s *State) SetSnapPoint(p *geom.Point) {
	s.mu.Lock()
	if s.snapPoint == nil && p == nil {
		s.mu.Unlock()
		return
	}
	s.snapPoint = clonePoint(p)
	s.mu.Unlock()

	s.Emit(EventViewChanged, nil)
}

// AddMeasure appends a custom measurement segment.
func (s *State) AddMeasure(seg geom.Segment) {
	s.mu.Lock()
	s.measures = append(s.measures, seg)
	n := len(s.measures)
	s.lastUpdated = time.Now()
	s.mu.Unlock()

	s.Emit(EventMeasuresChanged, n)
}

// ClearMeasures removes all custom measurement segments.
func (s *State) ClearMeasures() {
	s.mu.Lock()
	s.measures = nil
	s.lastUpdated = time.Now()
	s.mu.Unlock()

	s.Emit(EventMeasuresChanged, 0)
}

// SetUnderlay attaches or removes the reference image.
func (s *State) SetUnderlay(u *underlay.Underlay) {
	s.mu.Lock()
	s.und = u
	s.lastUpdated = time.Now()
	s.mu.Unlock()

	s.Emit(EventUnderlayChanged, u != nil)
}

// SetTheme switches the diagram palette.
func (s *State) SetTheme(t render.ColorTheme) {
	s.mu.Lock()
	s.theme = t
	s.lastUpdated = time.Now()
	s.mu.Unlock()

	render.SetTheme(t)
	s.Emit(EventViewChanged, t)
}

// Theme returns the active palette.
func (s *State) Theme() render.ColorTheme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme
}

// SetStatus updates the user-facing status message.
func (s *State) SetStatus(status string) {
	s.mu.Lock()
	s.status = status
	s.lastUpdated = time.Now()
	s.mu.Unlock()
}

func clonePoint(p *geom.Point) *geom.Point {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}

func cloneHit(h *field.HitInfo) *field.HitInfo {
	if h == nil {
		return nil
	}
	c := *h
	return &c
}
