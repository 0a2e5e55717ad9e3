package trimmer

import (
	"time"

	"github.com/framepick/framepick/internal/timeline"
)

// Listener receives scrub-position updates. PositionChanged fires while a
// drag or scroll is still moving; PositionSettled fires once it has ended.
type Listener interface {
	PositionChanged(t time.Duration)
	PositionSettled(t time.Duration)
}

// dragState is the in-flight drag of one bound pair.
type dragState struct {
	handle   Handle
	baseline float64
}

// Selector is the interaction core of the trim control. It owns the
// committed handle offsets, runs the per-pair drag lifecycle, enforces the
// maximum-duration cap, and reports the scrub position to the listener.
//
// All methods are synchronous and must be called from the single event
// delivery goroutine; within one drag move, the offset commit strictly
// precedes the derived notification.
type Selector struct {
	cfg      Config
	surface  timeline.Surface
	mapper   timeline.Mapper
	listener Listener

	bounds      Bounds
	maxDuration time.Duration // zero means uncapped

	drags map[Pair]dragState
	top   map[Pair]Handle
}

// NewSelector validates cfg and builds a Selector over the given surface.
// listener may be nil.
func NewSelector(cfg Config, surface timeline.Surface, listener Listener) (*Selector, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Selector{
		cfg:      cfg,
		surface:  surface,
		mapper:   timeline.Mapper{Surface: surface},
		listener: listener,
		drags:    make(map[Pair]dragState),
		top:      make(map[Pair]Handle),
	}, nil
}

// Config returns the knobs the selector was built with.
func (s *Selector) Config() Config { return s.cfg }

// Bounds returns a copy of the committed offsets.
func (s *Selector) Bounds() Bounds { return s.bounds }

// TopHandle reports which handle of a sibling pair is currently topmost.
// Purely a presentation hint; exactly one handle per pair owns it.
func (s *Selector) TopHandle(p Pair) (Handle, bool) {
	h, ok := s.top[p]
	return h, ok
}

// geometry snapshots the pixel context for the current clamp call.
func (s *Selector) geometry() geometry {
	return geometry{
		width:       s.surface.ContentWidth(),
		handleWidth: s.cfg.HandleWidth,
		minGap:      s.minGapPixels(),
	}
}

// minGapPixels derives the minimum pixel distance between a pair's
// handles from the live asset duration. Recomputed on every clamp; the
// duration may change under us when a new asset loads.
func (s *Selector) minGapPixels() float64 {
	d, ok := s.surface.CurrentDuration()
	if !ok || d <= 0 {
		return 0
	}
	return s.cfg.MinDuration.Seconds() * s.surface.ContentWidth() / d.Seconds()
}

// DragStart begins a drag, capturing the handle's committed offset as the
// baseline. Ignored while the same pair already has a drag in flight, and
// for unknown handles.
func (s *Selector) DragStart(h Handle) {
	if !h.known() {
		return
	}
	p := h.Pair()
	if _, busy := s.drags[p]; busy {
		return
	}
	s.drags[p] = dragState{handle: h, baseline: s.committed(h)}
	s.top[p] = h
}

// DragMove commits the clamped offset for the cumulative translation since
// DragStart, re-satisfies the duration cap, seeks the indicator to the
// edge that moved, and notifies the listener.
func (s *Selector) DragMove(h Handle, translationX float64) {
	st, ok := s.drags[h.Pair()]
	if !ok || st.handle != h {
		return
	}
	s.top[h.Pair()] = h

	g := s.geometry()
	candidate := st.baseline + translationX
	switch h {
	case TrimStart:
		s.bounds.Left = s.bounds.clampLeft(g, candidate)
	case TrimEnd:
		s.bounds.Right = s.bounds.clampRight(g, candidate)
	case MarkStart:
		s.bounds.LeftMark = s.bounds.clampMarkLeft(g, candidate)
	case MarkEnd:
		s.bounds.RightMark = s.bounds.clampMarkRight(g, candidate)
	case PositionBar:
		s.bounds.Position = s.bounds.clampPosition(g, candidate)
	}

	if h == TrimStart || h == TrimEnd {
		s.enforceMaxDuration(h)
	}
	s.seekToEdge(h)
	s.reportPosition(false)
}

// DragEnd finishes a drag. The last clamped offset stays committed; the
// only effect is the settled notification.
func (s *Selector) DragEnd(h Handle) {
	st, ok := s.drags[h.Pair()]
	if ok && st.handle == h {
		delete(s.drags, h.Pair())
	}
	s.reportPosition(true)
}

// DragCancel is equivalent to DragEnd: no rollback to the baseline.
func (s *Selector) DragCancel(h Handle) { s.DragEnd(h) }

// committed returns the current committed offset of a handle's bound.
func (s *Selector) committed(h Handle) float64 {
	switch h {
	case TrimStart:
		return s.bounds.Left
	case TrimEnd:
		return s.bounds.Right
	case MarkStart:
		return s.bounds.LeftMark
	case MarkEnd:
		return s.bounds.RightMark
	default:
		return s.bounds.Position
	}
}

// seekToEdge moves the scrub indicator to the pixel under the edge that
// just moved, clamped into the indicator's valid range.
func (s *Selector) seekToEdge(h Handle) {
	g := s.geometry()
	var candidate float64
	switch h {
	case TrimStart:
		candidate = s.bounds.Left
	case TrimEnd:
		candidate = g.rightHandleX(s.bounds.Right) - g.handleWidth
	case MarkStart:
		candidate = s.bounds.LeftMark
	case MarkEnd:
		candidate = g.rightHandleX(s.bounds.RightMark) - g.handleWidth
	case PositionBar:
		return // its own clamp already committed
	}
	s.bounds.Position = s.bounds.clampPosition(g, candidate)
}

// enforceMaxDuration restores the duration cap after a trim commit by
// moving the handle the user is not dragging, anchored at the dragged
// edge. The correction is committed directly, outside any drag baseline.
func (s *Selector) enforceMaxDuration(moved Handle) {
	if s.maxDuration <= 0 {
		return
	}
	start, ok1 := s.StartTime()
	end, ok2 := s.EndTime()
	if !ok1 || !ok2 || end-start <= s.maxDuration {
		return
	}
	d, _ := s.surface.CurrentDuration()
	scroll := s.surface.ScrollOffsetX()
	width := s.surface.ContentWidth()

	if moved == TrimStart {
		want := start + s.maxDuration
		if want >= d {
			s.bounds.Right = 0
			return
		}
		if pos, ok := s.mapper.PositionFor(want); ok {
			s.bounds.Right = pos - scroll - width
		}
		return
	}

	want := end - s.maxDuration
	if want <= 0 {
		s.bounds.Left = 0
		return
	}
	if pos, ok := s.mapper.PositionFor(want); ok {
		s.bounds.Left = pos - scroll
	}
}

// reportPosition computes the time under the indicator and notifies the
// listener. No-op when no asset is loaded.
func (s *Selector) reportPosition(stoppedMoving bool) {
	t, ok := s.ThumbTime()
	if !ok || s.listener == nil {
		return
	}
	if stoppedMoving {
		s.listener.PositionSettled(t)
		return
	}
	s.listener.PositionChanged(t)
}

// ScrollSettled forwards a scroll-deceleration-ended event.
func (s *Selector) ScrollSettled() { s.reportPosition(true) }

// ScrollDragEndedWithoutMomentum forwards a scroll drag that stopped dead.
func (s *Selector) ScrollDragEndedWithoutMomentum() { s.reportPosition(true) }

// ScrollPositionChanged forwards a scroll move still in progress.
func (s *Selector) ScrollPositionChanged() { s.reportPosition(false) }

// StartTime is the time under the trim-start edge.
func (s *Selector) StartTime() (time.Duration, bool) {
	return s.mapper.TimeFor(s.surface.ScrollOffsetX() + s.bounds.Left)
}

// EndTime is the time under the trim-end edge.
func (s *Selector) EndTime() (time.Duration, bool) {
	return s.mapper.TimeFor(s.surface.ScrollOffsetX() + s.surface.ContentWidth() + s.bounds.Right)
}

// StartMarkTime is the time under the mark-start edge.
func (s *Selector) StartMarkTime() (time.Duration, bool) {
	return s.mapper.TimeFor(s.surface.ScrollOffsetX() + s.bounds.LeftMark)
}

// EndMarkTime is the time under the mark-end edge.
func (s *Selector) EndMarkTime() (time.Duration, bool) {
	return s.mapper.TimeFor(s.surface.ScrollOffsetX() + s.surface.ContentWidth() + s.bounds.RightMark)
}

// ThumbTime is the time under the scrub indicator.
func (s *Selector) ThumbTime() (time.Duration, bool) {
	return s.mapper.TimeFor(s.surface.ScrollOffsetX() + s.bounds.Position)
}

// Seek moves the indicator to the offset for t, clamped into its valid
// range. It returns true when the renderer should animate the move over
// Config.SeekAnimation, which is only when t lies strictly inside the
// current trim interval.
func (s *Selector) Seek(t time.Duration) bool {
	pos, ok := s.mapper.PositionFor(t)
	if !ok {
		return false
	}
	s.bounds.Position = s.bounds.clampPosition(s.geometry(), pos-s.surface.ScrollOffsetX())

	start, ok1 := s.StartTime()
	end, ok2 := s.EndTime()
	return ok1 && ok2 && t > start && t < end
}

// SetMaxDuration caps the selectable interval and immediately re-positions
// the right trim handle if the current interval already exceeds the cap.
func (s *Selector) SetMaxDuration(d time.Duration) {
	s.maxDuration = d
	s.enforceMaxDuration(TrimStart)
}

// SetMarkedTime positions the mark handles from absolute times. A zero
// value means the corresponding natural edge. No-op when no asset is
// loaded; dragging only adjusts the marks afterward.
func (s *Selector) SetMarkedTime(start, end time.Duration) {
	if _, ok := s.surface.CurrentDuration(); !ok {
		return
	}
	g := s.geometry()
	scroll := s.surface.ScrollOffsetX()
	width := s.surface.ContentWidth()

	if start == 0 {
		s.bounds.LeftMark = 0
	} else if pos, ok := s.mapper.PositionFor(start); ok {
		s.bounds.LeftMark = s.bounds.clampMarkLeft(g, pos-scroll)
	}

	if end == 0 {
		s.bounds.RightMark = 0
	} else if pos, ok := s.mapper.PositionFor(end); ok {
		s.bounds.RightMark = s.bounds.clampMarkRight(g, pos-scroll-width)
	}
}

// AssetChanged resets every offset to its natural edge and abandons any
// in-flight drags. Called when an asset load completes.
func (s *Selector) AssetChanged() {
	s.bounds = Bounds{}
	clear(s.drags)
	clear(s.top)
}
