package timeline

import "time"

// Surface is the minimal view of the timeline the interaction core needs:
// the loaded asset's duration, the pixel width of the timeline content, and
// how far the content is currently scrolled. Scrolling and asset loading are
// owned by collaborators; the core only reads.
type Surface interface {
	// CurrentDuration reports the loaded asset's total duration.
	// ok is false when no asset is loaded.
	CurrentDuration() (d time.Duration, ok bool)

	// ContentWidth is the pixel width of the timeline content.
	ContentWidth() float64

	// ScrollOffsetX is the current horizontal scroll offset in pixels.
	ScrollOffsetX() float64
}

// Mapper converts between asset time and horizontal pixel offsets on a
// Surface. The mapping is linear over the content width; both directions
// fail when no asset is loaded or the duration is zero.
type Mapper struct {
	Surface Surface
}

// PositionFor returns the content offset under time t.
func (m Mapper) PositionFor(t time.Duration) (float64, bool) {
	d, ok := m.Surface.CurrentDuration()
	if !ok || d <= 0 {
		return 0, false
	}
	return m.Surface.ContentWidth() * (t.Seconds() / d.Seconds()), true
}

// TimeFor returns the asset time under the content offset.
func (m Mapper) TimeFor(offset float64) (time.Duration, bool) {
	d, ok := m.Surface.CurrentDuration()
	if !ok || d <= 0 {
		return 0, false
	}
	w := m.Surface.ContentWidth()
	if w == 0 {
		return 0, false
	}
	return time.Duration(offset / w * float64(d)), true
}
