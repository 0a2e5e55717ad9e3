package trimmer

// Bounds holds the five committed offsets of the control. Start-side
// offsets are measured from the left edge and stay >= 0; end-side offsets
// are measured from the right edge and stay <= 0.
type Bounds struct {
	Left      float64
	Right     float64
	LeftMark  float64
	RightMark float64
	Position  float64
}

// geometry is the per-call pixel context for clamping. minGap depends on
// the live asset duration and surface width, so it is rebuilt on every
// clamp rather than cached.
type geometry struct {
	width       float64
	handleWidth float64
	minGap      float64
}

// rightHandleX converts an end-side offset into the pixel X of that
// handle's left edge.
func (g geometry) rightHandleX(right float64) float64 {
	return g.width - g.handleWidth + right
}

// clampLeft bounds a trim-start candidate so the handle never crosses
// into the minimum gap before the trim-end handle.
func (b Bounds) clampLeft(g geometry, candidate float64) float64 {
	hi := g.rightHandleX(b.Right) - g.handleWidth - g.minGap
	return clamp(candidate, 0, max(hi, 0))
}

// clampRight is the symmetric bound for trim-end candidates.
func (b Bounds) clampRight(g geometry, candidate float64) float64 {
	lo := 2*g.handleWidth - g.width + b.Left + g.minGap
	return clamp(candidate, min(lo, 0), 0)
}

// clampMarkLeft tracks the gap against the mark pair, not the trim pair.
func (b Bounds) clampMarkLeft(g geometry, candidate float64) float64 {
	hi := g.rightHandleX(b.RightMark) - g.handleWidth - g.minGap
	return clamp(candidate, 0, max(hi, 0))
}

func (b Bounds) clampMarkRight(g geometry, candidate float64) float64 {
	lo := 2*g.handleWidth - g.width + b.LeftMark + g.minGap
	return clamp(candidate, min(lo, 0), 0)
}

// clampPosition keeps the scrub indicator inside the active selection.
func (b Bounds) clampPosition(g geometry, candidate float64) float64 {
	return clamp(candidate, 0, max(g.rightHandleX(b.Right)-g.handleWidth, 0))
}

func clamp(v, lo, hi float64) float64 {
	return min(max(v, lo), hi)
}
