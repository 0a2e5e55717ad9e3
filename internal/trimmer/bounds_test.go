//nolint:testpackage // White-box tests require access to unexported identifiers in this package.
package trimmer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampLeft_GapAgainstRightHandle(t *testing.T) {
	t.Parallel()

	g := geometry{width: 300, handleWidth: 30, minGap: 30}
	b := Bounds{}

	// Scenario A: dragging far right clamps to leave exactly minGap before
	// the right handle.
	assert.InDelta(t, 210.0, b.clampLeft(g, 290), 1e-9)
	assert.InDelta(t, 0.0, b.clampLeft(g, -50), 1e-9)
	assert.InDelta(t, 100.0, b.clampLeft(g, 100), 1e-9)
}

func TestClampRight_SymmetricBound(t *testing.T) {
	t.Parallel()

	g := geometry{width: 300, handleWidth: 30, minGap: 30}
	b := Bounds{Left: 60}

	// lo = 2*30 - 300 + 60 + 30 = -150.
	assert.InDelta(t, -150.0, b.clampRight(g, -500), 1e-9)
	assert.InDelta(t, 0.0, b.clampRight(g, 40), 1e-9)
	assert.InDelta(t, -80.0, b.clampRight(g, -80), 1e-9)
}

func TestClampMark_IndependentOfTrimPair(t *testing.T) {
	t.Parallel()

	g := geometry{width: 300, handleWidth: 30, minGap: 30}
	// Trim pair squeezed tight; mark pair wide open.
	b := Bounds{Left: 200, Right: 0, LeftMark: 0, RightMark: 0}

	// Mark clamp must use the mark pair's own gap, so the full range is
	// still available.
	assert.InDelta(t, 210.0, b.clampMarkLeft(g, 290), 1e-9)

	b.LeftMark = 100
	assert.InDelta(t, -110.0, b.clampMarkRight(g, -500), 1e-9)
}

func TestClampPosition_ContainedInSelection(t *testing.T) {
	t.Parallel()

	g := geometry{width: 300, handleWidth: 30, minGap: 0}
	b := Bounds{}

	// Scenario D: clamps exactly at rightHandleX - handleWidth, no overshoot.
	assert.InDelta(t, 240.0, b.clampPosition(g, 1000), 1e-9)
	assert.InDelta(t, 0.0, b.clampPosition(g, -5), 1e-9)

	b.Right = -100
	assert.InDelta(t, 140.0, b.clampPosition(g, 1000), 1e-9)
}

func TestClamp_DegenerateGeometry(t *testing.T) {
	t.Parallel()

	// Handles wider than the surface: bounds collapse to zero instead of
	// going negative.
	g := geometry{width: 40, handleWidth: 30, minGap: 10}
	b := Bounds{}

	assert.InDelta(t, 0.0, b.clampLeft(g, 100), 1e-9)
	assert.InDelta(t, 0.0, b.clampPosition(g, 100), 1e-9)
}
