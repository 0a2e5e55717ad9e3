//nolint:testpackage // White-box tests require access to unexported identifiers in this package.
package timeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSurface is a fixed-geometry Surface for mapper tests.
type fakeSurface struct {
	duration time.Duration
	loaded   bool
	width    float64
	scroll   float64
}

func (s fakeSurface) CurrentDuration() (time.Duration, bool) { return s.duration, s.loaded }
func (s fakeSurface) ContentWidth() float64                  { return s.width }
func (s fakeSurface) ScrollOffsetX() float64                 { return s.scroll }

func TestMapper_PositionFor(t *testing.T) {
	t.Parallel()

	m := Mapper{Surface: fakeSurface{duration: 10 * time.Second, loaded: true, width: 300}}

	pos, ok := m.PositionFor(5 * time.Second)
	require.True(t, ok)
	assert.InDelta(t, 150.0, pos, 1e-9)

	pos, ok = m.PositionFor(0)
	require.True(t, ok)
	assert.InDelta(t, 0.0, pos, 1e-9)

	pos, ok = m.PositionFor(10 * time.Second)
	require.True(t, ok)
	assert.InDelta(t, 300.0, pos, 1e-9)
}

func TestMapper_NoAsset(t *testing.T) {
	t.Parallel()

	m := Mapper{Surface: fakeSurface{width: 300}}

	_, ok := m.PositionFor(time.Second)
	assert.False(t, ok)
	_, ok = m.TimeFor(100)
	assert.False(t, ok)
}

func TestMapper_ZeroDuration(t *testing.T) {
	t.Parallel()

	m := Mapper{Surface: fakeSurface{duration: 0, loaded: true, width: 300}}

	_, ok := m.PositionFor(time.Second)
	assert.False(t, ok)
	_, ok = m.TimeFor(100)
	assert.False(t, ok)
}

func TestMapper_RoundTrip(t *testing.T) {
	t.Parallel()

	m := Mapper{Surface: fakeSurface{duration: 37 * time.Second, loaded: true, width: 1234}}

	for _, tt := range []time.Duration{
		0,
		500 * time.Millisecond,
		time.Second,
		7*time.Second + 333*time.Millisecond,
		37 * time.Second,
	} {
		pos, ok := m.PositionFor(tt)
		require.True(t, ok)
		back, ok := m.TimeFor(pos)
		require.True(t, ok)
		assert.InDelta(t, tt.Seconds(), back.Seconds(), 1e-6, "round-trip for %s", tt)
	}
}
