//nolint:testpackage // White-box tests require access to unexported identifiers in this package.
package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/framepick/framepick/internal/config"
	"github.com/framepick/framepick/internal/media"
	"github.com/framepick/framepick/internal/session"
	"github.com/framepick/framepick/internal/trimmer"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	store, err := session.NewStore(filepath.Join(t.TempDir(), "sessions.json"))
	require.NoError(t, err)
	asset := &media.Asset{Path: "/media/clip.mp3", Title: "clip", Duration: 10 * time.Second}
	m, err := NewModel(config.Default(), asset, store, 0)
	require.NoError(t, err)

	sized, _ := m.Update(tea.WindowSizeMsg{Width: 98, Height: 30})
	model, ok := sized.(Model)
	require.True(t, ok)
	return model
}

func TestModel_KeyboardNudge(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	assert.Equal(t, trimmer.PositionBar, m.active)

	// Focus the trim-start handle and nudge it right twice.
	for _, msg := range []tea.Msg{
		tea.KeyMsg{Type: tea.KeyTab},
		tea.KeyMsg{Type: tea.KeyRight},
		tea.KeyMsg{Type: tea.KeyRight},
	} {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}

	assert.Equal(t, trimmer.TrimStart, m.active)
	assert.InDelta(t, 2*config.Default().DragStep, m.selector.Bounds().Left, 1e-9)
}

func TestModel_DigitSeek(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'5'}})
	m, ok := next.(Model)
	require.True(t, ok)

	// 5/10 of a 10s asset on a 600px surface.
	assert.InDelta(t, 300.0, m.selector.Bounds().Position, 1e-9)
	assert.Equal(t, 5*time.Second, m.thumb)
}

func TestModel_MouseDragLifecycle(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)

	press := tea.MouseMsg{X: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	motion := tea.MouseMsg{X: 48, Action: tea.MouseActionMotion}
	release := tea.MouseMsg{X: 48, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}

	for _, msg := range []tea.Msg{press, motion, release} {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}

	// Column 48 on a 90-cell bar is 300 virtual px from the origin.
	assert.False(t, m.drag.active)
	assert.InDelta(t, 300.0, m.selector.Bounds().Position, 1.0)
}

func TestModel_PositionMsgUpdatesCursor(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	next, cmd := m.Update(positionMsg{Time: 3 * time.Second, Settled: true})
	m, ok := next.(Model)
	require.True(t, ok)

	assert.Equal(t, 3*time.Second, m.thumb)
	assert.True(t, m.settled)
	assert.NotNil(t, cmd) // keeps listening
}

func TestModel_AcceptWritesSession(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m, ok := next.(Model)
	require.True(t, ok)

	assert.Contains(t, m.statusLine, "saved")
	require.Len(t, m.store.Data.Records, 1)
	rec := m.store.Data.Records[0]
	assert.Equal(t, "/media/clip.mp3", rec.Path)
	assert.Equal(t, time.Duration(0), rec.Start)
	assert.Equal(t, 10*time.Second, rec.End)
}

func TestHandleAt(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)

	// Everything is at the edges: the position bar wins the tie at 0.
	h, ok := m.handleAt(0)
	require.True(t, ok)
	assert.Equal(t, trimmer.PositionBar, h)

	// Near the right edge only the trim/mark end handles are in reach.
	h, ok = m.handleAt(surfaceContentWidth - m.cfg.HandleWidth)
	require.True(t, ok)
	assert.Equal(t, trimmer.TrimEnd, h)

	// Middle of nowhere.
	_, ok = m.handleAt(surfaceContentWidth / 2)
	assert.False(t, ok)
}

func TestCycleHandle(t *testing.T) {
	t.Parallel()

	h := trimmer.PositionBar
	seen := map[trimmer.Handle]bool{}
	for range handleOrder {
		seen[h] = true
		h = cycleHandle(h, 1)
	}
	assert.Equal(t, trimmer.PositionBar, h)
	assert.Len(t, seen, len(handleOrder))

	assert.Equal(t, trimmer.MarkEnd, cycleHandle(trimmer.PositionBar, -1))
}

func TestDigitSeekTarget(t *testing.T) {
	t.Parallel()

	d, ok := digitSeekTarget("5", 10*time.Second)
	require.True(t, ok)
	assert.Equal(t, 5*time.Second, d)

	_, ok = digitSeekTarget("x", 10*time.Second)
	assert.False(t, ok)
	_, ok = digitSeekTarget("5", 0)
	assert.False(t, ok)
}

func TestFormatTime(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0:05.00", formatTime(5*time.Second))
	assert.Equal(t, "1:01.50", formatTime(61*time.Second+500*time.Millisecond))
	assert.Equal(t, "0:00.00", formatTime(-time.Second))
}
