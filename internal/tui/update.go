package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/framepick/framepick/internal/session"
	"github.com/framepick/framepick/internal/trimmer"
)

// handleOrder is the tab-cycling order for keyboard focus.
//
//nolint:gochecknoglobals // immutable lookup table.
var handleOrder = []trimmer.Handle{
	trimmer.PositionBar,
	trimmer.TrimStart,
	trimmer.TrimEnd,
	trimmer.MarkStart,
	trimmer.MarkEnd,
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) { //nolint:ireturn
	switch x := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = x.Width, x.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(x)

	case tea.MouseMsg:
		m = m.handleMouse(x)
		return m, nil

	case positionMsg:
		m.thumb = x.Time
		m.settled = x.Settled
		return m, m.listenForPosition()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.helpVisible = !m.helpVisible

	case key.Matches(msg, m.keys.NextHand):
		m.active = cycleHandle(m.active, 1)

	case key.Matches(msg, m.keys.PrevHand):
		m.active = cycleHandle(m.active, -1)

	case key.Matches(msg, m.keys.DragLeft):
		m.nudge(-m.cfg.DragStep)

	case key.Matches(msg, m.keys.DragRight):
		m.nudge(m.cfg.DragStep)

	case key.Matches(msg, m.keys.MarkIn):
		if thumb, ok := m.selector.ThumbTime(); ok {
			m.selector.SetMarkedTime(thumb, m.currentMarkOut())
		}

	case key.Matches(msg, m.keys.MarkOut):
		if thumb, ok := m.selector.ThumbTime(); ok {
			m.selector.SetMarkedTime(m.currentMarkIn(), thumb)
		}

	case key.Matches(msg, m.keys.MarkClear):
		m.selector.SetMarkedTime(0, 0)

	case key.Matches(msg, m.keys.Accept):
		m = m.accept()

	default:
		if d, ok := digitSeekTarget(msg.String(), m.asset.Duration); ok {
			m.selector.Seek(d)
			if t, tok := m.selector.ThumbTime(); tok {
				m.thumb = t
				m.settled = true
			}
		}
	}
	return m, nil
}

// nudge issues a one-step synthetic drag on the focused handle. The core
// sees the same begin/changed/end lifecycle a pointer drag produces.
func (m *Model) nudge(step float64) {
	m.selector.DragStart(m.active)
	m.selector.DragMove(m.active, step)
	m.selector.DragEnd(m.active)
}

// handleMouse runs the pointer drag lifecycle against the core.
func (m Model) handleMouse(msg tea.MouseMsg) Model {
	origin, barW := m.barLayout()
	if barW <= 0 {
		return m
	}
	vx := float64(msg.X-origin) / float64(barW) * surfaceContentWidth

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m
		}
		if h, ok := m.handleAt(vx); ok {
			m.selector.DragStart(h)
			m.drag = mouseDrag{active: true, handle: h, originX: vx}
			m.active = h
		}

	case tea.MouseActionMotion:
		if m.drag.active {
			m.selector.DragMove(m.drag.handle, vx-m.drag.originX)
		}

	case tea.MouseActionRelease:
		if m.drag.active {
			m.selector.DragEnd(m.drag.handle)
			m.drag = mouseDrag{}
		}
	}
	return m
}

// handleAt picks the handle nearest to the virtual offset, within the
// grab radius. Earlier entries in handleOrder win ties, so the position
// bar is preferred when handles overlap.
func (m Model) handleAt(vx float64) (trimmer.Handle, bool) {
	b := m.selector.Bounds()
	hw := m.cfg.HandleWidth
	at := map[trimmer.Handle]float64{
		trimmer.PositionBar: b.Position,
		trimmer.TrimStart:   b.Left,
		trimmer.TrimEnd:     surfaceContentWidth - hw + b.Right,
		trimmer.MarkStart:   b.LeftMark,
		trimmer.MarkEnd:     surfaceContentWidth - hw + b.RightMark,
	}

	best := trimmer.Handle(-1)
	bestDist := grabRadius + 1
	for _, h := range handleOrder {
		d := vx - at[h]
		if d < 0 {
			d = -d
		}
		if d <= grabRadius && d < bestDist {
			best, bestDist = h, d
		}
	}
	return best, best >= 0
}

// accept writes the current selection to the session store.
func (m Model) accept() Model {
	start, ok1 := m.selector.StartTime()
	end, ok2 := m.selector.EndTime()
	if !ok1 || !ok2 {
		m.statusLine = "nothing to accept: no asset loaded"
		return m
	}

	rec := session.Record{
		Path:  m.asset.Path,
		Start: start,
		End:   end,
	}
	b := m.selector.Bounds()
	if b.LeftMark != 0 || b.RightMark != 0 {
		if ms, ok := m.selector.StartMarkTime(); ok {
			rec.MarkStart = ms
		}
		if me, ok := m.selector.EndMarkTime(); ok {
			rec.MarkEnd = me
		}
	}

	saved, err := m.store.Add(rec)
	if err != nil {
		m.statusLine = fmt.Sprintf("save failed: %v", err)
		return m
	}
	m.statusLine = fmt.Sprintf("saved selection %s", saved.ID)
	return m
}

// currentMarkIn returns the committed mark-in time, or zero for the
// natural edge.
func (m Model) currentMarkIn() time.Duration {
	if m.selector.Bounds().LeftMark == 0 {
		return 0
	}
	t, ok := m.selector.StartMarkTime()
	if !ok {
		return 0
	}
	return t
}

func (m Model) currentMarkOut() time.Duration {
	if m.selector.Bounds().RightMark == 0 {
		return 0
	}
	t, ok := m.selector.EndMarkTime()
	if !ok {
		return 0
	}
	return t
}

func cycleHandle(h trimmer.Handle, dir int) trimmer.Handle {
	for i, cand := range handleOrder {
		if cand == h {
			return handleOrder[(i+dir+len(handleOrder))%len(handleOrder)]
		}
	}
	return handleOrder[0]
}

// digitSeekTarget maps a digit key to a fraction of the asset duration.
func digitSeekTarget(k string, total time.Duration) (time.Duration, bool) {
	if len(k) != 1 || k[0] < '0' || k[0] > '9' || total <= 0 {
		return 0, false
	}
	n := int(k[0] - '0')
	return total * time.Duration(n) / seekSteps, true
}
