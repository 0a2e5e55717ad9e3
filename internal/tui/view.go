package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/framepick/framepick/internal/trimmer"
)

//nolint:gochecknoglobals // lipgloss styles are conventionally package-level.
var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("69"))
	dimStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	baseStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	rangeStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("69"))
	handleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	markStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true)
	indicatorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true)
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	focusStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
)

func (m Model) View() string {
	if m.quitting {
		return "Bye.\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(" " + m.assetLabel() + " "))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("  duration: %s", formatTime(m.asset.Duration))))
	b.WriteString("\n\n")

	b.WriteString("  ")
	b.WriteString(m.renderBar())
	b.WriteString("\n\n")

	b.WriteString(m.renderTimes())
	b.WriteString("\n")

	b.WriteString(focusStyle.Render(fmt.Sprintf("  focus: %s", m.active)))
	b.WriteString("\n")

	if m.statusLine != "" {
		b.WriteString(statusStyle.Render("  " + m.statusLine))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.helpVisible {
		b.WriteString(renderHelp())
	} else {
		b.WriteString(dimStyle.Render("  h/? help  •  q quit"))
	}
	b.WriteString("\n")
	return b.String()
}

// barLayout returns the terminal column of the first bar cell and the bar
// width in cells.
func (m Model) barLayout() (originX, barW int) {
	barW = m.width - 8
	if barW > barMaxWidth {
		barW = barMaxWidth
	}
	if barW < barMinWidth {
		barW = barMinWidth
	}
	return 3, barW
}

// renderBar draws the timeline: trim span, mark handles, and the scrub
// indicator, scaled from virtual px to terminal cells.
func (m Model) renderBar() string {
	_, barW := m.barLayout()
	bounds := m.selector.Bounds()
	hw := m.cfg.HandleWidth

	cell := func(vpx float64) int {
		c := int(vpx / surfaceContentWidth * float64(barW-1))
		return min(max(c, 0), barW-1)
	}

	startCell := cell(bounds.Left)
	endCell := cell(surfaceContentWidth - hw + bounds.Right)
	markStartCell := cell(bounds.LeftMark)
	markEndCell := cell(surfaceContentWidth - hw + bounds.RightMark)
	posCell := cell(bounds.Position)

	runes := make([]rune, barW)
	styles := make([]lipgloss.Style, barW)
	for i := range runes {
		runes[i] = '─'
		styles[i] = baseStyle
		if i >= startCell && i <= endCell {
			runes[i] = '━'
			styles[i] = rangeStyle
		}
	}

	put := func(i int, r rune, st lipgloss.Style) {
		runes[i] = r
		styles[i] = st
	}
	put(markStartCell, '◇', markStyle)
	put(markEndCell, '◇', markStyle)

	// Trim handles draw over marks; within the pair the topmost-owning
	// handle draws last.
	if top, ok := m.selector.TopHandle(trimmer.PairTrim); ok && top == trimmer.TrimStart {
		put(endCell, '◆', handleStyle)
		put(startCell, '◆', handleStyle)
	} else {
		put(startCell, '◆', handleStyle)
		put(endCell, '◆', handleStyle)
	}

	put(posCell, '┃', indicatorStyle)

	var b strings.Builder
	b.WriteString(baseStyle.Render("["))
	for i, r := range runes {
		b.WriteString(styles[i].Render(string(r)))
	}
	b.WriteString(baseStyle.Render("]"))
	return b.String()
}

func (m Model) renderTimes() string {
	var b strings.Builder
	b.WriteString("  ")
	b.WriteString(renderSpan("trim", m.selector.StartTime, m.selector.EndTime, rangeStyle))
	b.WriteString(dimStyle.Render("   "))
	b.WriteString(renderSpan("mark", m.selector.StartMarkTime, m.selector.EndMarkTime, markStyle))
	b.WriteString("\n  ")

	settledDot := "…"
	if m.settled {
		settledDot = "●"
	}
	b.WriteString(indicatorStyle.Render(fmt.Sprintf("cursor %s %s", formatTime(m.thumb), settledDot)))
	return b.String()
}

func renderSpan(label string, startFn, endFn func() (time.Duration, bool), st lipgloss.Style) string {
	start, ok1 := startFn()
	end, ok2 := endFn()
	if !ok1 || !ok2 {
		return st.Render(label + " --:-- → --:--")
	}
	return st.Render(fmt.Sprintf("%s %s → %s", label, formatTime(start), formatTime(end)))
}

func renderHelp() string {
	lines := []string{
		"  tab / shift+tab   cycle focused handle",
		"  ← / →             nudge the focused handle",
		"  mouse drag        grab any handle directly",
		"  m / M             set mark in/out at the cursor",
		"  u                 clear marks",
		"  0-9               seek to n/10 of the asset",
		"  enter             accept and save the selection",
		"  q                 quit",
	}
	return dimStyle.Render(strings.Join(lines, "\n"))
}

func (m Model) assetLabel() string {
	if m.asset.Artist != "" {
		return m.asset.Artist + " — " + m.asset.Title
	}
	return m.asset.Title
}

// formatTime renders a duration as m:ss.cc.
func formatTime(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	mins := int(d.Minutes())
	secs := d.Seconds() - float64(mins)*60
	return fmt.Sprintf("%d:%05.2f", mins, secs)
}
