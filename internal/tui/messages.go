package tui

import "time"

// Message types for Bubble Tea update loop.

// positionMsg carries a scrub-position report from the interaction core's
// listener bridge. settled distinguishes "still moving" from "came to
// rest".
type positionMsg struct {
	Time    time.Duration
	Settled bool
}
