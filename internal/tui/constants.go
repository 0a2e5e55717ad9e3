package tui

// Package-level constants to avoid magic numbers and improve readability.
const (
	channelBufferSize = 256

	// surfaceContentWidth is the virtual pixel width of the timeline
	// surface. The interaction core works in this fixed coordinate space;
	// the view scales it to the terminal width, so resizes never disturb
	// committed handle offsets.
	surfaceContentWidth = 600.0

	// grabRadius is how close (in virtual px) a mouse press must land to a
	// handle to pick it up.
	grabRadius = 18.0

	// Rendered timeline bar width in terminal cells.
	barMaxWidth = 90
	barMinWidth = 20

	// seekSteps is the number of quick-seek divisions bound to the digit
	// keys: pressing n seeks to n/seekSteps of the asset.
	seekSteps = 10
)
