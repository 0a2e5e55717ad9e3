package trimmer

// Handle identifies one draggable element of the control. The gesture
// source passes it explicitly; there is no view-identity dispatch.
type Handle int

const (
	TrimStart Handle = iota
	TrimEnd
	MarkStart
	MarkEnd
	PositionBar
)

// Pair groups handles whose drags are mutually exclusive. Drags across
// different pairs are independent and may run concurrently.
type Pair int

const (
	PairTrim Pair = iota
	PairMark
	PairPosition
)

// Pair returns the bound pair the handle belongs to.
func (h Handle) Pair() Pair {
	switch h {
	case TrimStart, TrimEnd:
		return PairTrim
	case MarkStart, MarkEnd:
		return PairMark
	default:
		return PairPosition
	}
}

// known reports whether h is one of the five recognized handles.
// Unknown identifiers are silently ignored by the drag machine.
func (h Handle) known() bool {
	return h >= TrimStart && h <= PositionBar
}

func (h Handle) String() string {
	switch h {
	case TrimStart:
		return "trim-start"
	case TrimEnd:
		return "trim-end"
	case MarkStart:
		return "mark-start"
	case MarkEnd:
		return "mark-end"
	case PositionBar:
		return "position"
	default:
		return "unknown"
	}
}
