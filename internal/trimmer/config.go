package trimmer

import (
	"fmt"
	"time"

	"github.com/framepick/framepick/internal/validate"
)

// Config holds the interaction knobs for a Selector.
type Config struct {
	// HandleWidth is the pixel width of a trim/mark handle.
	HandleWidth float64 `validate:"gt=0"`
	// MinDuration is the smallest selectable interval. It also derives the
	// minimum pixel gap between the handles of a pair.
	MinDuration time.Duration `validate:"gte=0"`
	// SeekAnimation is how long the renderer should take to animate a Seek
	// that lands strictly inside the trim interval.
	SeekAnimation time.Duration `validate:"gte=0"`
}

// DefaultConfig returns the stock interaction knobs.
func DefaultConfig() Config {
	return Config{
		HandleWidth:   15,
		MinDuration:   3 * time.Second,
		SeekAnimation: 500 * time.Millisecond,
	}
}

// Validate checks the config against its field constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("trimmer config: %w", err)
	}
	return nil
}
