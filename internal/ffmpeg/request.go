package ffmpeg

import "fmt"

// Resolution is a named quality preset mapping to a fixed output height.
type Resolution string

const (
	ResolutionLow    Resolution = "low"    // 480p
	ResolutionMedium Resolution = "medium" // 720p
	ResolutionHigh   Resolution = "high"   // 1080p
)

// Height returns the output height in pixels for the preset. Unrecognized
// tiers are rejected, never silently defaulted.
func (r Resolution) Height() (int, error) {
	switch r {
	case ResolutionLow:
		return 480, nil
	case ResolutionMedium:
		return 720, nil
	case ResolutionHigh:
		return 1080, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidResolution, string(r))
	}
}

// Rect describes a crop region in source pixel coordinates.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

func (r Rect) String() string {
	return fmt.Sprintf("%d:%d:%d:%d", r.Width, r.Height, r.X, r.Y)
}

// Request fully specifies one ffmpeg invocation. It is passed by value and
// never mutated after construction.
type Request struct {
	InputPath    string
	OutputPath   string
	FPS          int
	SecondsToCut float64
	Resolution   Resolution
	Overwrite    bool
	RemoveAudio  bool
	// Crop, when non-nil, is applied ahead of scaling so its coordinates
	// refer to the source frame.
	Crop *Rect
	// Codec overrides the video encoder; empty means libx265.
	Codec string
}
