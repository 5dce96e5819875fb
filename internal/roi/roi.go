// Package roi models region-of-interest selection as an injected
// collaborator. The transcode pipeline only depends on the Selector
// interface, so interactive pickers (an OpenCV-style first-frame dialog, a
// web UI) can be swapped in without touching the command builder or runner,
// and everything stays testable headlessly.
package roi

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"vidsqueeze/internal/ffmpeg"
)

// Selector picks a crop region for a video. A nil rectangle means no crop.
type Selector interface {
	Select(ctx context.Context, videoPath string) (*ffmpeg.Rect, error)
}

// None never selects a crop region.
type None struct{}

func (None) Select(context.Context, string) (*ffmpeg.Rect, error) {
	return nil, nil
}

// Static always returns the same rectangle, typically parsed from a CLI flag.
type Static struct {
	rect ffmpeg.Rect
}

func (s *Static) Select(context.Context, string) (*ffmpeg.Rect, error) {
	rect := s.rect
	return &rect, nil
}

// ParseStatic builds a Static selector from a "W:H:X:Y" flag value, matching
// the operand order of ffmpeg's crop filter. X and Y default to 0 when only
// "W:H" is given.
func ParseStatic(value string) (*Static, error) {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) != 2 && len(parts) != 4 {
		return nil, fmt.Errorf("crop %q: expected W:H or W:H:X:Y", value)
	}

	numbers := make([]int, len(parts))
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("crop %q: %q is not an integer", value, part)
		}
		numbers[i] = n
	}

	rect := ffmpeg.Rect{Width: numbers[0], Height: numbers[1]}
	if len(numbers) == 4 {
		rect.X = numbers[2]
		rect.Y = numbers[3]
	}

	if rect.Width <= 0 || rect.Height <= 0 {
		return nil, fmt.Errorf("crop %q: width and height must be positive", value)
	}
	if rect.X < 0 || rect.Y < 0 {
		return nil, fmt.Errorf("crop %q: origin must not be negative", value)
	}

	return &Static{rect: rect}, nil
}
