package ffmpeg

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidDuration reports a trim that would leave no output footage.
	ErrInvalidDuration = errors.New("invalid clip duration")
	// ErrInvalidResolution reports an unrecognized resolution tier.
	ErrInvalidResolution = errors.New("invalid resolution tier")
)

// LaunchError reports that the ffmpeg binary could not be found or started.
type LaunchError struct {
	Binary string
	Err    error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("launch %s: %v", e.Binary, e.Err)
}

func (e *LaunchError) Unwrap() error { return e.Err }

// ExitError reports a non-zero ffmpeg exit, carrying the exit code and the
// tail of the captured stderr stream. The output file of a failed run must
// not be read.
type ExitError struct {
	ExitCode int
	Stderr   string
}

func (e *ExitError) Error() string {
	detail := strings.TrimSpace(e.Stderr)
	if detail == "" {
		return fmt.Sprintf("ffmpeg exited with code %d", e.ExitCode)
	}
	return fmt.Sprintf("ffmpeg exited with code %d: %s", e.ExitCode, detail)
}
