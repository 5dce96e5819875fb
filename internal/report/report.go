// Package report turns the probed input and output byte sizes of a finished
// transcode into a human-readable compression summary.
package report

import (
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"
)

// ErrDegenerateInput reports a zero-byte input size; the percentage is
// undefined and must not be silently rendered as zero or NaN.
var ErrDegenerateInput = errors.New("degenerate input size")

// Summary captures the size outcome of one completed transcode.
type Summary struct {
	InputBytes  int64
	OutputBytes int64
	SavedBytes  int64
	Percent     float64
}

// Summarize compares input and output sizes. A negative saving (the output
// grew) is a valid, reportable outcome, not an error.
func Summarize(inputBytes, outputBytes int64) (Summary, error) {
	if inputBytes == 0 {
		return Summary{}, fmt.Errorf("%w: input reported as zero bytes", ErrDegenerateInput)
	}
	saved := inputBytes - outputBytes
	return Summary{
		InputBytes:  inputBytes,
		OutputBytes: outputBytes,
		SavedBytes:  saved,
		Percent:     float64(saved) / float64(inputBytes) * 100,
	}, nil
}

// String renders the one-line summary printed after a successful run.
// Negative values keep their sign so growth is never hidden.
func (s Summary) String() string {
	return fmt.Sprintf("Video processed: %.3f%% compressed (%s)", s.Percent, signedBytes(s.SavedBytes))
}

// Rows returns label/value pairs for tabular rendering.
func (s Summary) Rows() [][]string {
	return [][]string{
		{"Input size", humanize.IBytes(uint64(s.InputBytes))},
		{"Output size", humanize.IBytes(uint64(s.OutputBytes))},
		{"Saved", signedBytes(s.SavedBytes)},
		{"Compression", fmt.Sprintf("%.3f%%", s.Percent)},
	}
}

func signedBytes(value int64) string {
	if value < 0 {
		return "-" + humanize.IBytes(uint64(-value))
	}
	return humanize.IBytes(uint64(value))
}
