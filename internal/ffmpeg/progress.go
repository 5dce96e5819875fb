package ffmpeg

import (
	"regexp"
	"strconv"
)

// timePattern matches the elapsed-time token ffmpeg interleaves with its
// status output, e.g. "time=00:01:23.45". Hours may exceed two digits; the
// fractional part is optional. "time=N/A" deliberately does not match.
var timePattern = regexp.MustCompile(`time=(\d+):(\d{2}):(\d{2}(?:\.\d+)?)`)

// parseProgressLine extracts the elapsed seconds from one ffmpeg status line.
// It reports false for lines without a parseable time= token; such lines
// carry other diagnostic text and are not progress.
func parseProgressLine(line string) (float64, bool) {
	match := timePattern.FindStringSubmatch(line)
	if match == nil {
		return 0, false
	}
	hours, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 0, false
	}
	minutes, err := strconv.ParseFloat(match[2], 64)
	if err != nil {
		return 0, false
	}
	seconds, err := strconv.ParseFloat(match[3], 64)
	if err != nil {
		return 0, false
	}
	return hours*3600 + minutes*60 + seconds, true
}

// progressClamp keeps observed progress monotonically non-decreasing and
// bounded by the total duration. A late or out-of-order status line never
// moves the indicator backward.
type progressClamp struct {
	total float64
	last  float64
}

// observe folds a raw elapsed value into the clamp. It returns the clamped
// value and whether the indicator advanced.
func (c *progressClamp) observe(elapsed float64) (float64, bool) {
	if elapsed > c.total {
		elapsed = c.total
	}
	if elapsed <= c.last {
		return c.last, false
	}
	c.last = elapsed
	return elapsed, true
}

// finish pins the clamp at the total so the indicator always reaches 100%,
// regardless of what the last status line reported.
func (c *progressClamp) finish() float64 {
	c.last = c.total
	return c.total
}
