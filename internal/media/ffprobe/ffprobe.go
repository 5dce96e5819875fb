package ffprobe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os/exec"
	"strconv"
	"strings"
)

// ErrProbe marks any failure to read media metadata: a missing or unreadable
// file, a failed ffprobe invocation, or malformed metadata.
var ErrProbe = errors.New("probe error")

var commandContext = exec.CommandContext

// Result represents the parsed output from an ffprobe inspection. Each call
// to Inspect produces a fresh snapshot; results are never updated in place.
type Result struct {
	Streams []Stream `json:"streams"`
	Format  Format   `json:"format"`
}

// Stream describes a single stream in the media container.
type Stream struct {
	Index     int    `json:"index"`
	CodecName string `json:"codec_name"`
	CodecType string `json:"codec_type"`
	Duration  string `json:"duration"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	NBFrames  string `json:"nb_frames"`
}

// Format captures container-level metadata extracted by ffprobe.
type Format struct {
	Filename   string `json:"filename"`
	NBStreams  int    `json:"nb_streams"`
	Duration   string `json:"duration"`
	Size       string `json:"size"`
	BitRate    string `json:"bit_rate"`
	FormatName string `json:"format_name"`
}

// MediaInfo is the probe snapshot the transcode pipeline consumes.
type MediaInfo struct {
	DurationSeconds float64
	FrameCount      int64
	SizeBytes       int64
}

// Inspect executes ffprobe against the provided path and decodes the JSON
// response.
func Inspect(ctx context.Context, binary string, path string) (Result, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = "ffprobe"
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return Result{}, fmt.Errorf("%w: empty path", ErrProbe)
	}

	cmd := commandContext(ctx, binary, "-v", "error", "-hide_banner", "-show_format", "-show_streams", "-of", "json", "--", path)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return Result{}, fmt.Errorf("%w: inspect %s: %v: %s", ErrProbe, path, err, strings.TrimSpace(string(output)))
	}

	var result Result
	if err := json.Unmarshal(output, &result); err != nil {
		return Result{}, fmt.Errorf("%w: parse ffprobe output for %s: %v", ErrProbe, path, err)
	}
	return result, nil
}

// Probe inspects path and extracts the fields the transcode pipeline needs.
// A container without a usable duration is reported as malformed.
func Probe(ctx context.Context, binary string, path string) (MediaInfo, error) {
	result, err := Inspect(ctx, binary, path)
	if err != nil {
		return MediaInfo{}, err
	}

	duration := result.DurationSeconds()
	if math.IsNaN(duration) || duration <= 0 {
		return MediaInfo{}, fmt.Errorf("%w: %s: missing or invalid duration %q", ErrProbe, path, result.Format.Duration)
	}

	return MediaInfo{
		DurationSeconds: duration,
		FrameCount:      result.FrameCount(),
		SizeBytes:       result.SizeBytes(),
	}, nil
}

// VideoStreamCount returns the number of video streams discovered.
func (r Result) VideoStreamCount() int {
	count := 0
	for _, stream := range r.Streams {
		if strings.EqualFold(stream.CodecType, "video") {
			count++
		}
	}
	return count
}

// AudioStreamCount returns the number of audio streams discovered.
func (r Result) AudioStreamCount() int {
	count := 0
	for _, stream := range r.Streams {
		if strings.EqualFold(stream.CodecType, "audio") {
			count++
		}
	}
	return count
}

// DurationSeconds returns the container duration in seconds, or NaN when the
// reported value is unparseable.
func (r Result) DurationSeconds() float64 {
	return parseFloat(r.Format.Duration)
}

// SizeBytes returns the reported container size in bytes, or 0 when
// unavailable.
func (r Result) SizeBytes() int64 {
	size := parseFloat(r.Format.Size)
	if math.IsNaN(size) || size < 0 {
		return 0
	}
	return int64(size)
}

// FrameCount returns the frame count of the first video stream, or 0 when the
// container does not report one.
func (r Result) FrameCount() int64 {
	for _, stream := range r.Streams {
		if !strings.EqualFold(stream.CodecType, "video") {
			continue
		}
		frames, err := strconv.ParseInt(strings.TrimSpace(stream.NBFrames), 10, 64)
		if err != nil || frames < 0 {
			return 0
		}
		return frames
	}
	return 0
}

func parseFloat(value string) float64 {
	cleaned := strings.TrimSpace(value)
	if cleaned == "" {
		return 0
	}
	if parsed, err := strconv.ParseFloat(cleaned, 64); err == nil {
		return parsed
	}
	return math.NaN()
}
