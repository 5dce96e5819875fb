package ffmpeg

import (
	"fmt"
	"strconv"
	"strings"
)

const defaultCodec = "libx265"

// Build constructs the complete ffmpeg argument slice for one transcode.
// durationSeconds is the probed input duration; the output clip runs
// durationSeconds minus the request's trim. The returned slice starts with
// the binary name and is ready to hand to a subprocess launcher. Build
// performs no I/O.
func Build(binary string, req Request, durationSeconds float64) ([]string, error) {
	height, err := req.Resolution.Height()
	if err != nil {
		return nil, err
	}

	clipSeconds := durationSeconds - req.SecondsToCut
	if clipSeconds <= 0 {
		return nil, fmt.Errorf("%w: input runs %.3fs, cutting %.3fs leaves nothing",
			ErrInvalidDuration, durationSeconds, req.SecondsToCut)
	}

	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = "ffmpeg"
	}
	codec := strings.TrimSpace(req.Codec)
	if codec == "" {
		codec = defaultCodec
	}

	args := make([]string, 0, 24)
	args = append(args, binary, "-hide_banner", "-nostdin")

	// -y replaces an existing output unconditionally; -n refuses to. The
	// no-overwrite path is a real ffmpeg flag, not a bare "n" token.
	if req.Overwrite {
		args = append(args, "-y")
	} else {
		args = append(args, "-n")
	}

	// Keep stderr quiet except for the -stats status line the runner parses.
	args = append(args, "-loglevel", "error", "-stats", "-stats_period", "1")

	args = append(args, "-i", req.InputPath)
	args = append(args, "-t", strconv.FormatFloat(clipSeconds, 'f', 3, 64))
	args = append(args, "-vf", filterChain(req, height))
	args = append(args, "-c:v", codec)

	if req.RemoveAudio {
		args = append(args, "-an")
	} else {
		args = append(args, "-c:a", "copy")
	}

	args = append(args, req.OutputPath)
	return args, nil
}

// filterChain joins all video filter stages into a single -vf value. ffmpeg
// treats a repeated -vf as a replacement, not an addition, so every stage
// must live in one comma-joined chain. Crop runs first, against source
// coordinates, then the frame-rate and scale stages.
func filterChain(req Request, height int) string {
	stages := make([]string, 0, 3)
	if req.Crop != nil {
		stages = append(stages, "crop="+req.Crop.String())
	}
	stages = append(stages, fmt.Sprintf("fps=%d", req.FPS))
	// -2 asks ffmpeg for an even auto width; libx265 rejects odd dimensions.
	stages = append(stages, fmt.Sprintf("scale=-2:%d", height))
	return strings.Join(stages, ",")
}
