// Package deps checks the availability of the external binaries vidsqueeze
// shells out to, for the doctor command.
package deps

import (
	"fmt"
	"os/exec"
	"strings"

	"vidsqueeze/internal/config"
)

// Requirement defines an external dependency vidsqueeze relies on.
type Requirement struct {
	Name        string
	Command     string
	Description string
}

// Status reports the availability of a dependency.
type Status struct {
	Name        string
	Command     string
	Description string
	Available   bool
	Detail      string
}

// Requirements returns the binaries a transcode run needs, using the
// configured tool paths.
func Requirements(cfg *config.Config) []Requirement {
	ffmpegBinary := "ffmpeg"
	ffprobeBinary := "ffprobe"
	if cfg != nil {
		if b := strings.TrimSpace(cfg.Tools.FFmpeg); b != "" {
			ffmpegBinary = b
		}
		if b := strings.TrimSpace(cfg.Tools.FFprobe); b != "" {
			ffprobeBinary = b
		}
	}
	return []Requirement{
		{Name: "FFmpeg", Command: ffmpegBinary, Description: "Transcodes and scales video"},
		{Name: "FFprobe", Command: ffprobeBinary, Description: "Reads media metadata"},
	}
}

// CheckBinaries evaluates the provided requirements and reports availability.
func CheckBinaries(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		cmd := strings.TrimSpace(req.Command)
		status := Status{
			Name:        req.Name,
			Command:     cmd,
			Description: strings.TrimSpace(req.Description),
		}
		if cmd == "" {
			status.Detail = "command not configured"
			results = append(results, status)
			continue
		}
		if resolved, err := exec.LookPath(cmd); err != nil {
			status.Detail = fmt.Sprintf("binary %q not found", cmd)
		} else {
			status.Command = resolved
			status.Available = true
		}
		results = append(results, status)
	}
	return results
}
