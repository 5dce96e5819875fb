package ffmpeg

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"

	"vidsqueeze/internal/logging"
)

var commandContext = exec.CommandContext

// stderrTailLines bounds how much diagnostic text an ExitError carries.
const stderrTailLines = 30

// Runner launches a prepared ffmpeg command and converts its stderr status
// stream into progress callbacks.
type Runner struct {
	logger *slog.Logger
}

// NewRunner constructs a Runner. A nil logger is replaced with a no-op one.
func NewRunner(logger *slog.Logger) *Runner {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Runner{logger: logger}
}

// Run executes the token list and blocks until the child exits. onProgress
// receives monotonically non-decreasing elapsed seconds and, on success, a
// final call with exactly totalSeconds. Callbacks are serialized on the
// reading goroutine; none fire after Run returns an error. Cancelling ctx
// kills the child and surfaces the context error.
func (r *Runner) Run(ctx context.Context, tokens []string, totalSeconds float64, onProgress func(float64)) error {
	if len(tokens) == 0 {
		return errors.New("ffmpeg run: empty command")
	}

	cmd := commandContext(ctx, tokens[0], tokens[1:]...)

	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return &LaunchError{Binary: tokens[0], Err: err}
	}

	r.logger.Debug("launching ffmpeg",
		logging.String("command", strings.Join(tokens, " ")),
		logging.Float64("total_seconds", totalSeconds),
	)

	if err := cmd.Start(); err != nil {
		return &LaunchError{Binary: tokens[0], Err: err}
	}

	clamp := progressClamp{total: totalSeconds}
	tail := make([]string, 0, stderrTailLines)

	scanner := bufio.NewScanner(stderr)
	scanner.Split(scanStatusLines)
	for scanner.Scan() {
		line := scanner.Text()
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			tail = appendTail(tail, trimmed)
		}
		elapsed, ok := parseProgressLine(line)
		if !ok {
			continue
		}
		if value, advanced := clamp.observe(elapsed); advanced && onProgress != nil {
			onProgress(value)
		}
	}
	scanErr := scanner.Err()

	waitErr := cmd.Wait()

	// A cancelled context killed the child; report cancellation rather
	// than the resulting exit failure.
	if ctxErr := ctx.Err(); ctxErr != nil {
		r.logger.Info("transcode cancelled", logging.String("binary", tokens[0]))
		return ctxErr
	}
	if waitErr != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(waitErr, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return &ExitError{ExitCode: exitCode, Stderr: strings.Join(tail, "\n")}
	}
	if scanErr != nil {
		return fmt.Errorf("read ffmpeg status stream: %w", scanErr)
	}

	// The tool's own reporting can stop short of the full duration due to
	// fractional-frame rounding; force the indicator to 100%.
	if onProgress != nil {
		onProgress(clamp.finish())
	}
	return nil
}

// scanStatusLines splits on both \n and \r: ffmpeg redraws its status line
// in place using carriage returns, so a newline-only split would starve the
// progress loop until the process exits.
func scanStatusLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		return i + 1, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

func appendTail(tail []string, line string) []string {
	if len(tail) == stderrTailLines {
		copy(tail, tail[1:])
		tail = tail[:stderrTailLines-1]
	}
	return append(tail, line)
}
