package ffmpeg

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"
	"time"
)

func withHelperCommand(t *testing.T, mode string) {
	t.Helper()
	original := commandContext
	commandContext = func(ctx context.Context, name string, args ...string) *exec.Cmd {
		cmd := exec.CommandContext(ctx, os.Args[0], "-test.run=TestHelperProcess")
		cmd.Env = append(os.Environ(), "GO_WANT_HELPER_PROCESS=1", "FFMPEG_HELPER_MODE="+mode)
		return cmd
	}
	t.Cleanup(func() { commandContext = original })
}

func TestRunRejectsEmptyCommand(t *testing.T) {
	runner := NewRunner(nil)
	if err := runner.Run(context.Background(), nil, 10, nil); err == nil {
		t.Fatal("expected error for empty command")
	}
}

func TestRunReportsLaunchFailure(t *testing.T) {
	runner := NewRunner(nil)
	tokens := []string{"/nonexistent/path/to/ffmpeg", "-i", "in.mp4", "out.mp4"}

	err := runner.Run(context.Background(), tokens, 10, nil)
	var launchErr *LaunchError
	if !errors.As(err, &launchErr) {
		t.Fatalf("expected LaunchError, got %v", err)
	}
	if launchErr.Binary != "/nonexistent/path/to/ffmpeg" {
		t.Fatalf("unexpected binary in error: %q", launchErr.Binary)
	}
}

func TestRunProgressSequence(t *testing.T) {
	withHelperCommand(t, "success")
	runner := NewRunner(nil)

	var updates []float64
	err := runner.Run(context.Background(), []string{"ffmpeg"}, 8, func(elapsed float64) {
		updates = append(updates, elapsed)
	})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	if len(updates) == 0 {
		t.Fatal("expected progress callbacks")
	}
	for i := 1; i < len(updates); i++ {
		if updates[i] < updates[i-1] {
			t.Fatalf("progress regressed at %d: %v", i, updates)
		}
	}
	if final := updates[len(updates)-1]; final != 8 {
		t.Fatalf("final update must equal total duration exactly, got %v (all: %v)", final, updates)
	}

	// The helper interleaves diagnostic lines and a stale out-of-order
	// timestamp; neither may surface as an update.
	for _, value := range updates {
		if value == 3.5 {
			t.Fatalf("stale out-of-order timestamp leaked into updates: %v", updates)
		}
	}
}

func TestRunNonZeroExit(t *testing.T) {
	withHelperCommand(t, "fail")
	runner := NewRunner(nil)

	var updates []float64
	err := runner.Run(context.Background(), []string{"ffmpeg"}, 8, func(elapsed float64) {
		updates = append(updates, elapsed)
	})

	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected ExitError, got %v", err)
	}
	if exitErr.ExitCode != 3 {
		t.Fatalf("expected exit code 3, got %d", exitErr.ExitCode)
	}
	if !strings.Contains(exitErr.Stderr, "Conversion failed") {
		t.Fatalf("expected stderr tail in error, got %q", exitErr.Stderr)
	}
	// A failed run never forces the indicator to 100%.
	for _, value := range updates {
		if value == 8 {
			t.Fatalf("completion update fired despite failure: %v", updates)
		}
	}
}

func TestRunCancellation(t *testing.T) {
	withHelperCommand(t, "hang")
	runner := NewRunner(nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	updateCount := 0
	start := time.Now()
	err := runner.Run(ctx, []string{"ffmpeg"}, 100, func(elapsed float64) {
		updateCount++
		cancel()
	})

	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if updateCount == 0 {
		t.Fatal("expected at least one progress update before cancellation")
	}
	if elapsed := time.Since(start); elapsed > 10*time.Second {
		t.Fatalf("cancellation took too long: %v", elapsed)
	}
}

func TestHelperProcess(t *testing.T) {
	if os.Getenv("GO_WANT_HELPER_PROCESS") != "1" {
		return
	}
	switch os.Getenv("FFMPEG_HELPER_MODE") {
	case "success":
		// Mimic ffmpeg: diagnostics on their own lines, status lines
		// redrawn with carriage returns, one stale timestamp, and a
		// final report that stops short of the full duration.
		fmt.Fprint(os.Stderr, "Stream mapping: Stream #0:0 -> #0:0 (h264 (native) -> hevc (libx265))\n")
		fmt.Fprint(os.Stderr, "frame=   50 fps= 25 q=28.0 size=     128kB time=00:00:02.00 bitrate= 524.3kbits/s speed=1.9x\r")
		fmt.Fprint(os.Stderr, "frame=  100 fps= 25 q=28.0 size=     256kB time=00:00:04.00 bitrate= 524.3kbits/s speed=1.9x\r")
		fmt.Fprint(os.Stderr, "[libx265 @ 0x5c0] frame I:1 Avg QP:27.43\n")
		fmt.Fprint(os.Stderr, "frame=   88 fps= 25 q=28.0 size=     224kB time=00:00:03.50 bitrate= 524.3kbits/s speed=1.9x\r")
		fmt.Fprint(os.Stderr, "frame=  198 fps= 25 q=28.0 size=     500kB time=00:00:07.92 bitrate= 517.1kbits/s speed=2.0x\n")
		os.Exit(0)
	case "fail":
		fmt.Fprint(os.Stderr, "frame=   50 fps= 25 q=28.0 size=     128kB time=00:00:02.00 bitrate= 524.3kbits/s speed=1.9x\r")
		fmt.Fprint(os.Stderr, "[mp4 @ 0x55e] Could not find tag for codec hevc in stream #0\n")
		fmt.Fprint(os.Stderr, "Conversion failed!\n")
		os.Exit(3)
	case "hang":
		fmt.Fprint(os.Stderr, "frame=   10 fps= 25 q=28.0 size=      32kB time=00:00:01.00 bitrate= 262.1kbits/s speed=1.0x\n")
		time.Sleep(30 * time.Second)
		os.Exit(0)
	}
	os.Exit(0)
}
