package main

import (
	"io"
	"os"

	"log/slog"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"

	"vidsqueeze/internal/logging"
)

// progressSink renders transcode progress. On a terminal it drives a live
// progress bar; otherwise it logs percentage milestones so piped output
// stays readable.
type progressSink struct {
	bar        *progressbar.ProgressBar
	logger     *slog.Logger
	total      float64
	lastLogged float64
}

func newProgressSink(logger *slog.Logger, out io.Writer, totalSeconds float64) *progressSink {
	sink := &progressSink{logger: logger, total: totalSeconds}
	if file, ok := out.(*os.File); ok && (isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())) {
		// The bar counts milliseconds so fractional seconds still move it.
		sink.bar = progressbar.NewOptions64(int64(totalSeconds*1000),
			progressbar.OptionSetDescription("Processing video"),
			progressbar.OptionSetWriter(out),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowElapsedTimeOnFinish(),
			progressbar.OptionSetPredictTime(true),
			progressbar.OptionClearOnFinish(),
		)
	}
	return sink
}

// Update consumes one elapsed-seconds value from the runner. Values arrive
// already clamped and monotonically non-decreasing.
func (p *progressSink) Update(elapsed float64) {
	if p.bar != nil {
		_ = p.bar.Set64(int64(elapsed * 1000))
		return
	}
	if p.total <= 0 {
		return
	}
	percent := elapsed / p.total * 100
	if percent-p.lastLogged >= 10 || percent >= 100 {
		p.lastLogged = percent
		p.logger.Info("transcode progress",
			logging.Float64("percent", percent),
			logging.Float64("elapsed_seconds", elapsed),
		)
	}
}

// Close releases the terminal line. It does not force the bar to 100%; the
// runner is responsible for the final update on success.
func (p *progressSink) Close() {
	if p.bar != nil {
		_ = p.bar.Exit()
	}
}
