package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"log/slog"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"vidsqueeze/internal/config"
	"vidsqueeze/internal/ffmpeg"
	"vidsqueeze/internal/history"
	"vidsqueeze/internal/logging"
	"vidsqueeze/internal/media/ffprobe"
	"vidsqueeze/internal/report"
	"vidsqueeze/internal/roi"
)

func newCompressCommand(ctx *commandContext) *cobra.Command {
	var fps int
	var cut float64
	var resolution string
	var codec string
	var removeAudio bool
	var overwrite bool
	var cropFlag string

	cmd := &cobra.Command{
		Use:   "compress INPUT OUTPUT",
		Short: "Transcode a video into a smaller file",
		Long: `Compress probes the input with ffprobe, drives an ffmpeg transcode with a
live progress indicator, and reports how much smaller the result is. Flags
left unset fall back to the [defaults] section of the configuration file.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger := ctx.ensureLogger()

			if !cmd.Flags().Changed("fps") {
				fps = cfg.Defaults.FPS
			}
			if !cmd.Flags().Changed("resolution") {
				resolution = cfg.Defaults.Resolution
			}
			if !cmd.Flags().Changed("codec") {
				codec = cfg.Defaults.Codec
			}
			if !cmd.Flags().Changed("overwrite") {
				overwrite = cfg.Defaults.Overwrite
			}

			if fps <= 0 {
				return fmt.Errorf("fps must be positive, got %d", fps)
			}
			if cut < 0 {
				return fmt.Errorf("cut must not be negative, got %v", cut)
			}

			var selector roi.Selector = roi.None{}
			if cropFlag != "" {
				static, err := roi.ParseStatic(cropFlag)
				if err != nil {
					return err
				}
				selector = static
			}

			req := ffmpeg.Request{
				InputPath:    args[0],
				OutputPath:   args[1],
				FPS:          fps,
				SecondsToCut: cut,
				Resolution:   ffmpeg.Resolution(resolution),
				Overwrite:    overwrite,
				RemoveAudio:  removeAudio,
				Codec:        codec,
			}

			runCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runCompress(runCtx, cfg, logger, cmd.OutOrStdout(), req, selector)
		},
	}

	cmd.Flags().IntVar(&fps, "fps", 0, "Output frame rate")
	cmd.Flags().Float64Var(&cut, "cut", 0, "Seconds to remove from the end of the video")
	cmd.Flags().StringVar(&resolution, "resolution", "", "Output resolution tier: low, medium, or high")
	cmd.Flags().StringVar(&codec, "codec", "", "Video encoder handed to ffmpeg")
	cmd.Flags().BoolVar(&removeAudio, "remove-audio", false, "Drop the audio stream entirely")
	cmd.Flags().BoolVar(&overwrite, "overwrite", true, "Replace an existing output file")
	cmd.Flags().StringVar(&cropFlag, "crop", "", "Crop region as W:H or W:H:X:Y in source pixels")

	return cmd
}

func runCompress(ctx context.Context, cfg *config.Config, logger *slog.Logger, out io.Writer, req ffmpeg.Request, selector roi.Selector) error {
	// Two runs writing the same output would interleave ffmpeg's work and
	// corrupt the file; fail fast instead.
	lock := flock.New(req.OutputPath + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire output lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("another vidsqueeze run is already writing %s", req.OutputPath)
	}
	defer func() { _ = lock.Unlock() }()

	inputInfo, err := ffprobe.Probe(ctx, cfg.Tools.FFprobe, req.InputPath)
	if err != nil {
		return err
	}

	rect, err := selector.Select(ctx, req.InputPath)
	if err != nil {
		return fmt.Errorf("select crop region: %w", err)
	}
	req.Crop = rect

	// Builder validation happens here, before any subprocess is spawned.
	tokens, err := ffmpeg.Build(cfg.Tools.FFmpeg, req, inputInfo.DurationSeconds)
	if err != nil {
		return err
	}
	clipSeconds := inputInfo.DurationSeconds - req.SecondsToCut

	logger.Info("starting transcode",
		logging.String("input", req.InputPath),
		logging.String("output", req.OutputPath),
		logging.Float64("clip_seconds", clipSeconds),
		logging.Int64("input_bytes", inputInfo.SizeBytes),
	)

	sink := newProgressSink(logger, out, clipSeconds)
	started := time.Now()
	runner := ffmpeg.NewRunner(logger)
	runErr := runner.Run(ctx, tokens, clipSeconds, sink.Update)
	sink.Close()
	wallSeconds := time.Since(started).Seconds()

	record := history.Record{
		InputPath:   req.InputPath,
		OutputPath:  req.OutputPath,
		InputBytes:  inputInfo.SizeBytes,
		ClipSeconds: clipSeconds,
		WallSeconds: wallSeconds,
	}

	if runErr != nil {
		record.Status = history.StatusFailed
		if errors.Is(runErr, context.Canceled) {
			record.Status = history.StatusCanceled
		}
		record.Error = runErr.Error()
		recordRun(ctx, cfg, logger, record)
		return runErr
	}

	outputInfo, err := ffprobe.Probe(ctx, cfg.Tools.FFprobe, req.OutputPath)
	if err != nil {
		record.Status = history.StatusFailed
		record.Error = err.Error()
		recordRun(ctx, cfg, logger, record)
		return err
	}

	summary, err := report.Summarize(inputInfo.SizeBytes, outputInfo.SizeBytes)
	if err != nil {
		return err
	}

	record.Status = history.StatusCompleted
	record.OutputBytes = outputInfo.SizeBytes
	record.PercentSaved = summary.Percent
	recordRun(ctx, cfg, logger, record)

	logger.Info("transcode finished",
		logging.Int64("output_bytes", outputInfo.SizeBytes),
		logging.Float64("percent_saved", summary.Percent),
		logging.Duration("wall_time", time.Since(started)),
	)

	fmt.Fprintln(out, summary.String())
	fmt.Fprintln(out, renderTable(
		[]string{"Metric", "Value"},
		summary.Rows(),
		[]columnAlignment{alignLeft, alignRight},
	))
	return nil
}

// recordRun persists the outcome on a best-effort basis: a broken history
// database should never turn a finished transcode into a failure.
func recordRun(ctx context.Context, cfg *config.Config, logger *slog.Logger, record history.Record) {
	store, err := history.Open(cfg.Paths.HistoryDB)
	if err != nil {
		logger.Warn("history unavailable", logging.Error(err))
		return
	}
	defer store.Close()

	// Use a fresh context so a cancelled run still gets recorded.
	recordCtx := context.WithoutCancel(ctx)
	if _, err := store.Add(recordCtx, record); err != nil {
		logger.Warn("failed to record run", logging.Error(err))
	}
}
