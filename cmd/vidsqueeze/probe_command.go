package main

import (
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"vidsqueeze/internal/media/ffprobe"
)

func newProbeCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "probe PATH",
		Short: "Show media metadata for a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			result, err := ffprobe.Inspect(cmd.Context(), cfg.Tools.FFprobe, args[0])
			if err != nil {
				return err
			}

			duration := result.DurationSeconds()
			rows := [][]string{
				{"Container", result.Format.FormatName},
				{"Duration", fmt.Sprintf("%.3f s", duration)},
				{"Size", humanize.IBytes(uint64(result.SizeBytes()))},
				{"Frames", formatFrameCount(result.FrameCount())},
				{"Video streams", strconv.Itoa(result.VideoStreamCount())},
				{"Audio streams", strconv.Itoa(result.AudioStreamCount())},
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Field", "Value"},
				rows,
				[]columnAlignment{alignLeft, alignRight},
			))
			return nil
		},
	}
}

func formatFrameCount(frames int64) string {
	if frames <= 0 {
		return "unknown"
	}
	return strconv.FormatInt(frames, 10)
}
