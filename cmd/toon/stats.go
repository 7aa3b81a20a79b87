package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"go.toonkit.dev/toonkit/toon"
	"go.toonkit.dev/toonkit/toonio"
)

func newStatsCmd(codecCfg *toon.FlagConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "stats <file...>",
		Short: "Report document sizes against the JSON rendering",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				stats, err := toonio.Stats(path,
					toonio.WithCodecOptions(codecCfg.Options()...))
				if err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(),
					"%s: %d bytes (%s, %d lines), toon %d bytes, json %d bytes, savings %.1f%%\n",
					stats.Path, stats.SizeBytes, stats.Format, stats.Lines,
					stats.TOONBytes, stats.JSONBytes, stats.SavingsPercent)
			}

			return nil
		},
	}
}
