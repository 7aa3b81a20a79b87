package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"go.toonkit.dev/toonkit/toon"
	"go.toonkit.dev/toonkit/toonio"
)

func newConvertCmd(codecCfg *toon.FlagConfig) *cobra.Command {
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "convert <src> <dst>",
		Short: "Convert a file between TOON, JSON, and YAML",
		Long: `convert reads src, decodes it according to its extension (.toon, .json,
.yaml/.yml), and writes the re-encoded document to dst according to dst's
extension.`,
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			src, dst := args[0], args[1]

			err := toonio.ConvertFile(src, dst,
				toonio.WithCodecOptions(codecCfg.Options()...),
				toonio.WithOverwrite(overwrite))
			if err != nil {
				return err
			}

			slog.Info("converted",
				slog.String("src", src),
				slog.String("dst", dst),
			)

			return nil
		},
	}

	cmd.Flags().BoolVar(&overwrite, "overwrite", true, "replace dst if it exists")

	return cmd
}

func newBatchCmd(codecCfg *toon.FlagConfig) *cobra.Command {
	var (
		from string
		to   string
	)

	cmd := &cobra.Command{
		Use:   "batch <dir>",
		Short: "Convert every matching file in a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := toonio.BatchConvert(args[0],
				toonio.Format(from), toonio.Format(to),
				toonio.WithCodecOptions(codecCfg.Options()...))
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "converted %d files\n", count)

			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", string(toonio.FormatJSON), "source format (toon, json, yaml)")
	cmd.Flags().StringVar(&to, "to", string(toonio.FormatTOON), "target format (toon, json, yaml)")

	return cmd
}
