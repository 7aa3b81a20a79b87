// Command toon converts, validates, and inspects TOON documents.
//
// TOON (Token-Oriented Object Notation) declares an array's field list
// once in a block header and emits each record as one comma-separated
// row, which makes uniform record arrays substantially smaller than
// JSON.
//
// # Usage
//
//	toon convert users.json users.toon
//	toon batch ./data --from json --to toon
//	toon validate schema.yaml users.toon
//	toon infer users.toon users
//	toon stats users.toon
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"go.toonkit.dev/toonkit/log"
	"go.toonkit.dev/toonkit/toon"
	"go.toonkit.dev/toonkit/version"
)

func main() {
	logCfg := log.NewConfig()
	codecCfg := toon.NewFlagConfig()

	rootCmd := &cobra.Command{
		Use:   "toon",
		Short: "Convert, validate, and inspect TOON documents",
		Long: `toon works with TOON (Token-Oriented Object Notation) documents: a compact
line-oriented encoding for uniform record arrays. It converts between TOON,
JSON, and YAML, validates documents against schemas, infers schemas from
data, and reports size savings against JSON.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			handler, err := logCfg.NewHandler(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			slog.SetDefault(slog.New(handler))

			return nil
		},
	}

	logCfg.RegisterFlags(rootCmd.PersistentFlags())
	codecCfg.RegisterFlags(rootCmd.PersistentFlags())

	completionErr := logCfg.RegisterCompletions(rootCmd)
	if completionErr != nil {
		fmt.Fprintf(os.Stderr, "register completions: %v\n", completionErr)
	}

	rootCmd.AddCommand(
		newConvertCmd(codecCfg),
		newBatchCmd(codecCfg),
		newValidateCmd(codecCfg),
		newInferCmd(codecCfg),
		newStatsCmd(codecCfg),
		newVersionCmd(),
	)

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
