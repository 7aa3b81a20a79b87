package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"go.toonkit.dev/toonkit/schema"
	"go.toonkit.dev/toonkit/toon"
	"go.toonkit.dev/toonkit/toonio"
)

func newValidateCmd(codecCfg *toon.FlagConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <schema.yaml> <data>",
		Short: "Validate a document against a schema",
		Long: `validate loads a YAML schema document and validates the data file (TOON,
JSON, or YAML) against it. The schema document declares one schema:

    array: users
    strict: true
    fields:
      - name: id
        type: integer
        min: 1
      - name: name
        type: string

or several under a top-level "schemas" key.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			schemaData, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading schema: %w", err)
			}

			multi, err := schema.ParseYAML(schemaData)
			if err != nil {
				return err
			}

			doc, err := toonio.ReadFile(args[1],
				toonio.WithCodecOptions(codecCfg.Options()...))
			if err != nil {
				return err
			}

			if err := multi.Validate(doc); err != nil {
				return fmt.Errorf("%s: %w", args[1], err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: valid\n", args[1])

			return nil
		},
	}
}

func newInferCmd(codecCfg *toon.FlagConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "infer <data> <array>",
		Short: "Infer a schema from data and print it as JSON Schema",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := toonio.ReadFile(args[0],
				toonio.WithCodecOptions(codecCfg.Options()...))
			if err != nil {
				return err
			}

			inferred, err := schema.Infer(doc, args[1])
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(inferred.JSONSchema(), "", "  ")
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), string(out))

			return nil
		},
	}
}
