package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhamidi/parsec/kv"
)

func newParseCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a kv file and dump the result",
		Long: `Parse a kv file and dump the document.

Reads from stdin when no file (or "-") is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, source, err := readInput(args)
			if err != nil {
				return err
			}

			doc, err := kv.Parse(string(source))
			if err != nil {
				return fmt.Errorf("%s:%w", name, err)
			}

			var encoder kv.Encoder
			switch outputFormat {
			case "json":
				encoder = kv.NewJSONEncoder(cmd.OutOrStdout())
			case "kv":
				encoder = kv.NewTextEncoder(cmd.OutOrStdout())
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}

			if err := encoder.Encode(doc); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "output format (json, kv)")

	return cmd
}
