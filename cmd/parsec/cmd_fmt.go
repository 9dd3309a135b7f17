package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/parsec/kv"
)

func newFmtCmd() *cobra.Command {
	var fmtOverwrite bool

	cmd := &cobra.Command{
		Use:   "fmt [file]",
		Short: "Print a kv file in canonical form",
		Long: `Print a kv file in canonical form to stdout.

If no file is provided, reads kv source from stdin.

Use -w to overwrite the file in place (requires a file argument).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if fmtOverwrite && len(args) == 0 {
				return fmt.Errorf("-w requires a file argument")
			}

			name, source, err := readInput(args)
			if err != nil {
				return err
			}

			doc, err := kv.Parse(string(source))
			if err != nil {
				return fmt.Errorf("%s:%w", name, err)
			}
			output := kv.Format(doc)

			if fmtOverwrite {
				return os.WriteFile(name, output, 0644)
			}
			_, err = cmd.OutOrStdout().Write(output)
			return err
		},
	}

	cmd.Flags().BoolVarP(&fmtOverwrite, "write", "w", false, "overwrite the file in place")

	return cmd
}
