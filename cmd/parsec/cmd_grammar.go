package main

import (
	"fmt"
	"os"
	"reflect"

	"github.com/spf13/cobra"
	"golang.org/x/exp/ebnf"

	"github.com/dhamidi/parsec/kv"
)

func newGrammarCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grammar",
		Short: "Print the EBNF grammar of the kv language",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprint(cmd.OutOrStdout(), kv.Grammar())
			return err
		},
	}

	cmd.AddCommand(newGrammarCheckCmd())

	return cmd
}

func newGrammarCheckCmd() *cobra.Command {
	var startProduction string

	cmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Parse and verify an EBNF grammar file (the kv grammar by default)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				if err := kv.VerifyGrammar(); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "kv grammar ok")
				return nil
			}

			filename := args[0]
			f, err := os.Open(filename)
			if err != nil {
				return fmt.Errorf("open file: %w", err)
			}
			defer f.Close()

			grammar, err := ebnf.Parse(filename, f)
			if err != nil {
				printErrors(cmd, err)
				return err
			}

			if startProduction == "" {
				return nil
			}
			if err := ebnf.Verify(grammar, startProduction); err != nil {
				printErrors(cmd, err)
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&startProduction, "start", "", "start production for verification (if empty, only checks syntax)")

	return cmd
}

// printErrors prints each error of an ebnf error list on its own line.
func printErrors(cmd *cobra.Command, err error) {
	out := cmd.ErrOrStderr()
	v := reflect.ValueOf(err)
	if v.Kind() == reflect.Slice {
		for i := 0; i < v.Len(); i++ {
			fmt.Fprintln(out, v.Index(i).Interface())
		}
	} else {
		fmt.Fprintln(out, err)
	}
}
