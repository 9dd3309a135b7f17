package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dhamidi/parsec/parse"
)

func newTryCmd() *cobra.Command {
	var complete bool

	cmd := &cobra.Command{
		Use:   "try <parser> <input>",
		Short: "Run a single parser against an input and show the raw result",
		Long: `Run a parser against an input and show the value, the bytes consumed and
the expectations reported by the parser.

Parsers:
  uint, int, hex, signed-hex, eof
  tag:<literal>
  regex:<pattern>
  many0:<parser>, many1:<parser>, opt:<parser>

Use --complete to require the parser to consume the whole input.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parserFor(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			input := args[1]

			if complete {
				v, perr := parse.Completed(p)(input).Unpack()
				if perr != nil {
					return fmt.Errorf("%w (remaining %q)", perr, perr.Remaining(input))
				}
				fmt.Fprintf(out, "value:    %s\n", v)
				return nil
			}

			printResult(out, input, p(input))
			return nil
		},
	}

	cmd.Flags().BoolVar(&complete, "complete", false, "require the whole input to match")

	return cmd
}

// parserFor builds a parser from its command line name. Values are rendered
// as strings so that every parser has the same type.
func parserFor(name string) (parse.Parser[string], error) {
	kind, arg, _ := strings.Cut(name, ":")
	switch kind {
	case "uint":
		return render(parse.Uint), nil
	case "int":
		return render(parse.Int), nil
	case "hex":
		return render(parse.Hex), nil
	case "signed-hex":
		return render(parse.SignedHex), nil
	case "eof":
		return parse.Value(parse.EOF, "EOF"), nil
	case "tag":
		if arg == "" {
			return nil, fmt.Errorf("tag: empty literal")
		}
		return parse.Tag(arg), nil
	case "regex":
		return safeRegex(arg)
	case "many0", "many1", "opt":
		inner, err := parserFor(arg)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", kind, err)
		}
		switch kind {
		case "many0":
			return render(parse.Many0(inner)), nil
		case "many1":
			return render(parse.Many1(inner)), nil
		default:
			return render(parse.Opt(inner)), nil
		}
	}
	return nil, fmt.Errorf("unknown parser %q", name)
}

func render[T any](p parse.Parser[T]) parse.Parser[string] {
	return parse.Map(p, func(v T) string { return fmt.Sprint(v) })
}

func safeRegex(pattern string) (p parse.Parser[string], err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("regex %q: %v", pattern, r)
		}
	}()
	return parse.Regex(pattern), nil
}

func printResult(w io.Writer, input string, r parse.Result[string]) {
	if v, ok := r.Value(); ok {
		fmt.Fprintf(w, "value:    %s\n", v)
		fmt.Fprintf(w, "consumed: %d\n", r.Consumed())
		fmt.Fprintf(w, "rest:     %q\n", input[r.Consumed():])
	} else if r.IsFatal() {
		fmt.Fprintf(w, "fatal:    after %d bytes\n", r.Consumed())
	} else {
		fmt.Fprintln(w, "failed:   recoverable")
	}
	if expected := r.Expectations(); len(expected) > 0 {
		fmt.Fprintf(w, "expected: %s\n", quoteAll(expected))
	}
}

func quoteAll(labels []string) string {
	quoted := make([]string, len(labels))
	for i, l := range labels {
		quoted[i] = fmt.Sprintf("%q", l)
	}
	return strings.Join(quoted, ", ")
}
