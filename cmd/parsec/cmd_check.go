package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/dhamidi/parsec/kv"
	"github.com/dhamidi/parsec/parse"
	"github.com/dhamidi/parsec/workspace"
)

func newCheckCmd(a *app) *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "check [path...]",
		Short: "Report syntax errors in kv files",
		Long: `Parse kv files and report syntax errors as file:line:column diagnostics.

Directories are scanned recursively for files with the configured extensions.
With --watch, a single directory is polled and diagnostics are printed
whenever a file changes.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"."}
			}
			out := cmd.OutOrStdout()

			if watch {
				if len(args) != 1 {
					return fmt.Errorf("--watch takes a single directory")
				}
				return watchDir(cmd, a, args[0])
			}

			failed := 0
			for _, path := range args {
				files, err := scanPath(a, path)
				if err != nil {
					return err
				}
				for _, f := range files {
					if printDiagnostic(out, f) {
						failed++
					}
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d file(s) with syntax errors", failed)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&watch, "watch", false, "keep polling the directory for changes")

	return cmd
}

func scanPath(a *app, path string) ([]*workspace.File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("check: %w", err)
	}
	if !info.IsDir() {
		ws := workspace.New(".", a.cfg.LSP.Extensions)
		f, err := ws.ScanFile(path)
		if err != nil {
			return nil, err
		}
		return []*workspace.File{f}, nil
	}

	ws := workspace.New(path, a.cfg.LSP.Extensions)
	if err := ws.ScanAll(); err != nil {
		return nil, err
	}
	return ws.Files(), nil
}

// printDiagnostic reports the syntax error of f, if any.
func printDiagnostic(w io.Writer, f *workspace.File) bool {
	var serr *kv.SyntaxError
	if !errors.As(f.Err, &serr) {
		return false
	}
	fmt.Fprintf(w, "%s:%s: %s\n", f.Path, serr.Position, parse.DescribeExpected(serr.Expected))
	return true
}

func watchDir(cmd *cobra.Command, a *app, dir string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	out := cmd.OutOrStdout()
	w := workspace.NewWatcher(workspace.New(dir, a.cfg.LSP.Extensions), a.cfg.Watch.Interval)
	w.OnChange = func(path string, f *workspace.File) {
		switch {
		case f == nil:
			fmt.Fprintf(out, "%s: removed\n", path)
		case !printDiagnostic(out, f):
			fmt.Fprintf(out, "%s: ok\n", path)
		}
	}

	w.Start()
	<-ctx.Done()
	w.Stop()
	return nil
}
