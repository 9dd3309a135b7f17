package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"

	"github.com/dhamidi/parsec/config"
)

const version = "0.1.0"

type app struct {
	configPath string
	verbose    int
	cfg        config.Config
}

func main() {
	a := &app{cfg: config.Default()}

	rootCmd := &cobra.Command{
		Use:               "parsec",
		Short:             "Parser combinator playground and kv language tools",
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "configuration file (default ./"+config.DefaultFile+" if present)")
	rootCmd.PersistentFlags().CountVarP(&a.verbose, "verbose", "v", "increase log verbosity (repeatable)")

	rootCmd.AddCommand(newTryCmd())
	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newCheckCmd(a))
	rootCmd.AddCommand(newFmtCmd())
	rootCmd.AddCommand(newGrammarCmd())
	rootCmd.AddCommand(newLSPCmd(a))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	var logFile *string
	if cfg.Log.File != "" {
		logFile = &cfg.Log.File
	}
	commonlog.Configure(cfg.Log.Verbosity+a.verbose, logFile)
	commonlog.GetLogger("parsec").Debugf("configuration: %+v", cfg)
	return nil
}

func readInput(args []string) (name string, source []byte, err error) {
	if len(args) == 0 || args[0] == "-" {
		source, err = io.ReadAll(os.Stdin)
		if err != nil {
			return "", nil, fmt.Errorf("read stdin: %w", err)
		}
		return "<stdin>", source, nil
	}
	source, err = os.ReadFile(args[0])
	if err != nil {
		return "", nil, fmt.Errorf("read file: %w", err)
	}
	return args[0], source, nil
}
