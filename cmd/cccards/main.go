// cccards generates a print-ready PDF of cards for the Newcastle Code Club
// game:
//
//	Who Programs The Programmers?
//
// A CSV of functions and their weighting is provided for the front of the
// cards. If double sided printing is required (e.g. for both Strudel and
// Hydra) a second CSV can be provided for the back; front and back decks
// are then balanced and the back pages mirrored so the sides line up after
// printing and flipping.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/codeclub/cccards/pkg/builder"
	"github.com/codeclub/cccards/pkg/config"
	cerrors "github.com/codeclub/cccards/pkg/errors"
)

const version = "1.0.0"

const longHelp = `Generate a PDF of cards for the Newcastle Code Club game:

    Who Programs The Programmers?

A CSV of functions and their weighting should be provided for the front of
the cards. If double sided printing is required (e.g. for both Strudel and
Hydra) you can optionally also provide a CSV for the back of the cards;
pages are then interleaved front/back for duplex printing and the wildcards
aligned to be wild on both sides.

Each CSV row is of the form "card text,weight" with no header row. The
weight is the number of that card in the deck and defaults to 1 when the
column is blank or missing.`

type options struct {
	output     string
	wildcards  int
	delimiter  string
	configPath string
	initConfig bool
	verbose    bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		cerrors.DefaultFormatter().Print(err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "cccards [flags] FRONT_CSV [BACK_CSV]",
		Short:         "Generate a printable card PDF for Who Programs The Programmers?",
		Long:          longHelp,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if opts.initConfig {
				return cobra.MaximumNArgs(0)(cmd, args)
			}
			return cobra.RangeArgs(1, 2)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.output, "output", "o", "cards.pdf", "output PDF file")
	flags.IntVarP(&opts.wildcards, "wildcards", "w", 5, "number of wildcards to generate")
	flags.StringVarP(&opts.delimiter, "delimiter", "d", ",", "character to use as field delimiter")
	flags.StringVar(&opts.configPath, "config", "", "config file path (default: ./"+config.DefaultConfigPath()+")")
	flags.BoolVar(&opts.initConfig, "init-config", false, "write a default config file and exit")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

func run(cmd *cobra.Command, opts *options, args []string) error {
	if opts.initConfig {
		path := opts.configPath
		if path == "" {
			path = config.DefaultConfigPath()
		}
		if err := config.InitConfig(path); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Config initialized at: %s\n", path)
		return nil
	}

	cfg, err := config.LoadOrDefault(opts.configPath)
	if err != nil {
		return err
	}

	// Flags override config file values only when given explicitly.
	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.Output = opts.output
	}
	if flags.Changed("wildcards") {
		cfg.Wildcards = opts.wildcards
	}
	if flags.Changed("delimiter") {
		cfg.Delimiter = opts.delimiter
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := newLogger(opts.verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	backPath := ""
	if len(args) == 2 {
		backPath = args[1]
	}
	return builder.New(cfg, logger).Run(args[0], backPath)
}

// newLogger builds a stderr logger: debug level when verbose, warnings
// and up otherwise so normal runs stay quiet.
func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	}
	return cfg.Build()
}
