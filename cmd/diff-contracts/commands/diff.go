package commands

import (
	"fmt"
	"os"

	"github.com/erraggy/contractdiff/differ"
	"github.com/erraggy/contractdiff/internal/cliutil"
	"github.com/erraggy/contractdiff/internal/config"
	"github.com/erraggy/contractdiff/internal/logging"
	"github.com/erraggy/contractdiff/loader"
	"github.com/erraggy/contractdiff/report"
	"github.com/spf13/cobra"
)

// diffFlags holds the flags of the diff (root) command.
type diffFlags struct {
	oldSpec    string
	newSpec    string
	format     string
	output     string
	configPath string
	logLevel   string
	strict     bool
	validate   bool
}

func (f *diffFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.oldSpec, "old-spec", config.DefaultOldSpec, "path to the baseline OpenAPI JSON contract")
	fs.StringVar(&f.newSpec, "new-spec", "", "path to the candidate OpenAPI JSON contract (required)")
	fs.StringVar(&f.format, "format", report.FormatText, "report format: text, json or yaml")
	fs.StringVar(&f.output, "output", "", "write the report to this file instead of stdout")
	fs.BoolVar(&f.strict, "strict", false, "record strict mode in the report metadata")
	fs.BoolVar(&f.validate, "validate", false, "warn when a contract is not a valid OpenAPI 3 document")
	fs.StringVar(&f.configPath, "config", "", "config file (default "+config.DefaultFileName+" when present)")
	fs.StringVar(&f.logLevel, "log-level", config.DefaultLogLevel, "log level: debug, info, warn or error")
	_ = cmd.MarkFlagRequired("new-spec")
}

// resolve merges flags that were set explicitly over the loaded configuration.
func (f *diffFlags) resolve(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(f.configPath, os.Getenv)
	if err != nil {
		return nil, err
	}

	fs := cmd.Flags()
	if fs.Changed("old-spec") {
		cfg.OldSpec = f.oldSpec
	}
	if fs.Changed("format") {
		cfg.Format = f.format
	}
	if fs.Changed("strict") {
		cfg.Strict = f.strict
	}
	if fs.Changed("validate") {
		cfg.Validate = f.validate
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = f.logLevel
	}

	if err := report.ValidateFormat(cfg.Format); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runDiff(cmd *cobra.Command, flags *diffFlags) error {
	cfg, err := flags.resolve(cmd)
	if err != nil {
		return err
	}

	zl, err := logging.New(cfg.LogLevel, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer func() { _ = zl.Sync() }()
	log := logging.NewAdapter(zl)

	for _, w := range cfg.Warnings {
		log.Warn("ignoring environment override", "detail", w)
	}
	if cfg.Source != "" {
		log.Debug("loaded configuration", "path", cfg.Source)
	}

	if flags.output != "" {
		if err := cliutil.ValidateOutputPath(flags.output, []string{cfg.OldSpec, flags.newSpec}, cmd.ErrOrStderr()); err != nil {
			return err
		}
	}

	r, err := differ.DiffWithOptions(
		differ.WithOldFilePath(cfg.OldSpec),
		differ.WithNewFilePath(flags.newSpec),
		differ.WithStrictMode(cfg.Strict),
		differ.WithLogger(log),
		differ.WithLoaderOptions(
			loader.WithValidation(cfg.Validate),
			loader.WithContext(cmd.Context()),
		),
	)
	if err != nil {
		return err
	}

	out, err := report.Format(r, cfg.Format)
	if err != nil {
		return err
	}

	if flags.output != "" {
		if err := cliutil.WriteOutput(flags.output, out); err != nil {
			return err
		}
		log.Info("report written", "path", flags.output, "format", cfg.Format)
	} else {
		cliutil.Writef(cmd.OutOrStdout(), "%s\n", out)
	}

	if report.ExitCode(r) != report.ExitOK {
		return fmt.Errorf("%w: %d", errBreakingChanges, r.Summary.BreakingChanges)
	}
	return nil
}
