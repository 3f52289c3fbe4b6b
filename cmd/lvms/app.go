package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvms/internal/config"
	"github.com/katalvlaran/lvms/internal/logging"
	"github.com/katalvlaran/lvms/internal/report"
)

// app is the state shared by every subcommand once flags are parsed.
type app struct {
	loaderOpts []config.LoaderOption

	configPath string
	logLevel   string
	output     string
	noColor    bool

	loader *config.Loader
	cfg    *config.Config
	logger *slog.Logger
	format report.Format
}

func rootCmd() *cobra.Command {
	return newRootCmd()
}

func newRootCmd(loaderOpts ...config.LoaderOption) *cobra.Command {
	a := &app{loaderOpts: loaderOpts}

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Annotated peptide sequences and fragment ions",
		Long: `lvms parses annotated peptide sequences such as

  [Acetyl]-PEPT[Phospho]IDE

into a plain residue sequence and a slot map of modification tokens, and
lists the fragment ion ladders (a/b/c and x/y/z series) of the modified
peptide with their masses.

Configuration is read from ~/.config/lvms/config.yaml, then lvms.yaml in
the working directory or a parent, then --config.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return a.setup(cmd) },
	}

	cmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Config file path (YAML)")
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVarP(&a.output, "output", "o", "text", "Output format (text, json, yaml)")
	cmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable coloured modification tokens")

	cmd.AddCommand(
		parseCmd(a),
		fragmentsCmd(a),
		sitesCmd(a),
		configCmd(a),
		versionCmd(),
	)

	return cmd
}

// setup loads configuration and builds the logger. --log-level wins over
// the configured level.
func (a *app) setup(cmd *cobra.Command) error {
	format, err := report.ParseFormat(a.output)
	if err != nil {
		return err
	}
	a.format = format

	boot, err := logging.New(cmd.ErrOrStderr(), a.logLevel, logging.FormatText)
	if err != nil {
		return err
	}

	a.loader = config.NewLoader(boot, a.loaderOpts...)
	cfg, err := a.loader.Load(a.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	a.cfg = cfg

	level := cfg.Log.Level
	if a.logLevel != "" {
		level = a.logLevel
	}
	a.logger, err = logging.New(cmd.ErrOrStderr(), level, cfg.Log.Format)
	if err != nil {
		return err
	}
	a.logger.Debug("Configuration loaded",
		slog.String("convention", cfg.Codec.Convention),
		slog.String("tolerance", cfg.Mass.Tolerance),
		slog.Int("modifications", len(cfg.Modifications)))

	return nil
}

func (a *app) writer(cmd *cobra.Command) *report.Writer {
	var opts []report.Option
	if a.noColor {
		opts = append(opts, report.WithColor(false))
	}
	return report.NewWriter(cmd.OutOrStdout(), a.format, opts...)
}
