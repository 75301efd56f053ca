package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	service "github.com/okian/benchtable/internal/app"
	"github.com/okian/benchtable/internal/config"
	"github.com/okian/benchtable/pkg/logger"
)

type rootOptions struct {
	configPath string
	verbose    bool
	dryRun     bool
	preview    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "benchtable <log-file> [verbose]",
		Short: "Rank benchmark results and patch them into readme.md",
		Long: `Parses a benchmark log (one header line per language run, followed by
"Processing time" and "memory: <n>k" lines), ranks the languages by total time
and memory, and replaces the result tables of the readme.md that sits next to
the log. Any second argument enables the verbose score dump.`,
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", "", "YAML config file (overrides BENCHTABLE_CONFIG)")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Dump every parsed score group")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Print the generated tables instead of writing the readme")
	cmd.Flags().BoolVar(&opts.preview, "preview", false, "Render the generated tables in the terminal")
	return cmd
}

func runReport(cmd *cobra.Command, opts *rootOptions, args []string) error {
	ctx := cmd.Context()

	if err := logger.Init(logger.WithWriter(cmd.ErrOrStderr())); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := config.Load(ctx, config.WithFile(opts.configPath))
	if err != nil {
		return err
	}
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		logger.Get().Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	if len(args) == 0 {
		return fmt.Errorf("%w\nusage: %s", service.ErrMissingArgument, cmd.UseLine())
	}

	svc := service.New(
		service.WithLogger(logger.Named("report")),
		service.WithConfig(cfg),
		service.WithDiagnostics(cmd.OutOrStdout()),
		service.WithVerbose(opts.verbose || len(args) > 1),
		service.WithDryRun(opts.dryRun),
	)

	rep, err := svc.Run(ctx, args[0])
	if err != nil {
		return err
	}

	md := svc.Formatter().Markdown(rep.Tables)
	switch {
	case opts.preview:
		return renderPreview(cmd.OutOrStdout(), md)
	case opts.dryRun:
		_, err := fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(md, "\n"))
		return err
	}
	return nil
}
