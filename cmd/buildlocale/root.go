package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/buildlocale/pkg/config"
	"github.com/dmitrymomot/buildlocale/pkg/file"
	"github.com/dmitrymomot/buildlocale/pkg/logger"
	"github.com/dmitrymomot/buildlocale/pkg/preview"
)

const serviceName = "buildlocale"

// app carries what every command needs once flags are parsed.
type app struct {
	stdout io.Writer
	stderr io.Writer

	envFile string
	verbose bool

	env config.Env
	log *slog.Logger

	local *file.LocalStorage
	s3    *file.S3Storage
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	a := &app{stdout: stdout, stderr: stderr}
	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if err != nil {
		if a.log != nil {
			a.log.ErrorContext(ctx, "command failed", logger.Error(err))
		} else {
			fmt.Fprintln(stderr, "Error:", err)
		}
	}
	return exitCode(err)
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "buildlocale",
		Short: "Merge locale fragments into one bundle per locale",
		Long: `buildlocale collects translation fragments named [X.]L.locale.json
(L is a locale code such as "en" or "pt_BR"), deep-merges all fragments of the
same locale and writes one bundle per locale.

Targets and options are read from a YAML task file (buildlocale.yaml by
default). Command line flags override the file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup()
		},
	}

	root.PersistentFlags().StringVar(&a.envFile, "env-file", "", "load environment variables from this file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log every processed file")

	root.AddCommand(newBuildCmd(a))
	root.AddCommand(newServeCmd(a))
	root.AddCommand(newVersionCmd(a))
	return root
}

// setup loads environment settings and creates the logger.
func (a *app) setup() error {
	if a.envFile != "" {
		if err := config.LoadEnv(a.envFile); err != nil {
			return err
		}
	}
	if err := config.Load(&a.env); err != nil {
		return err
	}

	opts := []logger.Option{
		logger.WithEnvironment(a.env.Environment, serviceName),
		logger.WithOutput(a.stderr),
		logger.WithRunID(),
		logger.WithContextExtractors(preview.RequestIDExtractor()),
		// Per-file progress is debug output; it needs --verbose or LOG_LEVEL.
		logger.WithLevel(slog.LevelInfo),
	}
	if a.env.LogFormat != "" {
		f := logger.Format(a.env.LogFormat)
		if f != logger.FormatJSON && f != logger.FormatText {
			return fmt.Errorf("%w: LOG_FORMAT %q", config.ErrInvalidOptions, a.env.LogFormat)
		}
		opts = append(opts, logger.WithFormat(f))
	}
	if a.env.LogLevel != "" {
		if _, err := logger.ParseLevel(a.env.LogLevel); err != nil {
			return fmt.Errorf("%w: LOG_LEVEL: %w", config.ErrInvalidOptions, err)
		}
		opts = append(opts, logger.WithLevelName(a.env.LogLevel))
	}
	if a.verbose {
		opts = append(opts, logger.WithLevel(slog.LevelDebug))
	}
	a.log = logger.New(opts...)
	return nil
}
