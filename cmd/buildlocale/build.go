package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/dmitrymomot/buildlocale/pkg/builder"
	"github.com/dmitrymomot/buildlocale/pkg/config"
	"github.com/dmitrymomot/buildlocale/pkg/file"
	"github.com/dmitrymomot/buildlocale/pkg/logger"
)

const (
	storageLocal = "local"
	storageS3    = "s3"
)

// buildFlags holds the build option flags shared by build and serve.
type buildFlags struct {
	configPath   string
	target       string
	dest         string
	filterLocale []string
	prefix       string
	suffix       string
	namespace    bool
	stripBase    string
	force        bool
	manifest     string
	source       string
}

func (f *buildFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.configPath, "config", "c", "buildlocale.yaml", "task file")
	fs.StringVarP(&f.target, "target", "t", "", "build only this target (default: all targets)")
	fs.StringVarP(&f.dest, "dest", "d", "", "output directory (default \".\")")
	fs.StringSliceVar(&f.filterLocale, "filter-locale", nil, "only generate these locales, e.g. en,pt_BR")
	fs.StringVar(&f.prefix, "prefix", "", "output filename prefix")
	fs.StringVar(&f.suffix, "suffix", "", "output filename suffix")
	fs.BoolVar(&f.namespace, "namespace", false, "prefix keys with the fragment directory")
	fs.StringVar(&f.stripBase, "strip-namespace-base", "", "substring removed from derived namespaces")
	fs.BoolVar(&f.force, "force", false, "downgrade naming violations and empty results to warnings")
	fs.StringVar(&f.manifest, "manifest", "", "write a build manifest with this filename into the output directory")
	fs.StringVar(&f.source, "source", storageLocal, "where fragments are read from: local or s3")
}

// overrides returns the options explicitly set on the command line.
func (f *buildFlags) overrides(fs *pflag.FlagSet) config.Options {
	var o config.Options
	if fs.Changed("dest") {
		o.Dest = &f.dest
	}
	if fs.Changed("filter-locale") {
		o.FilterLocale = f.filterLocale
		if o.FilterLocale == nil {
			o.FilterLocale = []string{}
		}
	}
	if fs.Changed("prefix") {
		o.Prefix = &f.prefix
	}
	if fs.Changed("suffix") {
		o.Suffix = &f.suffix
	}
	if fs.Changed("namespace") {
		o.Namespace = &f.namespace
	}
	if fs.Changed("strip-namespace-base") {
		o.StripNamespaceBase = &f.stripBase
	}
	if fs.Changed("force") {
		o.Force = &f.force
	}
	if fs.Changed("manifest") {
		o.Manifest = &f.manifest
	}
	return o
}

// job is one resolved target.
type job struct {
	name string
	src  []string
	opts builder.Options
}

// jobs resolves the targets to build. Positional patterns replace the task
// file sources; the task file is then optional unless --config was given.
func (f *buildFlags) jobs(fs *pflag.FlagSet, patterns []string) ([]job, error) {
	task, err := config.LoadTask(f.configPath)
	if err != nil {
		if !errors.Is(err, config.ErrTaskFileNotFound) || fs.Changed("config") || len(patterns) == 0 {
			return nil, err
		}
		task = &config.Task{}
	}
	over := f.overrides(fs)

	if len(patterns) > 0 {
		target := config.Target{Name: "cli"}
		if f.target != "" {
			if target, err = task.Target(f.target); err != nil {
				return nil, err
			}
		}
		opts, err := task.Resolve(target, over)
		if err != nil {
			return nil, err
		}
		return []job{{name: target.Name, src: patterns, opts: opts}}, nil
	}

	targets := task.Targets
	if f.target != "" {
		t, err := task.Target(f.target)
		if err != nil {
			return nil, err
		}
		targets = []config.Target{t}
	}
	if len(targets) == 0 {
		return nil, fmt.Errorf("%w: %s defines no targets", config.ErrInvalidTaskFile, f.configPath)
	}

	jobs := make([]job, 0, len(targets))
	for _, t := range targets {
		if len(t.Src) == 0 {
			return nil, fmt.Errorf("%w: target %q has no src patterns", config.ErrInvalidTaskFile, t.Name)
		}
		opts, err := task.Resolve(t, over)
		if err != nil {
			return nil, fmt.Errorf("target %q: %w", t.Name, err)
		}
		jobs = append(jobs, job{name: t.Name, src: t.Src, opts: opts})
	}
	return jobs, nil
}

func newBuildCmd(a *app) *cobra.Command {
	var (
		flags   buildFlags
		storage string
	)
	cmd := &cobra.Command{
		Use:   "build [patterns...]",
		Short: "Build locale bundles",
		Long: `Build one bundle per locale for every target of the task file, or for
the given glob patterns. Patterns support *, **, ?, {a,b} and a leading ! to
exclude matches.

Exit status is 6 when a file breaks the naming convention or nothing was
generated, 1 on any other failure.`,
		Example: `  buildlocale build
  buildlocale build --target web --dest dist/i18n
  buildlocale build --source s3 --storage s3 --dest bundles
  buildlocale build "src/**/*.locale.json" "!src/legacy/**" --namespace --strip-namespace-base src/`,
		RunE: func(cmd *cobra.Command, args []string) error {
			jobs, err := flags.jobs(cmd.Flags(), args)
			if err != nil {
				return err
			}
			src, err := a.storage(cmd.Context(), flags.source)
			if err != nil {
				return err
			}
			sink, err := a.storage(cmd.Context(), storage)
			if err != nil {
				return err
			}
			for _, j := range jobs {
				if _, err := a.build(cmd.Context(), j, src, sink); err != nil {
					return err
				}
			}
			return nil
		},
	}
	flags.register(cmd.Flags())
	cmd.Flags().StringVar(&storage, "storage", storageLocal, "where bundles are written: local or s3")
	return cmd
}

// storage returns the backend for kind. Each backend is created once, so a
// build reading from and writing to s3 shares one client.
func (a *app) storage(ctx context.Context, kind string) (file.Storage, error) {
	switch kind {
	case storageLocal, "":
		if a.local == nil {
			local, err := file.NewLocalStorage(".")
			if err != nil {
				return nil, err
			}
			a.local = local
		}
		return a.local, nil
	case storageS3:
		if a.s3 == nil {
			s3, err := file.NewS3Storage(ctx, a.env.S3.StorageConfig())
			if err != nil {
				return nil, err
			}
			a.log.DebugContext(ctx, "using s3 storage",
				slog.String("bucket", a.env.S3.Bucket),
				slog.String("prefix", a.env.S3.Prefix),
			)
			a.s3 = s3
		}
		return a.s3, nil
	default:
		return nil, fmt.Errorf("%w: unknown storage %q", config.ErrInvalidOptions, kind)
	}
}

// build runs one job, reading inputs from src and writing bundles to sink.
func (a *app) build(ctx context.Context, j job, src file.Storage, sink builder.Sink) (*builder.Result, error) {
	log := a.log.With(logger.Target(j.name))
	start := time.Now()

	b := builder.New(j.opts,
		builder.GlobLister{Walker: src, Patterns: j.src},
		src,
		sink,
		builder.WithLogger(log),
	)
	res, err := b.Run(ctx)
	if err != nil {
		return res, fmt.Errorf("target %q: %w", j.name, err)
	}
	log.DebugContext(ctx, "target done",
		logger.RunID(res.RunID),
		logger.Count(len(res.Outputs)),
		logger.Duration(time.Since(start)),
	)
	return res, nil
}
