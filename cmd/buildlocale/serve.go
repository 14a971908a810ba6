package main

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/buildlocale/pkg/preview"
)

func newServeCmd(a *app) *cobra.Command {
	var (
		flags buildFlags
		addr  string
	)
	cmd := &cobra.Command{
		Use:   "serve [patterns...]",
		Short: "Build bundles in memory and serve them over HTTP",
		Long: `Build every target into memory and serve the result:

  GET  /          index of generated files
  GET  /{path}    bundle content, e.g. /dist/en.locale.json
  POST /rebuild   rebuild from the current sources

Nothing is written to disk.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			jobs, err := flags.jobs(cmd.Flags(), args)
			if err != nil {
				return err
			}
			src, err := a.storage(cmd.Context(), flags.source)
			if err != nil {
				return err
			}

			store := preview.NewStore()
			rebuild := func(ctx context.Context) error {
				next := preview.NewStore()
				for _, j := range jobs {
					if _, err := a.build(ctx, j, src, next); err != nil {
						return err
					}
				}
				store.Replace(next)
				return nil
			}
			if err := rebuild(cmd.Context()); err != nil {
				return err
			}

			srv := preview.NewServer(
				preview.WithAddr(addr),
				preview.WithLogger(a.log),
				preview.WithStartHook(func(l *slog.Logger) {
					l.Info("serving bundles", slog.Int("files", len(store.Files())))
				}),
			)
			return srv.Run(cmd.Context(), preview.NewHandler(store, a.log, rebuild))
		},
	}
	flags.register(cmd.Flags())
	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8080", "listen address")
	return cmd
}
