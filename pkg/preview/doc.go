// Package preview serves generated locale bundles over HTTP.
//
// Bundles are built into an in-memory Store (a builder.Sink) and exposed by a
// chi router:
//
//	GET  /          JSON index of the generated files
//	GET  /health    liveness check
//	GET  /{path}    raw file content, by the path it was written to
//	POST /rebuild   runs the build again (only when a Rebuilder is given)
//
// Every response carries an X-Request-ID header; the id is also stored in the
// request context (see RequestIDExtractor for logging).
//
// Server wraps http.Server with graceful shutdown on context cancellation or
// SIGINT/SIGTERM:
//
//	store := preview.NewStore()
//	srv := preview.NewServer(preview.WithAddr(":8080"), preview.WithLogger(log))
//	err := srv.Run(ctx, preview.NewHandler(store, log, rebuild))
package preview
