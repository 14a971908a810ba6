// Package logger provides a context-aware wrapper around Go's slog package
// adding functional options for configuration, helper attribute constructors,
// and transparent injection of the build run id stored in context.Context.
//
// # Architecture
//
// New determines the concrete slog.Handler implementation – slog.NewTextHandler
// or slog.NewJSONHandler – based on the configured Format and wraps it with
// LogHandlerDecorator, which executes registered ContextExtractor callbacks
// before delegating to the underlying handler. WithRunID registers the
// extractor for ids stored with ContextWithRunID.
//
// Helper constructors such as Locale, Path, Dest and Error live in attr.go and
// keep attribute naming consistent across the build pipeline.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(os.Getenv("ENV"), "buildlocale"),
//	    logger.WithRunID(),
//	)
//
//	ctx := logger.ContextWithRunID(context.Background(), runID)
//	log.DebugContext(ctx, "reading fragment",
//	    logger.Locale("en"),
//	    logger.Path("app/en.locale.json"),
//	)
//
// # Error Handling
//
// Error produces an attribute only when the supplied error value is non-nil:
//
//	log.Warn("skipping input", logger.Error(err))
package logger
