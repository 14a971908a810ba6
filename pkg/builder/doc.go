// Package builder collects locale fragments and publishes one bundle per locale.
//
// A Builder is wired with collaborators rather than concrete I/O:
//
//   - Lister enumerates input paths (GlobLister expands glob patterns)
//   - Source checks and reads input files
//   - Sink writes bundles and the optional manifest
//
// Run executes the whole pipeline:
//
//  1. list inputs, warning about and skipping paths that do not exist
//  2. detect each input's locale from its filename (fatal on failure)
//  3. skip locales excluded by a non-empty whitelist
//  4. parse the fragment, namespace its keys when enabled, and deep-merge it
//     into the bundle for its locale, in input order
//  5. fail with ErrNoOutput when no bundle was populated
//  6. write every bundle at the path built by locale.Namer
//
// Usage:
//
//	store, _ := file.NewLocalStorage(".")
//	b := builder.New(opts, builder.GlobLister{Walker: store, Patterns: src}, store, store,
//	    builder.WithLogger(log),
//	)
//	res, err := b.Run(ctx)
//
// Outputs written before a fatal error are not rolled back.
package builder
