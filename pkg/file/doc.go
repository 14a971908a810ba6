// Package file provides the storage backends a locale build reads fragments
// from and writes bundles to.
//
// The Storage interface covers the four operations a build needs: checking a
// path exists, reading it, writing it (creating parents as needed) and walking
// a directory tree. Two implementations are provided:
//   - LocalStorage: paths resolved against a base directory on disk
//   - S3Storage: objects in an AWS S3 (or S3-compatible) bucket
//
// Glob expands ordered include/exclude patterns against any Walker:
//
//	store, _ := file.NewLocalStorage(".")
//	paths, err := file.Glob(ctx, store, []string{"app/**/*.locale.json", "!app/legacy/**"})
//
// # Error Handling
//
// Backend errors are classified into sentinel errors such as ErrFileNotFound,
// ErrAccessDenied or ErrBucketNotFound and can be checked with errors.Is.
package file
