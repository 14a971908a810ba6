package file

import (
	"context"
	"mime"
	"path"
	"strings"
)

// Walker lists files below a directory.
type Walker interface {
	// Walk returns every file below dir, recursively, as slash-separated paths
	// that start with dir. A missing dir yields no paths and no error.
	Walk(ctx context.Context, dir string) ([]string, error)
}

// Storage interface for different backends.
type Storage interface {
	Walker
	// Exists checks if a file exists.
	Exists(ctx context.Context, path string) bool
	// ReadFile returns the full content of a file.
	ReadFile(ctx context.Context, path string) ([]byte, error)
	// WriteFile stores data at path, replacing any previous content.
	WriteFile(ctx context.Context, path string, data []byte) error
}

// ContentType guesses the MIME type of a path from its extension.
func ContentType(p string) string {
	ext := strings.ToLower(path.Ext(p))
	if ext == ".json" {
		return "application/json"
	}
	if t := mime.TypeByExtension(ext); t != "" {
		return t
	}
	return "application/octet-stream"
}
