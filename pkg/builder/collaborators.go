package builder

import (
	"context"

	"github.com/dmitrymomot/buildlocale/pkg/file"
)

// Lister enumerates the input paths of a run in processing order.
type Lister interface {
	ListInputs(ctx context.Context) ([]string, error)
}

// Source gives access to input files.
type Source interface {
	Exists(ctx context.Context, path string) bool
	ReadFile(ctx context.Context, path string) ([]byte, error)
}

// Sink receives generated files.
type Sink interface {
	WriteFile(ctx context.Context, path string, data []byte) error
}

// GlobLister expands glob patterns against a storage backend.
type GlobLister struct {
	Walker   file.Walker
	Patterns []string
}

func (g GlobLister) ListInputs(ctx context.Context) ([]string, error) {
	return file.Glob(ctx, g.Walker, g.Patterns)
}

// Paths is a fixed list of input paths.
type Paths []string

func (p Paths) ListInputs(context.Context) ([]string, error) {
	return p, nil
}
