package preview

import (
	"bytes"
	"context"
	"path"
	"path/filepath"
	"slices"
	"strings"
	"sync"
)

// File is a stored file.
type File struct {
	Name string
	Data []byte
}

// Store keeps written files in memory, keyed by cleaned slash path.
// Rewriting a name keeps its original position.
type Store struct {
	mu    sync.RWMutex
	files map[string][]byte
	order []string
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{files: make(map[string][]byte)}
}

// WriteFile stores a copy of data under the cleaned path p.
func (s *Store) WriteFile(ctx context.Context, p string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	name := storeKey(p)

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.files[name]; !ok {
		s.order = append(s.order, name)
	}
	s.files[name] = bytes.Clone(data)
	return nil
}

// Get returns the content stored under name.
func (s *Store) Get(name string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.files[storeKey(name)]
	return data, ok
}

// storeKey turns p into a relative slash path: "./dist/en.json" and
// "/dist/en.json" both become "dist/en.json".
func storeKey(p string) string {
	return strings.TrimPrefix(path.Clean("/"+filepath.ToSlash(p)), "/")
}

// Files returns every stored file in write order.
func (s *Store) Files() []File {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]File, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, File{Name: name, Data: s.files[name]})
	}
	return out
}

// Replace swaps the content of s for the content of other.
func (s *Store) Replace(other *Store) {
	other.mu.RLock()
	files := make(map[string][]byte, len(other.files))
	for k, v := range other.files {
		files[k] = v
	}
	order := slices.Clone(other.order)
	other.mu.RUnlock()

	s.mu.Lock()
	s.files = files
	s.order = order
	s.mu.Unlock()
}
