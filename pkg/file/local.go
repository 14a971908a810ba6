package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
)

// LocalStorage implements Storage for the local filesystem.
// Relative paths are resolved against baseDir, absolute paths are used as given.
type LocalStorage struct {
	baseDir  string
	dirPerm  fs.FileMode
	filePerm fs.FileMode
}

// LocalOption defines a function that configures LocalStorage.
type LocalOption func(*LocalStorage)

// WithPermissions sets the modes used for created directories and files.
func WithPermissions(dir, file fs.FileMode) LocalOption {
	return func(s *LocalStorage) {
		s.dirPerm = dir
		s.filePerm = file
	}
}

// NewLocalStorage creates a new local filesystem storage rooted at baseDir.
func NewLocalStorage(baseDir string, opts ...LocalOption) (*LocalStorage, error) {
	if baseDir == "" {
		return nil, ErrInvalidConfig
	}

	absBaseDir, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to resolve base directory: %v", ErrFailedToGetAbsolutePath, err)
	}

	s := &LocalStorage{
		baseDir:  absBaseDir,
		dirPerm:  0o755,
		filePerm: 0o644,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// BaseDir returns the absolute base directory.
func (s *LocalStorage) BaseDir() string {
	return s.baseDir
}

// Exists checks if a regular file exists.
// Returns false for directories or on context cancellation.
func (s *LocalStorage) Exists(ctx context.Context, p string) bool {
	if ctx.Err() != nil {
		return false
	}
	info, err := os.Stat(s.resolvePath(p))
	return err == nil && !info.IsDir()
}

// ReadFile returns the content of the file at p.
func (s *LocalStorage) ReadFile(ctx context.Context, p string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOperationCanceled, err)
	}

	data, err := os.ReadFile(s.resolvePath(p))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, p)
		}
		return nil, fmt.Errorf("%w: %v", ErrFailedToReadFile, err)
	}
	return data, nil
}

// WriteFile writes data to p, creating parent directories as needed.
func (s *LocalStorage) WriteFile(ctx context.Context, p string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrOperationCanceled, err)
	}

	absPath := s.resolvePath(p)
	if info, err := os.Stat(absPath); err == nil && info.IsDir() {
		return fmt.Errorf("%w: %s", ErrIsDirectory, p)
	}

	if err := os.MkdirAll(filepath.Dir(absPath), s.dirPerm); err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToCreateDirectory, err)
	}

	if err := os.WriteFile(absPath, data, s.filePerm); err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToWriteFile, err)
	}
	return nil
}

// Walk returns all regular files below dir in lexical order.
func (s *LocalStorage) Walk(ctx context.Context, dir string) ([]string, error) {
	root := s.resolvePath(dir)

	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrFailedToReadDirectory, err)
	}
	if !info.IsDir() {
		return nil, nil
	}

	var files []string
	err = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		// Allow cancellation during large directory walks
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		files = append(files, path.Join(filepath.ToSlash(dir), filepath.ToSlash(rel)))
		return nil
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("%w: %v", ErrOperationCanceled, ctxErr)
		}
		return nil, fmt.Errorf("%w: %v", ErrFailedToReadDirectory, err)
	}
	return files, nil
}

func (s *LocalStorage) resolvePath(p string) string {
	p = filepath.FromSlash(p)
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(s.baseDir, p)
}
