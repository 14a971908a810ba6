package builder

import "errors"

var (
	// ErrNoOutput is returned when no locale bundle was generated.
	ErrNoOutput = errors.New("no locale file generated")

	// ErrInputNotFound marks inputs that were listed but do not exist. Never fatal.
	ErrInputNotFound = errors.New("source file not found")

	ErrListInputs    = errors.New("failed to list inputs")
	ErrReadFragment  = errors.New("failed to read fragment")
	ErrWriteBundle   = errors.New("failed to write bundle")
	ErrWriteManifest = errors.New("failed to write manifest")
)
