package locale

import (
	"errors"
	"fmt"
)

var (
	// ErrNamingConvention is returned when a path does not carry a locale token.
	ErrNamingConvention = errors.New("file does not follow the locale naming convention")

	// ErrInvalidCode is returned when a string is not a valid locale code.
	ErrInvalidCode = errors.New("invalid locale code")
)

// Convention is the human-readable statement of the fragment naming rule.
const Convention = `All files must follow the "[X.]L.locale.json" naming convention, ` +
	`where the optional X is ignored and L is a locale in the format "[a-z]{2}(_[A-Z]{2})?".`

// NamingError reports the path that failed classification.
type NamingError struct {
	Path string
}

func (e *NamingError) Error() string {
	return fmt.Sprintf("could not detect locale for file %q. %s", e.Path, Convention)
}

func (e *NamingError) Unwrap() error {
	return ErrNamingConvention
}
