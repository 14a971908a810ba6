package locale

import (
	"fmt"
	"regexp"
	"slices"
)

// Suffix terminates every fragment and bundle filename.
const Suffix = ".locale.json"

// Code is a language identifier optionally qualified by a region, e.g. "en" or "pt_BR".
type Code string

var (
	codePattern = regexp.MustCompile(`^[a-z]{2}(_[A-Z]{2})?$`)

	// The token must open the filename or follow a dot so that "fr_fr.locale.json"
	// is rejected instead of being read as "fr".
	filePattern = regexp.MustCompile(`(?:^|[/\\.])([a-z]{2}(?:_[A-Z]{2})?)\.locale\.json$`)
)

// Parse validates s as a locale code.
func Parse(s string) (Code, error) {
	if !codePattern.MatchString(s) {
		return "", fmt.Errorf("%w: %q", ErrInvalidCode, s)
	}
	return Code(s), nil
}

// ParseList validates every entry of list, preserving order.
func ParseList(list []string) ([]Code, error) {
	codes := make([]Code, 0, len(list))
	for _, s := range list {
		c, err := Parse(s)
		if err != nil {
			return nil, err
		}
		codes = append(codes, c)
	}
	return codes, nil
}

// Detect returns the locale code embedded in the filename suffix of path.
// Only the filename suffix is inspected; directories are ignored.
// A path without a locale token yields a *NamingError.
func Detect(path string) (Code, error) {
	m := filePattern.FindStringSubmatch(path)
	if m == nil {
		return "", &NamingError{Path: path}
	}
	return Code(m[1]), nil
}

// IsValid reports whether c matches the locale code format.
func (c Code) IsValid() bool {
	return codePattern.MatchString(string(c))
}

// Language returns the two-letter language part of the code.
func (c Code) Language() string {
	if len(c) < 2 {
		return string(c)
	}
	return string(c[:2])
}

// Region returns the region part of the code, or an empty string.
func (c Code) Region() string {
	if len(c) > 3 {
		return string(c[3:])
	}
	return ""
}

func (c Code) String() string {
	return string(c)
}

// Whitelist is a set of accepted codes. An empty whitelist accepts everything.
type Whitelist []Code

// Allows reports whether c passes the whitelist.
func (w Whitelist) Allows(c Code) bool {
	return len(w) == 0 || slices.Contains(w, c)
}
