package logger

import (
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RunID records the build run identifier under the key "run_id".
func RunID(id string) slog.Attr {
	return slog.String("run_id", id)
}

// Locale records a locale code under the key "locale".
func Locale[T ~string](code T) slog.Attr {
	return slog.String("locale", string(code))
}

// Locales records a list of locale codes under the key "locales".
func Locales[T ~string](codes []T) slog.Attr {
	s := make([]string, len(codes))
	for i, c := range codes {
		s[i] = string(c)
	}
	return slog.Any("locales", s)
}

// Path records a source or output path under the key "path".
func Path(p string) slog.Attr {
	return slog.String("path", p)
}

// Dest records the destination directory under the key "dest".
func Dest(d string) slog.Attr {
	return slog.String("dest", d)
}

// Target records the build target name under the key "target".
func Target(name string) slog.Attr {
	return slog.String("target", name)
}

// Count records a number of items under the key "count".
func Count(n int) slog.Attr {
	return slog.Int("count", n)
}

// Duration records a duration under the key "duration".
func Duration(d any) slog.Attr {
	return slog.Any("duration", d)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
