package builder

import (
	"github.com/dmitrymomot/buildlocale/pkg/locale"
	"github.com/dmitrymomot/buildlocale/pkg/namespace"
)

// Options controls a single build run.
type Options struct {
	// Dest is the output directory.
	Dest string
	// FilterLocale limits output to these locales. Empty includes all.
	FilterLocale []locale.Code
	// Prefix and Suffix decorate output filenames.
	Prefix string
	Suffix string
	// Namespace enables key qualification by source directory.
	Namespace bool
	// StripNamespaceBase is removed once from derived namespaces.
	StripNamespaceBase string
	// Force downgrades naming violations and empty results to warnings.
	Force bool
	// Manifest, when set, is the filename of a build manifest written into Dest.
	Manifest string
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{Dest: "."}
}

// Namer returns the destination namer for these options.
func (o Options) Namer() locale.Namer {
	return locale.Namer{Dest: o.Dest, Prefix: o.Prefix, Suffix: o.Suffix}
}

// Whitelist returns the locale filter.
func (o Options) Whitelist() locale.Whitelist {
	return locale.Whitelist(o.FilterLocale)
}

// Transformer returns the namespace transformer for these options.
func (o Options) Transformer() namespace.Transformer {
	return namespace.Transformer{StripBase: o.StripNamespaceBase}
}
