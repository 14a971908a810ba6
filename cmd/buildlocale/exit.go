package main

import (
	"errors"

	"github.com/dmitrymomot/buildlocale/pkg/builder"
	"github.com/dmitrymomot/buildlocale/pkg/locale"
)

// Exit codes.
const (
	exitOK      = 0
	exitFailure = 1
	// exitAborted marks runs stopped by a naming violation or an empty result.
	// These can be downgraded to warnings with --force.
	exitAborted = 6
)

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, locale.ErrNamingConvention), errors.Is(err, builder.ErrNoOutput):
		return exitAborted
	default:
		return exitFailure
	}
}
