package file

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gobwas/glob"
)

// Glob expands patterns against w in order.
//
// Patterns support "*", "?", "[...]", "{a,b}" and "**" for any number of
// directories. A pattern prefixed with "!" removes previously matched paths.
// Patterns without glob syntax are returned exactly as given (after trimming
// spaces), whether or not the file exists, so that callers can report missing inputs. Results keep the order in
// which they were first matched and contain no duplicates.
func Glob(ctx context.Context, w Walker, patterns []string) ([]string, error) {
	var result []string
	seen := make(map[string]struct{})

	for _, raw := range patterns {
		negate := strings.HasPrefix(raw, "!")
		given := strings.TrimSpace(strings.TrimPrefix(raw, "!"))
		pattern := cleanPattern(given)
		if pattern == "" {
			continue
		}

		m, err := compileMatcher(pattern)
		if err != nil {
			return nil, err
		}

		if negate {
			result = slices.DeleteFunc(result, func(p string) bool {
				if m.Match(p) {
					delete(seen, p)
					return true
				}
				return false
			})
			continue
		}

		var matches []string
		if !hasMeta(pattern) {
			// Literal paths keep their spelling: the path feeds namespace derivation.
			matches = []string{given}
		} else {
			files, err := w.Walk(ctx, staticRoot(pattern))
			if err != nil {
				return nil, err
			}
			for _, f := range files {
				if m.Match(f) {
					matches = append(matches, f)
				}
			}
			slices.Sort(matches)
		}

		for _, p := range matches {
			if _, ok := seen[p]; ok {
				continue
			}
			seen[p] = struct{}{}
			result = append(result, p)
		}
	}

	return result, nil
}

// Matcher reports whether a slash-separated path matches a pattern.
type Matcher interface {
	Match(p string) bool
}

type literal string

func (l literal) Match(p string) bool { return string(l) == path.Clean(p) }

type anyOf []glob.Glob

func (a anyOf) Match(p string) bool {
	for _, g := range a {
		if g.Match(p) {
			return true
		}
	}
	return false
}

// CompileMatcher compiles a single pattern with the syntax accepted by Glob.
func CompileMatcher(pattern string) (Matcher, error) {
	return compileMatcher(cleanPattern(pattern))
}

func compileMatcher(pattern string) (Matcher, error) {
	if !hasMeta(pattern) {
		return literal(pattern), nil
	}

	variants := globstarVariants(pattern)
	globs := make(anyOf, 0, len(variants))
	for _, v := range variants {
		g, err := glob.Compile(v, '/')
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrInvalidPattern, pattern, err)
		}
		globs = append(globs, g)
	}
	return globs, nil
}

func cleanPattern(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return ""
	}
	return path.Clean(filepath.ToSlash(p))
}

func hasMeta(p string) bool {
	return strings.ContainsAny(p, "*?[{")
}

// staticRoot returns the leading directories of pattern that contain no glob syntax.
func staticRoot(pattern string) string {
	segments := strings.Split(pattern, "/")
	var static []string
	for _, seg := range segments[:len(segments)-1] {
		if hasMeta(seg) {
			break
		}
		static = append(static, seg)
	}
	if len(static) == 0 {
		return "."
	}
	if len(static) == 1 && static[0] == "" {
		return "/"
	}
	return strings.Join(static, "/")
}

// globstarVariants expands every non-final "**" segment into "kept" and
// "dropped" alternatives so that "a/**/b" also matches "a/b".
func globstarVariants(pattern string) []string {
	segments := strings.Split(pattern, "/")
	variants := [][]string{nil}
	for i, seg := range segments {
		next := make([][]string, 0, len(variants)*2)
		for _, v := range variants {
			next = append(next, append(slices.Clone(v), seg))
			if seg == "**" && i < len(segments)-1 {
				next = append(next, slices.Clone(v))
			}
		}
		variants = next
	}

	out := make([]string, 0, len(variants))
	for _, v := range variants {
		out = append(out, strings.Join(v, "/"))
	}
	return out
}
