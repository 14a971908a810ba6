// Package namespace qualifies fragment keys with a dotted prefix derived from
// the directory the fragment was loaded from.
//
// For "app/admin/en.locale.json" the namespace is "app.admin." and the key
// "title" becomes "app.admin.title". Only top-level keys are rewritten.
package namespace

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrymomot/buildlocale/pkg/fragment"
	"github.com/dmitrymomot/buildlocale/pkg/locale"
)

// ErrLocaleNotInPath is returned when the locale code cannot be found in the fragment path.
var ErrLocaleNotInPath = errors.New("locale code not found in path")

var separators = strings.NewReplacer("/", ".", `\`, ".")

// Transformer derives namespaces and rewrites fragment keys.
// StripBase, when set, is removed once from the derived path prefix before
// separators are replaced.
type Transformer struct {
	StripBase string
}

// Derive returns the namespace for a fragment at path classified as code:
// the path up to the first occurrence of code, minus StripBase, with path
// separators turned into dots.
func (t Transformer) Derive(path string, code locale.Code) (string, error) {
	idx := strings.Index(path, string(code))
	if code == "" || idx < 0 {
		return "", fmt.Errorf("%w: %q in %q", ErrLocaleNotInPath, code, path)
	}

	ns := path[:idx]
	if t.StripBase != "" {
		ns = strings.Replace(ns, t.StripBase, "", 1)
	}
	return separators.Replace(ns), nil
}

// Apply returns a new object whose top-level keys are prefixed with the
// namespace of path. Values are carried over untouched.
func (t Transformer) Apply(obj *fragment.Object, path string, code locale.Code) (*fragment.Object, error) {
	ns, err := t.Derive(path, code)
	if err != nil {
		return nil, err
	}
	return Prefix(obj, ns), nil
}

// Prefix returns a copy of obj with ns prepended to every top-level key.
// Nothing is inserted between ns and the key.
func Prefix(obj *fragment.Object, ns string) *fragment.Object {
	out := fragment.NewObject()
	for k, v := range obj.All() {
		out.Set(ns+k, v)
	}
	return out
}
