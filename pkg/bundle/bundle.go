package bundle

import (
	"maps"
	"slices"

	"github.com/dmitrymomot/buildlocale/pkg/fragment"
	"github.com/dmitrymomot/buildlocale/pkg/locale"
)

// Bundle maps locale codes to their merged documents.
// The zero value is an empty bundle ready to use.
type Bundle struct {
	order []locale.Code
	docs  map[locale.Code]*fragment.Object
}

// Merge returns a new bundle with frag deep-merged into the document of code.
// The document is created on first use. Later values win on conflicts.
func (b Bundle) Merge(code locale.Code, frag *fragment.Object) Bundle {
	next := Bundle{
		order: b.order,
		docs:  maps.Clone(b.docs),
	}
	if next.docs == nil {
		next.docs = make(map[locale.Code]*fragment.Object)
	}

	current, ok := next.docs[code]
	if !ok {
		next.order = append(slices.Clone(b.order), code)
		current = fragment.NewObject()
	}
	next.docs[code] = MergeObjects(current, frag)
	return next
}

// Len returns the number of locales in the bundle.
func (b Bundle) Len() int {
	return len(b.order)
}

// Empty reports whether no locale was ever merged.
func (b Bundle) Empty() bool {
	return len(b.order) == 0
}

// Locales returns the locale codes in order of first appearance.
func (b Bundle) Locales() []locale.Code {
	return slices.Clone(b.order)
}

// Get returns the merged document for code.
func (b Bundle) Get(code locale.Code) (*fragment.Object, bool) {
	doc, ok := b.docs[code]
	return doc, ok
}
