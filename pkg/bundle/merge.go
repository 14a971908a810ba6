package bundle

import "github.com/dmitrymomot/buildlocale/pkg/fragment"

// MergeObjects returns the deep merge of src into dst. Neither argument is
// modified; values taken from src are cloned, untouched values of dst are shared.
func MergeObjects(dst, src *fragment.Object) *fragment.Object {
	out := dst.ShallowCopy()
	for k, sv := range src.All() {
		dv, exists := out.Get(k)
		out.Set(k, mergeValue(dv, sv, exists))
	}
	return out
}

func mergeValue(dst, src any, exists bool) any {
	if exists && fragment.KindOf(dst) == fragment.KindObject && fragment.KindOf(src) == fragment.KindObject {
		return MergeObjects(dst.(*fragment.Object), src.(*fragment.Object))
	}
	return fragment.Clone(src)
}
