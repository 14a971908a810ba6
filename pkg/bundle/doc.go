// Package bundle accumulates locale fragments into one document per locale.
//
// A Bundle is an immutable value: Merge returns a new Bundle and leaves its
// receiver untouched, so aggregation is a fold over the ordered inputs:
//
//	var b bundle.Bundle
//	for _, in := range inputs {
//	    b = b.Merge(in.Locale, in.Fragment)
//	}
//
// Merging is deep. When a key holds an object on both sides the objects are
// merged recursively; any other combination (scalar, array, or mixed kinds)
// is resolved by letting the later value replace the earlier one.
package bundle
