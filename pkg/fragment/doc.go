// Package fragment models the content of one locale source file.
//
// A fragment is a JSON object whose values are themselves objects, arrays or
// scalars. Objects are represented by *Object, which remembers the order in
// which keys were first inserted so that consolidated bundles keep the layout
// authors wrote. Arrays are []any and scalars are string, json.Number, bool or
// nil.
//
// # Usage
//
//	parser := fragment.NewParserForFile("app/en.locale.json")
//	obj, err := parser.Parse(ctx, data)
//	if err != nil {
//	    // errors.Is(err, fragment.ErrFailedToParseJSON)
//	}
//
//	out, err := fragment.Encode(obj) // compact JSON, key order preserved
package fragment
