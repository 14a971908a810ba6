// Package locale identifies the locale a translation fragment belongs to and
// names the consolidated bundle written for it.
//
// Fragments follow the "[X.]L.locale.json" naming convention, where the optional
// X is free-form and L is a locale code in the format "[a-z]{2}(_[A-Z]{2})?",
// for example "en" or "pt_BR".
//
// # Usage
//
//	code, err := locale.Detect("app/admin/messages.pt_BR.locale.json")
//	if err != nil {
//	    // errors.Is(err, locale.ErrNamingConvention)
//	}
//
//	namer := locale.Namer{Dest: "dist", Prefix: "rel", Suffix: "v2"}
//	namer.Path(code) // "dist/rel.pt_BR.v2.locale.json"
//
// DisplayName renders a code as a human-readable English name for reports.
package locale
