// Package config loads everything a locale build is configured with.
//
// Runtime settings (environment name, log level and format, S3 credentials)
// come from environment variables. They are parsed into structs with
// `github.com/caarlos0/env/v11`, optionally after loading `.env` files with
// `github.com/joho/godotenv`, and cached per type so they are parsed once:
//
//	if err := config.LoadEnv(".env.ci"); err != nil {
//	    log.Fatalf("loading env: %v", err)
//	}
//	var env config.Env
//	if err := config.Load(&env); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// Build options come from a YAML task file listing named targets:
//
//	options:
//	  dest: dist/i18n
//	  filterLocale: [en, fr]
//	targets:
//	  app:
//	    src: ["src/app/**/*.locale.json"]
//	    options:
//	      namespace: true
//	      stripNamespaceBase: src/
//
// Options resolve as defaults < task options < target options < overrides
// (command line flags). The key "sufix" is accepted as an alias of "suffix".
//
// # Error Handling
//
// The package defines sentinel errors that can be compared with `errors.Is`:
// ErrParsingConfig, ErrNilPointer, ErrConfigNotLoaded, ErrTaskFileNotFound,
// ErrInvalidTaskFile, ErrTargetNotFound and ErrInvalidOptions.
//
// Use ResetCache() in tests to clear parsed environment structs.
package config
