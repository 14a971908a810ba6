package fragment

import "errors"

var (
	ErrJSONParsingCancelled = errors.New("json parsing cancelled")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON content")
	ErrNotObject            = errors.New("fragment root must be a JSON object")
	ErrUnsupportedFormat    = errors.New("unsupported fragment format")

	ErrFailedToEncodeJSON = errors.New("failed to encode JSON")
)
