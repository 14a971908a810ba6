package fragment

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Parser turns raw file content into a fragment object.
type Parser interface {
	// Parse processes content and returns the fragment root object.
	Parse(ctx context.Context, content []byte) (*Object, error)

	// SupportsFileExtension checks if the parser supports a given file extension.
	// The extension may or may not include a leading dot.
	SupportsFileExtension(ext string) bool
}

// NewParserForFile returns a parser based on the file extension, or nil.
func NewParserForFile(filename string) Parser {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), ".")) {
	case "json":
		return NewJSONParser()
	default:
		return nil
	}
}

// utf8BOM is stripped from the start of JSON content. Editors on Windows
// commonly prepend it.
var utf8BOM = []byte("\xef\xbb\xbf")

// JSONParser implements the Parser interface for JSON files.
type JSONParser struct{}

// NewJSONParser creates a new JSONParser instance.
func NewJSONParser() *JSONParser {
	return &JSONParser{}
}

// Parse parses JSON content whose root must be an object.
func (p *JSONParser) Parse(ctx context.Context, content []byte) (*Object, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrJSONParsingCancelled, err)
	}

	v, err := Decode(bytes.TrimPrefix(content, utf8BOM))
	if err != nil {
		return nil, errors.Join(ErrFailedToParseJSON, err)
	}

	obj, ok := v.(*Object)
	if !ok {
		return nil, fmt.Errorf("%w: got %s", ErrNotObject, KindOf(v))
	}
	return obj, nil
}

// SupportsFileExtension checks if the parser supports the given file extension.
func (p *JSONParser) SupportsFileExtension(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	return strings.EqualFold(ext, "json")
}
