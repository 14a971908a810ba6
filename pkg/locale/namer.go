package locale

import (
	"path/filepath"
	"strings"
)

// Namer builds bundle output paths of the form
// "<dest>/[<prefix>.]<locale>[.<suffix>].locale.json".
type Namer struct {
	Dest   string
	Prefix string
	Suffix string
}

// Dir returns the destination directory normalized to end with a separator.
func (n Namer) Dir() string {
	dest := n.Dest
	if dest == "" {
		dest = "."
	}
	if !strings.HasSuffix(dest, "/") && !strings.HasSuffix(dest, string(filepath.Separator)) {
		dest += "/"
	}
	return dest
}

// Filename returns the bundle filename for c without the destination directory.
func (n Namer) Filename(c Code) string {
	parts := make([]string, 0, 4)
	if n.Prefix != "" {
		parts = append(parts, n.Prefix)
	}
	parts = append(parts, string(c))
	if n.Suffix != "" {
		parts = append(parts, n.Suffix)
	}
	return strings.Join(parts, ".") + Suffix
}

// Path returns the full output path for c.
func (n Namer) Path(c Code) string {
	return n.Dir() + n.Filename(c)
}
