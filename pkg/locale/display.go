package locale

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

var englishNames = display.English.Tags()

// Tag converts c to a BCP 47 language tag.
func (c Code) Tag() (language.Tag, error) {
	return language.Parse(strings.ReplaceAll(string(c), "_", "-"))
}

// DisplayName returns the English name of c, e.g. "Brazilian Portuguese" for "pt_BR".
// Unknown codes fall back to the code itself.
func DisplayName(c Code) string {
	tag, err := c.Tag()
	if err != nil {
		return string(c)
	}
	if name := englishNames.Name(tag); name != "" {
		return name
	}
	return string(c)
}
