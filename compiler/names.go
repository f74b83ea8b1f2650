package compiler

import (
	"strings"
	"unicode"
)

// DefaultReservedWords are field names renamed with a trailing underscore.
// OntologyType and Base are methods of generated types.
var DefaultReservedWords = []string{"for", "from", "construct", "OntologyType", "Base"}

// exportName turns a label into an exported Go identifier. Runs of
// characters that are not letters, digits, or underscores act as word
// breaks.
func exportName(label string) string {
	var b strings.Builder
	upper := true
	for _, r := range label {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_':
			if b.Len() == 0 && unicode.IsDigit(r) {
				b.WriteByte('X')
			}
			if upper {
				r = unicode.ToUpper(r)
				upper = false
			}
			b.WriteRune(r)
		default:
			upper = true
		}
	}
	if b.Len() == 0 {
		return "X"
	}
	return b.String()
}

type nameSet map[string]bool

func newReserved(words []string) nameSet {
	set := make(nameSet, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}

func (s nameSet) reserved(name string) bool {
	return s[name] || s[exportName(name)]
}
