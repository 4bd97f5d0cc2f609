// Package designgen turns design-tool node trees into React component sources.
package designgen

import (
	"strconv"
	"strings"
)

// DefaultComponentName is used when a name normalizes to nothing
const DefaultComponentName = "Component"

// Normalize converts a designer-authored name into a PascalCase identifier.
//
// Non-alphanumeric ASCII characters separate words, an uppercase letter starts
// a new word, and each word is capitalized. The result always matches
// ^[A-Z][A-Za-z0-9]*$ and Normalize(Normalize(s)) == Normalize(s).
func Normalize(name string) string {
	var b strings.Builder
	wordStart := true

	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'A' && c <= 'Z':
			b.WriteByte(c)
			wordStart = false
		case c >= 'a' && c <= 'z':
			if wordStart {
				c -= 'a' - 'A'
			}
			b.WriteByte(c)
			wordStart = false
		case c >= '0' && c <= '9':
			b.WriteByte(c)
			wordStart = false
		default:
			// Bytes of multi-byte runes land here too, so non-ASCII acts as a separator
			wordStart = true
		}
	}

	result := b.String()
	if result == "" {
		return DefaultComponentName
	}
	if result[0] >= '0' && result[0] <= '9' {
		return DefaultComponentName + result
	}
	return result
}

// Selector returns the lower-case form of an identifier, used as the scoped
// class selector and the default data-testid
func Selector(identifier string) string {
	return strings.ToLower(identifier)
}

// lowerCamel lower-cases the first letter of an identifier
func lowerCamel(identifier string) string {
	if identifier == "" {
		return identifier
	}
	return strings.ToLower(identifier[:1]) + identifier[1:]
}

// UniqueName returns base when it is not taken, otherwise the first of
// base2, base3, ... that is free. Names are compared case-insensitively:
// Button and BUTTON would share a folder on case-insensitive filesystems
// and a scoped class selector everywhere.
func UniqueName(base string, taken NameSet) string {
	if !taken.Has(base) {
		return base
	}
	for i := 2; ; i++ {
		candidate := base + strconv.Itoa(i)
		if !taken.Has(candidate) {
			return candidate
		}
	}
}

// NameSet records claimed identifiers by their lower-cased form
type NameSet map[string]bool

// Add claims name
func (s NameSet) Add(name string) {
	s[strings.ToLower(name)] = true
}

// Has reports whether a name equal to name up to case was claimed
func (s NameSet) Has(name string) bool {
	return s[strings.ToLower(name)]
}

// interactiveKeywords mark a node as interactive when found in its name
var interactiveKeywords = []string{"button", "btn", "link", "clickable", "input", "form"}

// IsInteractive classifies a node for click handling, test and story emission
func IsInteractive(node DesignNode) bool {
	if node.Type == NodeButton || node.Type == NodeInstance {
		return true
	}
	name := strings.ToLower(node.Name)
	for _, kw := range interactiveKeywords {
		if strings.Contains(name, kw) {
			return true
		}
	}
	return false
}
