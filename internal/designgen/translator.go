package designgen

import (
	"strings"
)

// Declaration is a single "property: value" pair
type Declaration struct {
	Property string
	Value    string
}

// EmptyStylesPlaceholder is emitted in place of an empty declaration block
const EmptyStylesPlaceholder = "/* No styles defined in design */"

// ParseDeclarations reads a declaration block line by line.
// Each line is split once on ':'; blank lines and lines with an empty
// property or value are dropped. Trailing semicolons are stripped from values.
func ParseDeclarations(block string) []Declaration {
	var decls []Declaration

	for _, line := range splitLines(block) {
		if strings.TrimSpace(line) == "" {
			continue
		}

		prop, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		prop = strings.TrimSpace(prop)
		value = strings.TrimSpace(value)
		value = strings.TrimSpace(strings.TrimRight(value, ";"))

		if prop == "" || value == "" {
			continue
		}
		decls = append(decls, Declaration{Property: prop, Value: value})
	}

	return decls
}

// splitLines splits on \r\n, \n and \r
func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.Split(s, "\n")
}

// indentBlock trims the block and indents every non-blank line
func indentBlock(block, indent string) string {
	lines := splitLines(strings.TrimSpace(block))
	var b strings.Builder
	for i, line := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		line = strings.TrimRight(line, " \t")
		if strings.TrimSpace(line) == "" {
			continue
		}
		b.WriteString(indent)
		b.WriteString(strings.TrimLeft(line, " \t"))
	}
	return b.String()
}

// ScopedClass wraps the block in a class selector.
// An empty block yields a rule holding only the placeholder comment.
func ScopedClass(selector, block string) string {
	body := EmptyStylesPlaceholder
	if strings.TrimSpace(block) != "" {
		body = strings.TrimSpace(block)
	}
	return "." + selector + " {\n" + indentBlock(body, "  ") + "\n}\n"
}

// TaggedTemplateBody returns the block prepared for use inside a template
// literal: indented, with backticks and interpolation openers escaped
func TaggedTemplateBody(block string) string {
	body := EmptyStylesPlaceholder
	if strings.TrimSpace(block) != "" {
		body = strings.TrimSpace(block)
	}
	return escapeTemplate(indentBlock(body, "  "))
}

// TaggedTemplate attaches the block to a generic styled container
func TaggedTemplate(block string) string {
	return "styled.div`\n" + TaggedTemplateBody(block) + "\n`"
}

func escapeTemplate(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "`", "\\`")
	s = strings.ReplaceAll(s, "${", "\\${")
	return s
}

// displayUtilities maps display values to utility tokens
var displayUtilities = map[string]string{
	"flex":         "flex",
	"grid":         "grid",
	"block":        "block",
	"inline-block": "inline-block",
	"inline-flex":  "inline-flex",
	"none":         "hidden",
}

// arbitraryUtilities maps properties to utility prefixes taking an arbitrary value
var arbitraryUtilities = map[string]string{
	"width":            "w",
	"height":           "h",
	"background-color": "bg",
	"color":            "text",
	"border-radius":    "rounded",
	"padding":          "p",
	"margin":           "m",
	"gap":              "gap",
	"opacity":          "opacity",
}

// UtilityClasses translates a declaration block into a utility class string.
// Unrecognized declarations are dropped; the result is never empty.
func UtilityClasses(block string) string {
	tokens := UtilityTokens(block)
	if len(tokens) == 0 {
		return "block"
	}
	return strings.Join(tokens, " ")
}

// UtilityTokens returns the recognized utility tokens in declaration order
func UtilityTokens(block string) []string {
	var tokens []string

	for _, decl := range ParseDeclarations(block) {
		prop := strings.ToLower(decl.Property)

		if prop == "display" {
			if token, ok := displayUtilities[strings.ToLower(decl.Value)]; ok {
				tokens = append(tokens, token)
			}
			continue
		}

		if prefix, ok := arbitraryUtilities[prop]; ok {
			tokens = append(tokens, prefix+"-["+arbitraryValue(decl.Value)+"]")
		}
	}

	return tokens
}

// arbitraryValue makes a value safe inside a bracketed utility token;
// whitespace becomes underscores so the token stays a single class
func arbitraryValue(value string) string {
	return strings.Join(strings.Fields(value), "_")
}

// CamelCase converts a kebab-case property into camelCase. A vendor prefix
// keeps its hyphen as a capital (-webkit-transition becomes
// WebkitTransition) and custom properties (--brand-color) pass through.
func CamelCase(prop string) string {
	if strings.HasPrefix(prop, "--") {
		return prop
	}
	var b strings.Builder
	upper := false
	for i := 0; i < len(prop); i++ {
		c := prop[i]
		if c == '-' {
			upper = true
			continue
		}
		if upper && c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		upper = false
		b.WriteByte(c)
	}
	return b.String()
}

// StyleEntries returns camelCase property/value pairs in declaration order
func StyleEntries(block string) []Declaration {
	decls := ParseDeclarations(block)
	entries := make([]Declaration, 0, len(decls))
	for _, d := range decls {
		entries = append(entries, Declaration{Property: CamelCase(d.Property), Value: d.Value})
	}
	return entries
}

// InlineObject renders the block as an object literal
func InlineObject(block string) string {
	return inlineObject(block, "")
}

func inlineObject(block, indent string) string {
	entries := StyleEntries(block)
	if len(entries) == 0 {
		return "{}"
	}

	var b strings.Builder
	b.WriteString("{\n")
	for _, e := range entries {
		b.WriteString(indent + "  " + objectKey(e.Property) + ": " + jsSingleQuoted(e.Value) + ",\n")
	}
	b.WriteString(indent + "}")
	return b.String()
}

// objectKey quotes keys that are not plain identifiers (e.g. custom properties)
func objectKey(key string) string {
	for i := 0; i < len(key); i++ {
		c := key[i]
		ident := c == '_' || c == '$' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (i > 0 && c >= '0' && c <= '9')
		if !ident {
			return jsSingleQuoted(key)
		}
	}
	return key
}

func jsSingleQuoted(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "'", `\'`)
	return "'" + s + "'"
}

// Translate renders a declaration block in the given idiom.
// The selector is only used by the scoped-class idiom.
func Translate(idiom StyleIdiom, selector, block string) string {
	switch idiom {
	case IdiomTaggedTemplate:
		return TaggedTemplate(block)
	case IdiomUtilityClasses:
		return UtilityClasses(block)
	case IdiomInlineObject:
		return InlineObject(block)
	default:
		return ScopedClass(selector, block)
	}
}
