package designgen

import (
	"io"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Canonical parses a declaration block with a real CSS grammar and returns
// its declarations sorted by property name. Property names are lower-cased,
// value whitespace is collapsed and later duplicates override earlier ones.
func Canonical(block string) ([]Declaration, error) {
	parser := css.NewParser(parse.NewInputString(block), true)
	props := make(map[string]string)

	for {
		gt, _, data := parser.Next()
		if gt == css.ErrorGrammar {
			if err := parser.Err(); err != nil && err != io.EOF {
				return nil, errors.Wrap(err, "parse declarations")
			}
			break
		}

		if gt != css.DeclarationGrammar && gt != css.CustomPropertyGrammar {
			continue
		}

		v := joinValues(parser.Values())
		if gt == css.CustomPropertyGrammar {
			v = strings.TrimSpace(strings.TrimPrefix(v, ":"))
		}
		if v == "" {
			continue
		}

		name := string(data)
		if gt == css.DeclarationGrammar {
			name = strings.ToLower(name)
		}
		props[name] = v
	}

	decls := make([]Declaration, 0, len(props))
	for name, value := range props {
		decls = append(decls, Declaration{Property: name, Value: value})
	}
	sort.Slice(decls, func(i, j int) bool {
		return decls[i].Property < decls[j].Property
	})

	return decls, nil
}

// joinValues rebuilds a value from parser tokens. Adjacent word-like tokens
// are separated by a space whether or not the parser kept the whitespace.
func joinValues(tokens []css.Token) string {
	var b strings.Builder
	prevWord := false
	for _, tok := range tokens {
		if tok.TokenType == css.WhitespaceToken {
			b.WriteByte(' ')
			prevWord = false
			continue
		}
		word := isWordToken(tok.TokenType)
		if word && prevWord {
			b.WriteByte(' ')
		}
		b.Write(tok.Data)
		prevWord = word
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func isWordToken(tt css.TokenType) bool {
	switch tt {
	case css.IdentToken, css.NumberToken, css.DimensionToken, css.PercentageToken,
		css.HashToken, css.StringToken, css.URLToken:
		return true
	}
	return false
}

// SerializeCSS renders declarations as a block, one per line
func SerializeCSS(decls []Declaration) string {
	var b strings.Builder
	for _, d := range decls {
		b.WriteString(d.Property)
		b.WriteString(": ")
		b.WriteString(d.Value)
		b.WriteString(";\n")
	}
	return b.String()
}

// KebabCase is the inverse of CamelCase for standard, vendor-prefixed and
// custom property names
func KebabCase(prop string) string {
	var b strings.Builder
	for i := 0; i < len(prop); i++ {
		c := prop[i]
		if c >= 'A' && c <= 'Z' {
			b.WriteByte('-')
			c += 'a' - 'A'
		}
		b.WriteByte(c)
	}
	return b.String()
}
