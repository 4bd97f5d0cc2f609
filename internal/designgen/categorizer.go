package designgen

import (
	"strings"
)

// PropertyCategory groups related CSS properties in generated doc comments
type PropertyCategory string

// Property categories, listed in the order they appear in doc comments
const (
	CategoryLayout     PropertyCategory = "Layout"
	CategoryVisual     PropertyCategory = "Visual"
	CategoryTypography PropertyCategory = "Typography"
	CategoryEffects    PropertyCategory = "Effects"
	CategoryVendor     PropertyCategory = "Vendor"
)

var categoryOrder = []PropertyCategory{
	CategoryLayout,
	CategoryVisual,
	CategoryTypography,
	CategoryEffects,
	CategoryVendor,
}

// propertyCategories holds exact matches; prefixes are handled in CategorizeProperty
var propertyCategories = map[string]PropertyCategory{
	"background":      CategoryVisual,
	"color":           CategoryVisual,
	"border":          CategoryVisual,
	"box-shadow":      CategoryVisual,
	"opacity":         CategoryVisual,
	"outline":         CategoryVisual,
	"fill":            CategoryVisual,
	"stroke":          CategoryVisual,
	"display":         CategoryLayout,
	"position":        CategoryLayout,
	"inset":           CategoryLayout,
	"top":             CategoryLayout,
	"right":           CategoryLayout,
	"bottom":          CategoryLayout,
	"left":            CategoryLayout,
	"width":           CategoryLayout,
	"height":          CategoryLayout,
	"gap":             CategoryLayout,
	"row-gap":         CategoryLayout,
	"column-gap":      CategoryLayout,
	"justify-content": CategoryLayout,
	"align-items":     CategoryLayout,
	"align-self":      CategoryLayout,
	"overflow":        CategoryLayout,
	"z-index":         CategoryLayout,
	"aspect-ratio":    CategoryLayout,
	"line-height":     CategoryTypography,
	"letter-spacing":  CategoryTypography,
	"white-space":     CategoryTypography,
	"word-break":      CategoryTypography,
	"transform":       CategoryEffects,
	"transition":      CategoryEffects,
	"animation":       CategoryEffects,
	"filter":          CategoryEffects,
	"backdrop-filter": CategoryEffects,
	"mix-blend-mode":  CategoryEffects,
	"clip-path":       CategoryEffects,
	"mask":            CategoryEffects,
}

var prefixCategories = []struct {
	prefix   string
	category PropertyCategory
}{
	{"-webkit-", CategoryVendor},
	{"-moz-", CategoryVendor},
	{"-ms-", CategoryVendor},
	{"background-", CategoryVisual},
	{"border-", CategoryVisual},
	{"outline-", CategoryVisual},
	{"font-", CategoryTypography},
	{"text-", CategoryTypography},
	{"transition-", CategoryEffects},
	{"animation-", CategoryEffects},
	{"transform-", CategoryEffects},
	{"flex", CategoryLayout},
	{"grid", CategoryLayout},
	{"padding", CategoryLayout},
	{"margin", CategoryLayout},
	{"min-", CategoryLayout},
	{"max-", CategoryLayout},
	{"overflow-", CategoryLayout},
}

// CategorizeProperty returns the category of a CSS property name.
// Unknown properties are treated as layout.
func CategorizeProperty(name string) PropertyCategory {
	name = strings.ToLower(name)
	if cat, ok := propertyCategories[name]; ok {
		return cat
	}
	for _, p := range prefixCategories {
		if strings.HasPrefix(name, p.prefix) {
			return p.category
		}
	}
	return CategoryLayout
}

// categorySummary renders one "Category: prop, prop" line per non-empty
// category, keeping declaration order inside each category
func categorySummary(decls []Declaration) []string {
	grouped := make(map[PropertyCategory][]string)
	for _, d := range decls {
		cat := CategorizeProperty(d.Property)
		grouped[cat] = append(grouped[cat], d.Property)
	}

	var lines []string
	for _, cat := range categoryOrder {
		if props := grouped[cat]; len(props) > 0 {
			lines = append(lines, string(cat)+": "+strings.Join(props, ", "))
		}
	}
	return lines
}
