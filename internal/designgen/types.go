package designgen

// Node type tags emitted by the design tool. Unknown tags are treated as
// generic containers.
const (
	NodeFrame     = "FRAME"
	NodeText      = "TEXT"
	NodeRectangle = "RECTANGLE"
	NodeInstance  = "INSTANCE"
	NodeButton    = "BUTTON"
	NodeComponent = "COMPONENT"
	NodeGroup     = "GROUP"
)

// DesignNode is one element of a tree extracted from the design tool
type DesignNode struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	Type       string       `json:"type"`
	CSS        string       `json:"css,omitempty"`        // Raw declaration block ("color: red;\nwidth: 10px;")
	Characters string       `json:"characters,omitempty"` // Text content, only meaningful for TEXT nodes
	Children   []DesignNode `json:"children,omitempty"`
}

// StyleIdiom selects how styling is expressed in generated components
type StyleIdiom string

const (
	// IdiomScopedClass puts a generated class in a sibling CSS module
	IdiomScopedClass StyleIdiom = "scoped-class"
	// IdiomTaggedTemplate declares a styled-components primitive in the component file
	IdiomTaggedTemplate StyleIdiom = "tagged-template"
	// IdiomUtilityClasses inlines a utility class string on the element
	IdiomUtilityClasses StyleIdiom = "utility-classes"
	// IdiomInlineObject merges a literal style object into the style prop
	IdiomInlineObject StyleIdiom = "inline-object"
)

// Idioms lists every supported idiom in a stable order
var Idioms = []StyleIdiom{
	IdiomScopedClass,
	IdiomTaggedTemplate,
	IdiomUtilityClasses,
	IdiomInlineObject,
}

// ParseIdiom resolves a configuration string to an idiom.
// The second return value is false for unknown names.
func ParseIdiom(s string) (StyleIdiom, bool) {
	switch s {
	case "", "scoped-class", "css-modules", "css":
		return IdiomScopedClass, true
	case "tagged-template", "styled-components", "styled":
		return IdiomTaggedTemplate, true
	case "utility-classes", "tailwind", "utility":
		return IdiomUtilityClasses, true
	case "inline-object", "inline":
		return IdiomInlineObject, true
	default:
		return "", false
	}
}

// HasStylesheet reports whether the idiom produces a separate styles file
func (i StyleIdiom) HasStylesheet() bool {
	return i == IdiomScopedClass || i == IdiomTaggedTemplate
}

// Options controls single-component emission
type Options struct {
	Idiom           StyleIdiom // Zero value means scoped-class
	IncludeTypes    bool       // Emit <Name>.types.ts
	IncludeChildren bool       // Render the node's subtree as default content
	IncludeTests    bool       // Emit <Name>.test.tsx
	IncludeStories  bool       // Emit <Name>.stories.tsx
}

func (o Options) idiom() StyleIdiom {
	if o.Idiom == "" {
		return IdiomScopedClass
	}
	return o.Idiom
}

// File roles inside GeneratedComponent.Files
const (
	RoleComponent = "component"
	RoleStyles    = "styles"
	RoleTypes     = "types"
	RoleIndex     = "index"
	RoleTest      = "test"
	RoleStories   = "stories"
)

// Metadata describes where a generated component came from
type Metadata struct {
	OriginalName  string
	NodeType      string
	HasChildren   bool
	IsInteractive bool
	StyleIdiom    StyleIdiom
}

// GeneratedComponent is the output of Emit
type GeneratedComponent struct {
	Name     string            // Normalized identifier, e.g. "HelloWorld"
	NodeID   string            // Source node id
	Files    map[string]string // Role -> source text
	Metadata Metadata
}

// FileName returns the file name used for a role, relative to the component folder
func (c GeneratedComponent) FileName(role string) string {
	return fileName(c.Name, role, c.Metadata.StyleIdiom)
}

func fileName(name, role string, idiom StyleIdiom) string {
	switch role {
	case RoleComponent:
		return name + ".tsx"
	case RoleTypes:
		return name + ".types.ts"
	case RoleStyles:
		if idiom == IdiomTaggedTemplate {
			return name + ".styles.ts"
		}
		return name + ".module.css"
	case RoleTest:
		return name + ".test.tsx"
	case RoleStories:
		return name + ".stories.tsx"
	case RoleIndex:
		return "index.ts"
	}
	return ""
}

// fileRoles is the emission order of component files inside a folder
var fileRoles = []string{RoleComponent, RoleTypes, RoleStyles, RoleTest, RoleStories, RoleIndex}
