package designgen

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Emit generates the source files for a single design node.
// It never fails: missing names, CSS and characters all have defaults.
func Emit(node DesignNode, opts Options) GeneratedComponent {
	return emitNamed(node, Normalize(node.Name), opts)
}

// emitNamed emits a component under an already resolved identifier
func emitNamed(node DesignNode, name string, opts Options) GeneratedComponent {
	idiom := opts.idiom()
	e := &componentEmitter{
		node:        node,
		name:        name,
		selector:    Selector(name),
		opts:        opts,
		idiom:       idiom,
		interactive: IsInteractive(node),
	}
	if opts.IncludeChildren && node.Type != NodeText {
		e.children = buildChildTree(node.Children, e.selector)
	}

	files := map[string]string{
		RoleComponent: e.component(),
		RoleIndex:     e.index(),
	}
	if opts.IncludeTypes {
		files[RoleTypes] = e.types()
	}
	if idiom.HasStylesheet() {
		files[RoleStyles] = e.styles()
	}
	if opts.IncludeTests {
		files[RoleTest] = e.testScaffold()
	}
	if opts.IncludeStories {
		files[RoleStories] = e.storyScaffold()
	}

	return GeneratedComponent{
		Name:   name,
		NodeID: node.ID,
		Files:  files,
		Metadata: Metadata{
			OriginalName:  node.Name,
			NodeType:      node.Type,
			HasChildren:   len(node.Children) > 0,
			IsInteractive: e.interactive,
			StyleIdiom:    idiom,
		},
	}
}

type componentEmitter struct {
	node        DesignNode
	name        string
	selector    string
	opts        Options
	idiom       StyleIdiom
	interactive bool
	children    []childElement
}

// childElement is a node below the component root, rendered as static markup
type childElement struct {
	node     DesignNode
	selector string // parent__child path, used as scoped class name
	children []childElement
}

func buildChildTree(nodes []DesignNode, parentSelector string) []childElement {
	taken := make(NameSet)
	elements := make([]childElement, 0, len(nodes))
	for _, n := range nodes {
		key := UniqueName(Normalize(n.Name), taken)
		taken.Add(key)
		sel := parentSelector + "__" + Selector(key)
		el := childElement{node: n, selector: sel}
		if n.Type != NodeText {
			el.children = buildChildTree(n.Children, sel)
		}
		elements = append(elements, el)
	}
	return elements
}

// flattenChildren lists the subtree depth-first
func flattenChildren(elements []childElement) []childElement {
	var out []childElement
	for _, el := range elements {
		out = append(out, el)
		out = append(out, flattenChildren(el.children)...)
	}
	return out
}

// defaultElement picks the HTML element rendered when no "as" prop is given
func defaultElement(node DesignNode) string {
	switch node.Type {
	case NodeText:
		return "span"
	case NodeButton:
		return "button"
	default:
		return "div"
	}
}

func (e *componentEmitter) propsName() string {
	return e.name + "Props"
}

func (e *componentEmitter) hasTextContent() bool {
	return e.node.Type == NodeText && e.node.Characters != ""
}

// reactTypeImports lists the react type names used by the props interface
func (e *componentEmitter) reactTypeImports() []string {
	names := []string{"CSSProperties", "ElementType", "ReactNode"}
	if e.interactive {
		names = append(names, "MouseEvent")
	}
	sort.Strings(names)
	return names
}

// propsInterface declares the public prop shape
func (e *componentEmitter) propsInterface() string {
	var b strings.Builder
	fmt.Fprintf(&b, "export interface %s {\n", e.propsName())
	b.WriteString("  /** Element or component rendered as the root. */\n")
	b.WriteString("  as?: ElementType;\n")
	b.WriteString("  /** Additional class names merged onto the root element. */\n")
	b.WriteString("  className?: string;\n")
	b.WriteString("  /** Inline style overrides, applied after the generated styles. */\n")
	b.WriteString("  style?: CSSProperties;\n")
	b.WriteString("  /** Content rendered inside the component. */\n")
	b.WriteString("  children?: ReactNode;\n")
	if e.interactive {
		b.WriteString("  /** Called when the component is clicked. */\n")
		b.WriteString("  onClick?: (event: MouseEvent<HTMLElement>) => void;\n")
	}
	fmt.Fprintf(&b, "  /** Test identifier, defaults to %s. */\n", jsString(e.selector))
	b.WriteString("  'data-testid'?: string;\n")
	b.WriteString("}\n")
	return b.String()
}

// types renders <Name>.types.ts
func (e *componentEmitter) types() string {
	var b strings.Builder
	fmt.Fprintf(&b, "import type { %s } from 'react';\n\n", strings.Join(e.reactTypeImports(), ", "))
	b.WriteString(e.propsInterface())
	return b.String()
}

// component renders <Name>.tsx
func (e *componentEmitter) component() string {
	var b strings.Builder

	// Imports
	b.WriteString("import React from 'react';\n")
	if e.opts.IncludeTypes {
		if e.idiom == IdiomInlineObject {
			b.WriteString("import type { CSSProperties } from 'react';\n")
		}
	} else {
		fmt.Fprintf(&b, "import type { %s } from 'react';\n", strings.Join(e.reactTypeImports(), ", "))
	}
	if e.idiom == IdiomTaggedTemplate {
		b.WriteString("import styled from 'styled-components';\n")
	}
	if e.idiom == IdiomScopedClass {
		fmt.Fprintf(&b, "import styles from './%s';\n", fileName(e.name, RoleStyles, e.idiom))
	}
	if e.opts.IncludeTypes {
		fmt.Fprintf(&b, "import type { %s } from './%s';\n", e.propsName(), trimExt(fileName(e.name, RoleTypes, e.idiom), ".ts"))
	}
	b.WriteString("\n")

	// Local declarations
	switch e.idiom {
	case IdiomTaggedTemplate:
		fmt.Fprintf(&b, "const Styled%s = styled.div`\n%s\n`;\n\n", e.name, e.templateBody())
	case IdiomInlineObject:
		fmt.Fprintf(&b, "const baseStyle: CSSProperties = %s;\n\n", InlineObject(e.node.CSS))
	}
	if !e.opts.IncludeTypes {
		b.WriteString(e.propsInterface())
		b.WriteString("\n")
	}

	b.WriteString(e.docComment())
	e.writeFunction(&b)
	return b.String()
}

func (e *componentEmitter) docComment() string {
	var b strings.Builder
	b.WriteString("/**\n")
	fmt.Fprintf(&b, " * %s component generated from design node %s", e.name, commentSafe(jsString(e.node.Name)))
	if e.node.Type != "" || e.node.ID != "" {
		fmt.Fprintf(&b, " (%s)", commentSafe(strings.TrimSpace(e.node.Type+" "+e.node.ID)))
	}
	b.WriteString(".\n")
	if summary := categorySummary(ParseDeclarations(e.node.CSS)); len(summary) > 0 {
		b.WriteString(" *\n")
		for _, line := range summary {
			fmt.Fprintf(&b, " * %s\n", commentSafe(line))
		}
	}
	b.WriteString(" */\n")
	return b.String()
}

func (e *componentEmitter) writeFunction(b *strings.Builder) {
	fmt.Fprintf(b, "export default function %s({\n", e.name)
	fmt.Fprintf(b, "  as: Component = '%s',\n", defaultElement(e.node))
	b.WriteString("  className,\n")
	b.WriteString("  style,\n")
	b.WriteString("  children,\n")
	if e.interactive {
		b.WriteString("  onClick,\n")
	}
	fmt.Fprintf(b, "  'data-testid': testId = %s,\n", jsString(e.selector))
	fmt.Fprintf(b, "}: %s) {\n", e.propsName())

	root := "Component"
	var attrs []string
	switch e.idiom {
	case IdiomScopedClass:
		fmt.Fprintf(b, "  const classes = [styles.%s, className].filter(Boolean).join(' ');\n\n", e.selector)
		attrs = append(attrs, "className={classes}", "style={style}")
	case IdiomTaggedTemplate:
		root = "Styled" + e.name
		attrs = append(attrs, "as={Component}", "className={className}", "style={style}")
	case IdiomUtilityClasses:
		fmt.Fprintf(b, "  const classes = [%s, className].filter(Boolean).join(' ');\n\n", jsSingleQuoted(UtilityClasses(e.node.CSS)))
		attrs = append(attrs, "className={classes}", "style={style}")
	case IdiomInlineObject:
		attrs = append(attrs, "className={className}", "style={{ ...baseStyle, ...style }}")
	}
	attrs = append(attrs, "data-testid={testId}")
	if e.interactive {
		attrs = append(attrs, "onClick={onClick}")
	}

	b.WriteString("  return (\n")
	fmt.Fprintf(b, "    <%s %s>\n", root, strings.Join(attrs, " "))
	e.writeContent(b, "      ")
	fmt.Fprintf(b, "    </%s>\n", root)
	b.WriteString("  );\n")
	b.WriteString("}\n")
}

func (e *componentEmitter) writeContent(b *strings.Builder, indent string) {
	switch {
	case e.hasTextContent():
		fmt.Fprintf(b, "%s{children ?? %s}\n", indent, jsString(e.node.Characters))
	case len(e.children) > 0:
		fmt.Fprintf(b, "%s{children ?? (\n", indent)
		fmt.Fprintf(b, "%s  <>\n", indent)
		for _, child := range e.children {
			e.writeChild(b, child, indent+"    ")
		}
		fmt.Fprintf(b, "%s  </>\n", indent)
		fmt.Fprintf(b, "%s)}\n", indent)
	default:
		fmt.Fprintf(b, "%s{children}\n", indent)
	}
}

func (e *componentEmitter) writeChild(b *strings.Builder, child childElement, indent string) {
	tag := defaultElement(child.node)
	attrs := []string{"data-node-id=" + jsxString(child.node.ID)}
	switch e.idiom {
	case IdiomScopedClass:
		if strings.TrimSpace(child.node.CSS) != "" {
			attrs = append(attrs, fmt.Sprintf("className={styles[%s]}", jsSingleQuoted(child.selector)))
		}
	case IdiomUtilityClasses:
		attrs = append(attrs, "className="+jsxString(UtilityClasses(child.node.CSS)))
	case IdiomInlineObject:
		if entries := StyleEntries(child.node.CSS); len(entries) > 0 {
			parts := make([]string, 0, len(entries))
			for _, en := range entries {
				parts = append(parts, objectKey(en.Property)+": "+jsSingleQuoted(en.Value))
			}
			attrs = append(attrs, "style={{ "+strings.Join(parts, ", ")+" }}")
		}
	}
	open := tag + " " + strings.Join(attrs, " ")

	switch {
	case child.node.Type == NodeText && child.node.Characters != "":
		fmt.Fprintf(b, "%s<%s>{%s}</%s>\n", indent, open, jsString(child.node.Characters), tag)
	case len(child.children) > 0:
		fmt.Fprintf(b, "%s<%s>\n", indent, open)
		for _, gc := range child.children {
			e.writeChild(b, gc, indent+"  ")
		}
		fmt.Fprintf(b, "%s</%s>\n", indent, tag)
	default:
		fmt.Fprintf(b, "%s<%s />\n", indent, open)
	}
}

// templateBody is the tagged-template body including nested child rules
func (e *componentEmitter) templateBody() string {
	var b strings.Builder
	b.WriteString(TaggedTemplateBody(e.node.CSS))
	for _, child := range flattenChildren(e.children) {
		if strings.TrimSpace(child.node.CSS) == "" {
			continue
		}
		fmt.Fprintf(&b, "\n\n  & [data-node-id=%s] {\n", cssString(child.node.ID))
		b.WriteString(escapeTemplate(indentBlock(child.node.CSS, "    ")))
		b.WriteString("\n  }")
	}
	return b.String()
}

// styles renders the styles file for idioms that have one
func (e *componentEmitter) styles() string {
	if e.idiom == IdiomTaggedTemplate {
		var b strings.Builder
		b.WriteString("import { css } from 'styled-components';\n\n")
		fmt.Fprintf(&b, "export const %sStyles = css`\n%s\n`;\n", lowerCamel(e.name), e.templateBody())
		return b.String()
	}

	var b strings.Builder
	b.WriteString(ScopedClass(e.selector, e.node.CSS))
	for _, child := range flattenChildren(e.children) {
		if strings.TrimSpace(child.node.CSS) == "" {
			continue
		}
		b.WriteString("\n")
		b.WriteString(ScopedClass(child.selector, child.node.CSS))
	}
	return b.String()
}

// index renders the folder's index.ts
func (e *componentEmitter) index() string {
	var b strings.Builder
	fmt.Fprintf(&b, "export { default } from './%s';\n", e.name)
	typesModule := e.name
	if e.opts.IncludeTypes {
		typesModule = trimExt(fileName(e.name, RoleTypes, e.idiom), ".ts")
	}
	fmt.Fprintf(&b, "export type { %s } from './%s';\n", e.propsName(), typesModule)
	return b.String()
}

func trimExt(file, ext string) string {
	return strings.TrimSuffix(file, ext)
}

// jsString encodes s as a double-quoted JavaScript string literal
func jsString(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return `""`
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

// jsxString renders an attribute value; JSX attribute strings cannot hold
// escapes, so the value is passed as an expression
func jsxString(s string) string {
	return "{" + jsString(s) + "}"
}

// cssString quotes s for a CSS attribute selector
func cssString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}

// commentSafe keeps text from closing a block comment early
func commentSafe(s string) string {
	return strings.ReplaceAll(s, "*/", "* /")
}
