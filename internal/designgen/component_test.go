package designgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allOptions = Options{
	IncludeTypes:    true,
	IncludeChildren: true,
	IncludeTests:    true,
	IncludeStories:  true,
}

var sampleCard = DesignNode{
	ID:   "10:1",
	Name: "Card",
	Type: NodeFrame,
	CSS:  "display: flex;\nwidth: 320px;",
	Children: []DesignNode{
		{ID: "c1", Name: "Title", Type: NodeText, CSS: "color: red;", Characters: "Label"},
		{ID: "c2", Name: "Body", Type: NodeRectangle},
	},
}

func TestEmitEmptyNode(t *testing.T) {
	comp := Emit(DesignNode{ID: "1", Name: "", Type: NodeFrame}, Options{Idiom: IdiomScopedClass, IncludeTypes: true})

	assert.Equal(t, "Component", comp.Name)
	assert.Equal(t, "1", comp.NodeID)
	assert.Equal(t, ".component {\n  /* No styles defined in design */\n}\n", comp.Files[RoleStyles])
	assert.Contains(t, comp.Files[RoleComponent], "import styles from './Component.module.css';")
	assert.Contains(t, comp.Files[RoleComponent], "import type { ComponentProps } from './Component.types';")
	assert.Contains(t, comp.Files[RoleComponent], "[styles.component, className]")
	assert.Equal(t, "export { default } from './Component';\nexport type { ComponentProps } from './Component.types';\n", comp.Files[RoleIndex])
	assert.Contains(t, comp.Files[RoleTypes], "export interface ComponentProps {")
	assert.NotContains(t, comp.Files, RoleTest)
	assert.NotContains(t, comp.Files, RoleStories)

	assert.Equal(t, Metadata{NodeType: NodeFrame, StyleIdiom: IdiomScopedClass}, comp.Metadata)
}

func TestEmitZeroValueNode(t *testing.T) {
	comp := Emit(DesignNode{}, Options{})

	assert.Equal(t, "Component", comp.Name)
	assert.Contains(t, comp.Files[RoleComponent], "export default function Component(")
	assert.Contains(t, comp.Files[RoleComponent], "{children}")
	assert.Contains(t, comp.Files, RoleStyles)
}

func TestEmitTextNode(t *testing.T) {
	node := DesignNode{ID: "2", Name: "Hello, World!", Type: NodeText, Characters: "Hi"}
	comp := Emit(node, Options{Idiom: IdiomScopedClass, IncludeTests: true})

	assert.Equal(t, "HelloWorld", comp.Name)
	src := comp.Files[RoleComponent]
	assert.Contains(t, src, "as: Component = 'span',")
	assert.Contains(t, src, `{children ?? "Hi"}`)
	assert.Contains(t, src, "export interface HelloWorldProps {")

	test := comp.Files[RoleTest]
	require.NotEmpty(t, test)
	assert.Contains(t, test, "it('renders without crashing'")
	assert.Contains(t, test, "it('renders text content'")
	assert.Contains(t, test, `expect(screen.getByText("Hi")).toBeTruthy();`)
	assert.Contains(t, test, "screen.getByTestId('helloworld')")
	assert.Contains(t, test, "it('applies a custom className'")
	assert.Contains(t, test, "it('applies inline style overrides'")
	assert.NotContains(t, test, "onClick")
}

func TestEmitTextNodeWithoutCharacters(t *testing.T) {
	comp := Emit(DesignNode{Name: "Caption", Type: NodeText}, Options{IncludeTests: true})

	assert.Contains(t, comp.Files[RoleComponent], "{children}")
	assert.Contains(t, comp.Files[RoleTest], "render(<Caption>Sample text</Caption>);")
}

func TestEmitStylesReference(t *testing.T) {
	node := DesignNode{ID: "3", Name: "Box", Type: NodeFrame, CSS: "display: flex;\nwidth: 10px;"}

	tests := []struct {
		idiom       StyleIdiom
		hasStyles   bool
		contains    []string
		notContains []string
	}{
		{
			idiom:       IdiomScopedClass,
			hasStyles:   true,
			contains:    []string{"import styles from './Box.module.css';", "[styles.box, className]"},
			notContains: []string{"styled-components", "baseStyle"},
		},
		{
			idiom:       IdiomTaggedTemplate,
			hasStyles:   true,
			contains:    []string{"import styled from 'styled-components';", "const StyledBox = styled.div`\n  display: flex;\n  width: 10px;\n`;", "<StyledBox as={Component}"},
			notContains: []string{"module.css", "./Box.styles"},
		},
		{
			idiom:       IdiomUtilityClasses,
			hasStyles:   false,
			contains:    []string{"['flex w-[10px]', className]"},
			notContains: []string{"module.css", "styled-components"},
		},
		{
			idiom:       IdiomInlineObject,
			hasStyles:   false,
			contains:    []string{"const baseStyle: CSSProperties = {\n  display: 'flex',\n  width: '10px',\n};", "style={{ ...baseStyle, ...style }}"},
			notContains: []string{"module.css", "styled-components"},
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.idiom), func(t *testing.T) {
			for _, types := range []bool{false, true} {
				comp := Emit(node, Options{Idiom: tt.idiom, IncludeTypes: types})
				src := comp.Files[RoleComponent]

				_, hasStyles := comp.Files[RoleStyles]
				assert.Equal(t, tt.hasStyles, hasStyles)
				for _, s := range tt.contains {
					assert.Contains(t, src, s)
				}
				for _, s := range tt.notContains {
					assert.NotContains(t, src, s)
				}

				_, hasTypes := comp.Files[RoleTypes]
				assert.Equal(t, types, hasTypes)
				if types {
					assert.Contains(t, src, "from './Box.types';")
				} else {
					assert.NotContains(t, src, "./Box.types")
				}
			}
		})
	}
}

func TestEmitTaggedTemplateStyles(t *testing.T) {
	comp := Emit(DesignNode{Name: "Box", CSS: "color: red;"}, Options{Idiom: IdiomTaggedTemplate})

	assert.Equal(t, "Box.styles.ts", comp.FileName(RoleStyles))
	assert.Equal(t, "import { css } from 'styled-components';\n\nexport const boxStyles = css`\n  color: red;\n`;\n", comp.Files[RoleStyles])
}

func TestEmitInteractive(t *testing.T) {
	node := DesignNode{ID: "4", Name: "Primary Button", Type: NodeButton}
	comp := Emit(node, Options{IncludeTests: true, IncludeStories: true})

	assert.True(t, comp.Metadata.IsInteractive)
	assert.Contains(t, comp.Files[RoleComponent], "as: Component = 'button',")
	assert.Contains(t, comp.Files[RoleComponent], "onClick={onClick}")
	assert.Contains(t, comp.Files[RoleComponent], "import type { CSSProperties, ElementType, MouseEvent, ReactNode } from 'react';")
	assert.Contains(t, comp.Files[RoleTest], "it('calls onClick when clicked (role: button)'")
	assert.Contains(t, comp.Files[RoleTest], "fireEvent.click(screen.getByRole('button'));")
	assert.Contains(t, comp.Files[RoleStories], "export const Interactive: Story")
	assert.NotContains(t, comp.Files[RoleStories], "CustomText")
}

func TestClickRole(t *testing.T) {
	assert.Equal(t, "button", ClickRole(DesignNode{Type: NodeButton}))
	assert.Equal(t, "text", ClickRole(DesignNode{Type: NodeText}))
	assert.Equal(t, "generic", ClickRole(DesignNode{Type: NodeInstance}))
	assert.Equal(t, "generic", ClickRole(DesignNode{Type: "VECTOR"}))
}

func TestEmitStories(t *testing.T) {
	comp := Emit(DesignNode{Name: "Heading", Type: NodeText, Characters: "Title"}, Options{IncludeStories: true})

	stories := comp.Files[RoleStories]
	assert.Contains(t, stories, "title: 'Components/Heading',")
	assert.Contains(t, stories, "export const Default: Story = {\n  args: {},\n};")
	assert.Contains(t, stories, "export const CustomText: Story")
	assert.Contains(t, stories, "export const CustomStyling: Story")
	assert.NotContains(t, stories, "Interactive")
}

func TestEmitChildren(t *testing.T) {
	comp := Emit(sampleCard, Options{IncludeChildren: true})

	src := comp.Files[RoleComponent]
	assert.Contains(t, src, `<span data-node-id={"c1"} className={styles['card__title']}>{"Label"}</span>`)
	assert.Contains(t, src, `<div data-node-id={"c2"} />`)
	assert.Contains(t, src, "{children ?? (")
	assert.True(t, comp.Metadata.HasChildren)

	assert.Equal(t,
		".card {\n  display: flex;\n  width: 320px;\n}\n\n.card__title {\n  color: red;\n}\n",
		comp.Files[RoleStyles])

	tagged := Emit(sampleCard, Options{Idiom: IdiomTaggedTemplate, IncludeChildren: true})
	assert.Contains(t, tagged.Files[RoleComponent], "  & [data-node-id=\"c1\"] {\n    color: red;\n  }")

	inline := Emit(sampleCard, Options{Idiom: IdiomInlineObject, IncludeChildren: true})
	assert.Contains(t, inline.Files[RoleComponent], `<span data-node-id={"c1"} style={{ color: 'red' }}>{"Label"}</span>`)

	without := Emit(sampleCard, Options{})
	assert.NotContains(t, without.Files[RoleComponent], "data-node-id")
	assert.NotContains(t, without.Files[RoleStyles], "card__title")
}

func TestEmitDuplicateChildNames(t *testing.T) {
	node := DesignNode{Name: "List", Children: []DesignNode{
		{ID: "a", Name: "Item", CSS: "color: red;"},
		{ID: "b", Name: "Item", CSS: "color: blue;"},
	}}
	comp := Emit(node, Options{IncludeChildren: true})

	assert.Contains(t, comp.Files[RoleStyles], ".list__item {")
	assert.Contains(t, comp.Files[RoleStyles], ".list__item2 {")

	// Selectors are lower-cased, so names differing only in case collide too
	mixed := Emit(DesignNode{Name: "List", Children: []DesignNode{
		{ID: "a", Name: "Item", CSS: "color: red;"},
		{ID: "b", Name: "ITEM", CSS: "color: blue;"},
	}}, Options{IncludeChildren: true})
	assert.Contains(t, mixed.Files[RoleStyles], ".list__item {\n  color: red;\n}")
	assert.Contains(t, mixed.Files[RoleStyles], ".list__item2 {\n  color: blue;\n}")
}

func TestEmitDocComment(t *testing.T) {
	node := DesignNode{ID: "5", Name: "Tricky */ name", Type: NodeFrame, CSS: "display: flex;\ncolor: red;"}
	comp := Emit(node, Options{})

	src := comp.Files[RoleComponent]
	assert.Contains(t, src, " * TrickyName component generated from design node \"Tricky * / name\" (FRAME 5).\n")
	assert.Contains(t, src, " * Layout: display\n * Visual: color\n")
	assert.NotContains(t, src, "Tricky */")
}

func TestEmitDeterministic(t *testing.T) {
	for _, idiom := range Idioms {
		opts := allOptions
		opts.Idiom = idiom
		first := Emit(sampleCard, opts)
		second := Emit(sampleCard, opts)
		assert.Equal(t, first, second, string(idiom))
	}
}

func TestParseIdiom(t *testing.T) {
	tests := []struct {
		input string
		want  StyleIdiom
		ok    bool
	}{
		{"", IdiomScopedClass, true},
		{"css-modules", IdiomScopedClass, true},
		{"styled-components", IdiomTaggedTemplate, true},
		{"tailwind", IdiomUtilityClasses, true},
		{"inline-object", IdiomInlineObject, true},
		{"sass", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseIdiom(tt.input)
		assert.Equal(t, tt.ok, ok, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
	}
}
