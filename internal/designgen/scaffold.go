package designgen

import (
	"fmt"
	"strings"
)

// ClickRole returns the accessible role the click test targets
func ClickRole(node DesignNode) string {
	switch node.Type {
	case NodeButton:
		return "button"
	case NodeText:
		return "text"
	default:
		return "generic"
	}
}

// testScaffold renders <Name>.test.tsx
func (e *componentEmitter) testScaffold() string {
	var b strings.Builder
	testID := jsSingleQuoted(e.selector)

	b.WriteString("// @vitest-environment jsdom\n")
	b.WriteString("import React from 'react';\n")
	b.WriteString("import { describe, it, expect, vi } from 'vitest';\n")
	b.WriteString("import { render, screen, fireEvent } from '@testing-library/react';\n")
	fmt.Fprintf(&b, "import %s from './%s';\n\n", e.name, e.name)

	fmt.Fprintf(&b, "describe('%s', () => {\n", e.name)

	b.WriteString("  it('renders without crashing', () => {\n")
	fmt.Fprintf(&b, "    render(<%s />);\n", e.name)
	fmt.Fprintf(&b, "    expect(screen.getByTestId(%s)).toBeTruthy();\n", testID)
	b.WriteString("  });\n")

	if e.node.Type == NodeText {
		text := e.node.Characters
		b.WriteString("\n  it('renders text content', () => {\n")
		if text != "" {
			fmt.Fprintf(&b, "    render(<%s />);\n", e.name)
		} else {
			text = "Sample text"
			fmt.Fprintf(&b, "    render(<%s>Sample text</%s>);\n", e.name, e.name)
		}
		fmt.Fprintf(&b, "    expect(screen.getByText(%s)).toBeTruthy();\n", jsString(text))
		b.WriteString("  });\n")
	}

	if e.interactive {
		role := ClickRole(e.node)
		fmt.Fprintf(&b, "\n  it('calls onClick when clicked (role: %s)', () => {\n", role)
		b.WriteString("    const handleClick = vi.fn();\n")
		fmt.Fprintf(&b, "    render(<%s onClick={handleClick} />);\n", e.name)
		if role == "button" {
			b.WriteString("    fireEvent.click(screen.getByRole('button'));\n")
		} else {
			fmt.Fprintf(&b, "    fireEvent.click(screen.getByTestId(%s));\n", testID)
		}
		b.WriteString("    expect(handleClick).toHaveBeenCalledTimes(1);\n")
		b.WriteString("  });\n")
	}

	b.WriteString("\n  it('applies a custom className', () => {\n")
	fmt.Fprintf(&b, "    render(<%s className=\"custom-class\" />);\n", e.name)
	fmt.Fprintf(&b, "    expect(screen.getByTestId(%s).className).toContain('custom-class');\n", testID)
	b.WriteString("  });\n")

	b.WriteString("\n  it('applies inline style overrides', () => {\n")
	fmt.Fprintf(&b, "    render(<%s style={{ color: 'red' }} />);\n", e.name)
	fmt.Fprintf(&b, "    expect(screen.getByTestId(%s).style.color).toBe('red');\n", testID)
	b.WriteString("  });\n")

	b.WriteString("});\n")
	return b.String()
}

// storyScaffold renders <Name>.stories.tsx in Component Story Format
func (e *componentEmitter) storyScaffold() string {
	var b strings.Builder

	b.WriteString("import type { Meta, StoryObj } from '@storybook/react';\n")
	fmt.Fprintf(&b, "import %s from './%s';\n\n", e.name, e.name)

	fmt.Fprintf(&b, "const meta: Meta<typeof %s> = {\n", e.name)
	fmt.Fprintf(&b, "  title: 'Components/%s',\n", e.name)
	fmt.Fprintf(&b, "  component: %s,\n", e.name)
	b.WriteString("  tags: ['autodocs'],\n")
	b.WriteString("};\n\n")
	b.WriteString("export default meta;\n")
	fmt.Fprintf(&b, "type Story = StoryObj<typeof %s>;\n\n", e.name)

	b.WriteString("export const Default: Story = {\n")
	b.WriteString("  args: {},\n")
	b.WriteString("};\n")

	if e.node.Type == NodeText {
		b.WriteString("\nexport const CustomText: Story = {\n")
		b.WriteString("  args: {\n")
		b.WriteString("    children: 'Custom text',\n")
		b.WriteString("  },\n")
		b.WriteString("};\n")
	}

	if e.interactive {
		b.WriteString("\nexport const Interactive: Story = {\n")
		b.WriteString("  argTypes: {\n")
		b.WriteString("    onClick: { action: 'clicked' },\n")
		b.WriteString("  },\n")
		b.WriteString("};\n")
	}

	b.WriteString("\nexport const CustomStyling: Story = {\n")
	b.WriteString("  args: {\n")
	b.WriteString("    className: 'custom-class',\n")
	b.WriteString("    style: { outline: '2px dashed #3b82f6', padding: '8px' },\n")
	b.WriteString("  },\n")
	b.WriteString("};\n")

	return b.String()
}
