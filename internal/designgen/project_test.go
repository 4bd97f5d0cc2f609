package designgen

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleNodes = []DesignNode{
	{ID: "1", Name: "Hello, World!", Type: NodeText, Characters: "Hi", CSS: "color: #111;"},
	{ID: "2", Name: "Primary Button", Type: NodeButton, CSS: "display: flex;\nbackground-color: #3b82f6;"},
	sampleCard,
}

func TestEmitProjectLayout(t *testing.T) {
	tree := EmitProject(sampleNodes[:1], ProjectOptions{Options: Options{Idiom: IdiomScopedClass, IncludeTypes: true}})

	assert.Equal(t, []string{
		"src/components/HelloWorld/HelloWorld.tsx",
		"src/components/HelloWorld/HelloWorld.types.ts",
		"src/components/HelloWorld/HelloWorld.module.css",
		"src/components/HelloWorld/index.ts",
		BarrelPath,
		SharedTypesPath,
		CSSModuleDeclPath,
		UtilsPath,
		EntryPath,
		ManifestPath,
		CompilerConfPath,
	}, tree.Paths)
	assert.Len(t, tree.Files, len(tree.Paths))
	assert.Equal(t, []ComponentEntry{
		{Name: "HelloWorld", NodeID: "1", Dir: "src/components/HelloWorld"},
	}, tree.Components)
}

func TestEmitProjectBarrel(t *testing.T) {
	tree := EmitProject(sampleNodes, ProjectOptions{})

	assert.Equal(t, "// Component barrel - re-exports every generated component\n\n"+
		"export { default as HelloWorld } from './HelloWorld';\n"+
		"export type { HelloWorldProps } from './HelloWorld';\n"+
		"export { default as PrimaryButton } from './PrimaryButton';\n"+
		"export type { PrimaryButtonProps } from './PrimaryButton';\n"+
		"export { default as Card } from './Card';\n"+
		"export type { CardProps } from './Card';\n",
		tree.Files[BarrelPath])
	assert.Empty(t, VerifyTree(tree))
}

func TestEmitProjectEmpty(t *testing.T) {
	for _, idiom := range Idioms {
		t.Run(string(idiom), func(t *testing.T) {
			opts := ProjectOptions{Options: allOptions}
			opts.Idiom = idiom
			tree := EmitProject(nil, opts)

			assert.Equal(t, "// Component barrel - re-exports every generated component\nexport {};\n", tree.Files[BarrelPath])
			assert.Empty(t, tree.Components)
			assert.Empty(t, tree.Warnings)
			assert.Contains(t, tree.Files, ManifestPath)
			assert.Contains(t, tree.Files, CompilerConfPath)
			assert.Empty(t, VerifyTree(tree))
		})
	}
}

func TestEmitProjectCollisions(t *testing.T) {
	nodes := []DesignNode{
		{ID: "1", Name: "Button"},
		{ID: "2", Name: "button"},
		{ID: "3", Name: "BUTTON!"},
		{ID: "4", Name: "Button"},
	}
	tree := EmitProject(nodes, ProjectOptions{Options: Options{IncludeTests: true}})

	var names []string
	for _, c := range tree.Components {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"Button", "Button2", "BUTTON3", "Button4"}, names)

	require.Len(t, tree.Warnings, 3)
	assert.Contains(t, tree.Warnings[0], `from node "2"`)
	assert.Contains(t, tree.Warnings[0], "emitted as Button2")
	assert.Contains(t, tree.Warnings[1], "emitted as BUTTON3")
	assert.Contains(t, tree.Warnings[2], "emitted as Button4")

	assert.Contains(t, tree.Files, "src/components/Button2/Button2.tsx")
	assert.Contains(t, tree.Files[BarrelPath], "export { default as Button4 } from './Button4';")
	assert.Empty(t, VerifyTree(tree))
}

// Folders that differ only in case would merge on case-insensitive filesystems
func TestEmitProjectCaseOnlyCollision(t *testing.T) {
	tree := EmitProject([]DesignNode{
		{ID: "1", Name: "Primary Button"},
		{ID: "2", Name: "Primarybutton"},
	}, ProjectOptions{})

	dirs := make(map[string]bool)
	for _, c := range tree.Components {
		lower := strings.ToLower(c.Dir)
		assert.False(t, dirs[lower], "folder %s reused up to case", c.Dir)
		dirs[lower] = true
	}
	require.Len(t, tree.Components, 2)
	assert.Equal(t, "Primarybutton2", tree.Components[1].Name)
	require.Len(t, tree.Warnings, 1)
	assert.Contains(t, tree.Warnings[0], `from node "2"`)
	assert.Empty(t, VerifyTree(tree))
}

func TestEmitProjectManifest(t *testing.T) {
	tests := []struct {
		name        string
		opts        Options
		wantDeps    []string
		wantDevDeps []string
		absent      []string
	}{
		{
			name:        "scoped class without scaffolds",
			opts:        Options{Idiom: IdiomScopedClass},
			wantDeps:    []string{"react", "react-dom"},
			wantDevDeps: []string{"typescript", "@types/react", "@types/react-dom"},
			absent:      []string{"styled-components", "vitest", "@storybook/react"},
		},
		{
			name:        "tagged template with tests",
			opts:        Options{Idiom: IdiomTaggedTemplate, IncludeTests: true},
			wantDeps:    []string{"react", "react-dom", "styled-components"},
			wantDevDeps: []string{"vitest", "@testing-library/react", "jsdom"},
			absent:      []string{"@storybook/react"},
		},
		{
			name:        "stories",
			opts:        Options{Idiom: IdiomUtilityClasses, IncludeStories: true},
			wantDevDeps: []string{"@storybook/react"},
			absent:      []string{"vitest", "styled-components"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := EmitProject(sampleNodes, ProjectOptions{Options: tt.opts})
			m := tree.Manifest

			for _, dep := range tt.wantDeps {
				assert.Contains(t, m.Dependencies, dep)
			}
			for _, dep := range tt.wantDevDeps {
				assert.Contains(t, m.DevDependencies, dep)
			}
			for _, dep := range tt.absent {
				assert.NotContains(t, m.Dependencies, dep)
				assert.NotContains(t, m.DevDependencies, dep)
			}
			assert.Equal(t, reactPeerRange, m.PeerDependencies["react"])
			assert.Equal(t, reactPeerRange, m.PeerDependencies["react-dom"])

			var decoded Manifest
			require.NoError(t, json.Unmarshal([]byte(tree.Files[ManifestPath]), &decoded))
			assert.Equal(t, m, decoded)

			assert.Empty(t, VerifyTree(tree))
		})
	}
}

func TestBuildManifestDefaults(t *testing.T) {
	m := BuildManifest(ProjectOptions{})
	assert.Equal(t, DefaultPackageName, m.Name)
	assert.Equal(t, DefaultPackageVersion, m.Version)
	assert.True(t, m.Private)

	m = BuildManifest(ProjectOptions{PackageName: "acme-ui", PackageVersion: "2.0.0"})
	assert.Equal(t, "acme-ui", m.Name)
	assert.Equal(t, "2.0.0", m.Version)
}

func TestCompilerConfig(t *testing.T) {
	tree := EmitProject(nil, ProjectOptions{})

	var conf CompilerConfig
	require.NoError(t, json.Unmarshal([]byte(tree.Files[CompilerConfPath]), &conf))
	assert.True(t, conf.CompilerOptions.Strict)
	assert.True(t, conf.CompilerOptions.Declaration)
	assert.Equal(t, "react-jsx", conf.CompilerOptions.JSX)
	assert.Equal(t, "bundler", conf.CompilerOptions.ModuleResolution)
	assert.Contains(t, conf.Exclude, "**/*.test.tsx")
	assert.Contains(t, conf.Exclude, "**/*.stories.tsx")
}

func TestSharedFiles(t *testing.T) {
	tree := EmitProject(nil, ProjectOptions{})

	utils := tree.Files[UtilsPath]
	assert.Contains(t, utils, "export function cn(")
	assert.Contains(t, utils, "export function mergeStyles(")
	assert.Contains(t, utils, "export function createTestId(componentName: string, suffix?: string): string {")
	assert.Contains(t, utils, "`${base}-${suffix}`")

	types := tree.Files[SharedTypesPath]
	for _, decl := range []string{"interface BaseProps", "interface InteractiveProps", "interface TextProps", "enum Variant", "enum Size"} {
		assert.Contains(t, types, decl)
	}
}

func TestEmitProjectDeterministic(t *testing.T) {
	for _, idiom := range Idioms {
		opts := ProjectOptions{Options: allOptions, PackageName: "acme-ui"}
		opts.Idiom = idiom
		assert.Equal(t, EmitProject(sampleNodes, opts), EmitProject(sampleNodes, opts), string(idiom))
	}
}

func TestEmitProjectCoherentForAllIdioms(t *testing.T) {
	for _, idiom := range Idioms {
		opts := ProjectOptions{Options: allOptions}
		opts.Idiom = idiom
		tree := EmitProject(sampleNodes, opts)
		assert.Empty(t, VerifyTree(tree), string(idiom))
	}
}
