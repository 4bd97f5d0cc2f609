package designgen

import (
	"fmt"
	"strings"
)

// Default package metadata for emitted projects
const (
	DefaultPackageName    = "design-components"
	DefaultPackageVersion = "0.1.0"
)

// Shared project paths
const (
	ComponentsDir     = "src/components"
	BarrelPath        = "src/components/index.ts"
	SharedTypesPath   = "src/types/index.ts"
	CSSModuleDeclPath = "src/types/css-modules.d.ts"
	UtilsPath         = "src/utils/index.ts"
	EntryPath         = "src/index.ts"
	ManifestPath      = "package.json"
	CompilerConfPath  = "tsconfig.json"
)

// ProjectOptions controls project emission
type ProjectOptions struct {
	Options
	PackageName    string // "design-components"
	PackageVersion string // "0.1.0"
}

// ComponentEntry records one component folder of an emitted project
type ComponentEntry struct {
	Name        string // Identifier exported by the barrel
	NodeID      string
	Dir         string // "src/components/HelloWorld"
	Interactive bool
}

// ProjectTree is a virtual file tree produced by EmitProject
type ProjectTree struct {
	Files          map[string]string // Relative path -> source text
	Paths          []string          // Paths in emission order
	Components     []ComponentEntry
	Manifest       Manifest
	CompilerConfig CompilerConfig
	Warnings       []string
}

func (t *ProjectTree) add(path, content string) {
	if _, exists := t.Files[path]; !exists {
		t.Paths = append(t.Paths, path)
	}
	t.Files[path] = content
}

// EmitProject generates a complete project for a list of design nodes.
//
// Nodes whose names normalize to an identifier already used by an earlier
// node get a numeric suffix (Button, Button2, ...) and a warning, so every
// component stays reachable through the barrel.
func EmitProject(nodes []DesignNode, opts ProjectOptions) ProjectTree {
	tree := ProjectTree{Files: make(map[string]string)}
	taken := make(NameSet)

	for _, node := range nodes {
		base := Normalize(node.Name)
		name := UniqueName(base, taken)
		taken.Add(name)
		if name != base {
			tree.Warnings = append(tree.Warnings, fmt.Sprintf(
				"Component name %s from node %q collides with an earlier node - emitted as %s",
				base, node.ID, name,
			))
		}

		comp := emitNamed(node, name, opts.Options)
		dir := ComponentsDir + "/" + name
		for _, role := range fileRoles {
			if content, ok := comp.Files[role]; ok {
				tree.add(dir+"/"+comp.FileName(role), content)
			}
		}

		tree.Components = append(tree.Components, ComponentEntry{
			Name:        name,
			NodeID:      node.ID,
			Dir:         dir,
			Interactive: comp.Metadata.IsInteractive,
		})
	}

	tree.add(BarrelPath, barrel(tree.Components))
	tree.add(SharedTypesPath, sharedTypes())
	if opts.idiom() == IdiomScopedClass {
		tree.add(CSSModuleDeclPath, cssModuleDeclarations())
	}
	tree.add(UtilsPath, utilities())
	tree.add(EntryPath, entryPoint())

	// Without components nothing imports the test, story or styling packages
	manifestOpts := opts
	if len(tree.Components) == 0 {
		manifestOpts.IncludeTests = false
		manifestOpts.IncludeStories = false
		manifestOpts.Idiom = IdiomScopedClass
	}
	tree.Manifest = BuildManifest(manifestOpts)
	tree.add(ManifestPath, renderJSON(tree.Manifest))

	tree.CompilerConfig = BuildCompilerConfig()
	tree.add(CompilerConfPath, renderJSON(tree.CompilerConfig))

	return tree
}

// barrel re-exports every component by its identifier
func barrel(components []ComponentEntry) string {
	var b strings.Builder
	b.WriteString("// Component barrel - re-exports every generated component\n")
	if len(components) == 0 {
		b.WriteString("export {};\n")
		return b.String()
	}

	b.WriteString("\n")
	for _, c := range components {
		fmt.Fprintf(&b, "export { default as %s } from './%s';\n", c.Name, c.Name)
		fmt.Fprintf(&b, "export type { %sProps } from './%s';\n", c.Name, c.Name)
	}
	return b.String()
}
