package designgen

import (
	"bytes"
	"encoding/json"
)

// Dependency version ranges written to the manifest
const (
	reactVersion            = "^18.2.0"
	reactPeerRange          = ">=18.0.0"
	styledComponentsVersion = "^6.1.8"
	typescriptVersion       = "^5.4.0"
	reactTypesVersion       = "^18.2.0"
	vitestVersion           = "^1.6.0"
	testingLibraryVersion   = "^15.0.0"
	jsdomVersion            = "^24.0.0"
	storybookVersion        = "^8.1.0"
)

// Manifest is the emitted package.json document
type Manifest struct {
	Name             string            `json:"name"`
	Version          string            `json:"version"`
	Private          bool              `json:"private"`
	Type             string            `json:"type"`
	Main             string            `json:"main"`
	Types            string            `json:"types"`
	Scripts          map[string]string `json:"scripts"`
	Dependencies     map[string]string `json:"dependencies"`
	DevDependencies  map[string]string `json:"devDependencies"`
	PeerDependencies map[string]string `json:"peerDependencies"`
}

// BuildManifest declares exactly the packages the emitted files import
func BuildManifest(opts ProjectOptions) Manifest {
	name := opts.PackageName
	if name == "" {
		name = DefaultPackageName
	}
	version := opts.PackageVersion
	if version == "" {
		version = DefaultPackageVersion
	}

	m := Manifest{
		Name:    name,
		Version: version,
		Private: true,
		Type:    "module",
		Main:    "dist/index.js",
		Types:   "dist/index.d.ts",
		Scripts: map[string]string{
			"build": "tsc -p tsconfig.json",
		},
		Dependencies: map[string]string{
			"react":     reactVersion,
			"react-dom": reactVersion,
		},
		DevDependencies: map[string]string{
			"typescript":       typescriptVersion,
			"@types/react":     reactTypesVersion,
			"@types/react-dom": reactTypesVersion,
		},
		PeerDependencies: map[string]string{
			"react":     reactPeerRange,
			"react-dom": reactPeerRange,
		},
	}

	if opts.idiom() == IdiomTaggedTemplate {
		m.Dependencies["styled-components"] = styledComponentsVersion
	}
	if opts.IncludeTests {
		m.Scripts["test"] = "vitest run"
		m.DevDependencies["vitest"] = vitestVersion
		m.DevDependencies["@testing-library/react"] = testingLibraryVersion
		m.DevDependencies["jsdom"] = jsdomVersion
	}
	if opts.IncludeStories {
		m.Scripts["storybook"] = "storybook dev -p 6006"
		m.DevDependencies["@storybook/react"] = storybookVersion
	}

	return m
}

// CompilerConfig is the emitted tsconfig.json document
type CompilerConfig struct {
	CompilerOptions CompilerOptions `json:"compilerOptions"`
	Include         []string        `json:"include"`
	Exclude         []string        `json:"exclude"`
}

// CompilerOptions holds the TypeScript compiler settings
type CompilerOptions struct {
	Target                           string   `json:"target"`
	Lib                              []string `json:"lib"`
	Module                           string   `json:"module"`
	ModuleResolution                 string   `json:"moduleResolution"`
	JSX                              string   `json:"jsx"`
	Strict                           bool     `json:"strict"`
	Declaration                      bool     `json:"declaration"`
	DeclarationMap                   bool     `json:"declarationMap"`
	OutDir                           string   `json:"outDir"`
	RootDir                          string   `json:"rootDir"`
	ESModuleInterop                  bool     `json:"esModuleInterop"`
	SkipLibCheck                     bool     `json:"skipLibCheck"`
	ForceConsistentCasingInFileNames bool     `json:"forceConsistentCasingInFileNames"`
}

// BuildCompilerConfig returns strict settings for a React library build
func BuildCompilerConfig() CompilerConfig {
	return CompilerConfig{
		CompilerOptions: CompilerOptions{
			Target:                           "ES2020",
			Lib:                              []string{"DOM", "DOM.Iterable", "ES2020"},
			Module:                           "ESNext",
			ModuleResolution:                 "bundler",
			JSX:                              "react-jsx",
			Strict:                           true,
			Declaration:                      true,
			DeclarationMap:                   true,
			OutDir:                           "dist",
			RootDir:                          "src",
			ESModuleInterop:                  true,
			SkipLibCheck:                     true,
			ForceConsistentCasingInFileNames: true,
		},
		Include: []string{"src"},
		Exclude: []string{"node_modules", "dist", "**/*.test.tsx", "**/*.stories.tsx"},
	}
}

// renderJSON encodes a document with two-space indentation; map keys are sorted
func renderJSON(v any) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "{}\n"
	}
	return buf.String()
}
