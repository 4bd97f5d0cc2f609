// Package designgen turns design-tool node trees into React + TypeScript
// component projects.
//
// Nodes exported from the design tool as JSON are emitted in one of four
// styling idioms, together with types, tests, stories, a component barrel,
// a package manifest and a compiler config.
//
// # Generation
//
//	result, err := designgen.Generate(designgen.Config{
//		Inputs:    []string{"design/**/*.json"},
//		OutputDir: "ui",
//		Idiom:     "scoped-class",
//		Types:     true,
//		Tests:     true,
//	})
//
// # Checking
//
// Re-verify an emitted project after hand edits:
//
//	result, err := designgen.Check(designgen.CheckConfig{Dir: "ui"})
//
// # CLI Tool
//
//	go install github.com/yacobolo/designgen/cmd/designgen@latest
//
// The bridge subpackage talks to the design tool's local helper process.
package designgen

// Public API:
// - Generate(config Config) (*GenerateResult, error)
// - Emit(nodes []DesignNode, config Config) (ProjectTree, error)
// - LoadNodes(patterns []string) ([]DesignNode, error)
// - WriteTree(dir string, tree ProjectTree, ignoreFile string) (written, skipped []string, err error)
// - Check(config CheckConfig) (*CheckResult, error)
// - WriteOutput(w io.Writer, result *CheckResult, format OutputFormat, config ReporterConfig)
