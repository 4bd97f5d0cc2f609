package designgen

import (
	core "github.com/yacobolo/designgen/internal/designgen"
	"go.uber.org/zap"
)

// Types shared with the generation core
type (
	DesignNode        = core.DesignNode
	StyleIdiom        = core.StyleIdiom
	ProjectTree       = core.ProjectTree
	ComponentEntry    = core.ComponentEntry
	Issue             = core.Issue
	IssuePos          = core.IssuePos
	ReporterConfig    = core.ReporterConfig
	GenerationSummary = core.GenerationSummary
)

// Config holds generator configuration
type Config struct {
	Inputs         []string // ["design/**/*.json"]
	OutputDir      string   // "ui"
	Idiom          string   // "scoped-class", "tagged-template", "utility-classes", "inline-object"
	Types          bool     // Emit <Name>.types.ts
	Children       bool     // Render child nodes as static markup
	Tests          bool     // Emit vitest scaffolds
	Stories        bool     // Emit Storybook stories
	PackageName    string   // "design-components"
	PackageVersion string   // "0.1.0"
	IgnoreFile     string   // Gitignore-syntax file listing output paths to leave untouched
	DryRun         bool     // Emit and verify without writing
	Logger         *zap.Logger
}

// GenerateResult contains generation stats
type GenerateResult struct {
	FilesScanned int
	NodesLoaded  int
	Components   []ComponentEntry
	Written      []string
	Skipped      []string
	Warnings     []string
	Issues       []Issue // Coherence issues found in the emitted tree
}

// Summary converts the result for the terminal reporter
func (r *GenerateResult) Summary(outputDir string) GenerationSummary {
	return GenerationSummary{
		OutputDir:  outputDir,
		Components: r.Components,
		Written:    r.Written,
		Skipped:    r.Skipped,
		Warnings:   r.Warnings,
	}
}

// CheckConfig holds coherence check configuration
type CheckConfig struct {
	Dir      string   // Root of an emitted project
	Includes []string // Globs relative to Dir; defaults to the project files
	Logger   *zap.Logger
}

// CheckResult contains the issues found in an emitted project
type CheckResult struct {
	FilesScanned int
	Issues       []Issue
	ErrorCount   int
	WarningCount int
}

// OutputFormat represents the check output format
type OutputFormat string

const (
	// OutputIssues shows issues in golangci-lint format followed by a summary
	OutputIssues OutputFormat = "issues"
	// OutputSummary shows only the summary counts
	OutputSummary OutputFormat = "summary"
	// OutputJSON exports structured data for tooling
	OutputJSON OutputFormat = "json"
)

func nopIfNil(log *zap.Logger) *zap.Logger {
	if log == nil {
		return zap.NewNop()
	}
	return log
}
