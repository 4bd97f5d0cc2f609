package designgen

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// ReporterConfig controls terminal output
type ReporterConfig struct {
	UseColors      bool
	PrintLines     bool // Print the offending source line with a caret
	PrintCheckName bool // Append "(barrel)" etc. to each issue
}

// GenerationSummary describes one generate run
type GenerationSummary struct {
	OutputDir  string
	Components []ComponentEntry
	Written    []string
	Skipped    []string // Paths matched by the ignore file
	Warnings   []string
}

// Reporter prints issues and generation summaries
type Reporter struct {
	w              io.Writer
	useColors      bool
	printLines     bool
	printCheckName bool
}

// NewReporter creates a reporter writing to w
func NewReporter(w io.Writer, config ReporterConfig) *Reporter {
	return &Reporter{
		w:              w,
		useColors:      shouldUseColors(config),
		printLines:     config.PrintLines,
		printCheckName: config.PrintCheckName,
	}
}

func shouldUseColors(config ReporterConfig) bool {
	if config.UseColors {
		return true
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	if fileInfo, err := os.Stdout.Stat(); err == nil && (fileInfo.Mode()&os.ModeCharDevice) != 0 {
		return true
	}
	return false
}

// UseColors returns whether colors are enabled
func (r *Reporter) UseColors() bool {
	return r.useColors
}

// PrintIssues outputs issues as file:line:col: message (check)
func (r *Reporter) PrintIssues(issues []Issue) {
	sorted := make([]Issue, len(issues))
	copy(sorted, issues)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Pos.Filename != sorted[j].Pos.Filename {
			return sorted[i].Pos.Filename < sorted[j].Pos.Filename
		}
		if sorted[i].Pos.Line != sorted[j].Pos.Line {
			return sorted[i].Pos.Line < sorted[j].Pos.Line
		}
		return sorted[i].Pos.Column < sorted[j].Pos.Column
	})

	for _, issue := range sorted {
		r.printIssue(issue)
	}
}

func (r *Reporter) printIssue(issue Issue) {
	location := fmt.Sprintf("%s:%d:%d:", issue.Pos.Filename, issue.Pos.Line, issue.Pos.Column)

	suffix := ""
	if r.printCheckName {
		suffix = fmt.Sprintf(" (%s)", issue.FromCheck)
	}

	text := issue.Text
	if issue.Severity == SeverityWarning {
		text = RenderStyle(StyleWarning, "warning: ", r.useColors) + text
	}

	fmt.Fprintf(r.w, "%s %s%s\n",
		RenderStyle(StyleLocation, location, r.useColors),
		text,
		RenderStyle(StyleMuted, suffix, r.useColors))

	if r.printLines && issue.SourceLine != "" {
		fmt.Fprintf(r.w, "\t%s\n", issue.SourceLine)
		caret := buildCaretIndicator(issue.SourceLine, issue.Pos.Column)
		fmt.Fprintf(r.w, "\t%s\n", RenderStyle(StyleWarning, caret, r.useColors))
	}
}

// buildCaretIndicator aligns "^" under column, keeping tabs from the prefix
func buildCaretIndicator(sourceLine string, column int) string {
	if column <= 0 {
		return "^"
	}

	prefixLen := min(column-1, len(sourceLine))

	var padding strings.Builder
	for _, ch := range sourceLine[:prefixLen] {
		if ch == '\t' {
			padding.WriteRune('\t')
		} else {
			padding.WriteRune(' ')
		}
	}
	return padding.String() + "^"
}

// PrintSummary outputs the issue count summary grouped by check
func (r *Reporter) PrintSummary(issues []Issue) {
	var errs, warnings int
	checkCounts := make(map[string]int)
	for _, issue := range issues {
		switch issue.Severity {
		case SeverityError:
			errs++
		case SeverityWarning:
			warnings++
		}
		checkCounts[issue.FromCheck]++
	}

	fmt.Fprintln(r.w, "")

	if len(issues) == 0 {
		fmt.Fprintln(r.w, RenderStyle(StyleSuccess, "0 issues: project is coherent", r.useColors))
		return
	}

	header := pluralizeCount(len(issues), "issue", "issues")
	if errs > 0 && warnings > 0 {
		header = fmt.Sprintf("%s (%s, %s)", header,
			pluralizeCount(errs, "error", "errors"),
			pluralizeCount(warnings, "warning", "warnings"))
	}
	style := StyleWarning
	if errs > 0 {
		style = StyleError
	}
	fmt.Fprintln(r.w, RenderStyle(style, header+":", r.useColors))

	checks := make([]string, 0, len(checkCounts))
	for check := range checkCounts {
		checks = append(checks, check)
	}
	sort.Strings(checks)
	for _, check := range checks {
		fmt.Fprintf(r.w, "* %s: %d\n", check, checkCounts[check])
	}
}

// PrintGeneration outputs what a generate run wrote
func (r *Reporter) PrintGeneration(summary GenerationSummary) {
	for _, warning := range summary.Warnings {
		fmt.Fprintf(r.w, "%s %s\n", RenderStyle(StyleWarning, "warning:", r.useColors), warning)
	}

	if len(summary.Skipped) > 0 {
		fmt.Fprintln(r.w, RenderStyle(StyleMuted, "Skipped (ignored):", r.useColors))
		for _, p := range summary.Skipped {
			fmt.Fprintf(r.w, "  %s\n", RenderStyle(StyleMuted, p, r.useColors))
		}
	}

	fmt.Fprintf(r.w, "%s %s, %s to %s\n",
		RenderStyle(StyleSuccess, "Generated", r.useColors),
		pluralizeCount(len(summary.Components), "component", "components"),
		pluralizeCount(len(summary.Written), "file", "files"),
		RenderStyle(StyleLocation, summary.OutputDir, r.useColors))
}

func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}
