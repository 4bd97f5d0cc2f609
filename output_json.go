package designgen

import (
	"encoding/json"
	"io"
	"time"

	core "github.com/yacobolo/designgen/internal/designgen"
)

// JSONOutput is the structured export schema of a check run
type JSONOutput struct {
	Version   string      `json:"version"`
	Timestamp string      `json:"timestamp"`
	Summary   JSONSummary `json:"summary"`
	Issues    []JSONIssue `json:"issues"`
}

// JSONSummary contains high-level issue counts
type JSONSummary struct {
	TotalIssues  int            `json:"total_issues"`
	Errors       int            `json:"errors"`
	Warnings     int            `json:"warnings"`
	FilesScanned int            `json:"files_scanned"`
	ByCheck      map[string]int `json:"by_check"`
}

// JSONIssue represents a single coherence issue
type JSONIssue struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Check    string `json:"check"`
	Source   string `json:"source,omitempty"`
}

// WriteJSON writes the check result as JSON
func WriteJSON(w io.Writer, result *CheckResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(buildJSONOutput(result, time.Now()))
}

func buildJSONOutput(result *CheckResult, now time.Time) JSONOutput {
	var errs, warnings int
	byCheck := make(map[string]int)
	issues := make([]JSONIssue, len(result.Issues))

	for i, issue := range result.Issues {
		switch issue.Severity {
		case core.SeverityError:
			errs++
		case core.SeverityWarning:
			warnings++
		}
		byCheck[issue.FromCheck]++

		issues[i] = JSONIssue{
			File:     issue.Pos.Filename,
			Line:     issue.Pos.Line,
			Column:   issue.Pos.Column,
			Severity: issue.Severity,
			Message:  issue.Text,
			Check:    issue.FromCheck,
			Source:   issue.SourceLine,
		}
	}

	return JSONOutput{
		Version:   "1.0",
		Timestamp: now.Format(time.RFC3339),
		Summary: JSONSummary{
			TotalIssues:  len(result.Issues),
			Errors:       errs,
			Warnings:     warnings,
			FilesScanned: result.FilesScanned,
			ByCheck:      byCheck,
		},
		Issues: issues,
	}
}
