package designgen

import (
	"io"
	"os"

	core "github.com/yacobolo/designgen/internal/designgen"
)

// DetermineOutputFormat selects the output format from the --output-format
// flag. Unknown values fall back to issues.
func DetermineOutputFormat(formatFlag string, quiet bool) OutputFormat {
	if quiet {
		return OutputIssues
	}

	switch formatFlag {
	case "summary":
		return OutputSummary
	case "json":
		return OutputJSON
	default:
		return OutputIssues
	}
}

// WriteOutput writes the check result in the requested format
func WriteOutput(w io.Writer, result *CheckResult, format OutputFormat, config ReporterConfig) {
	switch format {
	case OutputIssues:
		reporter := core.NewReporter(w, config)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(result.Issues)

	case OutputSummary:
		core.NewReporter(w, config).PrintSummary(result.Issues)

	case OutputJSON:
		if err := WriteJSON(w, result); err != nil {
			os.Stderr.WriteString("Error writing JSON: " + err.Error() + "\n")
		}
	}
}
