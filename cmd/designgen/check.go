package main

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/yacobolo/designgen"
)

// errIssuesFound makes the process exit 1 without printing an error line
var errIssuesFound = errors.New("coherence issues found")

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the cross-file references of an emitted project",
	Long: `Re-read a generated project from disk and check that the barrel exports
match the component folders, package.json declares exactly the imported
packages, and every relative import resolves.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return runCheck(buildCheckConfig())
	},
}

func init() {
	f := checkCmd.Flags()
	f.String("dir", "ui", "Project directory to check")
	f.String("output-format", "", "Output format: issues|summary|json")
	f.Bool("print-lines", true, "Show source lines with issues")
	f.Bool("print-check", true, "Show (barrel) suffix on issues")
	f.Bool("strict", false, "Exit 1 on warnings too")
}

// runCheck is shared between `designgen check` and `designgen generate --verify`
func runCheck(config designgen.CheckConfig) error {
	log, err := cliLogger()
	if err != nil {
		return errors.Wrap(err, "creating logger")
	}
	defer func() { _ = log.Sync() }()
	config.Logger = log

	result, err := designgen.Check(config)
	if err != nil {
		return errors.Wrap(err, "check failed")
	}

	quiet := getBool("quiet", false)
	format := designgen.DetermineOutputFormat(getString("check.output-format", ""), quiet)
	if !quiet {
		designgen.WriteOutput(os.Stdout, result, format, buildReporterConfig())
	}

	if result.ErrorCount > 0 {
		return errIssuesFound
	}
	if getBool("strict", false) && result.WarningCount > 0 {
		return errIssuesFound
	}
	return nil
}
