package main

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/yacobolo/designgen"
	core "github.com/yacobolo/designgen/internal/designgen"
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Generate a component project from design node files",
	Long: `Load design nodes from JSON files, emit one component folder per node in
the chosen styling idiom, and write the project with its barrel, manifest
and compiler config. Paths listed in the ignore file are never overwritten.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runGenerate,
}

func init() {
	addGenerateFlags(generateCmd)
	generateCmd.Flags().Bool("verify", false, "Verify the written project afterwards")
}

func addGenerateFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringSliceP("input", "i", []string{"design/**/*.json"}, "Glob patterns for design node JSON files")
	f.StringP("output-dir", "o", "ui", "Output directory for the generated project")
	f.String("idiom", string(core.IdiomScopedClass), "Styling idiom: scoped-class|tagged-template|utility-classes|inline-object")
	f.Bool("types", true, "Emit a separate props types file per component")
	f.Bool("children", false, "Render child nodes as static markup")
	f.Bool("tests", true, "Emit vitest + Testing Library scaffolds")
	f.Bool("stories", false, "Emit Storybook stories")
	f.String("package-name", core.DefaultPackageName, "package.json name")
	f.String("package-version", core.DefaultPackageVersion, "package.json version")
	f.String("ignore-file", ".designgenignore", "Gitignore-syntax file of output paths to leave untouched")
	f.Bool("dry-run", false, "Emit and verify without writing files")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	log, err := cliLogger()
	if err != nil {
		return errors.Wrap(err, "creating logger")
	}
	defer func() { _ = log.Sync() }()

	config := buildGenerateConfig()
	config.Logger = log

	result, err := designgen.Generate(config)
	if err != nil {
		return errors.Wrap(err, "generation failed")
	}

	if !getBool("quiet", false) {
		reporter := core.NewReporter(os.Stdout, buildReporterConfig())
		reporter.PrintGeneration(result.Summary(config.OutputDir))
	}

	verify, _ := cmd.Flags().GetBool("verify")
	if verify && !config.DryRun {
		checkConfig := buildCheckConfig()
		checkConfig.Dir = config.OutputDir
		return runCheck(checkConfig)
	}

	return nil
}
