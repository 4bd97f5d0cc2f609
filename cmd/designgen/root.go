package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "designgen",
	Short: "Generate React + TypeScript components from design nodes",
	Long: `Turn design-tool node trees into a component project.
Each node becomes one component folder with its styles, types, tests and
stories, wired together by a barrel, a package manifest and a tsconfig.`,
	// Default behavior: run generate when no subcommand is given.
	// loadConfig is called here because PreRunE of generateCmd is not
	// triggered when delegating via rootCmd.RunE.
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return runGenerate(cmd, nil)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.CountP("verbose", "v", "Increase log verbosity (-v info, -vv debug)")
	pf.Bool("quiet", false, "Suppress all output (exit code only)")
	pf.Bool("color", false, "Force color output")
	pf.String("config", defaultConfigPath, "Config file path")

	// Generation flags also work on the bare root command
	addGenerateFlags(rootCmd)

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(pullCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
