package main

import (
	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for designgen commands and flags.

  source <(designgen completion bash)
  designgen completion zsh > "${fpath[1]}/_designgen"`,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	DisableFlagsInUseLine: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		noDesc, _ := cmd.Flags().GetBool("no-descriptions")
		out := cmd.OutOrStdout()

		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletionV2(out, !noDesc)
		case "zsh":
			if noDesc {
				return rootCmd.GenZshCompletionNoDesc(out)
			}
			return rootCmd.GenZshCompletion(out)
		case "fish":
			return rootCmd.GenFishCompletion(out, !noDesc)
		case "powershell":
			if noDesc {
				return rootCmd.GenPowerShellCompletion(out)
			}
			return rootCmd.GenPowerShellCompletionWithDesc(out)
		}
		return nil
	},
}

func init() {
	completionCmd.Flags().Bool("no-descriptions", false, "Leave completion descriptions out")
}
