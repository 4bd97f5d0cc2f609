package main

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .designgen.yaml config file",
	Long:  `Create a .designgen.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")
		path, _ := cmd.Flags().GetString("config")
		if path == "" {
			path = defaultConfigPath
		}

		if _, err := os.Stat(path); err == nil && !force {
			return errors.Newf("%s already exists (use --force to overwrite)", path)
		}

		if err := os.WriteFile(path, []byte(defaultConfig), 0o644); err != nil {
			return errors.Wrap(err, "writing config file")
		}

		fmt.Printf("Created %s\n", path)
		return nil
	},
}

const defaultConfig = `# designgen configuration
# Precedence: flags > DESIGNGEN_* environment > this file > defaults

verbose: 0               # 0 warn, 1 info, 2 debug
color: false

generate:
  input:
    - "design/**/*.json"
  output-dir: ui
  idiom: scoped-class    # scoped-class | tagged-template | utility-classes | inline-object
  types: true
  children: false
  tests: true
  stories: false
  package-name: design-components
  package-version: 0.1.0
  ignore-file: .designgenignore

check:
  output-format: issues  # issues | summary | json
  print-lines: true
  print-check-name: true

bridge:
  url: http://127.0.0.1:3845
  transport: sse         # sse | websocket | none
  connect-timeout: 5s
  request-timeout: 30s
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
