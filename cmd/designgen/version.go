package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yacobolo/designgen/bridge"
)

// Set at build time: go build -ldflags "-X main.version=1.0.0" ./cmd/designgen
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the designgen version and bridge protocol",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "designgen %s (bridge protocol %s)\n", version, bridge.ProtocolVersion)
	},
}
