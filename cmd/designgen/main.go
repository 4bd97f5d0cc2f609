// Package main provides the designgen CLI for turning design nodes into
// React + TypeScript component projects.
package main

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	core "github.com/yacobolo/designgen/internal/designgen"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errIssuesFound) {
			useColors := core.NewReporter(os.Stderr, core.ReporterConfig{UseColors: getBool("color", false)}).UseColors()
			fmt.Fprintf(os.Stderr, "%s %v\n", core.RenderStyle(core.StyleError, "error:", useColors), err)
			for _, hint := range errors.GetAllHints(err) {
				fmt.Fprintf(os.Stderr, "%s %s\n", core.RenderStyle(core.StyleMuted, "hint:", useColors), hint)
			}
		}
		os.Exit(1)
	}
}
