package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/yacobolo/designgen/bridge"
	"go.uber.org/zap"
)

var pullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Fetch data from the design tool's local helper",
	Long: `Query the design tool's local helper process over the bridge protocol.
The helper is probed on its health endpoint first; when that fails an event
stream (sse or websocket) is opened for responses.`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
}

var pullCodeCmd = &cobra.Command{
	Use:   "code [node-id]",
	Short: "Fetch generated code for a node or the current selection",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		return runPull(cmd, func(ctx context.Context, c *bridge.Client) (json.RawMessage, error) {
			return c.GetCode(ctx, bridge.CodeQuery{NodeID: nodeArg(args), Format: format})
		})
	},
}

var pullVariablesCmd = &cobra.Command{
	Use:     "variables [node-id]",
	Aliases: []string{"vars"},
	Short:   "Fetch variable definitions for a node or the current selection",
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPull(cmd, func(ctx context.Context, c *bridge.Client) (json.RawMessage, error) {
			return c.GetVariableDefinitions(ctx, nodeArg(args))
		})
	},
}

var pullAssetsCmd = &cobra.Command{
	Use:   "assets [node-id]",
	Short: "Fetch image and vector assets for a node or the current selection",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPull(cmd, func(ctx context.Context, c *bridge.Client) (json.RawMessage, error) {
			return c.GetAssets(ctx, nodeArg(args))
		})
	},
}

func init() {
	pf := pullCmd.PersistentFlags()
	pf.String("url", bridge.DefaultBaseURL, "Base URL of the helper process")
	pf.String("transport", "sse", "Response stream: sse|websocket|none")
	pf.Duration("connect-timeout", bridge.DefaultConnectTimeout, "Timeout for opening the event stream")
	pf.Duration("request-timeout", bridge.DefaultRequestTimeout, "Timeout for each request")
	pf.StringP("out", "O", "", "Write the result to a file instead of stdout")

	pullCodeCmd.Flags().String("format", "", "Code format requested from the helper (e.g. react)")

	pullCmd.AddCommand(pullCodeCmd)
	pullCmd.AddCommand(pullVariablesCmd)
	pullCmd.AddCommand(pullAssetsCmd)
}

func nodeArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

type pullFunc func(ctx context.Context, c *bridge.Client) (json.RawMessage, error)

func runPull(cmd *cobra.Command, fetch pullFunc) error {
	log, err := cliLogger()
	if err != nil {
		return errors.Wrap(err, "creating logger")
	}
	defer func() { _ = log.Sync() }()

	opts, err := buildBridgeOptions()
	if err != nil {
		return err
	}
	opts.Logger = log

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	client := bridge.NewClient(opts)
	if err := client.Connect(ctx); err != nil {
		return errors.Wrapf(err, "connecting to %s", opts.BaseURL)
	}
	defer func() {
		if err := client.Disconnect(); err != nil {
			log.Debug("disconnect", zap.Error(err))
		}
	}()

	raw, err := fetch(ctx, client)
	if err != nil {
		return err
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, raw, "", "  "); err != nil {
		pretty.Reset()
		pretty.Write(raw)
	}
	pretty.WriteByte('\n')

	out, _ := cmd.Flags().GetString("out")
	if out == "" {
		_, err := os.Stdout.Write(pretty.Bytes())
		return err
	}
	if err := os.WriteFile(out, pretty.Bytes(), 0o644); err != nil {
		return errors.Wrapf(err, "writing %s", out)
	}
	if !getBool("quiet", false) {
		fmt.Fprintf(os.Stderr, "Wrote %s\n", out)
	}
	return nil
}
