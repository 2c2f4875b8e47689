package cli

import (
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spf13/cobra"

	"github.com/agentx-labs/devkit/internal/protocol"
	"github.com/agentx-labs/devkit/internal/runtime"
)

func init() {
	rootCmd.AddCommand(callCmd)
}

var callCmd = &cobra.Command{
	Use:   "call <action> [arguments-json]",
	Short: "Invoke one action locally",
	Long: `Invoke one action through the same router the server uses and print its result.

Example:
  devkit call create_project '{"name":"shop","type":"next","path":"."}'`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(&runtime.ExecRunner{Stderr: os.Stderr})
		if err != nil {
			return err
		}

		raw := "{}"
		if len(args) == 2 {
			raw = args[1]
		}
		parsed, err := protocol.ParseArguments([]byte(raw))
		if err != nil {
			return protocol.InvalidParams("%v", err)
		}

		res, err := a.router.CallTool(cmd.Context(), args[0], parsed)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, c := range res.Content {
			if text, ok := c.(mcp.TextContent); ok {
				fmt.Fprintln(out, text.Text)
			}
		}
		return nil
	},
}
