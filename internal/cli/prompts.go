package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spf13/cobra"

	"github.com/agentx-labs/devkit/internal/runtime"
)

func init() {
	promptsCmd.AddCommand(promptsListCmd)
	promptsCmd.AddCommand(promptsRenderCmd)
	rootCmd.AddCommand(promptsCmd)
}

var promptsCmd = &cobra.Command{
	Use:   "prompts",
	Short: "List and render prompt templates",
}

var promptsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List prompt templates and their arguments",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(&runtime.ExecRunner{})
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "PROMPT\tARGUMENTS\tDESCRIPTION")
		for _, p := range a.router.ListPrompts() {
			var argNames []string
			for _, arg := range p.Arguments {
				name := arg.Name
				if !arg.Required {
					name += "?"
				}
				argNames = append(argNames, name)
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", p.Name, strings.Join(argNames, ", "), p.Description)
		}
		return w.Flush()
	},
}

var promptsRenderCmd = &cobra.Command{
	Use:   "render <prompt> [key=value...]",
	Short: "Render a prompt template",
	Long: `Render a prompt template with the given arguments.

Example:
  devkit prompts render create-project name=shop type=next "features=typescript, docker"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(&runtime.ExecRunner{})
		if err != nil {
			return err
		}

		values, err := parseKeyValues(args[1:])
		if err != nil {
			return err
		}
		res, err := a.router.GetPrompt(args[0], values)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for i, m := range res.Messages {
			if i > 0 {
				fmt.Fprintln(out)
			}
			if text, ok := m.Content.(mcp.TextContent); ok {
				fmt.Fprintf(out, "[%s]\n%s\n", m.Role, text.Text)
			}
		}
		return nil
	},
}

func parseKeyValues(pairs []string) (map[string]string, error) {
	values := make(map[string]string, len(pairs))
	for _, kv := range pairs {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid argument %q: expected key=value", kv)
		}
		values[key] = value
	}
	return values, nil
}
