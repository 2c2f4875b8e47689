package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/agentx-labs/devkit/internal/schema"
)

var toolsJSON bool

func init() {
	toolsCmd.Flags().BoolVar(&toolsJSON, "json", false, "Print descriptors as JSON")
	rootCmd.AddCommand(toolsCmd)
}

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the available actions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tools := schema.Tools()
		out := cmd.OutOrStdout()

		if toolsJSON {
			data, err := json.MarshalIndent(tools, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling descriptors: %w", err)
			}
			fmt.Fprintln(out, string(data))
			return nil
		}

		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ACTION\tREQUIRED\tDESCRIPTION")
		for _, t := range tools {
			fmt.Fprintf(w, "%s\t%s\t%s\n", t.Name, strings.Join(schema.Required(t), ", "), t.Description)
		}
		return w.Flush()
	},
}
