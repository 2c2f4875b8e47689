package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/agentx-labs/devkit/internal/branding"
	"github.com/agentx-labs/devkit/internal/config"
	"github.com/agentx-labs/devkit/internal/runtime"
	"github.com/agentx-labs/devkit/internal/schema"
)

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the environment the scaffolder depends on",
	Long: `Verify that node, npm and npx are installed at supported versions, that the
configured package manager is available, and that the action registry is well formed.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		runner := &runtime.ExecRunner{}

		reqs := append([]runtime.Requirement(nil), runtime.DefaultRequirements...)
		if pm := settings.PackageManager; pm != "npm" {
			reqs = append(reqs, runtime.Requirement{Name: pm, Constraint: ">= 1.0.0"})
		}

		problems := 0
		fmt.Fprintln(out, "External tools:")
		for _, st := range runtime.CheckRequirements(cmd.Context(), runner, reqs) {
			if !printRequirement(out, st) {
				problems++
			}
		}

		fmt.Fprintln(out, "\nAction registry:")
		tools := schema.Tools()
		if err := schema.Check(tools); err != nil {
			fmt.Fprintf(out, "  ✗ %v\n", err)
			problems++
		} else {
			fmt.Fprintf(out, "  ✓ %d actions with valid input contracts\n", len(tools))
		}

		fmt.Fprintln(out, "\nConfiguration:")
		fmt.Fprintf(out, "  file:            %s\n", config.FilePath())
		fmt.Fprintf(out, "  package_manager: %s\n", settings.PackageManager)
		fmt.Fprintf(out, "  log_level:       %s\n", settings.LogLevel)

		if problems > 0 {
			return fmt.Errorf("%s doctor found %d problem(s)", branding.CLIName(), problems)
		}
		fmt.Fprintln(out, "\nAll checks passed.")
		return nil
	},
}

func printRequirement(w io.Writer, st runtime.RequirementStatus) bool {
	switch {
	case st.Err != nil:
		fmt.Fprintf(w, "  ✗ %s: %v\n", st.Name, st.Err)
		return false
	case !st.Satisfied:
		fmt.Fprintf(w, "  ✗ %s %s (requires %s)\n", st.Name, st.Version, st.Constraint)
		return false
	default:
		fmt.Fprintf(w, "  ✓ %s %s (%s)\n", st.Name, st.Version, st.Constraint)
		return true
	}
}
