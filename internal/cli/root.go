package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/agentx-labs/devkit/internal/branding"
	"github.com/agentx-labs/devkit/internal/config"
	"github.com/agentx-labs/devkit/internal/logging"
	"github.com/agentx-labs/devkit/internal/protocol"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	logger   = zap.NewNop()
	settings = &config.Settings{PackageManager: "npm", LogLevel: "info", LogFormat: "json"}
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` exposes project scaffolding actions (project creation, package
installation, component and type generation, package.json and tsconfig edits, documentation)
to AI assistants over a stdio JSON-RPC server, and locally through the call command.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config.Load()

		// Config commands must work even when the stored settings are invalid.
		if cmd == versionCmd || (cmd.Parent() != nil && cmd.Parent() == configCmd) {
			return nil
		}

		s, err := config.Current()
		if err != nil {
			return fmt.Errorf("%w (fix with '%s config set')", err, branding.CLIName())
		}
		l, err := logging.New(logging.Options{Level: s.LogLevel, Format: s.LogFormat})
		if err != nil {
			return err
		}
		settings, logger = s, l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	err := rootCmd.Execute()
	if err != nil {
		printError(err)
	}
	return err
}

func printError(err error) {
	var pe *protocol.Error
	if errors.As(err, &pe) {
		fmt.Fprintf(os.Stderr, "Error [%s]: %s\n", pe.Kind(), pe.Message)
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}
