package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/agentx-labs/devkit/internal/branding"
	"github.com/agentx-labs/devkit/internal/runtime"
	"github.com/agentx-labs/devkit/internal/server"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the scaffolding server on stdin/stdout",
	Long: `Run the JSON-RPC server on stdin/stdout. Requests and responses are one JSON
object per line. Logs go to stderr. The server exits cleanly on SIGINT or SIGTERM.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(&runtime.ExecRunner{})
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		srv := server.New(a.router, server.Info{
			Name:    branding.ServerName(),
			Version: buildVersion,
		}, logger.Named("server"))
		return srv.Serve(ctx, os.Stdin, os.Stdout)
	},
}
