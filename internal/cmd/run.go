package cmd

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/xdg/zrpcd/internal/daemon"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the zrpcd daemon in the foreground",
	Long: `Run the zrpcd daemon in the foreground until interrupted.

The daemon logs to the sinks selected in the configuration file, serves the
vty socket for "zrpcd vtysh", and reloads its configuration on SIGHUP or
when the file changes.`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return daemon.New(configPath).Run(ctx)
}
