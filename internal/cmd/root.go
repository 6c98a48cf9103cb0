// Package cmd implements the CLI commands for zrpcd.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xdg/zrpcd/internal/clog"
	"github.com/xdg/zrpcd/internal/term"
	"github.com/xdg/zrpcd/internal/version"
)

var (
	configPath string
	silent     bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "zrpcd",
	Short: "BGP notification relay daemon",
	Long: `zrpcd relays BGP routing notifications between a routing daemon and
its controller.

Run the daemon with "zrpcd run". Inspect and change its diagnostic logging
and debug categories with "zrpcd vtysh".`,
	Version:       version.String(),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		term.SetSilent(silent)
		// Library messages share the daemon's log format. Outside the
		// daemon only warnings and worse are worth showing.
		clog.RedirectStdLog()
		if cmd != runCmd {
			clog.Default().SetLevel(clog.SeverityWarning)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "configuration file (default $XDG_CONFIG_HOME/zrpcd/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&silent, "silent", "s", false, "suppress normal output")
}

// Execute runs the root command and returns any error.
func Execute() error {
	return rootCmd.Execute()
}
