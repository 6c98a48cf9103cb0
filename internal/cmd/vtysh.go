package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/xdg/zrpcd/internal/config"
	"github.com/xdg/zrpcd/internal/prompt"
	"github.com/xdg/zrpcd/internal/term"
	"github.com/xdg/zrpcd/internal/vty"
)

const (
	vtyshPrompt      = "zrpcd# "
	vtyshDialTimeout = 5 * time.Second
)

var (
	vtyshCommands []string
	vtyshSocket   string
)

var vtyshCmd = &cobra.Command{
	Use:   "vtysh",
	Short: "Run operator commands against the running daemon",
	Long: `Connect to the running daemon's vty socket and run commands such as
"show debugging zrpc", "debug zrpc network" or "log file PATH LEVEL".

With -c, each command is run in order and vtysh exits; otherwise commands
are read from stdin, interactively when stdin is a terminal. Type "exit"
or press Ctrl-D to leave.`,
	Args: cobra.NoArgs,
	RunE: runVtyshCmd,
}

func init() {
	vtyshCmd.Flags().StringArrayVarP(&vtyshCommands, "command", "c", nil, "command to run (repeatable)")
	vtyshCmd.Flags().StringVar(&vtyshSocket, "socket", "", "vty socket path (default from configuration)")
	rootCmd.AddCommand(vtyshCmd)
}

func runVtyshCmd(cmd *cobra.Command, args []string) error {
	socket, err := resolveSocket(vtyshSocket, configPath)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), vtyshDialTimeout)
	sess, err := vty.Dial(ctx, socket)
	cancel()
	if err != nil {
		return daemonNotRunningError(socket, err)
	}
	defer sess.Close()

	if len(vtyshCommands) > 0 {
		return runVtyshLines(sess, prompt.NewStreamLineReader(strings.NewReader(strings.Join(vtyshCommands, "\n"))), term.Stdout())
	}

	reader, err := prompt.New(os.Stdin, vtyshPrompt)
	if err != nil {
		return err
	}
	defer reader.Close()

	out := term.Stdout()
	if tr, ok := reader.(*prompt.TerminalLineReader); ok {
		out = tr.Output()
	}
	return runVtyshLines(sess, reader, out)
}

// resolveSocket picks the vty socket: the flag, else the configuration.
func resolveSocket(flagValue, cfgPath string) (string, error) {
	if flagValue != "" {
		return config.ExpandHome(flagValue), nil
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return "", fmt.Errorf("failed to load config: %w", err)
	}
	return cfg.VTY.Socket, nil
}

// lineExecutor runs one command line on the daemon.
type lineExecutor interface {
	Execute(line string) (vty.Result, error)
}

// runVtyshLines sends every line from reader and prints the results to out.
// It returns an ExitCodeError when any command failed.
func runVtyshLines(sess lineExecutor, reader prompt.LineReader, out io.Writer) error {
	failed := 0
	for {
		line, err := reader.ReadLine()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		if line == "exit" || line == "quit" {
			break
		}
		if line == "" {
			continue
		}

		res, err := sess.Execute(line)
		if err != nil {
			return fmt.Errorf("lost connection to zrpcd: %w", err)
		}
		printResult(out, res)
		if res.Status == vty.StatusError {
			failed++
		}
	}

	if failed > 0 {
		return NewExitCodeError(1)
	}
	return nil
}

// printResult prints the command output, then a "% <status>" line unless the
// command succeeded.
func printResult(out io.Writer, res vty.Result) {
	for _, line := range res.Output {
		_, _ = fmt.Fprintln(out, line)
	}
	switch {
	case res.Err != nil:
		_, _ = fmt.Fprintf(out, "%% %s: %v\n", term.Status(res.Status.String()), res.Err)
	case res.Status != vty.StatusSuccess:
		_, _ = fmt.Fprintf(out, "%% %s\n", term.Status(res.Status.String()))
	}
}
