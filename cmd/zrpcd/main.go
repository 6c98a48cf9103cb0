// Package main is the entry point for the zrpcd daemon and its vtysh client.
package main

import (
	"errors"
	"os"

	"github.com/xdg/zrpcd/internal/cmd"
	"github.com/xdg/zrpcd/internal/term"
)

func main() {
	if err := cmd.Execute(); err != nil {
		var exitErr *cmd.ExitCodeError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		term.Error("%v", err)
		os.Exit(1)
	}
}
