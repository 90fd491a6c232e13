package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"

	"github.com/shanakasp/backendNextSupabase/cli"
)

func main() {
	err := cli.NewRootCommand().Execute()
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		slog.Error("Command failed", "error", err)
		os.Exit(1)
	}
}
