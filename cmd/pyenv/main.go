package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/happycollision/pyenv/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		// Commands that already explained themselves only set the exit code
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		fmt.Fprintf(os.Stderr, "pyenv: %v\n", err)
		os.Exit(1)
	}
}
