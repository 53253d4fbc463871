package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/happycollision/pyenv/internal/config"
	"github.com/happycollision/pyenv/internal/resolve"
)

var globalCmd = &cobra.Command{
	Use:   "global [version]",
	Short: "Show or set the global Python version",
	Long: `Show or set the global Python version.

With no argument, prints the version stored in <root>/version. With a
version argument, stores it there. The version must be installed.

Example:
  pyenv global
  pyenv global 3.9.1`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}

		if len(args) == 0 {
			sel, err := s.resolver.Global()
			if errors.Is(err, resolve.ErrNoVersion) {
				return s.noVersion(cmd)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), sel.Version)
			return nil
		}

		version := args[0]
		if err := s.requireInstalled(cmd, version); err != nil {
			return err
		}
		return config.WriteVersionFile(s.settings.GlobalPath(s.root), version)
	},
}
