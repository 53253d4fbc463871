package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/happycollision/pyenv/internal/resolve"
)

var whichCmd = &cobra.Command{
	Use:   "which <command>",
	Short: "Show the full path of an executable in the active version",
	Long: `Show the full path of an executable provided by the active version.

The version directory is searched first, then its Scripts directory.

Example:
  pyenv which python
  pyenv which pip3`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}

		sel, err := s.resolver.Current()
		if errors.Is(err, resolve.ErrNoVersion) {
			return s.noVersion(cmd)
		}
		if err != nil {
			return err
		}

		if err := s.requireInstalled(cmd, sel.Version); err != nil {
			return err
		}

		path, err := s.resolver.Which(sel.Version, args[0])
		if errors.Is(err, resolve.ErrCommandNotFound) {
			return fmt.Errorf("%s: command not found", args[0])
		}
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}
