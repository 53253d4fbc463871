package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/happycollision/pyenv/internal/resolve"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the current Python version and its origin",
	Long: `Show the active Python version and what selected it.

Example:
  pyenv version
  3.9.1 (set by /home/me/project/.python-version)`,
	Args: cobra.NoArgs,
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

		fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", sel.Version, sel.Describe())
		return nil
	},
}
