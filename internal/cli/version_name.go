package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/happycollision/pyenv/internal/resolve"
)

var versionNameCmd = &cobra.Command{
	Use:     "version-name",
	Aliases: []string{"vname"},
	Short:   "Show the current Python version name",
	Long: `Show the name of the active Python version.

The session override (PYENV_VERSION) wins over the nearest .python-version,
which wins over the global version. The name is printed even when that
version is not installed.

Example:
  pyenv version-name
  pyenv vname`,
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

		fmt.Fprintln(cmd.OutOrStdout(), sel.Version)
		return nil
	},
}
