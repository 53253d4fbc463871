package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/happycollision/pyenv/internal/config"
	"github.com/happycollision/pyenv/internal/resolve"
)

var localUnset bool

var localCmd = &cobra.Command{
	Use:   "local [version]",
	Short: "Show or set the Python version for this directory",
	Long: `Show or set the directory-specific Python version.

With no argument, prints the version from the nearest .python-version,
walking up from the current directory. With a version argument, writes
.python-version in the current directory. The version must be installed.

Example:
  pyenv local
  pyenv local 3.8.6
  pyenv local --unset`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}

		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("cannot get working directory: %w", err)
		}
		pinPath := filepath.Join(cwd, s.settings.VersionFile)

		if localUnset {
			return config.RemoveVersionFile(pinPath)
		}

		if len(args) == 0 {
			sel, err := s.resolver.Local()
			if errors.Is(err, resolve.ErrNoVersion) {
				return errors.New(s.settings.Messages.NoLocal())
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
		return config.WriteVersionFile(pinPath, version)
	},
}

func init() {
	localCmd.Flags().BoolVar(&localUnset, "unset", false, "Remove .python-version from the current directory")
}
