package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var shellUnset bool

var shellCmd = &cobra.Command{
	Use:   "shell [version]",
	Short: "Show or set the Python version for this shell session",
	Long: `Show or set the shell-specific Python version.

A child process cannot change its parent's environment, so with a version
argument this prints a line for your shell to evaluate.

Example:
  pyenv shell
  eval "$(pyenv shell 3.9.2)"
  eval "$(pyenv shell --unset)"`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		name := s.settings.VersionEnv

		if shellUnset {
			fmt.Fprintf(cmd.OutOrStdout(), "unset %s\n", name)
			return nil
		}

		if len(args) == 0 {
			sel := s.resolver.Shell()
			if sel == nil {
				return errors.New(s.settings.Messages.NoShell())
			}
			fmt.Fprintln(cmd.OutOrStdout(), sel.Version)
			return nil
		}

		version := args[0]
		if err := s.requireInstalled(cmd, version); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "export %s=%s\n", name, version)
		return nil
	},
}

func init() {
	shellCmd.Flags().BoolVar(&shellUnset, "unset", false, "Print the command that clears the session version")
}
