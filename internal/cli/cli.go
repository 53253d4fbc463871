package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is set by ldflags at build time
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "pyenv",
	Short: "Python version manager",
	Long: `pyenv installs several Python versions side by side and selects one.

The active version comes from, in order of precedence:
  PYENV_VERSION       the current shell session (see 'pyenv shell')
  .python-version     the nearest one walking up from the current directory
  <root>/version      the global default (see 'pyenv global')

Quick start:
  pyenv versions      List installed versions
  pyenv global 3.9.1  Set the global version
  pyenv local 3.8.6   Pin a version for this directory
  pyenv vname         Show the active version`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("pyenv %s\n", Version))
	rootCmd.Flags().BoolP("version", "V", false, "Print version information")
	rootCmd.AddCommand(versionNameCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(globalCmd)
	rootCmd.AddCommand(localCmd)
	rootCmd.AddCommand(shellCmd)
	rootCmd.AddCommand(versionsCmd)
	rootCmd.AddCommand(whichCmd)
	rootCmd.AddCommand(rootPathCmd)
}

// ExitError reports a failure whose message was already written to the
// command output. Main exits with Code without printing anything else.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
