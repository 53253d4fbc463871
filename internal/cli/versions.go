package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionsBare bool

var versionsCmd = &cobra.Command{
	Use:   "versions",
	Short: "List installed Python versions",
	Long: `List all Python versions under <root>/versions, oldest first.

The active version is marked with an asterisk and its origin.

Example:
  pyenv versions
  pyenv versions --bare`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}

		versions, err := s.resolver.Installed()
		if err != nil {
			return fmt.Errorf("failed to list versions: %w", err)
		}

		out := cmd.OutOrStdout()
		if versionsBare {
			for _, v := range versions {
				fmt.Fprintln(out, v)
			}
			return nil
		}

		if len(versions) == 0 {
			fmt.Fprintln(out, "No Python versions installed.")
			return nil
		}

		// A missing or broken selection just means nothing is marked.
		current, _ := s.resolver.Current()
		for _, v := range versions {
			if current != nil && current.Version == v {
				fmt.Fprintf(out, "* %s (%s)\n", v, current.Describe())
			} else {
				fmt.Fprintf(out, "  %s\n", v)
			}
		}
		return nil
	},
}

func init() {
	versionsCmd.Flags().BoolVar(&versionsBare, "bare", false, "Print only version names, one per line")
}
