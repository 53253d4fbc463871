package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var rootPathCmd = &cobra.Command{
	Use:   "root",
	Short: "Show the pyenv root directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), s.root)
		return nil
	},
}
