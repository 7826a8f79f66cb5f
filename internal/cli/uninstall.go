package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/templatekit-labs/templatekit/internal/library"
)

func init() {
	rootCmd.AddCommand(uninstallCmd)
}

var uninstallCmd = &cobra.Command{
	Use:   "uninstall <repo>",
	Short: "Remove a repository's instructions from the library",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		libRoot, err := library.Root()
		if err != nil {
			return err
		}

		removed, err := library.Remove(libRoot, args[0])
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✓ Removed %d instructions from the library\n", removed)
		return nil
	},
}
