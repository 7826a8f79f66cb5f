package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/templatekit-labs/templatekit/internal/tools"
)

var statusProject string

func init() {
	statusCmd.Flags().StringVar(&statusProject, "project", ".", "Project directory to inspect")
	rootCmd.AddCommand(statusCmd)
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show detected AI tools and their applied instructions",
	RunE: func(cmd *cobra.Command, args []string) error {
		detected := tools.Detect(statusProject)
		if len(detected) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "No AI tools detected in %s.\n", statusProject)
			return nil
		}

		for _, tool := range detected {
			cfg, _ := tools.Config(tool)
			names, err := tools.Status(tool, statusProject)
			if err != nil {
				return err
			}
			if len(names) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: no instructions applied\n", cfg.DisplayName)
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", cfg.DisplayName, strings.Join(names, ", "))
		}
		return nil
	},
}
