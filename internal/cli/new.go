package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/templatekit-labs/templatekit/internal/scaffold"
)

var (
	newDir         string
	newDescription string
	newAuthor      string
)

func init() {
	newCmd.Flags().StringVar(&newDir, "dir", "", "Output directory (defaults to ./<name>)")
	newCmd.Flags().StringVar(&newDescription, "description", "", "Repository description")
	newCmd.Flags().StringVar(&newAuthor, "author", "", "Repository author")
	rootCmd.AddCommand(newCmd)
}

var newCmd = &cobra.Command{
	Use:   "new <name>",
	Short: "Scaffold a new template repository",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		outputDir := newDir
		if outputDir == "" {
			outputDir = filepath.Join(".", name)
		}

		result, err := scaffold.Generate(scaffold.NewData(name, newDescription, newAuthor), outputDir)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✓ Created %s\n", result.OutputDir)
		for _, f := range result.Files {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", f)
		}
		for _, w := range result.Warnings {
			fmt.Fprintf(cmd.OutOrStdout(), "  ⚠️  %s\n", w)
		}
		return nil
	},
}
