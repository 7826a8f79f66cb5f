package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/templatekit-labs/templatekit/internal/manifest"
)

var validateStrict bool

func init() {
	validateCmd.Flags().BoolVar(&validateStrict, "strict", false, "Additionally lint against the manifest JSON Schema")
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a template repository",
	Long: `Parse and validate the repository at the given path (default: current
directory): manifest structure, required fields, unique names, bundle
references, and instruction file existence. --strict also lints the manifest
against the published JSON Schema (semver versions, no unknown keys).`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := "."
		if len(args) == 1 {
			root = args[0]
		}

		repo, err := manifest.ParseRepository(root)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✓ %s %s is valid (%d instructions, %d bundles)\n",
			repo.Name, repo.Version, len(repo.Instructions), len(repo.Bundles))

		if !validateStrict {
			return nil
		}

		result, err := manifest.LintFile(filepath.Join(root, manifest.ManifestFileName))
		if err != nil {
			return fmt.Errorf("linting manifest: %w", err)
		}
		if result.Valid {
			fmt.Fprintln(cmd.OutOrStdout(), "✓ schema lint passed")
			return nil
		}

		for _, issue := range result.Issues {
			loc := issue.Path
			if loc == "" {
				loc = "/"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "  ✗ %s: %s\n", loc, issue.Message)
		}
		return fmt.Errorf("schema lint found %d issues", len(result.Issues))
	},
}
