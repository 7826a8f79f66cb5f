package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/templatekit-labs/templatekit/internal/library"
	"github.com/templatekit-labs/templatekit/internal/manifest"
)

func init() {
	rootCmd.AddCommand(installCmd)
}

var installCmd = &cobra.Command{
	Use:   "install <repo> [instruction-or-bundle...]",
	Short: "Install instructions from a repository into the library",
	Long: `Install instructions from a cloned repository into ~/.templatekit/library/.
With no selection, every instruction in the repository is installed. Bundle
names expand to their member instructions. Instructions whose content has not
changed (same checksum) are skipped.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		repoName := args[0]
		var names []string
		if len(args) > 1 {
			names = args[1:]
		}

		repoRoot, err := library.RepoDir(repoName)
		if err != nil {
			return err
		}
		repo, err := manifest.ParseRepository(repoRoot)
		if err != nil {
			return fmt.Errorf("parsing repository %q: %w", repoName, err)
		}

		libRoot, err := library.Root()
		if err != nil {
			return err
		}

		res, err := library.Install(libRoot, repo, repoRoot, names)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✓ %d installed, %d updated, %d unchanged\n",
			res.Installed, res.Updated, res.Skipped)
		return nil
	},
}
