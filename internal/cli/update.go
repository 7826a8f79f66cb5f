package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/templatekit-labs/templatekit/internal/fetch"
	"github.com/templatekit-labs/templatekit/internal/library"
	"github.com/templatekit-labs/templatekit/internal/manifest"
)

var updateNoFetch bool

func init() {
	updateCmd.Flags().BoolVar(&updateNoFetch, "no-fetch", false, "Re-sync from the local clone without pulling from git")
	rootCmd.AddCommand(updateCmd)
}

var updateCmd = &cobra.Command{
	Use:   "update [repo...]",
	Short: "Update installed instructions from their repositories",
	Long: `Pull the latest changes for installed repositories and re-sync the
library. Checksums decide what actually gets rewritten: unchanged content is
left alone, changed instructions are recopied, and instructions removed from
a manifest are removed from the library.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		libRoot, err := library.Root()
		if err != nil {
			return err
		}
		idx, err := library.LoadIndex(libRoot)
		if err != nil {
			return err
		}

		names := args
		if len(names) == 0 {
			for _, rec := range idx.Repositories {
				names = append(names, rec.Name)
			}
		}
		if len(names) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "Nothing installed to update.")
			return nil
		}

		for _, name := range names {
			installed, ok := idx.Repository(name)
			if !ok {
				return fmt.Errorf("repository %q is not installed", name)
			}

			repoRoot, err := library.RepoDir(name)
			if err != nil {
				return err
			}
			if _, err := os.Stat(repoRoot); os.IsNotExist(err) {
				return fmt.Errorf("repository %q has no local clone; run 'repo add' first", name)
			}

			if !updateNoFetch {
				url, err := fetch.RemoteURL(repoRoot)
				if err != nil {
					return fmt.Errorf("repository %q: %w", name, err)
				}
				if err := fetch.Update(url, repoRoot); err != nil {
					return fmt.Errorf("fetching repository %q: %w", name, err)
				}
			}

			repo, err := manifest.ParseRepository(repoRoot)
			if err != nil {
				return fmt.Errorf("parsing repository %q: %w", name, err)
			}

			if newer, err := library.IsNewer(installed.Version, repo.Version); err == nil && newer {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s → %s\n", name, installed.Version, repo.Version)
			}

			res, err := library.Update(libRoot, repo, repoRoot)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ %s: %d new, %d updated, %d unchanged, %d removed\n",
				name, res.Installed, res.Updated, res.Skipped, res.Removed)
		}
		return nil
	},
}
