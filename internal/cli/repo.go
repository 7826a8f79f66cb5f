package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/templatekit-labs/templatekit/internal/branding"
	"github.com/templatekit-labs/templatekit/internal/config"
	"github.com/templatekit-labs/templatekit/internal/fetch"
	"github.com/templatekit-labs/templatekit/internal/library"
	"github.com/templatekit-labs/templatekit/internal/manifest"
)

var repoAddName string

func init() {
	repoAddCmd.Flags().StringVar(&repoAddName, "name", "", "Local name for the repository (defaults to the URL basename)")
	repoCmd.AddCommand(repoAddCmd)
	repoCmd.AddCommand(repoListCmd)
	repoCmd.AddCommand(repoUpdateCmd)
	repoCmd.AddCommand(repoRemoveCmd)
	rootCmd.AddCommand(repoCmd)
}

var repoCmd = &cobra.Command{
	Use:   "repo",
	Short: "Manage template repositories",
	Long: `Add, update, list, and remove template repositories.
Repositories are git clones kept under ~/.templatekit/repos/.`,
}

var repoAddCmd = &cobra.Command{
	Use:   "add [url]",
	Short: "Clone a template repository",
	Long: `Clone a template repository and verify its manifest. With no URL the
configured default repository (config key "default_repo") is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		url := ""
		if len(args) == 1 {
			url = args[0]
		} else if v := config.Get("default_repo"); v != "" {
			url = v
		} else {
			url = branding.DefaultRepoURL()
		}

		name := repoAddName
		if name == "" {
			name = fetch.RepoNameFromURL(url)
		}
		if name == "" {
			return fmt.Errorf("cannot derive a repository name from %q; pass --name", url)
		}

		dir, err := library.RepoDir(name)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Cloning %s into %s...\n", url, dir)
		if err := fetch.Clone(url, dir); err != nil {
			return err
		}

		repo, err := manifest.ParseRepository(dir)
		if err != nil {
			// Keep the clone so the user can inspect it, but be loud.
			return fmt.Errorf("cloned, but manifest is invalid: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✓ Added %s %s (%d instructions, %d bundles)\n",
			repo.Name, repo.Version, len(repo.Instructions), len(repo.Bundles))
		fmt.Fprintf(cmd.OutOrStdout(), "Run '%s install %s' to install its instructions.\n",
			branding.CLIName(), name)
		return nil
	},
}

var repoListCmd = &cobra.Command{
	Use:   "list",
	Short: "List cloned template repositories",
	RunE: func(cmd *cobra.Command, args []string) error {
		reposRoot, err := library.ReposRoot()
		if err != nil {
			return err
		}

		entries, err := os.ReadDir(reposRoot)
		if err != nil {
			if os.IsNotExist(err) {
				fmt.Fprintf(cmd.OutOrStdout(), "No repositories. Run '%s repo add <url>'.\n", branding.CLIName())
				return nil
			}
			return fmt.Errorf("reading repos directory: %w", err)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tVERSION\tINSTRUCTIONS\tBUNDLES\tSTATE")
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			dir := filepath.Join(reposRoot, entry.Name())
			state := "fresh"
			if fetch.IsStale(dir, fetch.DefaultMaxAge) {
				state = "stale"
			}

			repo, err := manifest.ParseRepository(dir)
			if err != nil {
				fmt.Fprintf(w, "%s\t-\t-\t-\tinvalid: %v\n", entry.Name(), err)
				continue
			}
			fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\n",
				entry.Name(), repo.Version, len(repo.Instructions), len(repo.Bundles), state)
		}
		return w.Flush()
	},
}

var repoUpdateCmd = &cobra.Command{
	Use:   "update [name]",
	Short: "Pull the latest changes for one or all repositories",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reposRoot, err := library.ReposRoot()
		if err != nil {
			return err
		}

		var names []string
		if len(args) == 1 {
			names = args
		} else {
			entries, err := os.ReadDir(reposRoot)
			if err != nil {
				return fmt.Errorf("reading repos directory: %w", err)
			}
			for _, entry := range entries {
				if entry.IsDir() {
					names = append(names, entry.Name())
				}
			}
		}

		if len(names) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No repositories to update.")
			return nil
		}

		for _, name := range names {
			dir := filepath.Join(reposRoot, name)
			url, err := fetch.RemoteURL(dir)
			if err != nil {
				return fmt.Errorf("repository %q: %w", name, err)
			}
			if err := fetch.Update(url, dir); err != nil {
				return fmt.Errorf("updating repository %q: %w", name, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Updated %s\n", name)
		}
		return nil
	},
}

var repoRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Delete a cloned repository",
	Long: `Delete a repository clone. Instructions already installed in the
library are untouched; use 'uninstall' for those.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		dir, err := library.RepoDir(name)
		if err != nil {
			return err
		}
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			return fmt.Errorf("repository %q is not cloned", name)
		}
		if err := os.RemoveAll(dir); err != nil {
			return fmt.Errorf("removing repository %q: %w", name, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Removed %s\n", name)
		return nil
	},
}
