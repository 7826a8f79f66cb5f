package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/templatekit-labs/templatekit/internal/library"
	"github.com/templatekit-labs/templatekit/internal/manifest"
)

var searchTag string

func init() {
	searchCmd.Flags().StringVar(&searchTag, "tag", "", "Only show instructions carrying this tag")
	rootCmd.AddCommand(searchCmd)
}

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search instructions across cloned repositories",
	Long: `Search the instructions of every cloned repository by name,
description, and tags. An empty query lists everything.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := ""
		if len(args) == 1 {
			query = args[0]
		}

		reposRoot, err := library.ReposRoot()
		if err != nil {
			return err
		}
		repos, err := loadRepositories(reposRoot)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tREPOSITORY\tTAGS\tDESCRIPTION")
		matches := 0
		for repoName, repo := range repos {
			for _, inst := range repo.Instructions {
				if !matchesSearch(inst, query, searchTag) {
					continue
				}
				matches++
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					inst.Name, repoName, strings.Join(inst.Tags, ","), inst.Description)
			}
		}
		if matches == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No instructions matched.")
			return nil
		}
		return w.Flush()
	},
}

// loadRepositories parses every cloned repository under reposRoot, keyed by
// its directory name. Repositories that fail to parse are skipped; search is
// a discovery surface, not a validation one.
func loadRepositories(reposRoot string) (map[string]*manifest.Repository, error) {
	entries, err := os.ReadDir(reposRoot)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading repos directory: %w", err)
	}

	repos := make(map[string]*manifest.Repository)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		repo, err := manifest.ParseRepository(filepath.Join(reposRoot, entry.Name()))
		if err != nil {
			continue
		}
		repos[entry.Name()] = repo
	}
	return repos, nil
}

// matchesSearch reports whether an instruction matches a free-text query and
// an optional tag filter. The query is matched case-insensitively against
// name, description, and tags.
func matchesSearch(inst manifest.Instruction, query, tag string) bool {
	if tag != "" {
		found := false
		for _, t := range inst.Tags {
			if t == tag {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if query == "" {
		return true
	}

	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(inst.Name), q) {
		return true
	}
	if strings.Contains(strings.ToLower(inst.Description), q) {
		return true
	}
	for _, t := range inst.Tags {
		if strings.Contains(strings.ToLower(t), q) {
			return true
		}
	}
	return false
}
