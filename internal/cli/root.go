package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/templatekit-labs/templatekit/internal/branding"
	"github.com/templatekit-labs/templatekit/internal/config"
	"github.com/templatekit-labs/templatekit/internal/fetch"
	"github.com/templatekit-labs/templatekit/internal/library"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` manages repositories of reusable instruction documents
(coding guidelines, review checklists, testing conventions) and installs them
into the configuration of AI coding assistants like Cursor and Windsurf.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()

		// Skip the staleness nudge for commands that manage repos themselves.
		switch cmd.Name() {
		case "repo", "add", "remove", "update", "version", "new", "validate":
			return
		}

		reposRoot, err := library.ReposRoot()
		if err != nil {
			return
		}
		entries, err := os.ReadDir(reposRoot)
		if err != nil {
			return
		}
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			dir := filepath.Join(reposRoot, entry.Name())
			if fetch.IsStale(dir, fetch.DefaultMaxAge) {
				fmt.Fprintf(os.Stderr, "Repository %q is more than 7 days old. Run '%s repo update'.\n",
					entry.Name(), branding.CLIName())
			}
		}
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
