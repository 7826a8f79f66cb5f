package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/templatekit-labs/templatekit/internal/branding"
	"github.com/templatekit-labs/templatekit/internal/library"
)

var listRepo string

func init() {
	listCmd.Flags().StringVar(&listRepo, "repo", "", "Only show instructions from this repository")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List installed instructions",
	RunE: func(cmd *cobra.Command, args []string) error {
		libRoot, err := library.Root()
		if err != nil {
			return err
		}
		idx, err := library.LoadIndex(libRoot)
		if err != nil {
			return err
		}

		if len(idx.Instructions) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "Library is empty. Run '%s install <repo>'.\n", branding.CLIName())
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tREPOSITORY\tTAGS\tCHECKSUM")
		for _, rec := range idx.Instructions {
			if listRepo != "" && rec.Repository != listRepo {
				continue
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				rec.Name, rec.Repository, strings.Join(rec.Tags, ","), shortChecksum(rec.Checksum))
		}
		return w.Flush()
	},
}

// shortChecksum abbreviates a digest for table display.
func shortChecksum(sum string) string {
	if len(sum) > 12 {
		return sum[:12]
	}
	return sum
}
