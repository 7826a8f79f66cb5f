package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/templatekit-labs/templatekit/internal/library"
	"github.com/templatekit-labs/templatekit/internal/tools"
)

var (
	applyTools   []string
	applyProject string
)

func init() {
	applyCmd.Flags().StringSliceVar(&applyTools, "tool", nil, "Target tools (cursor, windsurf, claude-code, copilot); default: detected")
	applyCmd.Flags().StringVar(&applyProject, "project", ".", "Project directory to apply instructions to")
	rootCmd.AddCommand(applyCmd)
}

var applyCmd = &cobra.Command{
	Use:   "apply <instruction...>",
	Short: "Write installed instructions into a project's AI tool config",
	Long: `Copy instructions from the library into the rules directories of AI
coding assistants in a project (e.g. .cursor/rules/, .windsurf/rules/).
Without --tool, tools are detected from directories present in the project.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		targets, err := resolveTools()
		if err != nil {
			return err
		}

		libRoot, err := library.Root()
		if err != nil {
			return err
		}
		idx, err := library.LoadIndex(libRoot)
		if err != nil {
			return err
		}

		for _, name := range args {
			rec := findInstruction(idx, name)
			if rec == nil {
				return fmt.Errorf("instruction %q is not installed; run 'install' first", name)
			}

			content, err := library.ReadInstalled(libRoot, rec)
			if err != nil {
				return err
			}

			for _, tool := range targets {
				rel, err := tools.InstallInstruction(tool, applyProject, rec.Name, content)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "✓ %s → %s\n", rec.Name, rel)
			}
		}
		return nil
	},
}

// resolveTools turns --tool flags into ToolNames, falling back to detection.
func resolveTools() ([]tools.ToolName, error) {
	if len(applyTools) == 0 {
		detected := tools.Detect(applyProject)
		if len(detected) == 0 {
			return nil, fmt.Errorf("no AI tools detected in %s; pass --tool explicitly", applyProject)
		}
		return detected, nil
	}

	var out []tools.ToolName
	for _, s := range applyTools {
		tool, ok := tools.ParseToolName(s)
		if !ok {
			return nil, fmt.Errorf("unknown tool %q", s)
		}
		out = append(out, tool)
	}
	return out, nil
}

// findInstruction looks an instruction up by bare name across repositories
// or by "repo/name".
func findInstruction(idx *library.Index, name string) *library.InstructionRecord {
	for i := range idx.Instructions {
		rec := &idx.Instructions[i]
		if rec.Name == name || rec.Repository+"/"+rec.Name == name {
			return rec
		}
	}
	return nil
}
