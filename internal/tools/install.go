package tools

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Detect returns the tools whose marker directory exists in projectDir,
// in AllTools order.
func Detect(projectDir string) []ToolName {
	var found []ToolName
	for _, tool := range AllTools() {
		cfg := toolRegistry[tool]
		info, err := os.Stat(filepath.Join(projectDir, cfg.MarkerDir))
		if err == nil && info.IsDir() {
			found = append(found, tool)
		}
	}
	return found
}

// InstallInstruction writes an instruction's content into a tool's rules
// directory under projectDir, creating the directory as needed. It returns
// the project-relative path of the written file.
func InstallInstruction(tool ToolName, projectDir, name string, content []byte) (string, error) {
	cfg, ok := toolRegistry[tool]
	if !ok {
		return "", fmt.Errorf("unknown tool: %s", tool)
	}

	rulesDir := filepath.Join(projectDir, filepath.FromSlash(cfg.RulesDir))
	if err := os.MkdirAll(rulesDir, 0755); err != nil {
		return "", fmt.Errorf("creating %s rules directory: %w", cfg.DisplayName, err)
	}

	fileName := name + cfg.Extension
	path := filepath.Join(rulesDir, fileName)
	if err := os.WriteFile(path, content, 0644); err != nil {
		return "", fmt.Errorf("writing %s rule %s: %w", cfg.DisplayName, name, err)
	}

	return filepath.ToSlash(filepath.Join(cfg.RulesDir, fileName)), nil
}

// Uninstall removes an instruction file from a tool's rules directory.
// Removing an instruction that was never installed is not an error.
func Uninstall(tool ToolName, projectDir, name string) error {
	cfg, ok := toolRegistry[tool]
	if !ok {
		return fmt.Errorf("unknown tool: %s", tool)
	}

	path := filepath.Join(projectDir, filepath.FromSlash(cfg.RulesDir), name+cfg.Extension)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing %s rule %s: %w", cfg.DisplayName, name, err)
	}
	return nil
}

// Status lists the instruction names currently installed for a tool in
// projectDir, sorted alphabetically.
func Status(tool ToolName, projectDir string) ([]string, error) {
	cfg, ok := toolRegistry[tool]
	if !ok {
		return nil, fmt.Errorf("unknown tool: %s", tool)
	}

	rulesDir := filepath.Join(projectDir, filepath.FromSlash(cfg.RulesDir))
	entries, err := os.ReadDir(rulesDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s rules directory: %w", cfg.DisplayName, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(entry.Name(), cfg.Extension) {
			names = append(names, strings.TrimSuffix(entry.Name(), cfg.Extension))
		}
	}
	sort.Strings(names)
	return names, nil
}
