package tools

// ToolName identifies a supported AI coding assistant.
type ToolName string

const (
	Cursor     ToolName = "cursor"
	Windsurf   ToolName = "windsurf"
	ClaudeCode ToolName = "claude-code"
	Copilot    ToolName = "copilot"
)

// ToolConfig describes where a tool keeps its instruction files inside a
// project directory.
type ToolConfig struct {
	DisplayName string
	MarkerDir   string // presence of this directory means the tool is in use
	RulesDir    string // where instruction files are written
	Extension   string // file extension for installed instructions
}

// AllTools returns all supported tool names, in display order.
func AllTools() []ToolName {
	return []ToolName{Cursor, Windsurf, ClaudeCode, Copilot}
}

// toolRegistry maps each tool to its on-disk convention.
var toolRegistry = map[ToolName]ToolConfig{
	Cursor: {
		DisplayName: "Cursor",
		MarkerDir:   ".cursor",
		RulesDir:    ".cursor/rules",
		Extension:   ".mdc",
	},
	Windsurf: {
		DisplayName: "Windsurf",
		MarkerDir:   ".windsurf",
		RulesDir:    ".windsurf/rules",
		Extension:   ".md",
	},
	ClaudeCode: {
		DisplayName: "Claude Code",
		MarkerDir:   ".claude",
		RulesDir:    ".claude/rules",
		Extension:   ".md",
	},
	Copilot: {
		DisplayName: "GitHub Copilot",
		MarkerDir:   ".github",
		RulesDir:    ".github/instructions",
		Extension:   ".instructions.md",
	},
}

// Config returns the configuration for a tool.
func Config(tool ToolName) (ToolConfig, bool) {
	cfg, ok := toolRegistry[tool]
	return cfg, ok
}

// ParseToolName converts a string to a ToolName, returning false if invalid.
func ParseToolName(s string) (ToolName, bool) {
	switch s {
	case "cursor":
		return Cursor, true
	case "windsurf":
		return Windsurf, true
	case "claude-code":
		return ClaudeCode, true
	case "copilot":
		return Copilot, true
	default:
		return "", false
	}
}
