// Package branding provides compile-time identity values for the CLI.
//
// Forkers edit branding.yaml in this package, then rebuild. Go's //go:embed
// bakes the file into the binary; hard defaults cover a missing or empty file.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName        string `yaml:"cli_name"`
	DisplayName    string `yaml:"display_name"`
	Description    string `yaml:"description"`
	HomeDir        string `yaml:"home_dir"`
	EnvPrefix      string `yaml:"env_prefix"`
	GoModule       string `yaml:"go_module"`
	GitHubRepo     string `yaml:"github_repo"`
	DefaultRepoURL string `yaml:"default_repo_url"`
}

func load() {
	once.Do(func() {
		defaults = brand{
			CLIName:        "templatekit",
			DisplayName:    "TemplateKit",
			Description:    "Package manager for reusable AI assistant instructions",
			HomeDir:        ".templatekit",
			EnvPrefix:      "TEMPLATEKIT",
			GoModule:       "github.com/templatekit-labs/templatekit",
			GitHubRepo:     "templatekit-labs/templatekit",
			DefaultRepoURL: "https://github.com/templatekit-labs/templates.git",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "templatekit").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name (e.g., "TemplateKit").
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".templatekit").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "TEMPLATEKIT").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns the Go module path. Used by release scripts, not at runtime.
func GoModule() string { load(); return defaults.GoModule }

// GitHubRepo returns the "owner/repo" string for the project.
func GitHubRepo() string { load(); return defaults.GitHubRepo }

// DefaultRepoURL returns the git URL of the starter template repository.
func DefaultRepoURL() string { load(); return defaults.DefaultRepoURL }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("HOME") → "TEMPLATEKIT_HOME".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
