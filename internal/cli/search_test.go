package cli

import (
	"testing"

	"github.com/templatekit-labs/templatekit/internal/manifest"
)

func TestMatchesSearchByQuery(t *testing.T) {
	inst := manifest.Instruction{
		Name:        "commit-messages",
		Description: "How to write useful git commit messages",
		File:        "instructions/commit-messages.md",
		Tags:        []string{"git", "scm"},
	}

	tests := []struct {
		name     string
		query    string
		expected bool
	}{
		{"empty query matches all", "", true},
		{"exact name match", "commit-messages", true},
		{"partial name match", "commit", true},
		{"case insensitive name", "COMMIT", true},
		{"description match", "useful git", true},
		{"tag match", "scm", true},
		{"no match", "nonexistent-thing", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := matchesSearch(inst, tt.query, "")
			if got != tt.expected {
				t.Errorf("matchesSearch(query=%q) = %v, want %v", tt.query, got, tt.expected)
			}
		})
	}
}

func TestMatchesSearchByTag(t *testing.T) {
	inst := manifest.Instruction{
		Name: "python-style",
		Tags: []string{"python", "style"},
	}

	tests := []struct {
		name     string
		tag      string
		expected bool
	}{
		{"no tag filter", "", true},
		{"matching tag", "python", true},
		{"non-matching tag", "go", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := matchesSearch(inst, "", tt.tag)
			if got != tt.expected {
				t.Errorf("matchesSearch(tag=%q) = %v, want %v", tt.tag, got, tt.expected)
			}
		})
	}
}

func TestMatchesSearch_TagFilterAndQueryCombined(t *testing.T) {
	inst := manifest.Instruction{
		Name: "review-checklist",
		Tags: []string{"reviews"},
	}

	if matchesSearch(inst, "review", "go") {
		t.Error("tag filter should reject even when the query matches")
	}
	if !matchesSearch(inst, "review", "reviews") {
		t.Error("matching query and tag should pass")
	}
}
