// Package tools knows where each supported AI coding assistant keeps its
// project-level instruction files, detects which tools a project uses, and
// writes installed instructions into their rules directories.
package tools
