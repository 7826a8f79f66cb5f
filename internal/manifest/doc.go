// Package manifest parses and validates TemplateKit repository manifests.
// It loads templatekit.yaml from a repository root, enforces structural and
// referential rules, computes content checksums for every instruction file,
// and returns a fully validated Repository model.
package manifest
