// Package scaffold generates a starter template repository: a valid
// templatekit.yaml plus example instruction files, ready to edit and push.
package scaffold
