// Package fetch acquires template repositories over git. It handles shallow
// cloning into ~/.templatekit/repos/, pulling updates, and freshness
// tracking so the CLI can nudge users toward stale clones.
package fetch
