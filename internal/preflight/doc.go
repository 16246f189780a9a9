// Package preflight provides readiness checks for the catalog endpoint and
// the filesystem paths songsearch depends on.
//
// The CLI "songsearch status" command runs RunAll and renders one row per
// check. Each check is gated by its config toggle; disabled features are
// reported as skipped rather than failed.
package preflight
