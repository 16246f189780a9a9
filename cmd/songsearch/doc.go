// Package main hosts the songsearch CLI entrypoint and command graph.
//
// The Cobra command tree resolves song queries against the configured music
// catalog, shows how the live-version filter treated each candidate, lists
// the lookup journal, and scaffolds configuration. Resolution itself lives in
// internal/lookup; commands here only wire configuration, logging, and the
// history store around it.
package main
