// Package textutil provides the text normalization used at the edges of the
// lookup pipeline.
//
// FormatQuery prepares user input before it is embedded in a catalog request,
// FormatResponse renders the provider-labelled display string handed back to
// callers, and TitleCase produces human-facing labels for CLI output.
package textutil
