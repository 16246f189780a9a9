// Package lookup resolves a free-text song query to one catalog track.
//
// The pipeline is search → decode → disambiguate → render. Each step either
// advances or terminates with an Outcome tagged selected, no_match,
// parse_failure, or transport_failure, and Resolver.SearchTrack always renders
// that outcome into a Response instead of returning an error.
//
// Disambiguation only engages when the catalog returns two or more
// candidates: the query's live intent (a standalone "live" token) must agree
// with each candidate's live flavour, and the first agreeing candidate in
// catalog order wins.
package lookup
