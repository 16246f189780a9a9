// Package services defines shared utilities consumed by the lookup pipeline
// and its external integrations.
//
// Key responsibilities:
//   - Context helpers that stamp correlation identifiers and component names
//     for logging.
//   - Structured error markers plus the Wrap helper that let the pipeline
//     classify any failure as transport, parse, or no-match without string
//     matching.
//
// Use these helpers when wiring new catalog integrations so failures collapse
// into the same outcome taxonomy as the rest of the pipeline.
package services
