// Package services defines shared utilities consumed by the pipeline stages
// and the external tool clients.
//
// Key responsibilities:
//   - Context helpers that stamp run IDs, stage names, and asset filenames for
//     logging.
//   - Structured error markers plus the Wrap helper. Markers split failures
//     into asset-local ones (skip the asset, keep going) and fatal ones (abort
//     before anything is written).
//
// Tool clients live in subpackages (see ytupload) so command execution stays
// testable behind small interfaces.
package services
