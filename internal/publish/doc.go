// Package publish turns catalog entries into external video identifiers.
//
// Two publishers share one interface: Automated drives the upload CLI and
// Manual asks an operator to paste IDs after a web upload. Run walks the
// catalog sequentially and separates per-asset failures, which are recorded
// and skipped, from failures that end the run.
package publish
