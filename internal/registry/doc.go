// Package registry persists the filename to video ID record produced by a
// publish run. The file is a flat JSON object, rewritten whole on every save.
package registry
