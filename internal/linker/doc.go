// Package linker rewrites the presentation source so slides reference hosted
// videos instead of local files.
//
// Filenames are normalized to the slide keys the source uses, collected into
// a Registry, and applied as two text edits: a one-time declaration block
// inserted before a known anchor, and replacement of every local videoUrl
// reference. Both edits are idempotent.
package linker
