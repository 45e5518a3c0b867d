// Package ytupload drives the youtube-upload command line tool.
//
// The client builds the argument vector from catalog metadata, bounds each run
// with a timeout, and extracts the resulting video ID from stdout. Command
// execution goes through an Executor so tests never spawn the real tool.
package ytupload
