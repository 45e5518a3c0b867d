// Package catalog defines the fixed set of promotional videos reelpub
// publishes, along with the per-video metadata sent to the host and the
// manual upload instructions document derived from it.
//
// The catalog is static data; Build always yields the same six entries in
// the same order, and that order drives every later stage.
package catalog
