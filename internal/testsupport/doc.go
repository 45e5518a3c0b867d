// Package testsupport builds throwaway presentation projects and configs for
// package and CLI tests.
package testsupport
