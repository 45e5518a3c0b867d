package preflight

import (
	"reelpub/internal/config"
)

// Mode selects which checks apply.
type Mode int

const (
	// ModeAutomated publishes through the upload CLI.
	ModeAutomated Mode = iota
	// ModeManual collects IDs from an operator.
	ModeManual
	// ModeLink only patches the target artifact.
	ModeLink
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes the preflight checks relevant to mode.
func RunAll(cfg *config.Config, mode Mode) []Result {
	if cfg == nil {
		return nil
	}
	var results []Result
	if mode == ModeAutomated {
		results = append(results, CheckCredentialsResult(cfg.Paths.CredentialsFile))
		results = append(results, CheckDirectoryReadable("Videos directory", cfg.Paths.VideosDir))
	}
	if mode != ModeLink {
		results = append(results, CheckDirectoryAccess("Registry directory", parentDir(cfg.Paths.RegistryFile)))
	}
	results = append(results, CheckTargetArtifact(cfg.Paths.TargetArtifact))
	return results
}

// AllPassed reports whether every result passed.
func AllPassed(results []Result) bool {
	for _, r := range results {
		if !r.Passed {
			return false
		}
	}
	return true
}
