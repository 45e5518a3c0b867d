package deps

import (
	"fmt"
	"os/exec"
	"strings"

	"reelpub/internal/config"
)

// Requirement defines an external binary reelpub relies on.
type Requirement struct {
	Name        string
	Command     string
	Description string
	Optional    bool
}

// Status reports the availability of a dependency.
type Status struct {
	Name        string
	Command     string
	Description string
	Optional    bool
	Available   bool
	Detail      string
}

// Requirements lists the binaries the given configuration needs. The upload
// CLI is only required for automated publishing; ffprobe is always optional.
func Requirements(cfg *config.Config, automated bool) []Requirement {
	if cfg == nil {
		return nil
	}
	return []Requirement{
		{
			Name:        "youtube-upload",
			Command:     cfg.Uploader.Binary,
			Description: "Uploads videos during automated publishing",
			Optional:    !automated,
		},
		{
			Name:        "FFprobe",
			Command:     cfg.Uploader.FFprobeBinary,
			Description: "Logs duration and resolution before upload (uploader.probe)",
			Optional:    true,
		},
	}
}

// CheckBinaries evaluates the provided requirements and reports availability.
func CheckBinaries(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		cmd := strings.TrimSpace(req.Command)
		status := Status{
			Name:        req.Name,
			Command:     cmd,
			Description: strings.TrimSpace(req.Description),
			Optional:    req.Optional,
		}
		if cmd == "" {
			status.Detail = "command not configured"
			results = append(results, status)
			continue
		}
		resolved, err := exec.LookPath(cmd)
		if err != nil {
			status.Detail = fmt.Sprintf("binary %q not found", cmd)
			results = append(results, status)
			continue
		}
		status.Available = true
		if resolved != cmd {
			status.Detail = resolved
		}
		results = append(results, status)
	}
	return results
}

// MissingRequired returns the required dependencies that are unavailable.
func MissingRequired(statuses []Status) []Status {
	var missing []Status
	for _, s := range statuses {
		if !s.Available && !s.Optional {
			missing = append(missing, s)
		}
	}
	return missing
}
