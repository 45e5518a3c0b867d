package preflight

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tidwall/jsonc"
	"golang.org/x/sys/unix"

	"reelpub/internal/services"
)

// CheckCredentials verifies the OAuth client secrets file exists and holds a
// JSON object. Comments and trailing commas are tolerated.
func CheckCredentials(path string) error {
	if path == "" {
		return services.Wrap(services.ErrCredentialsMissing, "preflight", "credentials", "no credentials file configured", nil)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return services.Wrap(services.ErrCredentialsMissing, "preflight", "credentials", path, nil)
		}
		return services.Wrap(services.ErrCredentialsMissing, "preflight", "credentials", path, err)
	}
	var payload map[string]any
	if err := json.Unmarshal(jsonc.ToJSON(data), &payload); err != nil {
		return services.Wrap(services.ErrCredentialsMissing, "preflight", "credentials", path+" is not a JSON object", err)
	}
	if len(payload) == 0 {
		return services.Wrap(services.ErrCredentialsMissing, "preflight", "credentials", path+" is empty", nil)
	}
	return nil
}

// CheckCredentialsResult adapts CheckCredentials to a Result.
func CheckCredentialsResult(path string) Result {
	const name = "Client secrets"
	if err := CheckCredentials(path); err != nil {
		return Result{Name: name, Detail: err.Error()}
	}
	return Result{Name: name, Passed: true, Detail: path}
}

// CheckDirectoryAccess verifies that the directory exists and is readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	return checkDirectory(name, path, unix.R_OK|unix.W_OK|unix.X_OK, "read/write ok")
}

// CheckDirectoryReadable verifies that the directory exists and can be listed.
func CheckDirectoryReadable(name, path string) Result {
	return checkDirectory(name, path, unix.R_OK|unix.X_OK, "readable")
}

func checkDirectory(name, path string, mode uint32, okDetail string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, mode); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (%s)", path, okDetail)}
}

// CheckTargetArtifact verifies the file to be patched exists and is writable.
func CheckTargetArtifact(path string) Result {
	const name = "Target artifact"
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	// The atomic rewrite creates a temp file beside the target.
	if err := unix.Access(filepath.Dir(path), unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: directory not writable: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (writable)", path)}
}

func parentDir(path string) string {
	return filepath.Dir(path)
}
