package preflight

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"reelpub/internal/config"
	"reelpub/internal/services"
)

func TestCheckDirectoryAccess_OK(t *testing.T) {
	dir := t.TempDir()
	result := CheckDirectoryAccess("test", dir)
	if !result.Passed {
		t.Fatalf("expected pass for temp dir, got: %s", result.Detail)
	}
}

func TestCheckDirectoryAccess_NotExist(t *testing.T) {
	result := CheckDirectoryAccess("test", filepath.Join(t.TempDir(), "nope"))
	if result.Passed {
		t.Fatal("expected failure for missing dir")
	}
	if result.Detail == "" {
		t.Fatal("expected non-empty detail")
	}
}

func TestCheckDirectoryAccess_NotDir(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if result := CheckDirectoryReadable("test", f); result.Passed {
		t.Fatal("expected failure for file path")
	}
}

func TestCheckCredentials(t *testing.T) {
	dir := t.TempDir()

	if err := CheckCredentials(filepath.Join(dir, "client_secrets.json")); !errors.Is(err, services.ErrCredentialsMissing) {
		t.Fatalf("expected ErrCredentialsMissing for missing file, got %v", err)
	}
	if err := CheckCredentials(""); !errors.Is(err, services.ErrCredentialsMissing) {
		t.Fatalf("expected ErrCredentialsMissing for empty path, got %v", err)
	}

	lenient := filepath.Join(dir, "lenient.json")
	contents := "{\n  // downloaded from the cloud console\n  \"installed\": {\"client_id\": \"abc\",},\n}\n"
	if err := os.WriteFile(lenient, []byte(contents), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := CheckCredentials(lenient); err != nil {
		t.Fatalf("expected commented JSON to pass, got %v", err)
	}

	array := filepath.Join(dir, "array.json")
	if err := os.WriteFile(array, []byte(`["x"]`), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := CheckCredentials(array); !errors.Is(err, services.ErrCredentialsMissing) {
		t.Fatalf("expected error for non-object JSON, got %v", err)
	}
	if !services.IsFatal(CheckCredentials(array)) {
		t.Fatal("credential failures must be fatal")
	}
}

func TestCheckTargetArtifact(t *testing.T) {
	dir := t.TempDir()
	if result := CheckTargetArtifact(filepath.Join(dir, "missing.tsx")); result.Passed {
		t.Fatal("expected failure for missing artifact")
	}
	if result := CheckTargetArtifact(dir); result.Passed {
		t.Fatal("expected failure for directory")
	}
	target := filepath.Join(dir, "DualPanelPresentation.tsx")
	if err := os.WriteFile(target, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if result := CheckTargetArtifact(target); !result.Passed {
		t.Fatalf("expected pass, got %s", result.Detail)
	}
}

func TestRunAllSelectsChecksByMode(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Paths.CredentialsFile = filepath.Join(dir, "client_secrets.json")
	cfg.Paths.VideosDir = filepath.Join(dir, "videos")
	cfg.Paths.RegistryFile = filepath.Join(dir, "ids.json")
	cfg.Paths.TargetArtifact = filepath.Join(dir, "P.tsx")

	if err := os.MkdirAll(cfg.Paths.VideosDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(cfg.Paths.CredentialsFile, []byte(`{"installed":{}}`), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(cfg.Paths.TargetArtifact, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	automated := RunAll(&cfg, ModeAutomated)
	if len(automated) != 4 || !AllPassed(automated) {
		t.Fatalf("unexpected automated results: %+v", automated)
	}
	manual := RunAll(&cfg, ModeManual)
	if len(manual) != 2 {
		t.Fatalf("manual mode should skip credentials and videos: %+v", manual)
	}
	link := RunAll(&cfg, ModeLink)
	if len(link) != 1 || link[0].Name != "Target artifact" {
		t.Fatalf("link mode should only check the target: %+v", link)
	}

	if err := os.Remove(cfg.Paths.CredentialsFile); err != nil {
		t.Fatal(err)
	}
	if AllPassed(RunAll(&cfg, ModeAutomated)) {
		t.Fatal("expected failure once credentials are gone")
	}
	if RunAll(nil, ModeAutomated) != nil {
		t.Fatal("expected nil for nil config")
	}
}
