package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"reelpub/internal/config"
	"reelpub/internal/services"
	"reelpub/internal/testsupport"
)

func TestConfigInitWritesSample(t *testing.T) {
	target := filepath.Join(t.TempDir(), "nested", "reelpub.toml")

	out, _, err := runCLI(t, []string{"config", "init", "--path", target}, "", "")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote "+target)
	requireContains(t, out, config.EnvCredentialsFile)
	requireContains(t, readFile(t, target), "[linker]")

	if _, _, err := runCLI(t, []string{"config", "init", "--path", target}, "", ""); err == nil {
		t.Fatal("expected error when config already exists")
	}
	if _, _, err := runCLI(t, []string{"config", "init", "--path", target, "--force"}, "", ""); err != nil {
		t.Fatalf("config init --force: %v", err)
	}
}

func TestConfigInitDefaultsToProjectFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	if _, _, err := runCLI(t, []string{"config", "init"}, "", ""); err != nil {
		t.Fatalf("config init: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, config.ProjectConfigFile)); err != nil {
		t.Fatalf("expected ./%s: %v", config.ProjectConfigFile, err)
	}
}

func TestConfigValidateReportsProjectChecks(t *testing.T) {
	env := setupCLITestEnv(t)
	env.cfg.Uploader.Binary = "reelpub-missing-uploader"
	testsupport.WriteConfig(t, env.configPath, env.cfg)

	out, _, err := runCLI(t, []string{"config", "validate"}, env.configPath, "")
	if err != nil {
		t.Fatalf("config validate: %v\n%s", err, out)
	}
	requireContains(t, out, env.configPath)
	requireContains(t, out, "Client secrets:")
	requireContains(t, out, `[WARN] binary "reelpub-missing-uploader" not found`)
	requireContains(t, out, "Target anchor:")
	requireContains(t, out, "Configuration valid")
}

func TestConfigValidateFailsWithoutAnchor(t *testing.T) {
	env := setupCLITestEnv(t)
	if err := os.WriteFile(env.cfg.Paths.TargetArtifact, []byte("export default {};\n"), 0o644); err != nil {
		t.Fatalf("write target: %v", err)
	}

	out, _, err := runCLI(t, []string{"config", "validate"}, env.configPath, "")
	if !errors.Is(err, services.ErrAnchorNotFound) {
		t.Fatalf("expected ErrAnchorNotFound, got %v", err)
	}
	requireContains(t, out, "[ERROR]")
	requireNotContains(t, out, "Configuration valid")
}

func TestConfigValidateRejectsUnknownKeys(t *testing.T) {
	env := setupCLITestEnv(t)
	if err := os.WriteFile(env.configPath, []byte("[paths]\nvideo_dir = \"x\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, _, err := runCLI(t, []string{"config", "validate"}, env.configPath, ""); err == nil {
		t.Fatal("expected validation error")
	}
}
