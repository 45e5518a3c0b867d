package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"reelpub/internal/config"
	"reelpub/internal/testsupport"
)

// uploaderScript prints a tagged id derived from the uploaded file name and
// fails for impact-stories.mp4.
const uploaderScript = `#!/bin/sh
for last; do :; done
name=$(basename "$last" .mp4)
case "$name" in
  impact-stories)
    echo "quota exceeded for $name" >&2
    exit 1
    ;;
esac
echo "Uploading $last"
echo "video_id=id-$name"
`

type cliTestEnv struct {
	cfg        *config.Config
	configPath string
	baseDir    string
}

func setupCLITestEnv(t *testing.T, opts ...testsupport.ConfigOption) *cliTestEnv {
	t.Helper()

	t.Setenv(config.EnvCredentialsFile, "")
	t.Setenv(config.EnvUploaderBinary, "")

	cfg := testsupport.NewConfig(t, opts...)
	base := testsupport.BaseDir(cfg)
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)

	configPath := filepath.Join(base, "reelpub.toml")
	testsupport.WriteConfig(t, configPath, cfg)

	return &cliTestEnv{cfg: cfg, configPath: configPath, baseDir: base}
}

func runCLI(t *testing.T, args []string, configPath, stdin string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected output to contain %q\noutput:\n%s", substr, output)
	}
}

func requireNotContains(t *testing.T, output, substr string) {
	t.Helper()
	if strings.Contains(output, substr) {
		t.Fatalf("expected output not to contain %q\noutput:\n%s", substr, output)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

var allVideos = []string{
	"maono-intro.mp4",
	"agricultural-challenges.mp4",
	"maono-solution.mp4",
	"technology-stack.mp4",
	"impact-stories.mp4",
	"future-vision.mp4",
}
