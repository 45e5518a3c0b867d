package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"reelpub/internal/config"
)

// PresentationSource is a minimal target artifact with the default anchor and
// local video references for every catalog key.
const PresentationSource = `import React from 'react';

const slides = [
  { key: 'intro', videoUrl: '/videos/maono-intro.mp4' },
  { key: 'problem', videoUrl: '/videos/problem.mp4' },
  { key: 'solution', videoUrl: '/videos/solution.mp4' },
  { key: 'technology', videoUrl: '/videos/technology.mp4' },
  { key: 'impact', videoUrl: '/videos/impact.mp4' },
  { key: 'future', videoUrl: '/videos/future.mp4' },
];

interface DualPanelPresentationProps {
  autoplay?: boolean;
}
`

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config rooted in a fresh temp project directory with
// an empty videos directory, a credentials file and the target artifact.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.VideosDir = filepath.Join(base, "public", "videos")
	cfgVal.Paths.CredentialsFile = filepath.Join(base, "client_secrets.json")
	cfgVal.Paths.RegistryFile = filepath.Join(base, "youtube_video_ids.json")
	cfgVal.Paths.InstructionsFile = filepath.Join(base, "youtube_upload_instructions.json")
	cfgVal.Paths.TargetArtifact = filepath.Join(base, "src", "presentations", "DualPanelPresentation.tsx")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	cfgVal.Uploader.TimeoutSeconds = 10

	if err := os.MkdirAll(cfgVal.Paths.VideosDir, 0o755); err != nil {
		t.Fatalf("mkdir videos: %v", err)
	}
	writeText(t, cfgVal.Paths.CredentialsFile, `{"installed":{"client_id":"test"}}`)
	writeText(t, cfgVal.Paths.TargetArtifact, PresentationSource)

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithVideos creates placeholder files for the given catalog filenames.
func WithVideos(names ...string) ConfigOption {
	return func(b *configBuilder) {
		for _, name := range names {
			WriteVideo(b.t, b.cfg.Paths.VideosDir, name)
		}
	}
}

// WithoutCredentials removes the generated client secrets file.
func WithoutCredentials() ConfigOption {
	return func(b *configBuilder) {
		if err := os.Remove(b.cfg.Paths.CredentialsFile); err != nil {
			b.t.Fatalf("remove credentials: %v", err)
		}
	}
}

// WithUploaderScript installs an executable shell script as the upload CLI
// and points the config at it.
func WithUploaderScript(script string) ConfigOption {
	return func(b *configBuilder) {
		binDir := filepath.Join(b.baseDir, "bin")
		if err := os.MkdirAll(binDir, 0o755); err != nil {
			b.t.Fatalf("mkdir bin dir: %v", err)
		}
		target := filepath.Join(binDir, "youtube-upload")
		if err := os.WriteFile(target, []byte(script), 0o755); err != nil {
			b.t.Fatalf("write uploader stub: %v", err)
		}
		b.cfg.Uploader.Binary = target
	}
}

// WithStubbedBinaries writes stub executables for the provided names and
// prepends them to PATH.
func WithStubbedBinaries(names ...string) ConfigOption {
	return func(b *configBuilder) {
		if len(names) == 0 {
			names = []string{"youtube-upload", "ffprobe"}
		}
		binDir := filepath.Join(b.baseDir, "bin")
		if err := os.MkdirAll(binDir, 0o755); err != nil {
			b.t.Fatalf("mkdir bin dir: %v", err)
		}
		script := []byte("#!/bin/sh\nexit 0\n")
		for _, name := range names {
			target := filepath.Join(binDir, name)
			if err := os.WriteFile(target, script, 0o755); err != nil {
				b.t.Fatalf("write stub %s: %v", name, err)
			}
		}

		oldPath := os.Getenv("PATH")
		if err := os.Setenv("PATH", binDir+string(os.PathListSeparator)+oldPath); err != nil {
			b.t.Fatalf("set PATH: %v", err)
		}
		b.t.Cleanup(func() {
			_ = os.Setenv("PATH", oldPath)
		})
	}
}

// BaseDir returns the project directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.CredentialsFile)
}

// WriteConfig encodes cfg as TOML at path.
func WriteConfig(t testing.TB, path string, cfg *config.Config) {
	t.Helper()
	data, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	writeText(t, path, string(data))
}

func writeText(t testing.TB, path, contents string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
