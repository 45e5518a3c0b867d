package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"reelpub/internal/config"
	"reelpub/internal/logging"
	"reelpub/internal/services"
)

func TestNewFromConfigWritesLogFile(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.LogDir = t.TempDir()
	cfg.Logging.Level = "debug"

	var stderr bytes.Buffer
	logger, err := logging.NewFromConfig(&cfg, &stderr, false)
	if err != nil {
		t.Fatalf("NewFromConfig returned error: %v", err)
	}
	logger.Debug("debug message", logging.String("asset", "maono-intro.mp4"))
	if !strings.Contains(stderr.String(), "debug message") {
		t.Fatalf("expected console copy on supplied stderr, got %q", stderr.String())
	}

	data, err := os.ReadFile(filepath.Join(cfg.Paths.LogDir, "reelpub.log"))
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "debug message") {
		t.Fatalf("expected debug line in log file, got %q", data)
	}
}

func TestConsoleFormatting(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "console.log")
	logger, err := logging.New(logging.Options{
		Format:      "console",
		Level:       "info",
		OutputPaths: []string{logPath},
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger = logging.NewComponentLogger(logger, "publish")
	logger.Info("uploaded", logging.String("video_id", "abc123"), logging.String("title", "two words"))
	logger.Debug("hidden")

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "INFO publish: uploaded") {
		t.Fatalf("expected component prefix, got %q", out)
	}
	if !strings.Contains(out, "video_id=abc123") {
		t.Fatalf("expected video_id attr, got %q", out)
	}
	if !strings.Contains(out, `title="two words"`) {
		t.Fatalf("expected quoted value, got %q", out)
	}
	if strings.Contains(out, "component=") {
		t.Fatalf("component should render as prefix only, got %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line should be filtered at info level, got %q", out)
	}
	if strings.Contains(out, "\033[") {
		t.Fatalf("color disabled but escape codes present: %q", out)
	}
}

func TestJSONFormatting(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "json.log")
	logger, err := logging.New(logging.Options{
		Format:      "json",
		Level:       "info",
		OutputPaths: []string{logPath},
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Warn("skipped", logging.Error(errors.New("boom")))

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(data), &entry); err != nil {
		t.Fatalf("decode json line: %v", err)
	}
	if entry["level"] != "warn" {
		t.Fatalf("expected lowercase level, got %v", entry["level"])
	}
	if _, ok := entry["ts"]; !ok {
		t.Fatalf("expected ts key, got %v", entry)
	}
	if entry["error"] != "boom" {
		t.Fatalf("expected error attr, got %v", entry["error"])
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestWithContextAddsRunFields(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "ctx.log")
	base, err := logging.New(logging.Options{Format: "json", OutputPaths: []string{logPath}})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	ctx := services.WithRunID(context.Background(), "run-1")
	ctx = services.WithStage(ctx, "publish")
	ctx = services.WithAsset(ctx, "impact-stories.mp4")
	logging.WithContext(ctx, base).Info("hello")

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(data), &entry); err != nil {
		t.Fatalf("decode json line: %v", err)
	}
	for key, want := range map[string]string{
		logging.FieldRunID: "run-1",
		logging.FieldStage: "publish",
		logging.FieldAsset: "impact-stories.mp4",
	} {
		if entry[key] != want {
			t.Fatalf("%s = %v, want %q", key, entry[key], want)
		}
	}
}

func TestWarnWithContextInjectsDefaults(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "warn.log")
	logger, err := logging.New(logging.Options{Format: "json", OutputPaths: []string{logPath}})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logging.WarnWithContext(logger, "missing", "asset_missing", logging.String(logging.FieldImpact, "asset skipped"))

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(data), &entry); err != nil {
		t.Fatalf("decode json line: %v", err)
	}
	if entry[logging.FieldEventType] != "asset_missing" {
		t.Fatalf("event_type = %v", entry[logging.FieldEventType])
	}
	if entry[logging.FieldImpact] != "asset skipped" {
		t.Fatalf("explicit impact should win, got %v", entry[logging.FieldImpact])
	}
	if entry[logging.FieldErrorHint] == nil {
		t.Fatal("expected default error_hint")
	}
}

func TestNewNopDiscards(t *testing.T) {
	logger := logging.NewNop()
	if logger.Enabled(context.Background(), slog.LevelError) {
		t.Fatal("nop logger should not be enabled")
	}
	logging.WarnWithContext(nil, "ignored", "noop")
}
