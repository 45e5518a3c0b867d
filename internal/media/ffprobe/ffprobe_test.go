package ffprobe

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"
	"time"
)

func TestResultHelpers(t *testing.T) {
	result := Result{
		Streams: []Stream{
			{CodecType: "audio"},
			{CodecType: "video", Width: 1920, Height: 1080},
			{CodecType: "audio"},
		},
		Format: Format{
			Duration: "123.45",
			Size:     "1000",
			BitRate:  "32000",
		},
	}
	if result.VideoStreamCount() != 1 {
		t.Fatalf("expected 1 video stream, got %d", result.VideoStreamCount())
	}
	if result.AudioStreamCount() != 2 {
		t.Fatalf("expected 2 audio streams, got %d", result.AudioStreamCount())
	}
	if result.Resolution() != "1920x1080" {
		t.Fatalf("unexpected resolution: %q", result.Resolution())
	}
	if result.DurationSeconds() != 123.45 {
		t.Fatalf("unexpected duration: %v", result.DurationSeconds())
	}
	if result.SizeBytes() != 1000 {
		t.Fatalf("unexpected size: %d", result.SizeBytes())
	}
	if result.BitRate() != 32000 {
		t.Fatalf("unexpected bitrate: %d", result.BitRate())
	}
}

func TestResultHelpersHandleInvalidNumbers(t *testing.T) {
	result := Result{
		Format: Format{
			Duration: "bad",
			Size:     "-1",
			BitRate:  "nope",
		},
	}
	if !math.IsNaN(result.DurationSeconds()) {
		t.Fatalf("expected duration NaN, got %v", result.DurationSeconds())
	}
	if result.SizeBytes() != 0 {
		t.Fatalf("expected size 0, got %d", result.SizeBytes())
	}
	if result.BitRate() != 0 {
		t.Fatalf("expected bitrate 0, got %d", result.BitRate())
	}
	if result.Resolution() != "" {
		t.Fatalf("expected empty resolution, got %q", result.Resolution())
	}
}

func TestInspectDecodesProbeOutput(t *testing.T) {
	var gotBinary, gotPath string
	var gotTimeout time.Duration
	inspector := NewInspector("", 30, func(_ context.Context, binary, path string, timeout time.Duration) (string, error) {
		gotBinary, gotPath, gotTimeout = binary, path, timeout
		return `{"streams":[{"codec_type":"video","width":1280,"height":720}],"format":{"duration":"42.0"}}`, nil
	})

	result, err := inspector.Inspect(context.Background(), "/videos/maono-intro.mp4")
	if err != nil {
		t.Fatalf("Inspect returned error: %v", err)
	}
	if gotBinary != DefaultBinary || gotPath != "/videos/maono-intro.mp4" || gotTimeout != 30*time.Second {
		t.Fatalf("unexpected probe call: %q %q %s", gotBinary, gotPath, gotTimeout)
	}
	if result.Resolution() != "1280x720" || result.DurationSeconds() != 42 {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestInspectWrapsFailures(t *testing.T) {
	inspector := NewInspector("ffprobe", 5, func(context.Context, string, string, time.Duration) (string, error) {
		return "", errors.New("exit status 1")
	})
	_, err := inspector.Inspect(context.Background(), "clip.mp4")
	if err == nil || !strings.Contains(err.Error(), "ffprobe inspect clip.mp4") {
		t.Fatalf("expected wrapped probe error, got %v", err)
	}

	inspector = NewInspector("ffprobe", 5, func(context.Context, string, string, time.Duration) (string, error) {
		return "not json", nil
	})
	if _, err := inspector.Inspect(context.Background(), "clip.mp4"); err == nil {
		t.Fatal("expected parse error")
	}

	if _, err := inspector.Inspect(context.Background(), " "); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestInspectHonoursShorterContextDeadline(t *testing.T) {
	var gotTimeout time.Duration
	inspector := NewInspector("ffprobe", 300, func(_ context.Context, _, _ string, timeout time.Duration) (string, error) {
		gotTimeout = timeout
		return `{}`, nil
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := inspector.Inspect(ctx, "clip.mp4"); err != nil {
		t.Fatalf("Inspect returned error: %v", err)
	}
	if gotTimeout <= 0 || gotTimeout > 2*time.Second {
		t.Fatalf("expected timeout capped by context, got %s", gotTimeout)
	}
}

func TestInspectDefaultProbeStopsOnCancel(t *testing.T) {
	inspector := NewInspector(DefaultBinary, 30, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	_, err := inspector.Inspect(ctx, "/nonexistent/maono-intro.mp4")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("cancelled probe took %s", elapsed)
	}
}
