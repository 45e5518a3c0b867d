package ffprobe

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// DefaultBinary is the ffprobe executable looked up on PATH.
const DefaultBinary = "ffprobe"

// Result represents the parsed output from an ffprobe inspection.
type Result struct {
	Streams []Stream `json:"streams"`
	Format  Format   `json:"format"`
}

// Stream describes a single stream in the media container.
type Stream struct {
	Index     int    `json:"index"`
	CodecName string `json:"codec_name"`
	CodecType string `json:"codec_type"`
	Duration  string `json:"duration"`
	BitRate   string `json:"bit_rate"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
}

// Format captures container-level metadata extracted by ffprobe.
type Format struct {
	Filename   string `json:"filename"`
	NBStreams  int    `json:"nb_streams"`
	Duration   string `json:"duration"`
	Size       string `json:"size"`
	BitRate    string `json:"bit_rate"`
	FormatName string `json:"format_name"`
}

// ProbeFunc returns ffprobe's JSON document for path.
type ProbeFunc func(ctx context.Context, binary, path string, timeout time.Duration) (string, error)

// Inspector runs ffprobe with a bounded timeout.
type Inspector struct {
	binary  string
	timeout time.Duration
	probe   ProbeFunc
}

// NewInspector constructs an Inspector. A nil probe uses ffmpeg-go for the
// default binary and a direct invocation for anything else.
func NewInspector(binary string, timeoutSeconds int, probe ProbeFunc) *Inspector {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = DefaultBinary
	}
	if probe == nil {
		probe = defaultProbe
	}
	return &Inspector{binary: binary, timeout: time.Duration(timeoutSeconds) * time.Second, probe: probe}
}

// Inspect probes path and decodes the JSON response.
func (i *Inspector) Inspect(ctx context.Context, path string) (Result, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return Result{}, errors.New("ffprobe inspect: empty path")
	}
	timeout := i.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); timeout <= 0 || remaining < timeout {
			timeout = remaining
		}
	}
	if timeout <= 0 && ctx.Err() != nil {
		return Result{}, errors.WithStack(ctx.Err())
	}

	output, err := i.probe(ctx, i.binary, path, timeout)
	if err != nil {
		return Result{}, errors.Wrapf(err, "ffprobe inspect %s", path)
	}

	var result Result
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		return Result{}, errors.Wrap(err, "ffprobe parse")
	}
	return result, nil
}

func defaultProbe(ctx context.Context, binary, path string, timeout time.Duration) (string, error) {
	if binary == DefaultBinary {
		return probeLibrary(ctx, path, timeout)
	}
	runCtx := ctx
	if timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	cmd := exec.CommandContext(runCtx, binary, "-v", "error", "-hide_banner", "-show_format", "-show_streams", "-of", "json", "--", path) //nolint:gosec
	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", fmt.Errorf("%w: %s", err, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", err
	}
	return string(output), nil
}

type probeOutput struct {
	out string
	err error
}

// probeLibrary runs ffmpeg-go's probe, which takes no context. Cancelling ctx
// returns immediately; the abandoned probe ends at its own timeout.
func probeLibrary(ctx context.Context, path string, timeout time.Duration) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	done := make(chan probeOutput, 1)
	go func() {
		var res probeOutput
		if timeout > 0 {
			res.out, res.err = ffmpeg.ProbeWithTimeout(path, timeout, ffmpeg.KwArgs{})
		} else {
			res.out, res.err = ffmpeg.Probe(path)
		}
		done <- res
	}()
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-done:
		return res.out, res.err
	}
}

// VideoStreamCount returns the number of video streams discovered.
func (r Result) VideoStreamCount() int {
	count := 0
	for _, stream := range r.Streams {
		if strings.EqualFold(stream.CodecType, "video") {
			count++
		}
	}
	return count
}

// AudioStreamCount returns the number of audio streams discovered.
func (r Result) AudioStreamCount() int {
	count := 0
	for _, stream := range r.Streams {
		if strings.EqualFold(stream.CodecType, "audio") {
			count++
		}
	}
	return count
}

// Resolution returns the first video stream's dimensions as "WxH", or "" when
// there is no video stream.
func (r Result) Resolution() string {
	for _, stream := range r.Streams {
		if strings.EqualFold(stream.CodecType, "video") && stream.Width > 0 && stream.Height > 0 {
			return fmt.Sprintf("%dx%d", stream.Width, stream.Height)
		}
	}
	return ""
}

// DurationSeconds returns the container duration in seconds, or 0 when unavailable.
func (r Result) DurationSeconds() float64 {
	return parseFloat(r.Format.Duration)
}

// SizeBytes returns the reported container size in bytes, or 0 when unavailable.
func (r Result) SizeBytes() int64 {
	size := parseFloat(r.Format.Size)
	if math.IsNaN(size) || size < 0 {
		return 0
	}
	return int64(size)
}

// BitRate returns the container bitrate in bits per second, or 0 when unavailable.
func (r Result) BitRate() int64 {
	rate := parseFloat(r.Format.BitRate)
	if math.IsNaN(rate) || rate < 0 {
		return 0
	}
	return int64(rate)
}

func parseFloat(value string) float64 {
	cleaned := strings.TrimSpace(value)
	if cleaned == "" {
		return 0
	}
	if parsed, err := strconv.ParseFloat(cleaned, 64); err == nil {
		return parsed
	}
	return math.NaN()
}
