package ytupload

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"reelpub/internal/services"
)

// Request describes one upload.
type Request struct {
	FilePath    string
	Title       string
	Description string
	Tags        []string
	// CategoryCode is the host's numeric category id.
	CategoryCode string
	Privacy      string
}

// Executor abstracts command execution for testability.
type Executor interface {
	Run(ctx context.Context, binary string, args []string) (stdout, stderr string, err error)
}

// Option configures the client.
type Option func(*Client)

// WithExecutor injects a custom executor (primarily for tests).
func WithExecutor(exec Executor) Option {
	return func(c *Client) {
		if exec != nil {
			c.exec = exec
		}
	}
}

// WithOutputMode selects how the video ID is read from the tool's stdout.
func WithOutputMode(mode string) Option {
	return func(c *Client) {
		if m := strings.TrimSpace(mode); m != "" {
			c.mode = m
		}
	}
}

// WithLegacyFallbackHook is called whenever auto mode had to fall back to the
// last stdout token.
func WithLegacyFallbackHook(fn func(stdout string)) Option {
	return func(c *Client) {
		c.onLegacy = fn
	}
}

// UploadError reports a non-zero exit from the upload tool.
type UploadError struct {
	Binary     string
	Diagnostic string
	Err        error
}

func (e *UploadError) Error() string {
	msg := fmt.Sprintf("%s failed", e.Binary)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if d := strings.TrimSpace(e.Diagnostic); d != "" {
		msg += ": " + d
	}
	return msg
}

func (e *UploadError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, services.ErrUpload) match.
func (e *UploadError) Is(target error) bool { return target == services.ErrUpload }

// Client wraps the youtube-upload CLI.
type Client struct {
	binary      string
	credentials string
	timeout     time.Duration
	mode        string
	exec        Executor
	onLegacy    func(string)
}

// New constructs an upload client.
func New(binary, credentialsPath string, timeoutSeconds int, opts ...Option) (*Client, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		return nil, errors.New("upload binary required")
	}
	client := &Client{
		binary:      binary,
		credentials: strings.TrimSpace(credentialsPath),
		timeout:     time.Duration(timeoutSeconds) * time.Second,
		mode:        ModeAuto,
		exec:        commandExecutor{},
	}
	for _, opt := range opts {
		opt(client)
	}
	switch client.mode {
	case ModeAuto, ModeTagged, ModeLegacy:
	default:
		return nil, fmt.Errorf("unknown output mode %q", client.mode)
	}
	return client, nil
}

// Args builds the argument vector for req.
func (c *Client) Args(req Request) []string {
	args := []string{
		"--title", req.Title,
		"--description", req.Description,
	}
	if len(req.Tags) > 0 {
		args = append(args, "--tags", strings.Join(req.Tags, ","))
	}
	if req.CategoryCode != "" {
		args = append(args, "--category", req.CategoryCode)
	}
	if req.Privacy != "" {
		args = append(args, "--privacy", req.Privacy)
	}
	if c.credentials != "" {
		args = append(args, "--client-secrets", c.credentials)
	}
	return append(args, req.FilePath)
}

// Upload runs the tool and returns the video ID it reported.
func (c *Client) Upload(ctx context.Context, req Request) (string, error) {
	if strings.TrimSpace(req.FilePath) == "" {
		return "", errors.New("upload file path required")
	}

	runCtx := ctx
	if c.timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	stdout, stderr, err := c.exec.Run(runCtx, c.binary, c.Args(req))
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
			err = fmt.Errorf("%w after %s", services.ErrTimeout, c.timeout)
		}
		return "", &UploadError{Binary: c.binary, Diagnostic: diagnostic(stderr, stdout), Err: err}
	}

	id, fellBack, err := ParseVideoID(stdout, c.mode)
	if err != nil {
		return "", &UploadError{Binary: c.binary, Diagnostic: diagnostic(stderr, stdout), Err: err}
	}
	if fellBack && c.onLegacy != nil {
		c.onLegacy(stdout)
	}
	return id, nil
}

func diagnostic(stderr, stdout string) string {
	if s := strings.TrimSpace(stderr); s != "" {
		return s
	}
	return strings.TrimSpace(stdout)
}

type commandExecutor struct{}

func (commandExecutor) Run(ctx context.Context, binary string, args []string) (string, string, error) {
	cmd := exec.CommandContext(ctx, binary, args...) //nolint:gosec
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}
