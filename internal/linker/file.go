package linker

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"reelpub/internal/fileutil"
	"reelpub/internal/services"
)

// PatchFile patches the artifact at path in place. Nothing is written unless
// the patch succeeds and changes the text.
func (l *Linker) PatchFile(ctx context.Context, path string, registry Registry) (Change, error) {
	var change Change
	if err := checkTarget(path); err != nil {
		return change, err
	}
	err := fileutil.WithLock(ctx, path, func() error {
		data, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return services.Wrap(services.ErrTargetArtifactMissing, "link", "read target", path, nil)
			}
			return fmt.Errorf("read target %s: %w", path, err)
		}

		patched, c, err := l.patch(string(data), registry)
		if err != nil {
			return err
		}
		change = c
		if !c.Changed() {
			return nil
		}
		return fileutil.WriteFileAtomic(path, []byte(patched), fileutil.FileMode(path, 0o644))
	})
	return change, err
}

// Preview returns what PatchFile would write without touching the file.
func (l *Linker) Preview(path string, registry Registry) (string, Change, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", Change{}, services.Wrap(services.ErrTargetArtifactMissing, "link", "read target", path, nil)
		}
		return "", Change{}, fmt.Errorf("read target %s: %w", path, err)
	}
	return l.patch(string(data), registry)
}

func checkTarget(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return services.Wrap(services.ErrTargetArtifactMissing, "link", "stat target", path, nil)
		}
		return fmt.Errorf("stat target %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("target %s is a directory", path)
	}
	return nil
}

// Verify reports whether path can be patched: it must exist and contain either
// the marker (already linked) or the anchor.
func (l *Linker) Verify(path string) error {
	if err := checkTarget(path); err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read target %s: %w", path, err)
	}
	text := string(data)
	if strings.Contains(text, l.Marker) || strings.Contains(text, l.Anchor) {
		return nil
	}
	return services.Wrap(services.ErrAnchorNotFound, "link", "verify target", fmt.Sprintf("%q in %s", l.Anchor, path), nil)
}
