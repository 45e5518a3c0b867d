package fileutil

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gofrs/flock"
)

// lockRetryDelay is how often a blocked WithLock retries.
const lockRetryDelay = 50 * time.Millisecond

// WriteFileAtomic writes data to a temp file beside path and renames it into
// place, so readers see either the old or the new content.
func WriteFileAtomic(path string, data []byte, mode os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpPath) }

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, mode); err != nil {
		cleanup()
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		cleanup()
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// FileMode returns the permission bits of an existing file, or fallback when
// it does not exist.
func FileMode(path string, fallback os.FileMode) os.FileMode {
	info, err := os.Stat(path)
	if err != nil {
		return fallback
	}
	return info.Mode().Perm()
}

var (
	lockDirMu sync.RWMutex
	lockDir   = os.TempDir()
)

// SetLockDir moves lock files into dir, which must already exist. Locks never
// live beside the files they guard, so source trees stay clean.
func SetLockDir(dir string) {
	if dir = strings.TrimSpace(dir); dir == "" {
		return
	}
	lockDirMu.Lock()
	lockDir = dir
	lockDirMu.Unlock()
}

// LockPath is the lock file guarding path: a name in the lock directory keyed
// by a hash of the absolute path.
func LockPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = filepath.Clean(path)
	}
	sum := sha256.Sum256([]byte(abs))

	lockDirMu.RLock()
	dir := lockDir
	lockDirMu.RUnlock()
	return filepath.Join(dir, fmt.Sprintf("reelpub-%s-%s.lock", hex.EncodeToString(sum[:8]), filepath.Base(abs)))
}

// WithLock runs fn while holding an exclusive flock on LockPath(path). It
// creates nothing but the lock file itself.
func WithLock(ctx context.Context, path string, fn func() error) error {
	lockPath := LockPath(path)
	lock := flock.New(lockPath)
	locked, err := lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return fmt.Errorf("acquire lock %s: %w", lockPath, err)
	}
	if !locked {
		return fmt.Errorf("acquire lock %s: not acquired", lockPath)
	}
	defer func() { _ = lock.Unlock() }()
	return fn()
}

// Exists reports whether path names an existing regular file.
func Exists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return !info.IsDir(), nil
}
