package registry

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"reelpub/internal/catalog"
	"reelpub/internal/fileutil"
	"reelpub/internal/publish"
)

// ErrNotFound is returned by Load when the registry file does not exist.
var ErrNotFound = errors.New("registry file not found")

// Save writes results as a filename -> video ID JSON object, replacing any
// existing file.
func Save(ctx context.Context, path string, results []publish.Result) error {
	record := make(map[string]string, len(results))
	for _, result := range results {
		name := strings.TrimSpace(result.Filename)
		if name == "" {
			return errors.New("registry save: result without filename")
		}
		if prev, ok := record[name]; ok && prev != result.ExternalID {
			return fmt.Errorf("registry save: conflicting ids for %s", name)
		}
		record[name] = result.ExternalID
	}

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	// encoding/json sorts map keys.
	if err := encoder.Encode(record); err != nil {
		return fmt.Errorf("registry encode: %w", err)
	}

	return fileutil.WithLock(ctx, path, func() error {
		if err := fileutil.WriteFileAtomic(path, buf.Bytes(), fileutil.FileMode(path, 0o644)); err != nil {
			return fmt.Errorf("registry save: %w", err)
		}
		return nil
	})
}

// Load reads a registry file. Catalog filenames come first in catalog order,
// followed by any other filenames sorted.
func Load(path string) ([]publish.Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("read registry: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var record map[string]string
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("parse registry %s: %w", path, err)
	}

	results := make([]publish.Result, 0, len(record))
	for _, name := range catalog.Filenames() {
		if id, ok := record[name]; ok {
			results = append(results, publish.Result{Filename: name, ExternalID: id})
			delete(record, name)
		}
	}
	extra := make([]string, 0, len(record))
	for name := range record {
		extra = append(extra, name)
	}
	sort.Strings(extra)
	for _, name := range extra {
		results = append(results, publish.Result{Filename: name, ExternalID: record[name]})
	}
	return results, nil
}
