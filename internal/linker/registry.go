package linker

import (
	"fmt"
	"sort"

	"reelpub/internal/catalog"
	"reelpub/internal/publish"
	"reelpub/internal/services"
)

// Registry maps logical keys to external IDs.
type Registry map[string]string

// Keys returns the registry keys sorted.
func (r Registry) Keys() []string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// DuplicateKeyError reports two results that would claim the same key.
type DuplicateKeyError struct {
	Key   string
	First string
	// Second is the later filename; it equals First when one filename
	// appears twice with different IDs.
	Second string
}

func (e *DuplicateKeyError) Error() string {
	if e.First == e.Second {
		return fmt.Sprintf("duplicate key %q: %s listed with conflicting ids", e.Key, e.First)
	}
	return fmt.Sprintf("duplicate key %q: %s and %s normalize to the same key", e.Key, e.First, e.Second)
}

// Is lets errors.Is(err, services.ErrDuplicateKey) match.
func (e *DuplicateKeyError) Is(target error) bool { return target == services.ErrDuplicateKey }

// BuildRegistry normalizes every result's filename into a key. It never
// returns a partial registry: any collision fails the whole build.
func (l *Linker) BuildRegistry(results []publish.Result) (Registry, error) {
	registry := make(Registry, len(results))
	owners := make(map[string]string, len(results))
	for _, result := range results {
		if l.Strict {
			if _, ok := catalog.Lookup(result.Filename); !ok {
				return nil, services.Wrap(services.ErrUnknownAsset, "link", "build registry", result.Filename, nil)
			}
		}
		key := NormalizeKey(result.Filename)
		if owner, ok := owners[key]; ok {
			if owner != result.Filename || registry[key] != result.ExternalID {
				return nil, &DuplicateKeyError{Key: key, First: owner, Second: result.Filename}
			}
			continue
		}
		owners[key] = result.Filename
		registry[key] = result.ExternalID
	}
	return registry, nil
}
