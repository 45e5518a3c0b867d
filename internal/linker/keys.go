package linker

import (
	"strings"

	"reelpub/internal/catalog"
)

const (
	assetExtension = ".mp4"
	assetSeparator = "-"
)

// NormalizeKey maps an asset filename to the logical key used in the target
// artifact. Filenames outside the override table get only the mechanical
// transform.
func NormalizeKey(filename string) string {
	stem := strings.TrimSuffix(filename, assetExtension)
	stem = strings.ReplaceAll(stem, assetSeparator, "_")
	if key, ok := catalog.KeyOverrides[stem]; ok {
		return key
	}
	return stem
}

// CatalogKeys lists the logical keys of the catalog in catalog order.
func CatalogKeys() []string {
	names := catalog.Filenames()
	keys := make([]string, len(names))
	for i, name := range names {
		keys[i] = NormalizeKey(name)
	}
	return keys
}
