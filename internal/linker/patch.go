package linker

import (
	"fmt"
	"strings"

	"reelpub/internal/services"
)

// Defaults matching the presentation source layout.
const (
	DefaultHost   = "www.youtube.com"
	DefaultMarker = "YOUTUBE_VIDEOS"
	DefaultAnchor = "interface DualPanelPresentationProps"
)

// Linker threads registry IDs into the target artifact.
type Linker struct {
	// Host is the embed host, without scheme.
	Host string
	// Marker is the constant name whose presence means the declaration
	// block was already inserted.
	Marker string
	// Anchor is the exact text the declaration block is inserted before.
	Anchor string
	// Strict rejects registry filenames that are not in the catalog.
	Strict bool
}

// Options configures New. Empty fields take the defaults.
type Options struct {
	Host   string
	Marker string
	Anchor string
	Strict bool
}

// New constructs a Linker.
func New(opts Options) *Linker {
	l := &Linker{Host: opts.Host, Marker: opts.Marker, Anchor: opts.Anchor, Strict: opts.Strict}
	if strings.TrimSpace(l.Host) == "" {
		l.Host = DefaultHost
	}
	if l.Marker == "" {
		l.Marker = DefaultMarker
	}
	if l.Anchor == "" {
		l.Anchor = DefaultAnchor
	}
	return l
}

// Change summarizes what a patch did.
type Change struct {
	Inserted bool
	Replaced int
}

// Changed reports whether the text was modified.
func (c Change) Changed() bool { return c.Inserted || c.Replaced > 0 }

// PatchArtifact inserts the ID declaration block (once) and rewrites local
// video references to embed URLs. On error the input is returned unchanged.
func (l *Linker) PatchArtifact(text string, registry Registry) (string, error) {
	patched, _, err := l.patch(text, registry)
	return patched, err
}

func (l *Linker) patch(text string, registry Registry) (string, Change, error) {
	var change Change
	if !strings.Contains(text, l.Marker) {
		idx := strings.Index(text, l.Anchor)
		if idx < 0 {
			return text, Change{}, services.Wrap(services.ErrAnchorNotFound, "link", "insert declaration", fmt.Sprintf("%q", l.Anchor), nil)
		}
		text = text[:idx] + "\n" + l.Declaration(registry) + "\n\n" + text[idx:]
		change.Inserted = true
	}

	for _, key := range registry.Keys() {
		id := registry[key]
		if id == "" {
			continue
		}
		remote := fmt.Sprintf("videoUrl: 'https://%s/embed/%s'", l.Host, id)
		for _, local := range []string{
			fmt.Sprintf("videoUrl: '/videos/%s.mp4'", key),
			fmt.Sprintf("videoUrl: '/videos/maono-%s.mp4'", key),
		} {
			if n := strings.Count(text, local); n > 0 {
				text = strings.ReplaceAll(text, local, remote)
				change.Replaced += n
			}
		}
	}
	return text, change, nil
}

// Declaration renders the generated constant block listing every catalog key.
func (l *Linker) Declaration(registry Registry) string {
	var b strings.Builder
	b.WriteString("// YouTube Video IDs - Auto-generated\n")
	fmt.Fprintf(&b, "const %s: Record<string, string> = {\n", l.Marker)
	for _, key := range CatalogKeys() {
		fmt.Fprintf(&b, "  '%s': '%s',\n", key, registry[key])
	}
	b.WriteString("};")
	return b.String()
}
