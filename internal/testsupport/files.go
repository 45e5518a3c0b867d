package testsupport

import (
	"encoding/binary"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// WriteVideo writes a stub MP4 (an ftyp box and an empty mdat box) named
// filename into dir and returns its path. Upload stubs only need the file to
// exist; the header keeps it recognisable to anything sniffing content.
func WriteVideo(t testing.TB, dir, filename string) string {
	t.Helper()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, stubMP4(), 0o644); err != nil {
		t.Fatalf("write video %s: %v", path, err)
	}
	return path
}

func stubMP4() []byte {
	box := func(kind string, payload []byte) []byte {
		out := make([]byte, 8, 8+len(payload))
		binary.BigEndian.PutUint32(out, uint32(8+len(payload)))
		copy(out[4:], kind)
		return append(out, payload...)
	}
	ftyp := append([]byte("isom"), 0, 0, 2, 0)
	ftyp = append(ftyp, []byte("isomiso2mp41")...)
	return append(box("ftyp", ftyp), box("mdat", nil)...)
}

// WriteRegistry writes ids (filename -> video id) as a registry file at path.
func WriteRegistry(t testing.TB, path string, ids map[string]string) {
	t.Helper()
	data, err := json.MarshalIndent(ids, "", "  ")
	if err != nil {
		t.Fatalf("marshal registry: %v", err)
	}
	writeText(t, path, string(data)+"\n")
}
