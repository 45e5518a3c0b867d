package catalog_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"reelpub/internal/catalog"
)

var wantOrder = []string{
	"maono-intro.mp4",
	"agricultural-challenges.mp4",
	"maono-solution.mp4",
	"technology-stack.mp4",
	"impact-stories.mp4",
	"future-vision.mp4",
}

func TestBuildIsStableAndOrdered(t *testing.T) {
	first := catalog.Build()
	second := catalog.Build()
	if len(first) != len(wantOrder) {
		t.Fatalf("expected %d entries, got %d", len(wantOrder), len(first))
	}
	for i, name := range wantOrder {
		if first[i].Filename != name {
			t.Fatalf("entry %d = %q, want %q", i, first[i].Filename, name)
		}
		if first[i].Title != second[i].Title || len(first[i].Tags) != len(second[i].Tags) {
			t.Fatalf("entry %d differs between builds", i)
		}
		if first[i].Visibility != catalog.VisibilityUnlisted {
			t.Fatalf("entry %d visibility = %q", i, first[i].Visibility)
		}
		if first[i].Label == "" || first[i].Description == "" || first[i].Category.Code == "" {
			t.Fatalf("entry %d missing metadata: %+v", i, first[i])
		}
	}
}

func TestBuildReturnsIndependentCopies(t *testing.T) {
	mutated := catalog.Build()
	mutated[0].Title = "changed"
	mutated[0].Tags[0] = "changed"

	fresh := catalog.Build()
	if fresh[0].Title == "changed" || fresh[0].Tags[0] == "changed" {
		t.Fatal("mutating a built catalog leaked into the canonical definition")
	}
	entry, ok := catalog.Lookup("maono-intro.mp4")
	if !ok || entry.Tags[0] == "changed" {
		t.Fatalf("Lookup returned mutated entry: %+v", entry)
	}
}

func TestLookup(t *testing.T) {
	entry, ok := catalog.Lookup("technology-stack.mp4")
	if !ok {
		t.Fatal("expected technology-stack.mp4 to be found")
	}
	if entry.Category != catalog.CategoryScienceTech {
		t.Fatalf("unexpected category: %+v", entry.Category)
	}
	if _, ok := catalog.Lookup("bonus.mp4"); ok {
		t.Fatal("unexpected entry for unknown filename")
	}
}

func TestKeyOverridesCoverCatalog(t *testing.T) {
	for _, name := range catalog.Filenames() {
		stem := strings.ReplaceAll(strings.TrimSuffix(name, ".mp4"), "-", "_")
		if _, ok := catalog.KeyOverrides[stem]; !ok {
			t.Fatalf("no key override for %s", name)
		}
	}
}

func TestParseVisibility(t *testing.T) {
	tests := []struct {
		in      string
		want    catalog.Visibility
		wantErr bool
	}{
		{"public", catalog.VisibilityPublic, false},
		{" Unlisted ", catalog.VisibilityUnlisted, false},
		{"PRIVATE", catalog.VisibilityPrivate, false},
		{"secret", "", true},
	}
	for _, tt := range tests {
		got, err := catalog.ParseVisibility(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParseVisibility(%q) error = %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ParseVisibility(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRenderInstructions(t *testing.T) {
	doc := catalog.RenderInstructions(catalog.Build(), catalog.InstructionOptions{})
	if doc.Method != "Manual YouTube Upload" {
		t.Fatalf("unexpected method: %q", doc.Method)
	}
	if doc.UploadURL != catalog.DefaultUploadURL {
		t.Fatalf("unexpected upload url: %q", doc.UploadURL)
	}
	if len(doc.Steps) != 11 {
		t.Fatalf("expected 11 steps, got %d", len(doc.Steps))
	}
	if doc.Steps[0] != "1. Go to https://www.youtube.com/upload" {
		t.Fatalf("unexpected first step: %q", doc.Steps[0])
	}
	if doc.Steps[4] != "   b. Choose the video file from public/videos/" {
		t.Fatalf("unexpected file step: %q", doc.Steps[4])
	}
	if doc.Steps[6] != "   d. Set privacy to 'Unlisted'" {
		t.Fatalf("unexpected privacy step: %q", doc.Steps[6])
	}
	for i, name := range wantOrder {
		if doc.Videos[i].Filename != name {
			t.Fatalf("video %d = %q, want %q", i, doc.Videos[i].Filename, name)
		}
	}
}

func TestInstructionsEncodeJSON(t *testing.T) {
	doc := catalog.RenderInstructions(catalog.Build(), catalog.InstructionOptions{})
	var buf bytes.Buffer
	if err := doc.Encode(&buf, catalog.FormatJSON); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !strings.Contains(buf.String(), `"category": {`) || !strings.Contains(buf.String(), "People & Blogs") {
		t.Fatalf("expected unescaped category in output: %s", buf.String())
	}

	var decoded struct {
		Method string `json:"method"`
		Steps  []string
		Videos []struct {
			Filename string `json:"filename"`
			Privacy  string `json:"privacy"`
		} `json:"videos"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(decoded.Videos) != len(wantOrder) || decoded.Videos[5].Filename != "future-vision.mp4" {
		t.Fatalf("videos out of order: %+v", decoded.Videos)
	}
	if decoded.Videos[0].Privacy != "unlisted" {
		t.Fatalf("unexpected privacy encoding: %q", decoded.Videos[0].Privacy)
	}
}

func TestInstructionsEncodeYAML(t *testing.T) {
	doc := catalog.RenderInstructions(catalog.Build()[:2], catalog.InstructionOptions{VideosDir: "clips"})
	var buf bytes.Buffer
	if err := doc.Encode(&buf, "yaml"); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	var decoded catalog.Instructions
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("decode yaml: %v", err)
	}
	if len(decoded.Videos) != 2 || decoded.Videos[1].Filename != "agricultural-challenges.mp4" {
		t.Fatalf("unexpected videos: %+v", decoded.Videos)
	}
	if decoded.Videos[1].Category.Code != "27" {
		t.Fatalf("unexpected category code: %q", decoded.Videos[1].Category.Code)
	}
	if decoded.Steps[4] != "   b. Choose the video file from clips/" {
		t.Fatalf("unexpected file step: %q", decoded.Steps[4])
	}
}

func TestInstructionsEncodeRejectsUnknownFormat(t *testing.T) {
	doc := catalog.RenderInstructions(catalog.Build(), catalog.InstructionOptions{})
	if err := doc.Encode(&bytes.Buffer{}, "toml"); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}
