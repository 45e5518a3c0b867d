package registry_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"reelpub/internal/publish"
	"reelpub/internal/registry"
)

func TestSaveOverwritesAndLoadOrdersByCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "youtube_video_ids.json")
	ctx := context.Background()

	first := []publish.Result{
		{Filename: "maono-intro.mp4", ExternalID: "old-intro"},
		{Filename: "impact-stories.mp4", ExternalID: "old-impact"},
	}
	if err := registry.Save(ctx, path, first); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	second := []publish.Result{
		{Filename: "future-vision.mp4", ExternalID: "fut"},
		{Filename: "maono-intro.mp4", ExternalID: "intro"},
	}
	if err := registry.Save(ctx, path, second); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "{\n  \"future-vision.mp4\": \"fut\",\n  \"maono-intro.mp4\": \"intro\"\n}\n"
	if string(data) != want {
		t.Fatalf("unexpected file contents:\n%s", data)
	}

	loaded, err := registry.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	wantLoaded := []publish.Result{
		{Filename: "maono-intro.mp4", ExternalID: "intro"},
		{Filename: "future-vision.mp4", ExternalID: "fut"},
	}
	if !reflect.DeepEqual(loaded, wantLoaded) {
		t.Fatalf("Load = %+v, want %+v", loaded, wantLoaded)
	}
}

func TestLoadPlacesUnknownFilenamesLast(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ids.json")
	contents := `{"zeta.mp4":"z","alpha.mp4":"a","technology-stack.mp4":"t"}`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	loaded, err := registry.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	var names []string
	for _, r := range loaded {
		names = append(names, r.Filename)
	}
	if strings.Join(names, ",") != "technology-stack.mp4,alpha.mp4,zeta.mp4" {
		t.Fatalf("unexpected order: %v", names)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := registry.Load(filepath.Join(dir, "missing.json")); !errors.Is(err, registry.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`["not","an","object"]`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := registry.Load(bad); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestSaveRejectsConflictingResults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ids.json")
	err := registry.Save(context.Background(), path, []publish.Result{
		{Filename: "maono-intro.mp4", ExternalID: "a"},
		{Filename: "maono-intro.mp4", ExternalID: "b"},
	})
	if err == nil {
		t.Fatal("expected conflict error")
	}
	if _, statErr := os.Stat(path); !errors.Is(statErr, os.ErrNotExist) {
		t.Fatal("nothing should be written on conflict")
	}
}

func TestSaveEmptyWritesEmptyObject(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ids.json")
	if err := registry.Save(context.Background(), path, nil); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	loaded, err := registry.Load(path)
	if err != nil || len(loaded) != 0 {
		t.Fatalf("Load = %v, %v", loaded, err)
	}
}
