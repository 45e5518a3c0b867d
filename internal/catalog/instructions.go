package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// DefaultUploadURL is the host's web upload page.
const DefaultUploadURL = "https://www.youtube.com/upload"

// Output formats accepted by Instructions.Encode.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// InstructionOptions tunes the wording of the manual steps.
type InstructionOptions struct {
	UploadURL string
	// VideosDir is shown to the operator as the place to pick files from.
	VideosDir string
}

// Instructions is the operator-facing manual upload guide.
type Instructions struct {
	Method    string       `json:"method" yaml:"method"`
	UploadURL string       `json:"upload_url" yaml:"upload_url"`
	Steps     []string     `json:"steps" yaml:"steps"`
	Videos    []AssetEntry `json:"videos" yaml:"videos"`
}

// RenderInstructions wraps entries and the manual steps into a document.
func RenderInstructions(entries []AssetEntry, opts InstructionOptions) Instructions {
	uploadURL := strings.TrimSpace(opts.UploadURL)
	if uploadURL == "" {
		uploadURL = DefaultUploadURL
	}
	videosDir := strings.TrimSpace(opts.VideosDir)
	if videosDir == "" {
		videosDir = "public/videos"
	}
	videosDir = strings.TrimSuffix(videosDir, "/") + "/"

	videos := make([]AssetEntry, len(entries))
	for i, entry := range entries {
		videos[i] = entry.clone()
	}

	return Instructions{
		Method:    "Manual YouTube Upload",
		UploadURL: uploadURL,
		Steps: []string{
			"1. Go to " + uploadURL,
			"2. Sign in to your YouTube account",
			"3. For each video, follow these steps:",
			"   a. Click 'Select files to upload'",
			"   b. Choose the video file from " + videosDir,
			"   c. Use the provided title and description",
			fmt.Sprintf("   d. Set privacy to '%s'", DisplayVisibility(commonVisibility(videos))),
			"   e. Add the provided tags",
			"   f. Click 'Publish'",
			"4. Copy the video ID from the URL after upload",
			"5. Update the code with the video IDs",
		},
		Videos: videos,
	}
}

// Encode writes the document as indented JSON (the default) or YAML.
func (in Instructions) Encode(w io.Writer, format string) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		encoder.SetEscapeHTML(false)
		return encoder.Encode(in)
	case FormatYAML, "yml":
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(in); err != nil {
			return err
		}
		return encoder.Close()
	default:
		return fmt.Errorf("unsupported instructions format %q", format)
	}
}

// DisplayVisibility renders a visibility the way the host's web form labels it.
func DisplayVisibility(v Visibility) string {
	return cases.Title(language.English).String(string(v))
}

func commonVisibility(entries []AssetEntry) Visibility {
	if len(entries) == 0 {
		return VisibilityUnlisted
	}
	first := entries[0].Visibility
	for _, entry := range entries[1:] {
		if entry.Visibility != first {
			return "as listed per video"
		}
	}
	return first
}
