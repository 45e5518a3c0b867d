package ytupload

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Output modes for ParseVideoID.
const (
	ModeAuto   = "auto"
	ModeTagged = "tagged"
	ModeLegacy = "legacy"
)

// ErrNoVideoID is returned when stdout carries nothing usable.
var ErrNoVideoID = errors.New("no video id in upload output")

var taggedPrefixes = []string{"video_id=", "video_id:", "id="}

// ParseVideoID extracts the video ID from upload tool stdout.
//
// Tagged output is a line "video_id=<id>", "video_id: <id>", "id=<id>" or a
// JSON object with an "id" or "video_id" field; the last match wins. Legacy
// output is the last whitespace-separated token. In auto mode tagged output is
// preferred and fellBack reports that the legacy rule had to be used.
func ParseVideoID(stdout, mode string) (id string, fellBack bool, err error) {
	switch mode {
	case "", ModeAuto:
		if id, ok := parseTagged(stdout); ok {
			return id, false, nil
		}
		id, err := parseLegacy(stdout)
		return id, err == nil, err
	case ModeTagged:
		if id, ok := parseTagged(stdout); ok {
			return id, false, nil
		}
		return "", false, fmt.Errorf("%w: expected a video_id line", ErrNoVideoID)
	case ModeLegacy:
		id, err := parseLegacy(stdout)
		return id, false, err
	default:
		return "", false, fmt.Errorf("unknown output mode %q", mode)
	}
}

func parseTagged(stdout string) (string, bool) {
	var found string
	for _, line := range strings.Split(stdout, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "{") {
			var payload struct {
				ID      string `json:"id"`
				VideoID string `json:"video_id"`
			}
			if err := json.Unmarshal([]byte(line), &payload); err == nil {
				if v := strings.TrimSpace(payload.VideoID); v != "" {
					found = v
				} else if v := strings.TrimSpace(payload.ID); v != "" {
					found = v
				}
			}
			continue
		}
		lower := strings.ToLower(line)
		for _, prefix := range taggedPrefixes {
			if strings.HasPrefix(lower, prefix) {
				if v := strings.TrimSpace(line[len(prefix):]); v != "" {
					found = v
				}
				break
			}
		}
	}
	return found, found != ""
}

func parseLegacy(stdout string) (string, error) {
	fields := strings.Fields(stdout)
	if len(fields) == 0 {
		return "", ErrNoVideoID
	}
	return fields[len(fields)-1], nil
}
