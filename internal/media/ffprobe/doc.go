// Package ffprobe provides a typed wrapper around ffprobe JSON output.
//
// Key types:
//   - Inspector: runs ffprobe (through ffmpeg-go for the default binary)
//   - Result: parsed output containing streams and format metadata
//
// Helper methods on Result provide stream counts, the primary video
// resolution, and duration, size and bitrate parsing.
package ffprobe
