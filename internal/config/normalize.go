package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeUploader()
	c.normalizeLinker()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	if value, ok := os.LookupEnv(EnvCredentialsFile); ok && strings.TrimSpace(value) != "" {
		c.Paths.CredentialsFile = value
	}

	fields := []struct {
		name     string
		value    *string
		fallback string
	}{
		{"paths.videos_dir", &c.Paths.VideosDir, defaultVideosDir},
		{"paths.credentials_file", &c.Paths.CredentialsFile, defaultCredentialsFile},
		{"paths.registry_file", &c.Paths.RegistryFile, defaultRegistryFile},
		{"paths.instructions_file", &c.Paths.InstructionsFile, defaultInstructionsFile},
		{"paths.target_artifact", &c.Paths.TargetArtifact, defaultTargetArtifact},
		{"paths.log_dir", &c.Paths.LogDir, defaultLogDir},
	}
	for _, field := range fields {
		trimmed := strings.TrimSpace(*field.value)
		if trimmed == "" {
			trimmed = field.fallback
		}
		expanded, err := expandPath(trimmed)
		if err != nil {
			return fmt.Errorf("%s: %w", field.name, err)
		}
		*field.value = expanded
	}
	return nil
}

func (c *Config) normalizeUploader() {
	if value, ok := os.LookupEnv(EnvUploaderBinary); ok && strings.TrimSpace(value) != "" {
		c.Uploader.Binary = value
	}
	c.Uploader.Binary = strings.TrimSpace(c.Uploader.Binary)
	if c.Uploader.Binary == "" {
		c.Uploader.Binary = defaultUploaderBinary
	}
	c.Uploader.OutputFormat = strings.ToLower(strings.TrimSpace(c.Uploader.OutputFormat))
	if c.Uploader.OutputFormat == "" {
		c.Uploader.OutputFormat = defaultOutputFormat
	}
	c.Uploader.FFprobeBinary = strings.TrimSpace(c.Uploader.FFprobeBinary)
	if c.Uploader.FFprobeBinary == "" {
		c.Uploader.FFprobeBinary = defaultFFprobeBinary
	}
}

func (c *Config) normalizeLinker() {
	c.Linker.EmbedHost = strings.TrimSpace(c.Linker.EmbedHost)
	c.Linker.EmbedHost = strings.TrimPrefix(c.Linker.EmbedHost, "https://")
	c.Linker.EmbedHost = strings.TrimSuffix(c.Linker.EmbedHost, "/")
	if c.Linker.EmbedHost == "" {
		c.Linker.EmbedHost = defaultEmbedHost
	}
	// Marker and anchor are matched byte-for-byte, so only empty values fall back.
	if strings.TrimSpace(c.Linker.Marker) == "" {
		c.Linker.Marker = defaultMarker
	}
	if strings.TrimSpace(c.Linker.Anchor) == "" {
		c.Linker.Anchor = defaultAnchor
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
