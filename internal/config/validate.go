package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateUploader(); err != nil {
		return err
	}
	if err := c.validateLinker(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateUploader() error {
	if c.Uploader.TimeoutSeconds <= 0 {
		return errors.New("uploader.timeout_seconds must be positive")
	}
	if c.Uploader.ProbeTimeoutSeconds <= 0 {
		return errors.New("uploader.probe_timeout_seconds must be positive")
	}
	switch c.Uploader.OutputFormat {
	case OutputFormatAuto, OutputFormatTagged, OutputFormatLegacy:
	default:
		return fmt.Errorf("uploader.output_format: unsupported value %q (want auto, tagged or legacy)", c.Uploader.OutputFormat)
	}
	return nil
}

func (c *Config) validateLinker() error {
	if strings.ContainsAny(c.Linker.EmbedHost, " /'") {
		return fmt.Errorf("linker.embed_host: %q must be a bare host name", c.Linker.EmbedHost)
	}
	if strings.Contains(c.Linker.Anchor, c.Linker.Marker) {
		return errors.New("linker.anchor must not contain linker.marker")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
