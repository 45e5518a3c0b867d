// Package config loads, normalizes, and validates reelpub configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment overrides such as
// REELPUB_CLIENT_SECRETS and REELPUB_UPLOADER. Relative paths resolve against
// the working directory, which is expected to be the presentation project root.
//
// Always obtain settings through this package so downstream code receives
// absolute paths, canonical log formats, and clear validation errors.
package config
