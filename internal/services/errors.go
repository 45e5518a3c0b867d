package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrAssetNotFound         = errors.New("asset not found")
	ErrUpload                = errors.New("upload failed")
	ErrCredentialsMissing    = errors.New("credentials missing")
	ErrDuplicateKey          = errors.New("duplicate key collision")
	ErrAnchorNotFound        = errors.New("anchor not found")
	ErrTargetArtifactMissing = errors.New("target artifact missing")
	ErrUnknownAsset          = errors.New("unknown asset")
	ErrConfiguration         = errors.New("configuration error")
	ErrTimeout               = errors.New("timeout")
)

// Wrap builds an error message that includes stage context while tagging it with
// the provided marker for later classification. The marker should be one of the
// exported sentinel errors above.
func Wrap(marker error, stage, operation, message string, err error) error {
	detail := buildDetail(stage, operation, message)
	if marker == nil {
		if err == nil {
			return errors.New(detail)
		}
		return fmt.Errorf("%s: %w", detail, err)
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// IsAssetLocal reports whether err only affects a single asset. The pipeline
// records these and moves on to the next catalog entry.
func IsAssetLocal(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, ErrAssetNotFound) || errors.Is(err, ErrUpload)
}

// IsFatal reports whether err must abort the run before anything is written.
func IsFatal(err error) bool {
	if err == nil {
		return false
	}
	return !IsAssetLocal(err)
}

func buildDetail(stage, operation, message string) string {
	parts := make([]string, 0, 3)
	if stage = strings.TrimSpace(stage); stage != "" {
		parts = append(parts, stage)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "pipeline failure"
	}
	return strings.Join(parts, ": ")
}
