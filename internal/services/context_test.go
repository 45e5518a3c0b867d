package services_test

import (
	"context"
	"testing"

	"reelpub/internal/services"
)

func TestContextHelpers(t *testing.T) {
	ctx := context.Background()
	ctx = services.WithRunID(ctx, "run-123")
	ctx = services.WithStage(ctx, "publish")
	ctx = services.WithAsset(ctx, "future-vision.mp4")

	if id, ok := services.RunIDFromContext(ctx); !ok || id != "run-123" {
		t.Fatalf("unexpected run id: %v %v", id, ok)
	}
	if stage, ok := services.StageFromContext(ctx); !ok || stage != "publish" {
		t.Fatalf("unexpected stage: %v %v", stage, ok)
	}
	if asset, ok := services.AssetFromContext(ctx); !ok || asset != "future-vision.mp4" {
		t.Fatalf("unexpected asset: %v %v", asset, ok)
	}
}

func TestBlankValuesPreserveContext(t *testing.T) {
	ctx := context.Background()
	ctx = services.WithStage(ctx, "")
	ctx = services.WithAsset(ctx, "")
	ctx = services.WithRunID(ctx, "")
	if _, ok := services.StageFromContext(ctx); ok {
		t.Fatal("expected no stage value")
	}
	if _, ok := services.AssetFromContext(ctx); ok {
		t.Fatal("expected no asset value")
	}
	if _, ok := services.RunIDFromContext(ctx); ok {
		t.Fatal("expected no run id value")
	}
}
