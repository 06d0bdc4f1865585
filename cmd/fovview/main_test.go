package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"shadowcast/internal/fov"
	"shadowcast/internal/gamemap"
	"shadowcast/internal/geom"
)

func TestBuildConfigGenerated(t *testing.T) {
	cfg, err := buildConfig("Diamond", 6, 0, 50, 30, "")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Shape != fov.ShapeDiamond || cfg.Radius != 6 {
		t.Errorf("shape/radius = %s/%d, want diamond/6", cfg.Shape, cfg.Radius)
	}
	if cfg.Seed == 0 {
		t.Error("zero seed should be replaced by a clock seed")
	}
	if cfg.Map != nil {
		t.Error("no map file given, Map should be nil")
	}
}

func TestBuildConfigMapFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "room.txt")
	if err := os.WriteFile(path, []byte("#####\n#.@.#\n#####\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := buildConfig("square", 4, 9, 0, 0, path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Map == nil || cfg.Map.Width != 5 || cfg.Map.Height != 3 {
		t.Fatalf("map not loaded: %+v", cfg.Map)
	}
	if cfg.Start != geom.Pt(2, 1) {
		t.Errorf("start = %v, want (2,1)", cfg.Start)
	}
	if cfg.Seed != 9 {
		t.Errorf("seed = %d, want 9", cfg.Seed)
	}
}

func TestBuildConfigErrors(t *testing.T) {
	if _, err := buildConfig("hexagon", 4, 1, 0, 0, ""); err == nil {
		t.Error("unknown shape should fail")
	}
	if _, err := buildConfig("square", -1, 1, 0, 0, ""); err == nil {
		t.Error("negative radius should fail")
	}
	if _, err := buildConfig("square", 4, 1, 0, 0, filepath.Join(t.TempDir(), "missing.txt")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing map file: got %v, want ErrNotExist", err)
	}

	path := filepath.Join(t.TempDir(), "ragged.txt")
	if err := os.WriteFile(path, []byte("###\n#.\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := buildConfig("square", 4, 1, 0, 0, path); !errors.Is(err, gamemap.ErrRaggedMap) {
		t.Errorf("ragged map: got %v, want ErrRaggedMap", err)
	}
}
