package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault_PassesValidation(t *testing.T) {
	if err := Validate(Default()); err != nil {
		t.Fatalf("default config should validate, got: %v", err)
	}
}

func TestDefault_SensibleValues(t *testing.T) {
	cfg := Default()
	if cfg.Embedding.Dimensions != 384 {
		t.Errorf("expected dimensions 384, got %d", cfg.Embedding.Dimensions)
	}
	if cfg.Embedding.BatchSize != 32 {
		t.Errorf("expected embedding_batch_size 32, got %d", cfg.Embedding.BatchSize)
	}
	if cfg.Explainer.Parallelism != 1 {
		t.Errorf("expected explainer_parallelism 1, got %d", cfg.Explainer.Parallelism)
	}
	if cfg.Explainer.Enabled {
		t.Error("expected explainer_enabled false by default")
	}
	if cfg.Chunking.ChunkOverlap >= cfg.Chunking.ChunkSize {
		t.Error("expected chunk_overlap < chunk_size")
	}
	if cfg.Chunking.ChunkSize != 2500 {
		t.Errorf("expected chunk_size 2500, got %d", cfg.Chunking.ChunkSize)
	}
	if cfg.Chunking.ChunkOverlap != 300 {
		t.Errorf("expected chunk_overlap 300, got %d", cfg.Chunking.ChunkOverlap)
	}
}

func TestValidate_RejectsNonPositiveDimensions(t *testing.T) {
	cfg := Default()
	cfg.Embedding.Dimensions = 0
	if err := Validate(cfg); err == nil {
		t.Fatal("expected validation error for zero dimensions")
	}
}

func TestValidate_RejectsOverlapGreaterThanOrEqualChunkSize(t *testing.T) {
	cfg := Default()
	cfg.Chunking.ChunkSize = 100
	cfg.Chunking.ChunkOverlap = 100
	if err := Validate(cfg); err == nil {
		t.Fatal("expected validation error for overlap >= chunk_size")
	}
}

func TestValidate_RejectsExplainerEnabledWithoutEndpoint(t *testing.T) {
	cfg := Default()
	cfg.Explainer.Enabled = true
	cfg.Explainer.Endpoint = ""
	if err := Validate(cfg); err == nil {
		t.Fatal("expected validation error for explainer enabled with empty endpoint")
	}
}

func TestValidate_RejectsParallelismBelowOne(t *testing.T) {
	cfg := Default()
	cfg.Explainer.Parallelism = 0
	if err := Validate(cfg); err == nil {
		t.Fatal("expected validation error for explainer_parallelism < 1")
	}
}

func TestValidate_RejectsEmptyStorageDSNs(t *testing.T) {
	cfg := Default()
	cfg.Storage.VectorDBDSN = ""
	if err := Validate(cfg); err == nil {
		t.Fatal("expected validation error for empty vector_db_dsn")
	}
}

func TestLoadConfigFromDir_UsesDefaultsWhenNoFilePresent(t *testing.T) {
	dir := t.TempDir()
	cfg, err := LoadConfigFromDir(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Embedding.Endpoint != Default().Embedding.Endpoint {
		t.Errorf("expected default endpoint, got %q", cfg.Embedding.Endpoint)
	}
}

func TestLoadConfigFromDir_ReadsYAMLFile(t *testing.T) {
	dir := t.TempDir()
	cortexDir := filepath.Join(dir, ".codectx")
	if err := os.MkdirAll(cortexDir, 0o755); err != nil {
		t.Fatal(err)
	}
	yaml := `
embedding:
  dimensions: 768
chunking:
  chunk_size: 500
  chunk_overlap: 50
`
	if err := os.WriteFile(filepath.Join(cortexDir, "config.yml"), []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfigFromDir(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Embedding.Dimensions != 768 {
		t.Errorf("expected dimensions 768, got %d", cfg.Embedding.Dimensions)
	}
	if cfg.Chunking.ChunkSize != 500 {
		t.Errorf("expected chunk_size 500, got %d", cfg.Chunking.ChunkSize)
	}
}

func TestLoadConfigFromDir_EnvironmentVariableOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CODECTX_EMBEDDING_DIMENSIONS", "1024")

	cfg, err := LoadConfigFromDir(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Embedding.Dimensions != 1024 {
		t.Errorf("expected dimensions 1024 from env override, got %d", cfg.Embedding.Dimensions)
	}
}
