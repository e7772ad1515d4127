package config

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidDimensions    = errors.New("invalid embedding dimensions")
	ErrInvalidChunkSize     = errors.New("invalid chunk size")
	ErrInvalidOverlap       = errors.New("invalid overlap")
	ErrEmptyEndpoint        = errors.New("empty endpoint")
	ErrInvalidBatchSize     = errors.New("invalid batch size")
	ErrInvalidParallelism   = errors.New("invalid explainer parallelism")
	ErrEmptyStorageDSN      = errors.New("empty storage dsn")
	ErrInvalidCacheSettings = errors.New("invalid cache settings")
)

// Validate checks that the configuration is valid and complete, mirroring
// spec §7's ValidationError conditions that apply at config-load time
// (the request-shaped ones — empty query, out-of-range top_k — are
// validated by internal/search itself, not here).
func Validate(cfg *Config) error {
	var errs []error

	if err := validateEmbedding(&cfg.Embedding); err != nil {
		errs = append(errs, err)
	}
	if err := validateExplainer(&cfg.Explainer); err != nil {
		errs = append(errs, err)
	}
	if err := validateChunking(&cfg.Chunking); err != nil {
		errs = append(errs, err)
	}
	if err := validateStorage(&cfg.Storage); err != nil {
		errs = append(errs, err)
	}

	return joinErrors(errs)
}

func validateEmbedding(cfg *EmbeddingConfig) error {
	var errs []error
	if strings.TrimSpace(cfg.Endpoint) == "" {
		errs = append(errs, fmt.Errorf("%w: embedding endpoint is required", ErrEmptyEndpoint))
	}
	if cfg.Dimensions <= 0 {
		errs = append(errs, fmt.Errorf("%w: dimensions must be positive, got %d", ErrInvalidDimensions, cfg.Dimensions))
	}
	if cfg.BatchSize <= 0 {
		errs = append(errs, fmt.Errorf("%w: embedding_batch_size must be positive, got %d", ErrInvalidBatchSize, cfg.BatchSize))
	}
	return joinErrors(errs)
}

func validateExplainer(cfg *ExplainerConfig) error {
	if cfg.Parallelism < 1 {
		return fmt.Errorf("%w: explainer_parallelism must be >= 1, got %d", ErrInvalidParallelism, cfg.Parallelism)
	}
	if cfg.Enabled && strings.TrimSpace(cfg.Endpoint) == "" {
		return fmt.Errorf("%w: explainer endpoint is required when explainer_enabled", ErrEmptyEndpoint)
	}
	return nil
}

func validateChunking(cfg *ChunkingConfig) error {
	var errs []error
	if cfg.ChunkSize <= 0 {
		errs = append(errs, fmt.Errorf("%w: chunk_size must be positive, got %d", ErrInvalidChunkSize, cfg.ChunkSize))
	}
	if cfg.ChunkOverlap < 0 {
		errs = append(errs, fmt.Errorf("%w: chunk_overlap cannot be negative, got %d", ErrInvalidOverlap, cfg.ChunkOverlap))
	}
	if cfg.ChunkSize > 0 && cfg.ChunkOverlap >= cfg.ChunkSize {
		errs = append(errs, fmt.Errorf("%w: chunk_overlap (%d) should be less than chunk_size (%d)", ErrInvalidOverlap, cfg.ChunkOverlap, cfg.ChunkSize))
	}
	return joinErrors(errs)
}

func validateStorage(cfg *StorageConfig) error {
	var errs []error
	if strings.TrimSpace(cfg.VectorDBDSN) == "" {
		errs = append(errs, fmt.Errorf("%w: vector_db_dsn is required", ErrEmptyStorageDSN))
	}
	if strings.TrimSpace(cfg.GraphDBURI) == "" {
		errs = append(errs, fmt.Errorf("%w: graph_db_uri is required", ErrEmptyStorageDSN))
	}
	if strings.TrimSpace(cfg.SnapshotsDir) == "" {
		errs = append(errs, fmt.Errorf("%w: snapshots_dir is required", ErrEmptyStorageDSN))
	}
	return joinErrors(errs)
}

func joinErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	if len(errs) == 1 {
		return errs[0]
	}
	var msgs []string
	for _, err := range errs {
		msgs = append(msgs, err.Error())
	}
	return fmt.Errorf("validation failed:\n  - %s", strings.Join(msgs, "\n  - "))
}
