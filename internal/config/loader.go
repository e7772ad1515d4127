package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Loader provides configuration loading capabilities.
type Loader interface {
	// Load loads configuration from file and environment variables.
	// Priority: defaults → config file → environment variables (env wins)
	Load() (*Config, error)
}

type loader struct {
	rootDir string
}

// NewLoader creates a new configuration loader for the given root directory.
func NewLoader(rootDir string) Loader {
	return &loader{rootDir: rootDir}
}

// Load loads configuration with the following priority (highest to lowest):
// 1. Environment variables (CODECTX_*)
// 2. Config file (.codectx/config.yml or .codectx/config.yaml)
// 3. Global config (~/.codectx/config.yml), for storage fields the project left unset
// 4. Default values
//
// Exception: a non-empty global embedding/explainer endpoint overrides
// every other source.
func (l *loader) Load() (*Config, error) {
	v := viper.New()

	configDir := filepath.Join(l.rootDir, ".codectx")
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir)

	v.SetEnvPrefix("CODECTX")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	bindEnvVars(v)
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	global, err := LoadGlobalConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load global configuration: %w", err)
	}
	global.ApplyDefaults(cfg)

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func bindEnvVars(v *viper.Viper) {
	v.BindEnv("embedding.endpoint")
	v.BindEnv("embedding.dimensions")
	v.BindEnv("embedding.embedding_batch_size")
	v.BindEnv("embedding.doc_embedding_enabled")

	v.BindEnv("explainer.explainer_enabled")
	v.BindEnv("explainer.explainer_parallelism")
	v.BindEnv("explainer.endpoint")

	v.BindEnv("chunking.chunk_size")
	v.BindEnv("chunking.chunk_overlap")
	v.BindEnv("chunking.extract_docs")

	v.BindEnv("storage.vector_db_dsn")
	v.BindEnv("storage.graph_db_uri")
	v.BindEnv("storage.graph_db_username")
	v.BindEnv("storage.graph_db_password")
	v.BindEnv("storage.snapshots_dir")
}

// setDefaults configures viper with default values.
func setDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("embedding.endpoint", defaults.Embedding.Endpoint)
	v.SetDefault("embedding.dimensions", defaults.Embedding.Dimensions)
	v.SetDefault("embedding.embedding_batch_size", defaults.Embedding.BatchSize)
	v.SetDefault("embedding.doc_embedding_enabled", defaults.Embedding.DocEmbeddingEnabled)

	v.SetDefault("explainer.explainer_enabled", defaults.Explainer.Enabled)
	v.SetDefault("explainer.explainer_parallelism", defaults.Explainer.Parallelism)
	v.SetDefault("explainer.endpoint", defaults.Explainer.Endpoint)

	v.SetDefault("paths.code", defaults.Paths.Code)
	v.SetDefault("paths.docs", defaults.Paths.Docs)
	v.SetDefault("paths.ignore_patterns", defaults.Paths.Ignore)

	v.SetDefault("chunking.chunk_size", defaults.Chunking.ChunkSize)
	v.SetDefault("chunking.chunk_overlap", defaults.Chunking.ChunkOverlap)
	v.SetDefault("chunking.extract_docs", defaults.Chunking.ExtractDocs)

	v.SetDefault("storage.vector_db_dsn", defaults.Storage.VectorDBDSN)
	v.SetDefault("storage.graph_db_uri", defaults.Storage.GraphDBURI)
	v.SetDefault("storage.snapshots_dir", defaults.Storage.SnapshotsDir)
}

// LoadConfig is a convenience function that creates a loader and loads
// config using the current working directory as the root.
func LoadConfig() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	return NewLoader(wd).Load()
}

// LoadConfigFromDir loads configuration from a specific directory.
func LoadConfigFromDir(rootDir string) (*Config, error) {
	return NewLoader(rootDir).Load()
}
