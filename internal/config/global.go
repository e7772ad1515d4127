// Package config provides configuration loading for this tool.
//
// It supports two distinct configuration scopes:
//
// 1. Global Configuration (~/.codectx/config.yml)
//   - Machine-wide defaults shared across every codebase on the box
//   - Default vector/graph store locations, default embedding endpoint
//   - Loaded via LoadGlobalConfig()
//
// 2. Project Configuration (.codectx/config.yml)
//   - Per-codebase settings (existing functionality)
//   - Embedding model, dimensions, endpoint
//   - Path patterns, chunking strategy
//   - Loaded via LoadConfig()/LoadConfigFromDir() (existing loader)
//   - Overrides the global storage defaults field-by-field
//
// Configuration Hierarchy (highest to lowest priority):
//  1. Environment variables (CODECTX_*)
//  2. Project config (.codectx/config.yml)
//  3. Global config (~/.codectx/config.yml)
//  4. Built-in defaults
//
// The global embedding and explainer endpoints are the exception: when
// set, they replace the loaded value whatever its source (see
// GlobalConfig.ApplyDefaults).
//
// Environment Variable Convention:
//   - Prefix: CODECTX_
//   - Nested fields: use underscores (CODECTX_STORAGE_VECTOR_DB_DSN)
//   - Automatic mapping via Viper's SetEnvKeyReplacer
package config

// GlobalConfig holds machine-wide defaults, loaded from
// ~/.codectx/config.yml. A team running one shared Qdrant/Neo4j/embedding
// deployment sets these once instead of repeating them in every
// codebase's .codectx/config.yml.
type GlobalConfig struct {
	Storage   GlobalStorageDefaults   `yaml:"storage" mapstructure:"storage"`
	Embedding GlobalEmbeddingDefaults `yaml:"embedding" mapstructure:"embedding"`
}

// GlobalStorageDefaults are the default vector/graph store locations.
type GlobalStorageDefaults struct {
	VectorDBDSN     string `yaml:"vector_db_dsn" mapstructure:"vector_db_dsn"`
	GraphDBURI      string `yaml:"graph_db_uri" mapstructure:"graph_db_uri"`
	GraphDBUsername string `yaml:"graph_db_username" mapstructure:"graph_db_username"`
	GraphDBPassword string `yaml:"graph_db_password" mapstructure:"graph_db_password"`
}

// GlobalEmbeddingDefaults are the default embedding/explainer endpoints.
type GlobalEmbeddingDefaults struct {
	Endpoint         string `yaml:"endpoint" mapstructure:"endpoint"`
	ExplainerEndpoint string `yaml:"explainer_endpoint" mapstructure:"explainer_endpoint"`
}

// ApplyDefaults overlays g's storage settings onto cfg wherever cfg still
// holds an empty value, so a project config.yml only needs to name what
// differs from the shared machine-wide deployment. A non-empty global
// embedding or explainer endpoint always replaces cfg's endpoint, even
// one set by the project config or the environment.
func (g *GlobalConfig) ApplyDefaults(cfg *Config) {
	if g == nil {
		return
	}
	if cfg.Storage.VectorDBDSN == "" {
		cfg.Storage.VectorDBDSN = g.Storage.VectorDBDSN
	}
	if cfg.Storage.GraphDBURI == "" {
		cfg.Storage.GraphDBURI = g.Storage.GraphDBURI
	}
	if cfg.Storage.GraphDBUsername == "" {
		cfg.Storage.GraphDBUsername = g.Storage.GraphDBUsername
	}
	if cfg.Storage.GraphDBPassword == "" {
		cfg.Storage.GraphDBPassword = g.Storage.GraphDBPassword
	}
	if g.Embedding.Endpoint != "" {
		cfg.Embedding.Endpoint = g.Embedding.Endpoint
	}
	if g.Embedding.ExplainerEndpoint != "" {
		cfg.Explainer.Endpoint = g.Embedding.ExplainerEndpoint
	}
}
