// Package config loads and validates this tool's per-codebase
// configuration (spec §6's configuration keys) with environment
// variable overrides, following the teacher's Viper-based
// defaults -> file -> env priority chain.
package config

// Config is the complete per-codebase configuration, loaded from
// .codectx/config.yml with CODECTX_* environment variable overrides.
type Config struct {
	Embedding EmbeddingConfig `yaml:"embedding" mapstructure:"embedding"`
	Explainer ExplainerConfig `yaml:"explainer" mapstructure:"explainer"`
	Chunking  ChunkingConfig  `yaml:"chunking" mapstructure:"chunking"`
	Paths     PathsConfig     `yaml:"paths" mapstructure:"paths"`
	Storage   StorageConfig   `yaml:"storage" mapstructure:"storage"`
}

// EmbeddingConfig configures the embedding adapter (spec §4.8).
type EmbeddingConfig struct {
	Endpoint            string `yaml:"endpoint" mapstructure:"endpoint"`
	Dimensions          int    `yaml:"dimensions" mapstructure:"dimensions"`
	BatchSize           int    `yaml:"embedding_batch_size" mapstructure:"embedding_batch_size"`
	DocEmbeddingEnabled bool   `yaml:"doc_embedding_enabled" mapstructure:"doc_embedding_enabled"`
}

// ExplainerConfig configures the LLM code-explanation adapter.
type ExplainerConfig struct {
	Enabled     bool   `yaml:"explainer_enabled" mapstructure:"explainer_enabled"`
	Parallelism int    `yaml:"explainer_parallelism" mapstructure:"explainer_parallelism"`
	Endpoint    string `yaml:"endpoint" mapstructure:"endpoint"`
}

// PathsConfig defines which files to index and which to ignore.
type PathsConfig struct {
	Code   []string `yaml:"code" mapstructure:"code"`
	Docs   []string `yaml:"docs" mapstructure:"docs"`
	Ignore []string `yaml:"ignore_patterns" mapstructure:"ignore_patterns"`
}

// ChunkingConfig defines how source is split (spec §4.5 + §6).
type ChunkingConfig struct {
	ChunkSize    int  `yaml:"chunk_size" mapstructure:"chunk_size"`
	ChunkOverlap int  `yaml:"chunk_overlap" mapstructure:"chunk_overlap"`
	ExtractDocs  bool `yaml:"extract_docs" mapstructure:"extract_docs"`
}

// StorageConfig locates the external vector DB, graph DB, and the
// local snapshot directory the change detector diffs against.
type StorageConfig struct {
	VectorDBDSN     string `yaml:"vector_db_dsn" mapstructure:"vector_db_dsn"`
	GraphDBURI      string `yaml:"graph_db_uri" mapstructure:"graph_db_uri"`
	GraphDBUsername string `yaml:"graph_db_username" mapstructure:"graph_db_username"`
	GraphDBPassword string `yaml:"graph_db_password" mapstructure:"graph_db_password"`
	SnapshotsDir    string `yaml:"snapshots_dir" mapstructure:"snapshots_dir"`
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Embedding: EmbeddingConfig{
			Endpoint:            "http://localhost:8121/embed",
			Dimensions:          384,
			BatchSize:           32,
			DocEmbeddingEnabled: false,
		},
		Explainer: ExplainerConfig{
			Enabled:     false,
			Parallelism: 1,
			Endpoint:    "http://localhost:8122/explain",
		},
		Paths: PathsConfig{
			Code: []string{
				"**/*.go", "**/*.ts", "**/*.tsx", "**/*.js", "**/*.jsx",
				"**/*.py", "**/*.rs", "**/*.c", "**/*.cpp", "**/*.cc",
				"**/*.h", "**/*.hpp", "**/*.php", "**/*.rb", "**/*.java",
			},
			Docs: []string{"**/*.md", "**/*.rst"},
			Ignore: []string{
				"node_modules/**", "vendor/**", ".git/**", "dist/**",
				"build/**", "target/**", "__pycache__/**", "*.test", "*.pyc",
			},
		},
		Chunking: ChunkingConfig{
			ChunkSize:    2500,
			ChunkOverlap: 300,
			ExtractDocs:  true,
		},
		Storage: StorageConfig{
			VectorDBDSN:  "http://localhost:6334",
			GraphDBURI:   "bolt://localhost:7687",
			SnapshotsDir: ".codectx/snapshots",
		},
	}
}
