package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for Global Config Loader:
// - LoadGlobalConfig() returns zero-value defaults when file doesn't exist (not an error)
// - LoadGlobalConfig() loads from ~/.codectx/config.yml when present
// - LoadGlobalConfig() environment variables override YAML values
// - LoadGlobalConfig() returns error for malformed YAML

func TestLoadGlobalConfig_MissingFile(t *testing.T) {
	// Note: Cannot use t.Parallel() with t.Setenv()

	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, err := LoadGlobalConfig()

	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Empty(t, cfg.Storage.VectorDBDSN)
	assert.Empty(t, cfg.Storage.GraphDBURI)
	assert.Empty(t, cfg.Embedding.Endpoint)
}

func TestLoadGlobalConfig_WithFile(t *testing.T) {
	// Note: Cannot use t.Parallel() with t.Setenv()

	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	codectxDir := filepath.Join(tempHome, ".codectx")
	require.NoError(t, os.MkdirAll(codectxDir, 0755))

	configContent := `
storage:
  vector_db_dsn: http://qdrant.shared:6334
  graph_db_uri: bolt://neo4j.shared:7687
  graph_db_username: neo4j
  graph_db_password: hunter2

embedding:
  endpoint: http://embed.shared/embed
  explainer_endpoint: http://explain.shared/explain
`

	configPath := filepath.Join(codectxDir, "config.yml")
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	cfg, err := LoadGlobalConfig()

	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "http://qdrant.shared:6334", cfg.Storage.VectorDBDSN)
	assert.Equal(t, "bolt://neo4j.shared:7687", cfg.Storage.GraphDBURI)
	assert.Equal(t, "neo4j", cfg.Storage.GraphDBUsername)
	assert.Equal(t, "hunter2", cfg.Storage.GraphDBPassword)
	assert.Equal(t, "http://embed.shared/embed", cfg.Embedding.Endpoint)
	assert.Equal(t, "http://explain.shared/explain", cfg.Embedding.ExplainerEndpoint)
}

func TestLoadGlobalConfig_EnvOverrides(t *testing.T) {
	// Note: Cannot use t.Parallel() with t.Setenv()

	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	codectxDir := filepath.Join(tempHome, ".codectx")
	require.NoError(t, os.MkdirAll(codectxDir, 0755))

	configContent := `
storage:
  vector_db_dsn: http://file-qdrant:6334
embedding:
  endpoint: http://file-embed/embed
`
	configPath := filepath.Join(codectxDir, "config.yml")
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	t.Setenv("CODECTX_STORAGE_VECTOR_DB_DSN", "http://env-qdrant:6334")
	t.Setenv("CODECTX_EMBEDDING_ENDPOINT", "http://env-embed/embed")

	cfg, err := LoadGlobalConfig()

	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "http://env-qdrant:6334", cfg.Storage.VectorDBDSN)
	assert.Equal(t, "http://env-embed/embed", cfg.Embedding.Endpoint)
}

func TestLoadGlobalConfig_InvalidYAML(t *testing.T) {
	// Note: Cannot use t.Parallel() with t.Setenv()

	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	codectxDir := filepath.Join(tempHome, ".codectx")
	require.NoError(t, os.MkdirAll(codectxDir, 0755))

	malformedContent := `
storage:
  vector_db_dsn: "not-closed
  unclosed_quote_above
`
	configPath := filepath.Join(codectxDir, "config.yml")
	require.NoError(t, os.WriteFile(configPath, []byte(malformedContent), 0644))

	cfg, err := LoadGlobalConfig()

	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to")
}

func TestLoadGlobalConfig_PartialConfig(t *testing.T) {
	// Note: Cannot use t.Parallel() with t.Setenv()

	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	codectxDir := filepath.Join(tempHome, ".codectx")
	require.NoError(t, os.MkdirAll(codectxDir, 0755))

	// Only override the vector DB DSN, everything else stays zero-value.
	configContent := `
storage:
  vector_db_dsn: http://partial-qdrant:6334
`
	configPath := filepath.Join(codectxDir, "config.yml")
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	cfg, err := LoadGlobalConfig()

	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "http://partial-qdrant:6334", cfg.Storage.VectorDBDSN)
	assert.Empty(t, cfg.Storage.GraphDBURI)
	assert.Empty(t, cfg.Embedding.Endpoint)
}
