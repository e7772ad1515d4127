package config

import "github.com/bojanb98/code-context/internal/splitter"

// ToSplitterConfig converts the chunking section into a splitter.Config.
func (c *Config) ToSplitterConfig() splitter.Config {
	return splitter.Config{
		ChunkSize:    c.Chunking.ChunkSize,
		ChunkOverlap: c.Chunking.ChunkOverlap,
		ExtractDocs:  c.Chunking.ExtractDocs,
	}
}
