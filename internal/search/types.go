// Package search implements the hybrid search orchestrator (spec
// §4.10): validate a query, embed it, run a hybrid vector-DB query,
// best-effort expand the result set through the graph's neighborhood,
// and merge seed and graph results preserving seed order.
package search

import (
	"context"

	"github.com/bojanb98/code-context/internal/embedding"
	"github.com/bojanb98/code-context/internal/graphdb"
	"github.com/bojanb98/code-context/internal/vectordb"
	"github.com/rs/zerolog"
)

// Request is one search call's validated-on-entry argument set.
type Request struct {
	CodebasePath string
	Query        string
	TopK         int     // spec: [1,50]
	Threshold    float64 // spec: [0,1]
	MaxGraphHops *int    // spec: >= 1 when provided; nil disables graph expansion
	GraphLimit   int     // spec default: 30
}

// Result is one merged hit. Graph-only neighbors (not scored by the
// retriever) carry Score 0.0 per spec §4.10 step 5.
type Result struct {
	ID      string
	Score   float64
	Payload map[string]any
}

// VectorStore is the subset of internal/vectordb.Client the orchestrator needs.
type VectorStore interface {
	HasCollection(ctx context.Context, name string) (bool, error)
	HybridQuery(ctx context.Context, collection string, q vectordb.HybridQuery) ([]vectordb.ScoredPoint, error)
}

// GraphStore is the subset of internal/graphdb.Client the orchestrator
// needs. A nil GraphStore disables graph expansion entirely.
type GraphStore interface {
	Neighborhood(ctx context.Context, seedIDs []string, hops int) ([]graphdb.Neighbor, error)
}

// Embedder is the subset of internal/embedding.Client the orchestrator needs.
type Embedder interface {
	Embed(ctx context.Context, text string, mode embedding.Mode) ([]float32, error)
}

// Orchestrator wires the adapters together for search.
type Orchestrator struct {
	Vector            VectorStore
	Graph             GraphStore
	Embed             Embedder
	DocVectorEnabled  bool
	DefaultGraphLimit int
	Logger            zerolog.Logger
}

const defaultGraphLimit = 30
