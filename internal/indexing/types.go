// Package indexing implements the indexing orchestrator (spec §4.9):
// prepare the vector collection, detect changes, delete stale chunks,
// split/embed/explain/upsert new ones, upsert the reference graph, and
// commit a snapshot only after the whole pass succeeds.
package indexing

import (
	"context"

	"github.com/bojanb98/code-context/internal/config"
	"github.com/bojanb98/code-context/internal/embedding"
	"github.com/bojanb98/code-context/internal/explainer"
	"github.com/bojanb98/code-context/internal/graphdb"
	"github.com/bojanb98/code-context/internal/snapshot"
	"github.com/bojanb98/code-context/internal/splitter"
	"github.com/bojanb98/code-context/internal/vectordb"
	"github.com/rs/zerolog"
)

// VectorStore is the subset of internal/vectordb.Client the orchestrator
// needs, narrowed to an interface so tests can substitute a fake.
type VectorStore interface {
	HasCollection(ctx context.Context, name string) (bool, error)
	CreateCollection(ctx context.Context, name string, codeDim, docDim int) error
	DropCollection(ctx context.Context, name string) error
	Upsert(ctx context.Context, collection string, points []vectordb.Point) error
	DeleteByFilter(ctx context.Context, collection, key, value string) error
}

// GraphStore is the subset of internal/graphdb.Client the orchestrator
// needs. A nil GraphStore disables graph upserts/drops entirely.
type GraphStore interface {
	UpsertNodes(ctx context.Context, nodes []graphdb.Node) error
	UpsertEdges(ctx context.Context, edges []graphdb.Edge) error
	DropGraph(ctx context.Context, codebase string) error
}

// Embedder is the subset of internal/embedding.Client the orchestrator needs.
type Embedder interface {
	EmbedBatch(ctx context.Context, texts []string, mode embedding.Mode) ([][]float32, error)
}

// Explainer is the subset of internal/explainer.Client the orchestrator needs.
type Explainer interface {
	ExplainBatch(ctx context.Context, codes []string) ([]string, error)
}

// Orchestrator wires the adapters together. IncludeIntraFileRefs governs
// whether internal/refgraph emits CALLS/USES edges between two chunks in
// the same file; the spec leaves this caller-configurable and unset in
// its config-key table, so it defaults to true (see DESIGN.md).
type Orchestrator struct {
	Config               *config.Config
	Vector               VectorStore
	Graph                GraphStore
	Embed                Embedder
	Explain              Explainer
	Splitter             *splitter.Splitter
	Snapshots            *snapshot.Repository
	IncludeIntraFileRefs bool
	Logger               zerolog.Logger
}

// batchSize is spec §4.9 step 6's literal chunk-batch size.
const batchSize = 128
