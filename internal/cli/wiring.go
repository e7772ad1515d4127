package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/bojanb98/code-context/internal/config"
	"github.com/bojanb98/code-context/internal/embedding"
	"github.com/bojanb98/code-context/internal/explainer"
	"github.com/bojanb98/code-context/internal/graphdb"
	"github.com/bojanb98/code-context/internal/indexing"
	"github.com/bojanb98/code-context/internal/search"
	"github.com/bojanb98/code-context/internal/snapshot"
	"github.com/bojanb98/code-context/internal/splitter"
	"github.com/bojanb98/code-context/internal/vectordb"
	"github.com/rs/zerolog"
)

// wiredOrchestrators bundles the live adapters and both orchestrators so
// each command constructs the network clients exactly once and closes
// them on exit.
type wiredOrchestrators struct {
	vector  *vectordb.Client
	graph   *graphdb.Client
	embed   *embedding.Client
	explain *explainer.Client

	indexing *indexing.Orchestrator
	search   *search.Orchestrator
}

func newLogger() zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
}

func newOrchestrators(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*wiredOrchestrators, error) {
	vectorClient, err := vectordb.NewClient(cfg.Storage.VectorDBDSN)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to vector store: %w", err)
	}

	graphClient, err := graphdb.NewClient(ctx, cfg.Storage.GraphDBURI, cfg.Storage.GraphDBUsername, cfg.Storage.GraphDBPassword)
	if err != nil {
		vectorClient.Close()
		return nil, fmt.Errorf("failed to connect to graph store: %w", err)
	}

	embedCfg := embedding.DefaultConfig(cfg.Embedding.Endpoint)
	embedCfg.BatchSize = cfg.Embedding.BatchSize
	embedClient := embedding.NewClient(embedCfg, cfg.Embedding.Dimensions)

	var explainClient *explainer.Client
	if cfg.Explainer.Enabled {
		explainCfg := explainer.DefaultConfig(cfg.Explainer.Endpoint)
		explainCfg.Parallelism = cfg.Explainer.Parallelism
		explainClient = explainer.NewClient(explainCfg)
	}

	snapshots := snapshot.NewRepository(cfg.Storage.SnapshotsDir)

	idx := &indexing.Orchestrator{
		Config:               cfg,
		Vector:               vectorClient,
		Graph:                graphClient,
		Embed:                embedClient,
		Splitter:             splitter.New(cfg.ToSplitterConfig()),
		Snapshots:            snapshots,
		IncludeIntraFileRefs: true,
		Logger:               logger,
	}
	if explainClient != nil {
		idx.Explain = explainClient
	}

	srch := &search.Orchestrator{
		Vector:           vectorClient,
		Graph:            graphClient,
		Embed:            embedClient,
		DocVectorEnabled: cfg.Embedding.DocEmbeddingEnabled,
		Logger:           logger,
	}

	return &wiredOrchestrators{
		vector:   vectorClient,
		graph:    graphClient,
		embed:    embedClient,
		explain:  explainClient,
		indexing: idx,
		search:   srch,
	}, nil
}

func (w *wiredOrchestrators) close(ctx context.Context) {
	if w.vector != nil {
		w.vector.Close()
	}
	if w.graph != nil {
		w.graph.Close(ctx)
	}
	if w.embed != nil {
		w.embed.Close()
	}
	if w.explain != nil {
		w.explain.Close()
	}
}
