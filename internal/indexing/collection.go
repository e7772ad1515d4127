package indexing

import (
	"context"
	"fmt"

	"github.com/bojanb98/code-context/internal/hashing"
)

// CollectionName implements spec §6's stable wire contract:
// "code_chunks_" ++ first 8 hex chars of XXH3-64(absolute codebase path).
func CollectionName(absCodebasePath string) string {
	return "code_chunks_" + hashing.PathHash64Hex(absCodebasePath)[:8]
}

// prepareCollection implements spec §4.9 step 3: create the collection
// if missing, or drop-and-recreate under force_reindex; under
// force_reindex also drop the graph and delete the snapshot.
func (o *Orchestrator) prepareCollection(ctx context.Context, abs, collection string, forceReindex bool) error {
	exists, err := o.Vector.HasCollection(ctx, collection)
	if err != nil {
		return fmt.Errorf("check collection exists: %w", err)
	}

	if exists && !forceReindex {
		return nil
	}

	if exists {
		if err := o.Vector.DropCollection(ctx, collection); err != nil {
			return fmt.Errorf("drop collection for reindex: %w", err)
		}
	}

	docDim := 0
	if o.Config.Embedding.DocEmbeddingEnabled {
		docDim = o.Config.Embedding.Dimensions
	}
	if err := o.Vector.CreateCollection(ctx, collection, o.Config.Embedding.Dimensions, docDim); err != nil {
		return fmt.Errorf("create collection: %w", err)
	}

	if forceReindex {
		if o.Graph != nil {
			if err := o.Graph.DropGraph(ctx, abs); err != nil {
				return fmt.Errorf("drop graph for reindex: %w", err)
			}
		}
		if err := o.Snapshots.Delete(abs); err != nil {
			return fmt.Errorf("delete snapshot for reindex: %w", err)
		}
	}

	return nil
}
