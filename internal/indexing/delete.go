package indexing

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/bojanb98/code-context/internal/codeerrors"
)

// Delete implements spec §4.9's delete(codebase_path) entry point: drop
// the collection if present, best-effort drop the graph, delete the
// snapshot.
func (o *Orchestrator) Delete(ctx context.Context, codebasePath string) error {
	abs, err := filepath.Abs(codebasePath)
	if err != nil {
		return fmt.Errorf("%w: %v", codeerrors.ErrPathNotFound, err)
	}

	collection := CollectionName(abs)
	exists, err := o.Vector.HasCollection(ctx, collection)
	if err != nil {
		return fmt.Errorf("%w: %v", codeerrors.ErrVectorDB, err)
	}
	if exists {
		if err := o.Vector.DropCollection(ctx, collection); err != nil {
			return fmt.Errorf("%w: %v", codeerrors.ErrVectorDB, err)
		}
	}

	if o.Graph != nil {
		if err := o.Graph.DropGraph(ctx, abs); err != nil {
			o.Logger.Warn().Err(err).Str("codebase", abs).Msg("best-effort graph drop failed")
		}
	}

	if err := o.Snapshots.Delete(abs); err != nil {
		return fmt.Errorf("%w: %v", codeerrors.ErrSnapshotIO, err)
	}

	return nil
}
