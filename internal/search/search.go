package search

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/bojanb98/code-context/internal/codeerrors"
	"github.com/bojanb98/code-context/internal/embedding"
	"github.com/bojanb98/code-context/internal/indexing"
	"github.com/bojanb98/code-context/internal/vectordb"
)

// Search runs spec §4.10's hybrid-retrieval-plus-graph-expansion algorithm.
func (o *Orchestrator) Search(ctx context.Context, req Request) ([]Result, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(req.CodebasePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", codeerrors.ErrPathNotFound, err)
	}

	collection := indexing.CollectionName(abs)
	exists, err := o.Vector.HasCollection(ctx, collection)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", codeerrors.ErrVectorDB, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", codeerrors.ErrNotIndexed, abs)
	}

	codeVec, err := o.Embed.Embed(ctx, req.Query, embedding.ModeQuery)
	if err != nil {
		return nil, fmt.Errorf("%w: embed query: %v", codeerrors.ErrTransientRemote, err)
	}

	q := vectordb.HybridQuery{
		Text:           req.Query,
		CodeDenseVec:   codeVec,
		Limit:          req.TopK,
		ScoreThreshold: req.Threshold,
	}
	if o.DocVectorEnabled {
		docVec, err := o.Embed.Embed(ctx, req.Query, embedding.ModeQuery)
		if err != nil {
			return nil, fmt.Errorf("%w: embed query: %v", codeerrors.ErrTransientRemote, err)
		}
		q.DocDenseVec = docVec
	}

	scored, err := o.Vector.HybridQuery(ctx, collection, q)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", codeerrors.ErrVectorDB, err)
	}

	results := make([]Result, len(scored))
	seedIDs := make([]string, len(scored))
	seen := make(map[string]struct{}, len(scored))
	for i, sp := range scored {
		results[i] = Result{ID: sp.ID, Score: sp.Score, Payload: sp.Payload}
		seedIDs[i] = sp.ID
		seen[sp.ID] = struct{}{}
	}

	if req.MaxGraphHops != nil && o.Graph != nil && len(seedIDs) > 0 {
		neighbors, err := o.Graph.Neighborhood(ctx, seedIDs, *req.MaxGraphHops)
		if err != nil {
			o.Logger.Warn().Err(err).Msg("graph neighborhood expansion failed, degrading to seed-only results")
		} else {
			for _, n := range neighbors {
				if _, ok := seen[n.ID]; ok {
					continue
				}
				seen[n.ID] = struct{}{}
				results = append(results, Result{ID: n.ID, Score: 0.0, Payload: n.Properties})
			}
		}
	}

	// graph_limit caps the merged list only when graph expansion was
	// requested; otherwise the seed set is returned as retrieved.
	if req.MaxGraphHops != nil {
		limit := req.GraphLimit
		if limit <= 0 {
			limit = o.DefaultGraphLimit
		}
		if limit <= 0 {
			limit = defaultGraphLimit
		}
		if len(results) > limit {
			results = results[:limit]
		}
	}

	return results, nil
}
