package graphdb

import (
	"context"
	"fmt"

	"github.com/bojanb98/code-context/internal/codeerrors"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// Neighborhood implements spec §6's literal traversal shape: given seed
// ids and a positive hop bound, returns every distinct node reachable
// via PARENT_OF/CONTINUES/CALLS/USES edges (either direction) within
// hops steps, excluding the seeds themselves.
func (c *Client) Neighborhood(ctx context.Context, seedIDs []string, hops int) ([]Neighbor, error) {
	if len(seedIDs) == 0 {
		return nil, nil
	}
	if hops < 1 {
		return nil, fmt.Errorf("%w: max_graph_hops must be >= 1", codeerrors.ErrValidation)
	}

	session := c.readSession(ctx)
	defer session.Close(ctx)

	cypher := fmt.Sprintf(`
		MATCH (start:CodeChunk) WHERE start.id IN $ids
		MATCH path=(start)-[:PARENT_OF|CONTINUES|CALLS|USES*1..%d]-(n)
		RETURN DISTINCT n
	`, hops)

	result, err := neo4j.ExecuteRead(ctx, session, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, cypher, map[string]any{"ids": seedIDs})
		if err != nil {
			return nil, err
		}
		return res.Collect(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: neighborhood query: %v", codeerrors.ErrGraph, err)
	}

	records, _ := result.([]*neo4j.Record)
	seeds := make(map[string]struct{}, len(seedIDs))
	for _, id := range seedIDs {
		seeds[id] = struct{}{}
	}

	seen := map[string]struct{}{}
	var out []Neighbor
	for _, record := range records {
		raw, ok := record.Get("n")
		if !ok {
			continue
		}
		node, ok := raw.(neo4j.Node)
		if !ok {
			continue
		}
		id, _ := node.Props["id"].(string)
		if id == "" {
			continue
		}
		if _, isSeed := seeds[id]; isSeed {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, Neighbor{ID: id, Properties: node.Props})
	}
	return out, nil
}
