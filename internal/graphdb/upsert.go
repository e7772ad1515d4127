package graphdb

import (
	"context"
	"fmt"

	"github.com/bojanb98/code-context/internal/codeerrors"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// UpsertNodes merges one CodeChunk node per Node, keyed by its unique
// id property (spec §6's "node property id unique"). Property maps are
// merged wholesale on every call — callers always pass the full current
// property set, not a partial patch.
func (c *Client) UpsertNodes(ctx context.Context, nodes []Node) error {
	if len(nodes) == 0 {
		return nil
	}

	session := c.writeSession(ctx)
	defer session.Close(ctx)

	rows := make([]map[string]any, len(nodes))
	for i, n := range nodes {
		props := make(map[string]any, len(n.Properties)+1)
		for k, v := range n.Properties {
			props[k] = v
		}
		props["id"] = n.ID
		rows[i] = map[string]any{"id": n.ID, "props": props}
	}

	_, err := neo4j.ExecuteWrite(ctx, session, func(tx neo4j.ManagedTransaction) (any, error) {
		_, err := tx.Run(ctx, `
			UNWIND $rows AS row
			MERGE (n:CodeChunk {id: row.id})
			SET n += row.props
		`, map[string]any{"rows": rows})
		return nil, err
	})
	if err != nil {
		return fmt.Errorf("%w: upsert %d nodes: %v", codeerrors.ErrGraph, len(nodes), err)
	}
	return nil
}

// UpsertEdges merges one typed relationship per Edge between two
// already-upserted CodeChunk nodes. Edge type is interpolated into the
// Cypher relationship pattern per type (Cypher doesn't parameterize
// relationship types), grouping edges by type to keep the statement
// count to at most four per call.
func (c *Client) UpsertEdges(ctx context.Context, edges []Edge) error {
	if len(edges) == 0 {
		return nil
	}

	byType := map[string][]map[string]any{}
	for _, e := range edges {
		if !isValidEdgeType(e.Type) {
			return fmt.Errorf("%w: unknown edge type %q", codeerrors.ErrValidation, e.Type)
		}
		byType[e.Type] = append(byType[e.Type], map[string]any{
			"source": e.SourceID,
			"target": e.TargetID,
		})
	}

	session := c.writeSession(ctx)
	defer session.Close(ctx)

	_, err := neo4j.ExecuteWrite(ctx, session, func(tx neo4j.ManagedTransaction) (any, error) {
		for edgeType, rows := range byType {
			cypher := fmt.Sprintf(`
				UNWIND $rows AS row
				MATCH (a:CodeChunk {id: row.source})
				MATCH (b:CodeChunk {id: row.target})
				MERGE (a)-[:%s]->(b)
			`, edgeType)
			if _, err := tx.Run(ctx, cypher, map[string]any{"rows": rows}); err != nil {
				return nil, err
			}
		}
		return nil, nil
	})
	if err != nil {
		return fmt.Errorf("%w: upsert %d edges: %v", codeerrors.ErrGraph, len(edges), err)
	}
	return nil
}

var validEdgeTypes = map[string]struct{}{
	"PARENT_OF": {},
	"CONTINUES": {},
	"CALLS":     {},
	"USES":      {},
}

func isValidEdgeType(t string) bool {
	_, ok := validEdgeTypes[t]
	return ok
}
