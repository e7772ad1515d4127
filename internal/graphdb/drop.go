package graphdb

import (
	"context"
	"fmt"

	"github.com/bojanb98/code-context/internal/codeerrors"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// CodebaseProperty is the node property callers must set (via
// Node.Properties) to scope CodeChunk nodes to one codebase, so that
// DropGraph can remove exactly one codebase's reference graph out of a
// Neo4j instance shared across several indexed codebases.
const CodebaseProperty = "codebase"

// DropGraph best-effort deletes every CodeChunk node (and its
// relationships) tagged with the given codebase identifier — the graph
// counterpart of dropping a vector-DB collection, used by the indexing
// orchestrator's delete() entry point and by force_reindex.
func (c *Client) DropGraph(ctx context.Context, codebase string) error {
	session := c.writeSession(ctx)
	defer session.Close(ctx)

	_, err := neo4j.ExecuteWrite(ctx, session, func(tx neo4j.ManagedTransaction) (any, error) {
		_, err := tx.Run(ctx, `
			MATCH (n:CodeChunk {codebase: $codebase})
			DETACH DELETE n
		`, map[string]any{"codebase": codebase})
		return nil, err
	})
	if err != nil {
		return fmt.Errorf("%w: drop graph for codebase %q: %v", codeerrors.ErrGraph, codebase, err)
	}
	return nil
}
