// Package graphdb adapts neo4j-go-driver/v5 to the narrow graph
// operation set the indexing and search orchestrators need: upserting
// CodeChunk nodes and PARENT_OF/CONTINUES/CALLS/USES edges, and a
// bounded-hop neighborhood query from a set of seed ids (spec §6's
// literal Cypher traversal shape).
package graphdb

// Node is one CodeChunk vertex to upsert. Properties beyond ID are
// stored as a flat property map so the orchestrator doesn't need a
// graphdb-specific struct for chunk metadata.
type Node struct {
	ID         string
	Properties map[string]any
}

// Edge is one directed, typed relationship between two node ids.
type Edge struct {
	SourceID string
	TargetID string
	Type     string // PARENT_OF | CONTINUES | CALLS | USES
}

// Neighbor is one node reached during bounded-hop traversal: its id and
// properties only. The hop distance it was reached at is not carried;
// ranking relies on seed-order preservation, not distance.
type Neighbor struct {
	ID         string
	Properties map[string]any
}
