package refgraph

import "sort"

// Build implements the full reference-graph construction (spec §4.6) over
// one batch of chunks, which may span several files. includeIntraFileRefs
// controls whether CALLS/USES edges are emitted between two chunks of the
// same file in addition to cross-file ones; PARENT_OF and CONTINUES are
// always file-local by construction and unaffected by the flag.
func Build(chunks []ChunkRef, includeIntraFileRefs bool) []Edge {
	byID := make(map[string]ChunkRef, len(chunks))
	for _, c := range chunks {
		byID[c.ID] = c
	}

	seen := map[Edge]struct{}{}
	var edges []Edge
	add := func(e Edge) {
		if e.SourceID == e.TargetID {
			return
		}
		if _, ok := seen[e]; ok {
			return
		}
		seen[e] = struct{}{}
		edges = append(edges, e)
	}

	for _, e := range parentOfEdges(chunks, byID) {
		add(e)
	}
	for _, e := range continuesEdges(chunks) {
		add(e)
	}
	for _, e := range callsUsesEdges(chunks, byID, includeIntraFileRefs) {
		add(e)
	}

	return edges
}

func parentOfEdges(chunks []ChunkRef, byID map[string]ChunkRef) []Edge {
	var out []Edge
	for _, c := range chunks {
		if c.ParentChunkID == "" {
			continue
		}
		if _, ok := byID[c.ParentChunkID]; !ok {
			continue
		}
		out = append(out, Edge{SourceID: c.ParentChunkID, TargetID: c.ID, Type: EdgeParentOf})
	}
	return out
}

// continuesEdges groups chunks sharing a SourceGroupID (the pre-refinement
// unit they were split from) and links adjacent sub-chunks in document
// order.
func continuesEdges(chunks []ChunkRef) []Edge {
	groups := map[string][]ChunkRef{}
	for _, c := range chunks {
		if c.SourceGroupID == "" {
			continue
		}
		groups[c.SourceGroupID] = append(groups[c.SourceGroupID], c)
	}

	var out []Edge
	for _, group := range groups {
		if len(group) < 2 {
			continue
		}
		sort.Slice(group, func(i, j int) bool {
			if group[i].StartLine != group[j].StartLine {
				return group[i].StartLine < group[j].StartLine
			}
			return group[i].EndLine < group[j].EndLine
		})
		for i := 1; i < len(group); i++ {
			out = append(out, Edge{
				SourceID: group[i-1].ID,
				TargetID: group[i].ID,
				Type:     EdgeContinues,
			})
		}
	}
	return out
}

// callsUsesEdges implements steps 1-4 of the CALLS/USES algorithm: build an
// owner-scoped symbol index over every chunk with an attached AST node,
// then for each such chunk walk its candidates and resolve them against the
// index.
func callsUsesEdges(chunks []ChunkRef, byID map[string]ChunkRef, includeIntraFileRefs bool) []Edge {
	index := symbolIndex{}
	type indexed struct {
		chunk ChunkRef
		kinds langKinds
		owner string
	}
	var withNodes []indexed

	for _, c := range chunks {
		if c.Node == nil {
			continue
		}
		kinds, ok := kindsFor(c.Language)
		if !ok {
			continue
		}
		owner := ownerName(c.Node, kinds, c.Source)
		if nameNode, _ := definitionName(c.Node); nameNode != nil {
			index.add(c.Language, nameNode.Text(c.Source), c.ID, owner)
		}
		withNodes = append(withNodes, indexed{chunk: c, kinds: kinds, owner: owner})
	}

	var out []Edge
	for _, item := range withNodes {
		ctx := buildChunkContext(item.chunk.Node, item.kinds, item.chunk.Language, item.chunk.Source)
		candidates := walkCandidates(item.chunk.Node, item.kinds, ctx, item.owner, item.chunk.Source)
		candidates = append(candidates, ctx.extraCandidates...)

		for _, cand := range candidates {
			edgeType := EdgeUses
			if cand.kind == "call" {
				edgeType = EdgeCalls
			}
			for _, entry := range index.lookup(item.chunk.Language, cand.name) {
				if entry.chunkID == item.chunk.ID {
					continue
				}
				if cand.owner != "" && entry.owner != "" && cand.owner != entry.owner {
					continue
				}
				target, ok := byID[entry.chunkID]
				if !ok {
					continue
				}
				if !includeIntraFileRefs && target.FilePath == item.chunk.FilePath {
					continue
				}
				out = append(out, Edge{SourceID: item.chunk.ID, TargetID: entry.chunkID, Type: edgeType})
			}
		}
	}
	return out
}

