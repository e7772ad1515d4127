package indexing

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bojanb98/code-context/internal/changedet"
	"github.com/bojanb98/code-context/internal/codeerrors"
	"github.com/bojanb98/code-context/internal/embedding"
	"github.com/bojanb98/code-context/internal/fsscan"
	"github.com/bojanb98/code-context/internal/graphdb"
	"github.com/bojanb98/code-context/internal/hashing"
	"github.com/bojanb98/code-context/internal/refgraph"
	"github.com/bojanb98/code-context/internal/snapshot"
	"github.com/bojanb98/code-context/internal/splitter"
	"github.com/bojanb98/code-context/internal/vectordb"
)

// Index runs spec §4.9's end-to-end ingest for one codebase.
func (o *Orchestrator) Index(ctx context.Context, codebasePath string, forceReindex bool) error {
	abs, err := filepath.Abs(codebasePath)
	if err != nil {
		return fmt.Errorf("%w: %v", codeerrors.ErrPathNotFound, err)
	}
	if _, err := os.Stat(abs); err != nil {
		return fmt.Errorf("%w: %s", codeerrors.ErrPathNotFound, abs)
	}

	collection := CollectionName(abs)
	if err := o.prepareCollection(ctx, abs, collection, forceReindex); err != nil {
		return fmt.Errorf("%w: %v", codeerrors.ErrVectorDB, err)
	}

	old, err := o.Snapshots.Load(abs)
	if err != nil {
		return fmt.Errorf("%w: load snapshot: %v", codeerrors.ErrSnapshotIO, err)
	}

	lister := fsscan.New(abs, o.Config.Paths.Ignore)
	current, err := lister.List()
	if err != nil {
		return fmt.Errorf("list codebase files: %w", err)
	}

	changes, err := changedet.Detect(old, current, changedet.DefaultHashFunc(abs))
	if err != nil {
		return fmt.Errorf("detect changes: %w", err)
	}

	toAdd, toRemove := changes.ToAdd(), changes.ToRemove()
	if len(toAdd) == 0 && len(toRemove) == 0 {
		return nil
	}

	for _, relPath := range toRemove {
		if err := o.Vector.DeleteByFilter(ctx, collection, "relative_path", relPath); err != nil {
			return fmt.Errorf("%w: delete chunks for %s: %v", codeerrors.ErrVectorDB, relPath, err)
		}
	}

	chunks, refs, err := o.splitFiles(abs, toAdd)
	if err != nil {
		return err
	}

	if o.Graph != nil && len(refs) > 0 {
		if err := o.upsertGraph(ctx, abs, refs); err != nil {
			return err
		}
	}

	for start := 0; start < len(chunks); start += batchSize {
		end := start + batchSize
		if end > len(chunks) {
			end = len(chunks)
		}
		if err := o.processBatch(ctx, collection, chunks[start:end]); err != nil {
			return err
		}
	}

	newSnapshot, err := buildSnapshot(abs, old, current, toAdd)
	if err != nil {
		return fmt.Errorf("%w: %v", codeerrors.ErrSnapshotIO, err)
	}
	if err := o.Snapshots.Save(abs, newSnapshot); err != nil {
		return fmt.Errorf("%w: save snapshot: %v", codeerrors.ErrSnapshotIO, err)
	}

	return nil
}

// splitFiles reads and splits every relative path in toAdd, skipping
// (not aborting on) a single file's read error per spec §5. It returns
// the flattened chunk list plus a parallel refgraph.ChunkRef slice, one
// per chunk, carrying the live AST node handle where the splitter
// recorded one.
func (o *Orchestrator) splitFiles(abs string, toAdd []string) ([]splitter.CodeChunk, []refgraph.ChunkRef, error) {
	var chunks []splitter.CodeChunk
	var refs []refgraph.ChunkRef

	for _, relPath := range toAdd {
		source, err := os.ReadFile(filepath.Join(abs, relPath))
		if err != nil {
			o.Logger.Warn().Err(err).Str("path", relPath).Msg("skipping unreadable file")
			continue
		}

		result, err := o.Splitter.Split(relPath, source)
		if err != nil {
			o.Logger.Warn().Err(err).Str("path", relPath).Msg("skipping unsplittable file")
			continue
		}

		for _, c := range result.Chunks {
			chunks = append(chunks, c)
			ref := refgraph.ChunkRef{
				ID:            c.ID,
				FilePath:      c.FilePath,
				Language:      string(c.Language),
				StartLine:     c.StartLine,
				EndLine:       c.EndLine,
				ParentChunkID: c.ParentChunkID,
				SourceGroupID: result.SourceGroups[c.ID],
			}
			if handle, ok := result.Nodes[c.ID]; ok {
				ref.Node = handle.Node
				ref.Source = handle.Source
			}
			refs = append(refs, ref)
		}
	}

	return chunks, refs, nil
}

func (o *Orchestrator) upsertGraph(ctx context.Context, abs string, refs []refgraph.ChunkRef) error {
	nodes := make([]graphdb.Node, len(refs))
	for i, r := range refs {
		nodes[i] = graphdb.Node{
			ID: r.ID,
			Properties: map[string]any{
				graphdb.CodebaseProperty: abs,
				"file_path":              r.FilePath,
				"language":               r.Language,
			},
		}
	}
	if err := o.Graph.UpsertNodes(ctx, nodes); err != nil {
		return fmt.Errorf("%w: %v", codeerrors.ErrGraph, err)
	}

	edges := refgraph.Build(refs, o.IncludeIntraFileRefs)
	graphEdges := make([]graphdb.Edge, len(edges))
	for i, e := range edges {
		graphEdges[i] = graphdb.Edge{SourceID: e.SourceID, TargetID: e.TargetID, Type: string(e.Type)}
	}
	if err := o.Graph.UpsertEdges(ctx, graphEdges); err != nil {
		return fmt.Errorf("%w: %v", codeerrors.ErrGraph, err)
	}
	return nil
}

// processBatch implements spec §4.9 step 6 for one batch of up to 128 chunks.
func (o *Orchestrator) processBatch(ctx context.Context, collection string, batch []splitter.CodeChunk) error {
	contents := make([]string, len(batch))
	for i, c := range batch {
		contents[i] = c.Content
	}

	codeDense, err := o.Embed.EmbedBatch(ctx, contents, embedding.ModePassage)
	if err != nil {
		return fmt.Errorf("%w: embed code: %v", codeerrors.ErrTransientRemote, err)
	}

	var docDense [][]float32
	docTexts := make([]string, len(batch))
	docEnabled := o.Config.Embedding.DocEmbeddingEnabled
	if docEnabled {
		var missingIdx []int
		var missingContents []string
		for i, c := range batch {
			if c.HasDoc && c.Doc != "" {
				docTexts[i] = c.Doc
			} else {
				missingIdx = append(missingIdx, i)
				missingContents = append(missingContents, c.Content)
			}
		}
		if len(missingIdx) > 0 && o.Explain != nil {
			explained, err := o.Explain.ExplainBatch(ctx, missingContents)
			if err != nil {
				return fmt.Errorf("%w: explain chunks: %v", codeerrors.ErrTransientRemote, err)
			}
			for j, idx := range missingIdx {
				docTexts[idx] = explained[j]
			}
		}
		for i, t := range docTexts {
			if t == "" {
				docTexts[i] = "unknown"
			}
		}

		docDense, err = o.Embed.EmbedBatch(ctx, docTexts, embedding.ModePassage)
		if err != nil {
			return fmt.Errorf("%w: embed docs: %v", codeerrors.ErrTransientRemote, err)
		}
	}

	now := time.Now().UTC().Format(time.RFC3339)
	points := make([]vectordb.Point, len(batch))
	for i, c := range batch {
		dense := map[string][]float32{vectordb.VectorCodeDense: codeDense[i]}
		sparse := map[string]string{vectordb.VectorCodeSparse: c.Content}
		payload := map[string]any{
			"content":       c.Content,
			"relative_path": c.FilePath,
			"start_line":    c.StartLine,
			"end_line":      c.EndLine,
			"language":      string(c.Language),
			"indexed_at":    now,
		}
		if docEnabled {
			dense[vectordb.VectorDocDense] = docDense[i]
			sparse[vectordb.VectorDocSparse] = docTexts[i]
			payload["doc"] = docTexts[i]
		} else if c.HasDoc {
			payload["doc"] = c.Doc
		}

		points[i] = vectordb.Point{
			ID:           c.ID,
			DenseVectors: dense,
			SparseTexts:  sparse,
			Payload:      payload,
		}
	}

	if err := o.Vector.Upsert(ctx, collection, points); err != nil {
		return fmt.Errorf("%w: upsert batch: %v", codeerrors.ErrVectorDB, err)
	}
	return nil
}

// buildSnapshot reuses the old hash for files outside toAdd (unchanged
// by definition) and recomputes it for the rest, avoiding a full rehash
// of the codebase on every run.
func buildSnapshot(abs string, old *snapshot.Snapshot, current map[string]fsscan.Metadata, toAdd []string) (*snapshot.Snapshot, error) {
	changed := make(map[string]struct{}, len(toAdd))
	for _, p := range toAdd {
		changed[p] = struct{}{}
	}

	out := snapshot.Empty()
	for relPath, meta := range current {
		hash := ""
		if _, isChanged := changed[relPath]; !isChanged {
			if rec, ok := old.Files[relPath]; ok {
				hash = rec.Hash
			}
		}
		if hash == "" {
			h, err := hashing.FileHash(filepath.Join(abs, relPath))
			if err != nil {
				return nil, fmt.Errorf("hash %s: %w", relPath, err)
			}
			hash = h
		}
		out.Files[relPath] = snapshot.FileRecord{
			Size:  meta.Size,
			Mtime: meta.Mtime,
			Inode: meta.Inode,
			Hash:  hash,
		}
	}
	return out, nil
}
