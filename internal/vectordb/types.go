// Package vectordb adapts the Qdrant gRPC client (spec §4.7) into the
// narrow named-vector, hybrid-query shape the indexing and search
// orchestrators need: two to four named vectors per collection (code
// dense/sparse, optional doc dense/sparse), upserted together per point
// and fused server-side via reciprocal rank fusion at query time.
package vectordb

// Vector names used for the named-vector collection schema (spec §4.7).
const (
	VectorCodeDense = "code_dense"
	VectorCodeSparse = "code_sparse"
	VectorDocDense  = "doc_dense"
	VectorDocSparse = "doc_sparse"
)

// Point is one upsertable record: a content-addressed id, one or more
// named dense vectors, one or more named sparse vectors (given as the raw
// text to encode — the adapter emits raw term frequencies and Qdrant
// applies the IDF modifier server-side),
// and an opaque payload.
type Point struct {
	ID          string
	DenseVectors map[string][]float32
	SparseTexts  map[string]string
	Payload      map[string]any
}

// ScoredPoint is one hit returned from a query, with its fused score and
// payload restored.
type ScoredPoint struct {
	ID      string
	Score   float64
	Payload map[string]any
}

// HybridQuery is the input to HybridQuery: a sparse query derived from
// query_text plus the dense embeddings of that same text in each
// configured vector space. DocDense/DocSparse are empty when doc
// indexing is off, in which case only the two code sub-queries prefetch.
type HybridQuery struct {
	Text          string
	CodeDenseVec  []float32
	DocDenseVec   []float32
	Limit         int
	ScoreThreshold float64
}
