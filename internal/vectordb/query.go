package vectordb

import (
	"context"
	"fmt"

	"github.com/bojanb98/code-context/internal/codeerrors"
	"github.com/qdrant/go-client/qdrant"
)

// HybridQuery implements spec §4.7's hybrid_query: a prefetch of up to
// four sub-queries (code_dense, code_sparse, and when doc indexing is on
// doc_dense/doc_sparse), each limited to q.Limit, fused server-side via
// Qdrant's native reciprocal rank fusion. Results below q.ScoreThreshold
// are dropped and at most q.Limit points are returned.
func (c *Client) HybridQuery(ctx context.Context, collection string, q HybridQuery) ([]ScoredPoint, error) {
	if q.Limit <= 0 {
		q.Limit = 10
	}
	limit := uint64(q.Limit)

	var prefetch []*qdrant.PrefetchQuery
	prefetch = append(prefetch, denseSubQuery(VectorCodeDense, q.CodeDenseVec, limit))
	prefetch = append(prefetch, sparseSubQuery(VectorCodeSparse, q.Text, limit))
	if len(q.DocDenseVec) > 0 {
		prefetch = append(prefetch, denseSubQuery(VectorDocDense, q.DocDenseVec, limit))
		prefetch = append(prefetch, sparseSubQuery(VectorDocSparse, q.Text, limit))
	}

	resp, err := c.conn.Query(ctx, &qdrant.QueryPoints{
		CollectionName: collection,
		Prefetch:       prefetch,
		Query:          qdrant.NewQueryFusion(qdrant.Fusion_RRF),
		Limit:          &limit,
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: hybrid query on %q: %v", codeerrors.ErrVectorDB, collection, err)
	}

	out := make([]ScoredPoint, 0, len(resp))
	for _, hit := range resp {
		if float64(hit.Score) < q.ScoreThreshold {
			continue
		}
		out = append(out, scoredPointFrom(hit))
		if len(out) >= q.Limit {
			break
		}
	}
	return out, nil
}

func denseSubQuery(using string, vec []float32, limit uint64) *qdrant.PrefetchQuery {
	return &qdrant.PrefetchQuery{
		Query: qdrant.NewQueryDense(vec),
		Using: &using,
		Limit: &limit,
	}
}

func sparseSubQuery(using, text string, limit uint64) *qdrant.PrefetchQuery {
	indices, values := encodeSparse(text)
	return &qdrant.PrefetchQuery{
		Query: qdrant.NewQuerySparse(indices, values),
		Using: &using,
		Limit: &limit,
	}
}

func scoredPointFrom(hit *qdrant.ScoredPoint) ScoredPoint {
	uuidStr := hit.Id.GetUuid()
	if uuidStr == "" {
		uuidStr = hit.Id.String()
	}

	payload := make(map[string]any, len(hit.Payload))
	originalID := ""
	for k, v := range hit.Payload {
		if k == payloadIDField {
			originalID = v.GetStringValue()
			continue
		}
		payload[k] = valueFrom(v)
	}

	id := originalID
	if id == "" {
		id = uuidStr
	}
	return ScoredPoint{ID: id, Score: float64(hit.Score), Payload: payload}
}

func valueFrom(v *qdrant.Value) any {
	switch kind := v.Kind.(type) {
	case *qdrant.Value_StringValue:
		return kind.StringValue
	case *qdrant.Value_IntegerValue:
		return kind.IntegerValue
	case *qdrant.Value_DoubleValue:
		return kind.DoubleValue
	case *qdrant.Value_BoolValue:
		return kind.BoolValue
	default:
		return v.GetStringValue()
	}
}
