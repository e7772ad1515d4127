package vectordb

import (
	"context"
	"fmt"

	"github.com/bojanb98/code-context/internal/codeerrors"
	"github.com/google/uuid"
	"github.com/qdrant/go-client/qdrant"
)

// Upsert implements spec §4.7's upsert(name, points[]). Qdrant only
// accepts UUID or unsigned-integer point ids, so each content-addressed
// chunk id is mapped through a deterministic name-based UUID exactly as
// the teacher's qdrantVector.Upsert does, with the original id stashed
// in the payload under payloadIDField for round-tripping out of Query.
func (c *Client) Upsert(ctx context.Context, collection string, points []Point) error {
	if len(points) == 0 {
		return nil
	}

	pbPoints := make([]*qdrant.PointStruct, 0, len(points))
	for _, p := range points {
		pointUUID := pointUUIDFor(p.ID)

		vectors := make(map[string]*qdrant.Vector, len(p.DenseVectors)+len(p.SparseTexts))
		for name, vec := range p.DenseVectors {
			vectors[name] = qdrant.NewVectorDense(vec)
		}
		for name, text := range p.SparseTexts {
			indices, values := encodeSparse(text)
			vectors[name] = qdrant.NewVectorSparse(indices, values)
		}

		payload := make(map[string]any, len(p.Payload)+1)
		for k, v := range p.Payload {
			payload[k] = v
		}
		if pointUUID != p.ID {
			payload[payloadIDField] = p.ID
		}

		pbPoints = append(pbPoints, &qdrant.PointStruct{
			Id:      qdrant.NewIDUUID(pointUUID),
			Vectors: qdrant.NewVectorsMap(vectors),
			Payload: qdrant.NewValueMap(payload),
		})
	}

	_, err := c.conn.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: collection,
		Points:         pbPoints,
	})
	if err != nil {
		return fmt.Errorf("%w: upsert into %q: %v", codeerrors.ErrVectorDB, collection, err)
	}
	return nil
}

// DeleteByFilter implements spec §4.7's delete_by_filter(name, key,
// value), used to remove every point whose relative_path payload field
// matches a given value ahead of re-indexing a changed file.
func (c *Client) DeleteByFilter(ctx context.Context, collection, key, value string) error {
	_, err := c.conn.Delete(ctx, &qdrant.DeletePoints{
		CollectionName: collection,
		Points: qdrant.NewPointsSelectorFilter(&qdrant.Filter{
			Must: []*qdrant.Condition{qdrant.NewMatch(key, value)},
		}),
	})
	if err != nil {
		return fmt.Errorf("%w: delete by filter from %q: %v", codeerrors.ErrVectorDB, collection, err)
	}
	return nil
}

// payloadIDField mirrors the teacher's PAYLOAD_ID_FIELD: Qdrant only
// allows UUID/uint64 point ids, so the caller's original content-
// addressed id is preserved in the payload whenever it isn't itself a
// valid UUID.
const payloadIDField = "_original_id"

func pointUUIDFor(id string) string {
	if _, err := uuid.Parse(id); err == nil {
		return id
	}
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(id)).String()
}
