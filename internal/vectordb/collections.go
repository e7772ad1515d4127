package vectordb

import (
	"context"
	"fmt"

	"github.com/bojanb98/code-context/internal/codeerrors"
	"github.com/qdrant/go-client/qdrant"
)

// HasCollection implements spec §4.7's has_collection(name).
func (c *Client) HasCollection(ctx context.Context, name string) (bool, error) {
	exists, err := c.conn.CollectionExists(ctx, name)
	if err != nil {
		return false, fmt.Errorf("%w: check collection exists: %v", codeerrors.ErrVectorDB, err)
	}
	return exists, nil
}

// CreateCollection implements spec §4.7's create_collection(name,
// code_dim, doc_dim?): a code_dense (cosine) + code_sparse (IDF-modified)
// pair always, plus doc_dense/doc_sparse when docDim > 0.
func (c *Client) CreateCollection(ctx context.Context, name string, codeDim, docDim int) error {
	if codeDim <= 0 {
		return fmt.Errorf("%w: code_dim must be > 0", codeerrors.ErrValidation)
	}

	dense := map[string]*qdrant.VectorParams{
		VectorCodeDense: {
			Size:     uint64(codeDim),
			Distance: qdrant.Distance_Cosine,
		},
	}
	sparse := map[string]*qdrant.SparseVectorParams{
		VectorCodeSparse: {
			Modifier: qdrant.Modifier_Idf.Enum(),
		},
	}
	if docDim > 0 {
		dense[VectorDocDense] = &qdrant.VectorParams{
			Size:     uint64(docDim),
			Distance: qdrant.Distance_Cosine,
		}
		sparse[VectorDocSparse] = &qdrant.SparseVectorParams{
			Modifier: qdrant.Modifier_Idf.Enum(),
		}
	}

	err := c.conn.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName:      name,
		VectorsConfig:       qdrant.NewVectorsConfigMap(dense),
		SparseVectorsConfig: qdrant.NewSparseVectorsConfig(sparse),
	})
	if err != nil {
		return fmt.Errorf("%w: create collection %q: %v", codeerrors.ErrVectorDB, name, err)
	}
	return nil
}

// DropCollection implements spec §4.7's drop_collection(name).
func (c *Client) DropCollection(ctx context.Context, name string) error {
	if err := c.conn.DeleteCollection(ctx, name); err != nil {
		return fmt.Errorf("%w: drop collection %q: %v", codeerrors.ErrVectorDB, name, err)
	}
	return nil
}
