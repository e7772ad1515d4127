package search

import (
	"fmt"
	"strings"

	"github.com/bojanb98/code-context/internal/codeerrors"
)

func validate(req Request) error {
	if strings.TrimSpace(req.Query) == "" {
		return fmt.Errorf("%w: query must not be empty", codeerrors.ErrValidation)
	}
	if req.TopK < 1 || req.TopK > 50 {
		return fmt.Errorf("%w: top_k must be in [1,50], got %d", codeerrors.ErrValidation, req.TopK)
	}
	if req.Threshold < 0 || req.Threshold > 1 {
		return fmt.Errorf("%w: threshold must be in [0,1], got %v", codeerrors.ErrValidation, req.Threshold)
	}
	if req.MaxGraphHops != nil && *req.MaxGraphHops < 1 {
		return fmt.Errorf("%w: max_graph_hops must be >= 1, got %d", codeerrors.ErrValidation, *req.MaxGraphHops)
	}
	return nil
}
