package explainer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"golang.org/x/sync/errgroup"
)

// Client talks to a single HTTP code-explanation endpoint, dispatching
// one request per code with bounded per-batch parallelism.
type Client struct {
	cfg  Config
	http *http.Client
}

func NewClient(cfg Config) *Client {
	return &Client{cfg: cfg, http: &http.Client{Timeout: cfg.Timeout}}
}

type explainRequest struct {
	SystemPrompt string `json:"system_prompt"`
	Code         string `json:"code"`
}

type explainResponse struct {
	Summary *string `json:"summary"`
}

// ExplainBatch summarizes each code in order. Up to cfg.Parallelism
// requests are in flight at once; a result slot is never written by
// more than one goroutine, so no locking is needed around the slice.
func (c *Client) ExplainBatch(ctx context.Context, codes []string) ([]string, error) {
	out := make([]string, len(codes))

	g, gctx := errgroup.WithContext(ctx)
	parallelism := c.cfg.Parallelism
	if parallelism <= 0 {
		parallelism = 1
	}
	g.SetLimit(parallelism)

	for i, code := range codes {
		i, code := i, code
		g.Go(func() error {
			summary, err := c.explainOne(gctx, code)
			if err != nil {
				return err
			}
			out[i] = summary
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) explainOne(ctx context.Context, code string) (string, error) {
	var resp explainResponse
	err := withRetry(ctx, c.cfg, func() error {
		r, err := c.call(ctx, code)
		if err != nil {
			return err
		}
		resp = r
		return nil
	})
	if err != nil {
		return "", err
	}
	if resp.Summary == nil {
		return unknownSummary, nil
	}
	return *resp.Summary, nil
}

func (c *Client) call(ctx context.Context, code string) (explainResponse, error) {
	body, err := json.Marshal(explainRequest{SystemPrompt: systemPrompt, Code: code})
	if err != nil {
		return explainResponse{}, fmt.Errorf("marshal explain request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return explainResponse{}, fmt.Errorf("build explain request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return explainResponse{}, fmt.Errorf("explain request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return explainResponse{}, ErrRateLimited
	}
	if resp.StatusCode != http.StatusOK {
		return explainResponse{}, fmt.Errorf("explain endpoint returned status %d", resp.StatusCode)
	}

	var out explainResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return explainResponse{}, fmt.Errorf("decode explain response: %w", err)
	}
	return out, nil
}

func (c *Client) Close() error {
	c.http.CloseIdleConnections()
	return nil
}
