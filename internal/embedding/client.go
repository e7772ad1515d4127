package embedding

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"golang.org/x/time/rate"
)

// Mode distinguishes how a text should be embedded, mirroring the
// query/passage asymmetry some embedding models use.
type Mode string

const (
	ModeQuery   Mode = "query"
	ModePassage Mode = "passage"
)

// Client talks to a single HTTP embedding endpoint and applies
// batching, an optional outbound request-rate cap, and exponential
// backoff retry on rate-limit responses.
type Client struct {
	cfg     Config
	http    *http.Client
	limiter *rate.Limiter
	dims    int
}

// NewClient constructs a Client. dims is the embedding dimensionality
// the caller expects back (used by CreateCollection callers, not
// validated here beyond being > 0 where required).
func NewClient(cfg Config, dims int) *Client {
	var limiter *rate.Limiter
	if cfg.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1)
	}
	return &Client{
		cfg:     cfg,
		http:    &http.Client{Timeout: cfg.Timeout},
		limiter: limiter,
		dims:    dims,
	}
}

func (c *Client) Dimensions() int { return c.dims }

type embedRequest struct {
	Texts []string `json:"texts"`
	Mode  Mode     `json:"mode,omitempty"`
}

type embedResponse struct {
	Embeddings [][]float32 `json:"embeddings"`
}

// Embed embeds a single text, returning its dense vector.
func (c *Client) Embed(ctx context.Context, text string, mode Mode) ([]float32, error) {
	vecs, err := c.EmbedBatch(ctx, []string{text}, mode)
	if err != nil {
		return nil, err
	}
	return vecs[0], nil
}

// EmbedBatch embeds texts in chunks of cfg.BatchSize (default 32),
// preserving input order across batches.
func (c *Client) EmbedBatch(ctx context.Context, texts []string, mode Mode) ([][]float32, error) {
	batchSize := c.cfg.BatchSize
	if batchSize <= 0 {
		batchSize = 32
	}

	out := make([][]float32, 0, len(texts))
	for start := 0; start < len(texts); start += batchSize {
		end := start + batchSize
		if end > len(texts) {
			end = len(texts)
		}
		batch := texts[start:end]

		var resp embedResponse
		err := withRetry(ctx, c.cfg, func() error {
			r, err := c.call(ctx, batch, mode)
			if err != nil {
				return err
			}
			resp = r
			return nil
		})
		if err != nil {
			return nil, err
		}
		out = append(out, resp.Embeddings...)
	}
	return out, nil
}

func (c *Client) call(ctx context.Context, texts []string, mode Mode) (embedResponse, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return embedResponse{}, err
		}
	}

	body, err := json.Marshal(embedRequest{Texts: texts, Mode: mode})
	if err != nil {
		return embedResponse{}, fmt.Errorf("marshal embed request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return embedResponse{}, fmt.Errorf("build embed request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return embedResponse{}, fmt.Errorf("embed request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return embedResponse{}, ErrRateLimited
	}
	if resp.StatusCode != http.StatusOK {
		return embedResponse{}, fmt.Errorf("embed endpoint returned status %d", resp.StatusCode)
	}

	var out embedResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return embedResponse{}, fmt.Errorf("decode embed response: %w", err)
	}
	return out, nil
}

func (c *Client) Close() error {
	c.http.CloseIdleConnections()
	return nil
}
