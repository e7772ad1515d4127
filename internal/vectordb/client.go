package vectordb

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/qdrant/go-client/qdrant"
)

// Client wraps the Qdrant gRPC client (the Go client talks gRPC, default
// port 6334), grounded directly on the teacher's qdrantVector
// constructor but generalized from a single fixed collection/dimension
// to the multi-collection, named-vector shape the indexing orchestrator
// needs.
type Client struct {
	conn *qdrant.Client
}

// NewClient parses dsn the same way the teacher does ("http://host:port"
// or "https://host:port?api_key=...", defaulting to localhost:6334) and
// opens a Qdrant gRPC connection.
func NewClient(dsn string) (*Client, error) {
	parsed, err := url.Parse(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse qdrant dsn: %w", err)
	}
	host := parsed.Hostname()
	if host == "" {
		host = "localhost"
	}
	portStr := parsed.Port()
	if portStr == "" {
		portStr = "6334"
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid port in qdrant dsn: %w", err)
	}

	cfg := &qdrant.Config{Host: host, Port: port}
	if parsed.Scheme == "https" {
		cfg.UseTLS = true
	}
	if apiKey := parsed.Query().Get("api_key"); apiKey != "" {
		cfg.APIKey = apiKey
	}

	conn, err := qdrant.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("create qdrant client: %w", err)
	}
	return &Client{conn: conn}, nil
}

// Close releases the underlying gRPC connection.
func (c *Client) Close() error {
	return c.conn.Close()
}
