// Package embedding adapts a remote embedding endpoint (spec §4.8) into
// embed/embed_batch with externally configurable batching and
// exponential-backoff retry on rate-limit responses.
package embedding

import "time"

// Config configures the HTTP client and retry/batching behavior.
type Config struct {
	Endpoint string // e.g. "http://localhost:8121/embed"
	Timeout  time.Duration

	BatchSize int // spec default 32

	RetryMinDelay time.Duration // spec: 5s
	RetryMaxDelay time.Duration // spec: 20s
	RetryAttempts int           // spec: 3

	// RequestsPerSecond, when > 0, throttles outbound HTTP calls to this
	// rate regardless of batch size — a client-side courtesy limit
	// independent of the server's own rate-limit responses.
	RequestsPerSecond float64
}

// DefaultConfig returns spec §4.8's literal defaults.
func DefaultConfig(endpoint string) Config {
	return Config{
		Endpoint:      endpoint,
		Timeout:       30 * time.Second,
		BatchSize:     32,
		RetryMinDelay: 5 * time.Second,
		RetryMaxDelay: 20 * time.Second,
		RetryAttempts: 3,
	}
}
