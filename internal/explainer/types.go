// Package explainer adapts a remote LLM "code -> one-sentence summary"
// service (spec §4.8) into explain_batch, with bounded per-batch
// fan-out and the same retry policy as the embedding adapter.
package explainer

import "time"

const unknownSummary = "unknown"

const systemPrompt = "Summarize the following code in one concise English sentence. " +
	"Respond with the sentence only, no preamble."

// Config configures the HTTP client, batching parallelism, and retry.
type Config struct {
	Endpoint string
	Timeout  time.Duration

	Parallelism int // spec: fan-out N >= 1, default 1

	RetryMinDelay time.Duration // spec: 5s
	RetryMaxDelay time.Duration // spec: 20s
	RetryAttempts int           // spec: 3
}

// DefaultConfig returns spec §4.8's literal defaults.
func DefaultConfig(endpoint string) Config {
	return Config{
		Endpoint:      endpoint,
		Timeout:       30 * time.Second,
		Parallelism:   1,
		RetryMinDelay: 5 * time.Second,
		RetryMaxDelay: 20 * time.Second,
		RetryAttempts: 3,
	}
}
