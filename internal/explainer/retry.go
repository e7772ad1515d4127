package explainer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bojanb98/code-context/internal/codeerrors"
)

// ErrRateLimited is the sentinel a transport returns when the explainer
// endpoint responds with a rate-limit status.
var ErrRateLimited = errors.New("explainer endpoint rate limited")

// withRetry mirrors internal/embedding's backoff policy: exponential
// delay from cfg.RetryMinDelay up to cfg.RetryMaxDelay, retrying only
// on ErrRateLimited.
func withRetry(ctx context.Context, cfg Config, fn func() error) error {
	delay := cfg.RetryMinDelay
	if delay <= 0 {
		delay = 5 * time.Second
	}
	maxDelay := cfg.RetryMaxDelay
	if maxDelay <= 0 {
		maxDelay = 20 * time.Second
	}
	attempts := cfg.RetryAttempts
	if attempts <= 0 {
		attempts = 3
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		err := fn()
		if err == nil {
			return nil
		}
		if !errors.Is(err, ErrRateLimited) {
			return err
		}
		lastErr = err
		if attempt == attempts {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
		if delay > maxDelay {
			delay = maxDelay
		}
	}
	return fmt.Errorf("%w: exhausted %d attempts: %v", codeerrors.ErrTransientRemote, attempts, lastErr)
}
