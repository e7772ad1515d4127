package embedding

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bojanb98/code-context/internal/codeerrors"
)

// ErrRateLimited is the sentinel a transport returns when the remote
// embedding endpoint responds with a rate-limit status. withRetry only
// backs off on this error; any other error fails immediately.
var ErrRateLimited = errors.New("embedding endpoint rate limited")

// withRetry runs fn up to cfg.RetryAttempts times, doubling the delay
// from cfg.RetryMinDelay up to cfg.RetryMaxDelay between attempts,
// stopping early on the first non-rate-limit error.
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
