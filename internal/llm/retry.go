package llm

import (
	"context"
	"time"

	"go.uber.org/zap"

	apperror "thread-translator/internal/error"
)

const (
	// DefaultMaxRetries allows up to 4 total attempts
	DefaultMaxRetries = 3
	// DefaultInitialDelay is the backoff delay after the first failed attempt
	DefaultInitialDelay = 1000 * time.Millisecond
)

// retrier retries failed completions with exponential backoff. Only
// rate-limit and generic provider errors are retried; authentication and
// other client errors surface immediately. The delay after attempt n
// (0-indexed) is initialDelay * 2^n.
type retrier struct {
	next         Provider
	maxRetries   int
	initialDelay time.Duration
	logger       *zap.Logger

	// sleep is injectable so tests can observe delays without waiting
	sleep func(ctx context.Context, d time.Duration) error
}

// ------------------------------------------------------------------------------------------------------
// WithRetry wraps a provider in the retry policy
func WithRetry(p Provider, maxRetries int, initialDelay time.Duration, logger *zap.Logger) Provider {
	if maxRetries < 0 {
		maxRetries = DefaultMaxRetries
	}
	if initialDelay <= 0 {
		initialDelay = DefaultInitialDelay
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &retrier{
		next:         p,
		maxRetries:   maxRetries,
		initialDelay: initialDelay,
		logger:       logger,
		sleep:        sleepCtx,
	}
}

// ------------------------------------------------------------------------------------------------------
func (r *retrier) Complete(ctx context.Context, prompt string, opts Options) (*Completion, error) {
	var lastErr error

	for attempt := 0; attempt <= r.maxRetries; attempt++ {
		result, err := r.next.Complete(ctx, prompt, opts)
		if err == nil {
			return result, nil
		}
		lastErr = err

		if !apperror.IsRetryable(err) {
			return nil, err
		}
		if attempt == r.maxRetries {
			break
		}

		delay := r.initialDelay << uint(attempt)
		r.logger.Warn("provider call failed, retrying",
			zap.String("provider", r.next.Name()),
			zap.Int("attempt", attempt+1),
			zap.Duration("delay", delay),
			zap.Error(err),
		)

		if err := r.sleep(ctx, delay); err != nil {
			return nil, apperror.NewTimeoutError("retry canceled", err)
		}
	}

	// Exhausted: re-raise the last error unchanged in kind
	return nil, lastErr
}

// ------------------------------------------------------------------------------------------------------
func (r *retrier) TestConnection(ctx context.Context) bool {
	return r.next.TestConnection(ctx)
}

// ------------------------------------------------------------------------------------------------------
func (r *retrier) Name() string {
	return r.next.Name()
}

// ------------------------------------------------------------------------------------------------------
func sleepCtx(ctx context.Context, d time.Duration) error {
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
