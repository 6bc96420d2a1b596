package llm

import (
	"context"
	"fmt"
	"time"

	apperror "thread-translator/internal/error"
)

// DefaultTimeout bounds a single provider call
const DefaultTimeout = 30 * time.Second

// timeoutGuard races every completion against a timer. When the timer wins
// the call is reported as a timeout error; the underlying request is
// abandoned and its eventual result discarded.
type timeoutGuard struct {
	next    Provider
	timeout time.Duration
}

// ------------------------------------------------------------------------------------------------------
// WithTimeout wraps a provider so that Complete never waits longer than d
func WithTimeout(p Provider, d time.Duration) Provider {
	if d <= 0 {
		d = DefaultTimeout
	}
	return &timeoutGuard{next: p, timeout: d}
}

type completionOutcome struct {
	result *Completion
	err    error
}

// ------------------------------------------------------------------------------------------------------
func (g *timeoutGuard) Complete(ctx context.Context, prompt string, opts Options) (*Completion, error) {
	// Buffered so the abandoned call can still deliver and exit
	outcome := make(chan completionOutcome, 1)

	go func() {
		result, err := g.next.Complete(ctx, prompt, opts)
		outcome <- completionOutcome{result: result, err: err}
	}()

	timer := time.NewTimer(g.timeout)
	defer timer.Stop()

	select {
	case o := <-outcome:
		return o.result, o.err
	case <-timer.C:
		return nil, apperror.NewTimeoutError(
			fmt.Sprintf("%s call exceeded %s", g.next.Name(), g.timeout), nil)
	case <-ctx.Done():
		return nil, apperror.NewTimeoutError(
			fmt.Sprintf("%s call canceled", g.next.Name()), ctx.Err())
	}
}

// ------------------------------------------------------------------------------------------------------
func (g *timeoutGuard) TestConnection(ctx context.Context) bool {
	return g.next.TestConnection(ctx)
}

// ------------------------------------------------------------------------------------------------------
func (g *timeoutGuard) Name() string {
	return g.next.Name()
}
