package llm

import (
	"context"
	"testing"
	"time"

	apperror "thread-translator/internal/error"
)

func TestTimeout_SlowCallAbandoned(t *testing.T) {
	mock := &mockProvider{
		completeFunc: func(ctx context.Context, prompt string, opts Options) (*Completion, error) {
			time.Sleep(200 * time.Millisecond)
			return &Completion{Content: "too late"}, nil
		},
	}

	p := WithTimeout(mock, 20*time.Millisecond)

	start := time.Now()
	_, err := p.Complete(context.Background(), "prompt", Options{})
	elapsed := time.Since(start)

	if err == nil {
		t.Fatal("Expected timeout error")
	}
	if apperror.TypeOf(err) != apperror.ErrorTypeTimeout {
		t.Errorf("Expected timeout error, got %s", apperror.TypeOf(err))
	}
	if elapsed >= 200*time.Millisecond {
		t.Errorf("Expected the guard to return before the slow call, took %s", elapsed)
	}
}

func TestTimeout_FastCallPasses(t *testing.T) {
	mock := &mockProvider{}

	p := WithTimeout(mock, time.Second)

	result, err := p.Complete(context.Background(), "prompt", Options{})
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if result.Content != "mock response" {
		t.Errorf("Expected 'mock response', got '%s'", result.Content)
	}
}

func TestTimeout_ErrorsPassThroughUnchanged(t *testing.T) {
	mock := &mockProvider{
		completeFunc: func(ctx context.Context, prompt string, opts Options) (*Completion, error) {
			return nil, apperror.NewRateLimitError("mock API error: status 429", nil)
		},
	}

	p := WithTimeout(mock, time.Second)

	_, err := p.Complete(context.Background(), "prompt", Options{})
	if apperror.TypeOf(err) != apperror.ErrorTypeRateLimit {
		t.Errorf("Expected rate limit error to pass through, got %s", apperror.TypeOf(err))
	}
}

func TestTimeout_ContextCancellation(t *testing.T) {
	mock := &mockProvider{
		completeFunc: func(ctx context.Context, prompt string, opts Options) (*Completion, error) {
			time.Sleep(200 * time.Millisecond)
			return &Completion{Content: "too late"}, nil
		},
	}

	p := WithTimeout(mock, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Complete(ctx, "prompt", Options{})
	if err == nil {
		t.Fatal("Expected error for canceled context")
	}
	if apperror.TypeOf(err) != apperror.ErrorTypeTimeout {
		t.Errorf("Expected timeout error, got %s", apperror.TypeOf(err))
	}
}
