package llm

import "context"

// Options control a single completion call
type Options struct {
	Temperature float64
	MaxTokens   int
	Model       string
}

// Usage reports token consumption for one completion
type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// Completion is the normalized result of a provider call
type Completion struct {
	Content  string
	Usage    Usage
	Provider string
	Model    string
}

// Provider is the uniform contract every LLM vendor implements. Errors
// leaving a Provider are always normalized into the apperror taxonomy
// (rate-limit, authentication, provider, timeout, validation), so callers
// never branch on vendor-specific shapes.
type Provider interface {
	Complete(ctx context.Context, prompt string, opts Options) (*Completion, error)
	TestConnection(ctx context.Context) bool
	Name() string
}
