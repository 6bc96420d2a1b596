package llm

import (
	"context"
	"errors"

	openai "github.com/sashabaranov/go-openai"

	apperror "thread-translator/internal/error"
)

const defaultOpenAIModel = "gpt-4o-mini"

// OpenAIProvider talks to the OpenAI chat completion API
type OpenAIProvider struct {
	client *openai.Client
	model  string
}

// ------------------------------------------------------------------------------------------------------
// NewOpenAIProvider creates an OpenAI-backed provider. A missing API key is
// a configuration error, not a retryable one.
func NewOpenAIProvider(apiKey, model string) (*OpenAIProvider, error) {
	if apiKey == "" {
		return nil, apperror.NewConfigurationError("OpenAI API key is required", nil)
	}
	if model == "" {
		model = defaultOpenAIModel
	}

	return &OpenAIProvider{
		client: openai.NewClient(apiKey),
		model:  model,
	}, nil
}

// ------------------------------------------------------------------------------------------------------
func (p *OpenAIProvider) Complete(ctx context.Context, prompt string, opts Options) (*Completion, error) {
	model := opts.Model
	if model == "" {
		model = p.model
	}

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: float32(opts.Temperature),
		MaxTokens:   opts.MaxTokens,
	})
	if err != nil {
		return nil, p.normalizeError(err)
	}

	if len(resp.Choices) == 0 {
		return nil, apperror.NewProviderError("openai returned no choices", nil)
	}

	return &Completion{
		Content: resp.Choices[0].Message.Content,
		Usage: Usage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
		Provider: p.Name(),
		Model:    model,
	}, nil
}

// ------------------------------------------------------------------------------------------------------
func (p *OpenAIProvider) TestConnection(ctx context.Context) bool {
	_, err := p.client.ListModels(ctx)
	return err == nil
}

// ------------------------------------------------------------------------------------------------------
func (p *OpenAIProvider) Name() string {
	return "openai"
}

// ------------------------------------------------------------------------------------------------------
// normalizeError converts go-openai error shapes into the shared taxonomy
func (p *OpenAIProvider) normalizeError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return classifyStatus(p.Name(), apiErr.HTTPStatusCode, apiErr.Message)
	}
	return networkError(p.Name(), err)
}
