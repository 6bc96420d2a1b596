package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	apperror "thread-translator/internal/error"
)

const (
	defaultAnthropicBaseURL = "https://api.anthropic.com/v1/messages"
	defaultAnthropicModel   = "claude-3-5-haiku-20241022"
	anthropicVersion        = "2023-06-01"
)

// AnthropicProvider talks to the Anthropic messages API
type AnthropicProvider struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

// ------------------------------------------------------------------------------------------------------
// NewAnthropicProvider creates an Anthropic-backed provider. An empty
// baseURL or model selects the defaults.
func NewAnthropicProvider(apiKey, baseURL, model string) (*AnthropicProvider, error) {
	if apiKey == "" {
		return nil, apperror.NewConfigurationError("Anthropic API key is required", nil)
	}
	if baseURL == "" {
		baseURL = defaultAnthropicBaseURL
	}
	if model == "" {
		model = defaultAnthropicModel
	}

	return &AnthropicProvider{
		apiKey:  apiKey,
		baseURL: baseURL,
		model:   model,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}, nil
}

// anthropicRequest represents the request to the messages API
type anthropicRequest struct {
	Model       string             `json:"model"`
	MaxTokens   int                `json:"max_tokens"`
	Temperature float64            `json:"temperature,omitempty"`
	Messages    []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// anthropicResponse represents the messages API response
type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Model string `json:"model"`
	Usage struct {
		InputTokens  int `json:"input_tokens"`
		OutputTokens int `json:"output_tokens"`
	} `json:"usage"`
}

// ------------------------------------------------------------------------------------------------------
func (p *AnthropicProvider) Complete(ctx context.Context, prompt string, opts Options) (*Completion, error) {
	model := opts.Model
	if model == "" {
		model = p.model
	}

	reqBody := anthropicRequest{
		Model:       model,
		MaxTokens:   opts.MaxTokens,
		Temperature: opts.Temperature,
		Messages: []anthropicMessage{
			{Role: "user", Content: prompt},
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, apperror.NewInternalError("failed to marshal request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, apperror.NewInternalError("failed to create request", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", p.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, networkError(p.Name(), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, classifyStatus(p.Name(), resp.StatusCode, string(bodyBytes))
	}

	var apiResp anthropicResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, apperror.NewProviderError("failed to decode anthropic response", err)
	}

	if len(apiResp.Content) == 0 {
		return nil, apperror.NewProviderError("anthropic returned no content", nil)
	}

	return &Completion{
		Content: apiResp.Content[0].Text,
		Usage: Usage{
			PromptTokens:     apiResp.Usage.InputTokens,
			CompletionTokens: apiResp.Usage.OutputTokens,
			TotalTokens:      apiResp.Usage.InputTokens + apiResp.Usage.OutputTokens,
		},
		Provider: p.Name(),
		Model:    model,
	}, nil
}

// ------------------------------------------------------------------------------------------------------
func (p *AnthropicProvider) TestConnection(ctx context.Context) bool {
	_, err := p.Complete(ctx, "ping", Options{MaxTokens: 1})
	return err == nil
}

// ------------------------------------------------------------------------------------------------------
func (p *AnthropicProvider) Name() string {
	return "anthropic"
}
