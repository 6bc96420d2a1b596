package llm

import (
	"fmt"

	apperror "thread-translator/internal/error"
)

// ------------------------------------------------------------------------------------------------------
// NewProvider constructs the vendor implementation selected by name. The
// returned provider is bare; callers wrap it with WithTimeout and WithRetry.
func NewProvider(name, apiKey, model string) (Provider, error) {
	switch name {
	case "openai":
		return NewOpenAIProvider(apiKey, model)
	case "anthropic":
		return NewAnthropicProvider(apiKey, "", model)
	case "gemini":
		return NewGeminiProvider(apiKey, "", model)
	default:
		return nil, apperror.NewConfigurationError(
			fmt.Sprintf("unknown LLM provider '%s': must be 'openai', 'anthropic' or 'gemini'", name), nil)
	}
}
