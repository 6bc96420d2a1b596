package tokens

import (
	"fmt"

	"github.com/tiktoken-go/tokenizer"

	"thread-translator/internal/translation"
)

// ------------------------------------------------------------------------------------------------------
// ExactCount counts conversation tokens with a real tokenizer. Used for
// audit logging only; budgeting decisions stay on EstimateTokens.
func ExactCount(messages []translation.Message) (int, error) {
	// cl100k_base is the encoding used by current GPT models
	enc, err := tokenizer.Get(tokenizer.Cl100kBase)
	if err != nil {
		return 0, fmt.Errorf("failed to get tokenizer: %w", err)
	}

	total := 0
	for _, msg := range messages {
		ids, _, err := enc.Encode(msg.Text)
		if err != nil {
			return 0, fmt.Errorf("failed to encode text: %w", err)
		}
		total += len(ids)

		// Approximate overhead for the author and message structure
		total += 4
	}

	return total, nil
}
