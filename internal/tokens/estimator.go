package tokens

import (
	"thread-translator/internal/translation"
)

// DefaultLimit is the token budget a conversation must fit under before it
// is sent to the LLM
const DefaultLimit = 2000

// ------------------------------------------------------------------------------------------------------
// EstimateTokens approximates the token cost of a conversation as
// ceil(totalCharacters / 4) over every author and text. This is the
// budgeting ground truth; it deliberately avoids a real tokenizer.
func EstimateTokens(messages []translation.Message) int {
	total := 0
	for _, msg := range messages {
		total += len(msg.Author) + len(msg.Text)
	}
	return (total + 3) / 4
}

// ------------------------------------------------------------------------------------------------------
// ExceedsLimit reports whether the conversation is over budget. A
// non-positive limit selects the default.
func ExceedsLimit(messages []translation.Message, limit int) bool {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return EstimateTokens(messages) > limit
}

// ------------------------------------------------------------------------------------------------------
// Truncate keeps the most recent messages that fit under the limit,
// scanning backward from the newest. A message is either kept whole or
// dropped; nothing is partially included.
func Truncate(messages []translation.Message, limit int) []translation.Message {
	if limit <= 0 {
		limit = DefaultLimit
	}

	kept := 0
	for i := len(messages) - 1; i >= 0; i-- {
		if EstimateTokens(messages[i:]) > limit {
			break
		}
		kept = len(messages) - i
	}

	result := make([]translation.Message, kept)
	copy(result, messages[len(messages)-kept:])
	return result
}
