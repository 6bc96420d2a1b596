package tokens

import (
	"context"
	"fmt"
	"strings"

	"thread-translator/internal/llm"
	"thread-translator/internal/translation"
)

const (
	// SummaryTemperature keeps compression factual
	SummaryTemperature = 0.3
	// SummaryMaxTokens caps the compressed output
	SummaryMaxTokens = 500
)

// ------------------------------------------------------------------------------------------------------
// Summarize compresses an oversized conversation into a single synthetic
// message by asking the given provider for a faithful summary. The result
// carries the sentinel summary author. A provider failure here fails the
// whole request; there is no silent fallback to truncation.
func Summarize(ctx context.Context, messages []translation.Message, provider llm.Provider) (translation.Message, error) {
	prompt := buildSummaryPrompt(messages)

	completion, err := provider.Complete(ctx, prompt, llm.Options{
		Temperature: SummaryTemperature,
		MaxTokens:   SummaryMaxTokens,
	})
	if err != nil {
		return translation.Message{}, err
	}

	return translation.Message{
		Author: translation.SummaryAuthor,
		Text:   completion.Content,
	}, nil
}

// ------------------------------------------------------------------------------------------------------
func buildSummaryPrompt(messages []translation.Message) string {
	var b strings.Builder

	b.WriteString("Summarize the following conversation concisely. ")
	b.WriteString("Preserve the main topics discussed, any decisions made, and all technical terms. ")
	b.WriteString("Do not add commentary.\n\nConversation:\n")

	for _, msg := range messages {
		fmt.Fprintf(&b, "%s: %s\n", msg.Author, msg.Text)
	}

	return b.String()
}
