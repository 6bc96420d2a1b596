package tokens

import (
	"context"
	"strings"
	"testing"

	"thread-translator/internal/llm"
	"thread-translator/internal/translation"
)

func TestEstimateTokens_Formula(t *testing.T) {
	tests := []struct {
		name     string
		messages []translation.Message
		want     int
	}{
		{
			name:     "empty",
			messages: []translation.Message{},
			want:     0,
		},
		{
			name:     "single message",
			messages: []translation.Message{{Author: "ab", Text: "cdefgh"}}, // 8 chars
			want:     2,
		},
		{
			name:     "rounds up",
			messages: []translation.Message{{Author: "a", Text: "bcde"}}, // 5 chars
			want:     2,
		},
		{
			name: "sums across messages",
			messages: []translation.Message{
				{Author: "ab", Text: "cd"}, // 4
				{Author: "ef", Text: "gh"}, // 4
			},
			want: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EstimateTokens(tt.messages); got != tt.want {
				t.Errorf("EstimateTokens() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestExceedsLimit(t *testing.T) {
	// 100 messages of ~120 characters each is well over a 2000-token budget
	long := make([]translation.Message, 100)
	for i := range long {
		long[i] = translation.Message{
			Author: "engineer",
			Text:   strings.Repeat("the deploy pipeline failed again ", 4)[:112],
		}
	}
	if !ExceedsLimit(long, 2000) {
		t.Error("Expected 100 long messages to exceed a 2000-token limit")
	}

	short := []translation.Message{
		{Author: "alice", Text: "hi"},
		{Author: "bob", Text: "hello"},
	}
	if ExceedsLimit(short, 2000) {
		t.Error("Expected two greetings not to exceed a 2000-token limit")
	}
}

func TestTruncate_KeepsNewestWholeMessages(t *testing.T) {
	// Each message is author(1) + text(39) = 40 chars = 10 estimated tokens
	messages := make([]translation.Message, 10)
	for i := range messages {
		messages[i] = translation.Message{
			Author: "a",
			Text:   strings.Repeat("x", 38) + string(rune('0'+i)),
		}
	}

	// Budget of 35 tokens fits exactly 3 messages (30 tokens), not 4
	kept := Truncate(messages, 35)

	if len(kept) != 3 {
		t.Fatalf("Expected 3 messages kept, got %d", len(kept))
	}

	// The newest messages survive, in order
	for i, msg := range kept {
		want := string(rune('0' + 7 + i))
		if !strings.HasSuffix(msg.Text, want) {
			t.Errorf("Message %d: expected suffix %s, got %s", i, want, msg.Text[len(msg.Text)-1:])
		}
	}
}

func TestTruncate_AllFit(t *testing.T) {
	messages := []translation.Message{
		{Author: "alice", Text: "hi"},
		{Author: "bob", Text: "hello"},
	}

	kept := Truncate(messages, 2000)
	if len(kept) != 2 {
		t.Errorf("Expected all messages kept, got %d", len(kept))
	}
}

func TestTruncate_NothingFits(t *testing.T) {
	messages := []translation.Message{
		{Author: "alice", Text: strings.Repeat("x", 100)},
	}

	kept := Truncate(messages, 10)
	if len(kept) != 0 {
		t.Errorf("Expected no messages kept under a tiny limit, got %d", len(kept))
	}
}

// Mock provider for summarizer tests
type mockProvider struct {
	completeFunc func(ctx context.Context, prompt string, opts llm.Options) (*llm.Completion, error)
}

func (m *mockProvider) Complete(ctx context.Context, prompt string, opts llm.Options) (*llm.Completion, error) {
	if m.completeFunc != nil {
		return m.completeFunc(ctx, prompt, opts)
	}
	return &llm.Completion{Content: "a summary"}, nil
}

func (m *mockProvider) TestConnection(ctx context.Context) bool { return true }
func (m *mockProvider) Name() string                            { return "mock" }

func TestSummarize(t *testing.T) {
	var gotPrompt string
	var gotOpts llm.Options

	mock := &mockProvider{
		completeFunc: func(ctx context.Context, prompt string, opts llm.Options) (*llm.Completion, error) {
			gotPrompt = prompt
			gotOpts = opts
			return &llm.Completion{Content: "they agreed to roll back the release"}, nil
		},
	}

	messages := []translation.Message{
		{Author: "alice", Text: "the canary is failing"},
		{Author: "bob", Text: "let's roll back"},
	}

	summary, err := Summarize(context.Background(), messages, mock)
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}

	if summary.Author != translation.SummaryAuthor {
		t.Errorf("Expected author '%s', got '%s'", translation.SummaryAuthor, summary.Author)
	}
	if summary.Text != "they agreed to roll back the release" {
		t.Errorf("Unexpected summary text: %s", summary.Text)
	}

	if gotOpts.Temperature != SummaryTemperature {
		t.Errorf("Expected temperature %f, got %f", SummaryTemperature, gotOpts.Temperature)
	}
	if gotOpts.MaxTokens != SummaryMaxTokens {
		t.Errorf("Expected max tokens %d, got %d", SummaryMaxTokens, gotOpts.MaxTokens)
	}

	for _, fragment := range []string{"alice: the canary is failing", "bob: let's roll back", "decisions", "technical terms"} {
		if !strings.Contains(gotPrompt, fragment) {
			t.Errorf("Expected prompt to contain '%s'", fragment)
		}
	}
}

func TestSummarize_ProviderFailurePropagates(t *testing.T) {
	mock := &mockProvider{
		completeFunc: func(ctx context.Context, prompt string, opts llm.Options) (*llm.Completion, error) {
			return nil, context.DeadlineExceeded
		},
	}

	_, err := Summarize(context.Background(), []translation.Message{{Author: "a", Text: "b"}}, mock)
	if err == nil {
		t.Fatal("Expected provider failure to propagate")
	}
}
