package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"thread-translator/internal/cache"
	apperror "thread-translator/internal/error"
	"thread-translator/internal/llm"
	"thread-translator/internal/prompt"
	"thread-translator/internal/redact"
	"thread-translator/internal/storage"
	"thread-translator/internal/tokens"
	"thread-translator/internal/translation"
)

const (
	// TranslationTemperature balances fidelity and readability
	TranslationTemperature = 0.4
	// TranslationMaxTokens caps the rendered explanation
	TranslationMaxTokens = 1000
	// DefaultCacheTTL is how long a translation stays cached
	DefaultCacheTTL = 3600 * time.Second
)

// TranslateRequest is one inbound translation request
type TranslateRequest struct {
	UserID    string                `json:"user_id"`
	ChannelID string                `json:"channel_id"`
	Profile   translation.Profile   `json:"profile"`
	Messages  []translation.Message `json:"messages"`
	Style     string                `json:"style"`
}

// ------------------------------------------------------------------------------------------------------
// Validate validates the translation request
func (r *TranslateRequest) Validate() error {
	if len(r.Messages) == 0 {
		return apperror.NewValidationError("messages cannot be empty", nil)
	}

	for i, msg := range r.Messages {
		if msg.Text == "" {
			return apperror.NewValidationError(
				fmt.Sprintf("empty text at index %d", i),
				nil,
			)
		}
	}

	if r.Profile.Role == "" {
		return apperror.NewValidationError("profile role is required", nil)
	}

	if r.Style != "" && !translation.ValidStyle(r.Style) {
		return apperror.NewValidationError(
			fmt.Sprintf("unknown style '%s'", r.Style),
			nil,
		)
	}

	return nil
}

// translator runs the full translation pipeline
type translator struct {
	cache              cache.Store
	provider           llm.Provider
	composer           *prompt.Composer
	records            storage.RecordStore
	logger             *zap.Logger
	cacheTTL           time.Duration
	tokenLimit         int
	summarizeOversized bool
	defaultStyle       string
}

// TranslatorConfig carries the pipeline knobs
type TranslatorConfig struct {
	CacheTTL           time.Duration
	TokenLimit         int
	SummarizeOversized bool
	DefaultStyle       string
}

// ------------------------------------------------------------------------------------------------------
// NewTranslator creates the pipeline with all dependencies injected. The
// active provider is fixed at construction time; swapping providers means
// constructing a new translator.
func NewTranslator(
	cacheStore cache.Store,
	provider llm.Provider,
	composer *prompt.Composer,
	records storage.RecordStore,
	logger *zap.Logger,
	cfg TranslatorConfig,
) Translator {
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = DefaultCacheTTL
	}
	if cfg.TokenLimit <= 0 {
		cfg.TokenLimit = tokens.DefaultLimit
	}
	if cfg.DefaultStyle == "" {
		cfg.DefaultStyle = translation.StyleELI5
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &translator{
		cache:              cacheStore,
		provider:           provider,
		composer:           composer,
		records:            records,
		logger:             logger,
		cacheTTL:           cfg.CacheTTL,
		tokenLimit:         cfg.TokenLimit,
		summarizeOversized: cfg.SummarizeOversized,
		defaultStyle:       cfg.DefaultStyle,
	}
}

// ------------------------------------------------------------------------------------------------------
// Translate turns a conversation plus a requester profile into a cached,
// redacted, budget-aware explanation. A cache hit short-circuits the whole
// pipeline; redaction, summarization, the LLM call and the persistence
// write only happen on a miss.
func (t *translator) Translate(ctx context.Context, req *TranslateRequest) (*translation.Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	style := t.resolveStyle(req)

	key := cache.DeriveKey(req.Messages, req.Profile.Role, req.Profile.Language, style)
	if cached, ok := t.cache.Get(key); ok {
		t.logger.Debug("translation served from cache",
			zap.String("role", req.Profile.Role),
			zap.String("style", style),
		)
		observeTranslation("cache_hit")
		return cached, nil
	}

	processed, redactions := t.redactMessages(req.Messages)

	if tokens.ExceedsLimit(processed, t.tokenLimit) {
		var err error
		processed, err = t.compress(ctx, processed)
		if err != nil {
			observeTranslation("error")
			return nil, err
		}
	}

	exactTokens, countErr := tokens.ExactCount(processed)
	if countErr != nil {
		t.logger.Warn("exact token count unavailable", zap.Error(countErr))
	}

	rendered, err := t.composer.Build(req.Profile, processed, style)
	if err != nil {
		observeTranslation("error")
		return nil, err
	}

	completion, err := t.provider.Complete(ctx, rendered, llm.Options{
		Temperature: TranslationTemperature,
		MaxTokens:   TranslationMaxTokens,
	})
	if err != nil {
		t.logger.Error("provider call failed",
			zap.String("provider", t.provider.Name()),
			zap.String("error_type", string(apperror.TypeOf(err))),
			zap.Error(err),
		)
		observeTranslation("error")
		return nil, err
	}

	result := &translation.Result{
		Content: completion.Content + "\n\n" + translation.Disclaimer,
		TokenUsage: translation.TokenUsage{
			PromptTokens:     completion.Usage.PromptTokens,
			CompletionTokens: completion.Usage.CompletionTokens,
			TotalTokens:      completion.Usage.TotalTokens,
		},
		Provider: completion.Provider,
		Model:    completion.Model,
	}

	t.cache.Set(key, result, t.cacheTTL)

	if err := t.persist(ctx, req, style, result); err != nil {
		t.logger.Error("failed to persist translation record", zap.Error(err))
		observeTranslation("error")
		return nil, apperror.NewInternalError("failed to persist translation record", err)
	}

	t.logger.Info("translation completed",
		zap.String("provider", result.Provider),
		zap.String("model", result.Model),
		zap.String("role", req.Profile.Role),
		zap.String("style", style),
		zap.Int("total_tokens", result.TokenUsage.TotalTokens),
		zap.Int("exact_prompt_tokens", exactTokens),
		zap.Int("redactions", len(redactions)),
	)
	observeTranslation("translated")

	return result, nil
}

// ------------------------------------------------------------------------------------------------------
func (t *translator) resolveStyle(req *TranslateRequest) string {
	if req.Style != "" {
		return req.Style
	}
	if req.Profile.PreferredStyle != "" && translation.ValidStyle(req.Profile.PreferredStyle) {
		return req.Profile.PreferredStyle
	}
	return t.defaultStyle
}

// ------------------------------------------------------------------------------------------------------
// redactMessages scrubs PII from every message. The audit log records
// counts and types only, never the matched text.
func (t *translator) redactMessages(messages []translation.Message) ([]translation.Message, []redact.Redaction) {
	processed := make([]translation.Message, len(messages))
	var all []redact.Redaction

	for i, msg := range messages {
		res := redact.Redact(msg.Text)
		processed[i] = translation.Message{Author: msg.Author, Text: res.Text}
		all = append(all, res.Redactions...)
	}

	if len(all) > 0 {
		counts := redact.CountByType(all)
		fields := []zap.Field{zap.Int("total", len(all))}
		for class, n := range counts {
			fields = append(fields, zap.Int(string(class), n))
			observeRedactions(string(class), n)
		}
		t.logger.Info("redacted sensitive content before translation", fields...)
	}

	return processed, all
}

// ------------------------------------------------------------------------------------------------------
// compress brings an oversized conversation under budget. Summarization is
// preferred; once attempted, its failure fails the request. Truncation is
// the configured fallback when summarization is disabled.
func (t *translator) compress(ctx context.Context, messages []translation.Message) ([]translation.Message, error) {
	if !t.summarizeOversized {
		t.logger.Info("conversation over budget, truncating",
			zap.Int("messages", len(messages)),
			zap.Int("estimated_tokens", tokens.EstimateTokens(messages)),
		)
		truncated := tokens.Truncate(messages, t.tokenLimit)
		if len(truncated) == 0 {
			return nil, apperror.NewValidationError(
				"conversation exceeds the token budget and no message fits on its own", nil)
		}
		return truncated, nil
	}

	t.logger.Info("conversation over budget, summarizing",
		zap.Int("messages", len(messages)),
		zap.Int("estimated_tokens", tokens.EstimateTokens(messages)),
	)

	summary, err := tokens.Summarize(ctx, messages, t.provider)
	if err != nil {
		return nil, err
	}

	return []translation.Message{summary}, nil
}

// ------------------------------------------------------------------------------------------------------
func (t *translator) persist(ctx context.Context, req *TranslateRequest, style string, result *translation.Result) error {
	original, err := json.Marshal(req.Messages)
	if err != nil {
		return err
	}

	language := req.Profile.Language
	if language == "" {
		language = "en"
	}

	return t.records.SaveTranslation(ctx, &storage.TranslationRecord{
		UserID:            req.UserID,
		ChannelID:         req.ChannelID,
		OriginalMessages:  string(original),
		TranslatedContent: result.Content,
		TargetRole:        req.Profile.Role,
		TargetLanguage:    language,
		Style:             style,
		Provider:          result.Provider,
		Model:             result.Model,
		TokensUsed:        result.TokenUsage.TotalTokens,
	})
}
