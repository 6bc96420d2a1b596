package service

import (
	"context"

	"thread-translator/internal/translation"
)

// Translator defines the interface for the translation pipeline
type Translator interface {
	Translate(ctx context.Context, req *TranslateRequest) (*translation.Result, error)
}
