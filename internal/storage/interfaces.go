package storage

import (
	"context"
	"time"
)

// TranslationRecord is the append-only audit row written once per
// successful, non-cached translation
type TranslationRecord struct {
	ID                string
	UserID            string
	ChannelID         string
	OriginalMessages  string // serialized JSON of the source messages
	TranslatedContent string
	TargetRole        string
	TargetLanguage    string
	Style             string
	Provider          string
	Model             string
	TokensUsed        int
	CreatedAt         time.Time
}

// RecordStore persists translation records
type RecordStore interface {
	SaveTranslation(ctx context.Context, record *TranslationRecord) error
	Close() error
}
