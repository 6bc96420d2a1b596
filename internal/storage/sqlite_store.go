package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const createTranslationsTable = `
CREATE TABLE IF NOT EXISTS translations (
	id TEXT PRIMARY KEY,
	user_id TEXT NOT NULL,
	channel_id TEXT NOT NULL,
	original_messages TEXT NOT NULL,
	translated_content TEXT NOT NULL,
	target_role TEXT NOT NULL,
	target_language TEXT NOT NULL,
	style TEXT NOT NULL,
	provider TEXT NOT NULL,
	model TEXT NOT NULL,
	tokens_used INTEGER NOT NULL,
	created_at TIMESTAMP NOT NULL
)`

// SQLiteStore persists translation records in a local SQLite database
type SQLiteStore struct {
	db *sql.DB
}

// ------------------------------------------------------------------------------------------------------
// NewSQLiteStore opens (or creates) the database at path and ensures the
// schema exists. Use ":memory:" for an ephemeral store.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec(createTranslationsTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// ------------------------------------------------------------------------------------------------------
// SaveTranslation appends one record. An empty ID gets a fresh UUID and a
// zero CreatedAt gets the current time.
func (s *SQLiteStore) SaveTranslation(ctx context.Context, record *TranslationRecord) error {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO translations
		 (id, user_id, channel_id, original_messages, translated_content,
		  target_role, target_language, style, provider, model, tokens_used, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		record.ID,
		record.UserID,
		record.ChannelID,
		record.OriginalMessages,
		record.TranslatedContent,
		record.TargetRole,
		record.TargetLanguage,
		record.Style,
		record.Provider,
		record.Model,
		record.TokensUsed,
		record.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save translation record: %w", err)
	}

	return nil
}

// ------------------------------------------------------------------------------------------------------
// CountTranslations reports the number of stored records
func (s *SQLiteStore) CountTranslations(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM translations`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count translations: %w", err)
	}
	return count, nil
}

// ------------------------------------------------------------------------------------------------------
// Close closes the underlying database
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
