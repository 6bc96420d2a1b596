package storage

import (
	"context"
	"testing"
)

func TestSQLiteStore_SaveTranslation(t *testing.T) {
	store, err := NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("NewSQLiteStore() error = %v", err)
	}
	defer store.Close()

	record := &TranslationRecord{
		UserID:            "U123",
		ChannelID:         "C456",
		OriginalMessages:  `[{"author":"alice","text":"hi"}]`,
		TranslatedContent: "Alice greeted the channel.",
		TargetRole:        "executive",
		TargetLanguage:    "en",
		Style:             "Business Summary",
		Provider:          "openai",
		Model:             "gpt-4o-mini",
		TokensUsed:        42,
	}

	if err := store.SaveTranslation(context.Background(), record); err != nil {
		t.Fatalf("SaveTranslation() error = %v", err)
	}

	if record.ID == "" {
		t.Error("Expected an ID to be assigned")
	}
	if record.CreatedAt.IsZero() {
		t.Error("Expected CreatedAt to be set")
	}

	count, err := store.CountTranslations(context.Background())
	if err != nil {
		t.Fatalf("CountTranslations() error = %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 record, got %d", count)
	}
}

func TestSQLiteStore_AppendOnly(t *testing.T) {
	store, err := NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("NewSQLiteStore() error = %v", err)
	}
	defer store.Close()

	for i := 0; i < 3; i++ {
		record := &TranslationRecord{
			UserID:            "U123",
			ChannelID:         "C456",
			OriginalMessages:  `[]`,
			TranslatedContent: "content",
			TargetRole:        "engineer",
			TargetLanguage:    "en",
			Style:             "ELI5",
			Provider:          "anthropic",
			Model:             "claude-3-5-haiku-20241022",
			TokensUsed:        10,
		}
		if err := store.SaveTranslation(context.Background(), record); err != nil {
			t.Fatalf("SaveTranslation() error = %v", err)
		}
	}

	count, err := store.CountTranslations(context.Background())
	if err != nil {
		t.Fatalf("CountTranslations() error = %v", err)
	}
	if count != 3 {
		t.Errorf("Expected 3 records, got %d", count)
	}
}

func TestSQLiteStore_DuplicateIDRejected(t *testing.T) {
	store, err := NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("NewSQLiteStore() error = %v", err)
	}
	defer store.Close()

	record := &TranslationRecord{ID: "fixed-id", OriginalMessages: "[]"}
	if err := store.SaveTranslation(context.Background(), record); err != nil {
		t.Fatalf("SaveTranslation() error = %v", err)
	}

	dup := &TranslationRecord{ID: "fixed-id", OriginalMessages: "[]"}
	if err := store.SaveTranslation(context.Background(), dup); err == nil {
		t.Error("Expected primary key violation for duplicate ID")
	}
}
