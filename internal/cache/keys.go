package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"thread-translator/internal/translation"
)

// keyMaterial is the canonical serialization the fingerprint is derived
// from. JSON field order is fixed by the struct, so identical inputs always
// marshal to identical bytes.
type keyMaterial struct {
	Messages []translation.Message `json:"messages"`
	Role     string                `json:"role"`
	Language string                `json:"language"`
	Style    string                `json:"style"`
}

// ------------------------------------------------------------------------------------------------------
// DeriveKey produces a deterministic opaque cache key from everything that
// affects a translation's output. Any change to any message field or any of
// the scalar inputs changes the key.
func DeriveKey(messages []translation.Message, role, language, style string) string {
	data, _ := json.Marshal(keyMaterial{
		Messages: messages,
		Role:     role,
		Language: language,
		Style:    style,
	})
	hash := sha256.Sum256(data)
	return fmt.Sprintf("translation:%s", hex.EncodeToString(hash[:]))
}
