package cache

import (
	"time"

	"thread-translator/internal/translation"
)

// Store defines the interface for caching translation results
type Store interface {
	Get(key string) (*translation.Result, bool)
	Set(key string, value *translation.Result, ttl time.Duration)
	Delete(key string)
	Clear()
	Stats() Stats
	Destroy()
}

// Stats reports cache effectiveness over the process lifetime
type Stats struct {
	Hits    int64   `json:"hits"`
	Misses  int64   `json:"misses"`
	HitRate float64 `json:"hit_rate"`
	Size    int     `json:"size"`
}
