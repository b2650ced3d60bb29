package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for caching
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key generates a cache key from cleaned contract text. Identical text
// always maps to the same key, so a re-analysis of an unchanged contract
// is a cache hit regardless of file name or location. Only the hash is
// used in file names; contract text never appears in a key.
func Key(text string) string {
	hash := sha256.Sum256([]byte(text))
	return "legalens:v1:" + hex.EncodeToString(hash[:])
}
