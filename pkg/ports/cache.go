package ports

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strconv"
)

// ErrCacheMiss is returned by ResultCache.Get when no entry exists for a key.
var ErrCacheMiss = errors.New("cache miss")

// ResultCache stores rendered conversion results.
// Implementations must be safe for concurrent use.
type ResultCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// CacheKey identifies one rendering of one document.
// Two requests share a key only if every input that affects the output is equal.
func CacheKey(format, layout string, collaborators bool, document []byte) string {
	h := sha256.New()
	for _, part := range []string{format, layout, strconv.FormatBool(collaborators)} {
		h.Write([]byte(part))
		h.Write([]byte{0})
	}
	h.Write(document)
	return hex.EncodeToString(h.Sum(nil))
}
