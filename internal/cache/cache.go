// Package cache stores per-document analyses keyed by content hash, plus a
// corpus-level report cache with TTL recompute and stale fallback.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/gracobjo/sentencias/internal/model"
)

// Cache defines the byte-level storage interface
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key derives a cache key from the document id, the catalog fingerprint
// and the content. Edited documents and catalog changes both produce new
// keys, so neither reuses a stale analysis.
func Key(docID, catalog string, content []byte) string {
	h := sha256.New()
	h.Write([]byte(docID))
	h.Write([]byte{0})
	h.Write([]byte(catalog))
	h.Write([]byte{0})
	h.Write(content)
	return "sentencias:v1:" + hex.EncodeToString(h.Sum(nil))
}

// GetAnalysis fetches a cached document analysis
func GetAnalysis(c Cache, key string) (*model.DocumentAnalysis, bool) {
	data, ok := c.Get(key)
	if !ok {
		return nil, false
	}
	var analysis model.DocumentAnalysis
	if err := json.Unmarshal(data, &analysis); err != nil {
		_ = c.Delete(key)
		return nil, false
	}
	return &analysis, true
}

// SetAnalysis stores a document analysis
func SetAnalysis(c Cache, key string, analysis *model.DocumentAnalysis, ttl time.Duration) error {
	data, err := json.Marshal(analysis)
	if err != nil {
		return err
	}
	return c.Set(key, data, ttl)
}
