package server

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"kiddoo/internal/analysis"
	"kiddoo/internal/momentum"
)

// resultCache memoizes analysis results. The pipeline is deterministic,
// so identical (message, mode, history) requests can be served from
// memory without rerunning it.
type resultCache struct {
	entries *lru.Cache[string, *analysis.Result]
}

func newResultCache(size int) (*resultCache, error) {
	if size <= 0 {
		size = 256
	}
	entries, err := lru.New[string, *analysis.Result](size)
	if err != nil {
		return nil, err
	}
	return &resultCache{entries: entries}, nil
}

func (c *resultCache) key(message string, mode analysis.Mode, history []momentum.Record) string {
	var b strings.Builder
	b.WriteString(message)
	b.WriteByte(0)
	b.WriteString(string(mode))
	for _, record := range history {
		b.WriteByte(0)
		b.WriteString(record.ClassifiedState)
	}
	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}

func (c *resultCache) get(key string) (*analysis.Result, bool) {
	return c.entries.Get(key)
}

func (c *resultCache) put(key string, result *analysis.Result) {
	c.entries.Add(key, result)
}
