package checkpoint

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"

	"github.com/codeready-toolchain/warden/ent"
)

// Cache is the best-effort LLM output cache. A cache failure never
// fails the caller; it falls back to direct generation.
type Cache struct {
	client *ent.Client
}

// NewCache creates an LLM output cache.
func NewCache(client *ent.Client) *Cache {
	return &Cache{client: client}
}

// CacheKey hashes (operation_type, model, prompt, task scoping salt).
// The salt keeps identical prompts from leaking output across tasks
// that must not share it; pass "" for global scope.
func CacheKey(operationType, model, prompt, taskScope string) string {
	h := sha256.New()
	for _, part := range []string{operationType, model, prompt, taskScope} {
		fmt.Fprintf(h, "%d:%s;", len(part), part)
	}
	return hex.EncodeToString(h.Sum(nil))
}

// GetOrGenerate returns the cached output for the key, or runs gen,
// stores its output, and returns it. The second return reports a cache
// hit.
func (c *Cache) GetOrGenerate(ctx context.Context, operationType, model, prompt, taskScope string, gen func(context.Context) (string, error)) (string, bool, error) {
	key := CacheKey(operationType, model, prompt, taskScope)

	cached, err := c.client.LLMCacheEntry.Get(ctx, key)
	if err == nil {
		return cached.Output, true, nil
	}
	if !ent.IsNotFound(err) {
		slog.Warn("LLM cache lookup failed, generating directly", "error", err)
	}

	output, err := gen(ctx)
	if err != nil {
		return "", false, err
	}

	_, storeErr := c.client.LLMCacheEntry.Create().
		SetID(key).
		SetOperationType(operationType).
		SetModel(model).
		SetOutput(output).
		Save(ctx)
	if storeErr != nil && !ent.IsConstraintError(storeErr) {
		slog.Warn("LLM cache store failed", "error", storeErr)
	}
	return output, false, nil
}
