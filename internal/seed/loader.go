package seed

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/SscSPs/pos_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_ledger/internal/core/ports/repositories"
)

// LoadFile reads a JSON object keyed by collection name and writes each
// collection into store. It returns the keys it wrote.
func LoadFile(ctx context.Context, store portsrepo.CollectionStore, path string) ([]domain.CollectionKey, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file %s: %w", path, err)
	}
	return Load(ctx, store, raw)
}

// Load writes the collections found in raw. Unknown keys are rejected and
// every value must be a JSON array.
func Load(ctx context.Context, store portsrepo.CollectionStore, raw []byte) ([]domain.CollectionKey, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("seed data is not a JSON object: %w", err)
	}

	known := make(map[domain.CollectionKey]bool)
	for _, k := range domain.AllCollections() {
		known[k] = true
	}

	keys := make([]string, 0, len(doc))
	for k := range doc {
		if !known[domain.CollectionKey(k)] {
			return nil, fmt.Errorf("unknown collection %q in seed data", k)
		}
		if v := bytes.TrimSpace(doc[k]); len(v) == 0 || v[0] != '[' {
			return nil, fmt.Errorf("collection %q in seed data must be a JSON array", k)
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	written := make([]domain.CollectionKey, 0, len(keys))
	for _, k := range keys {
		key := domain.CollectionKey(k)
		if err := store.Set(ctx, key, string(doc[k])); err != nil {
			return written, fmt.Errorf("failed to seed %s: %w", key, err)
		}
		written = append(written, key)
	}
	return written, nil
}
