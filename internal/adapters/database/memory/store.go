package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/SscSPs/pos_ledger/internal/apperrors"
	"github.com/SscSPs/pos_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_ledger/internal/core/ports/repositories"
)

// Store is an in-process CollectionStore. An optional byte quota reproduces
// the capacity errors of browser-backed storage.
type Store struct {
	mu         sync.RWMutex
	data       map[domain.CollectionKey]string
	quotaBytes int
}

// Ensure Store implements portsrepo.CollectionStore
var _ portsrepo.CollectionStore = (*Store)(nil)

// Option configures a Store.
type Option func(*Store)

// WithQuota limits the total size of all stored values. Zero disables the limit.
func WithQuota(bytes int) Option {
	return func(s *Store) {
		s.quotaBytes = bytes
	}
}

// NewStore creates an empty Store.
func NewStore(opts ...Option) *Store {
	s := &Store{data: make(map[domain.CollectionKey]string)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Get(_ context.Context, key domain.CollectionKey) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *Store) Set(_ context.Context, key domain.CollectionKey, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.quotaBytes > 0 {
		used := len(value)
		for k, v := range s.data {
			if k != key {
				used += len(v)
			}
		}
		if used > s.quotaBytes {
			return fmt.Errorf("%w: quota of %d bytes exceeded writing %s (%d bytes needed)", apperrors.ErrStorageWrite, s.quotaBytes, key, used)
		}
	}

	s.data[key] = value
	return nil
}

// Snapshot returns a copy of every stored collection.
func (s *Store) Snapshot() map[domain.CollectionKey]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[domain.CollectionKey]string, len(s.data))
	for k, v := range s.data {
		out[k] = v
	}
	return out
}
