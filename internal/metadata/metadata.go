package metadata

import (
	"fmt"
	"sync"

	"nft-marketplace/internal/marketerrors"
)

// URIStore is the metadata collaborator contract: record the token URI at
// creation time and hand it back on request. Resolving a URI into descriptive
// JSON is the caller's concern, not the core's.
type URIStore interface {
	SetURI(itemID int64, uri string)
	URI(itemID int64) (string, error)
}

// MemoryStore is a concurrency-safe in-memory URIStore.
type MemoryStore struct {
	mu   sync.RWMutex
	uris map[int64]string
}

// NewMemoryStore creates an empty in-memory URI store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{uris: make(map[int64]string)}
}

func (s *MemoryStore) SetURI(itemID int64, uri string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.uris[itemID] = uri
}

func (s *MemoryStore) URI(itemID int64) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	uri, ok := s.uris[itemID]
	if !ok {
		return "", fmt.Errorf("uri for item %d: %w", itemID, marketerrors.ErrNotFound)
	}
	return uri, nil
}
